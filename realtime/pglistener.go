package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
)

// Publisher receives decoded events.
type Publisher interface {
	Publish(Event)
}

// PGListener turns Postgres NOTIFY payloads on one channel into Events. It
// holds its own connection because LISTEN is bound to a session, which a
// pooled *gorm.DB cannot guarantee.
type PGListener struct {
	dsn     string
	channel string
	pub     Publisher
	backoff time.Duration
}

func NewPGListener(dsn, channel string, pub Publisher) *PGListener {
	return &PGListener{dsn: dsn, channel: channel, pub: pub, backoff: 5 * time.Second}
}

// Run listens until ctx is cancelled, reconnecting after failures.
func (l *PGListener) Run(ctx context.Context) error {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("❌ Change feed on %q dropped: %v (retrying in %s)", l.channel, err, l.backoff)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.backoff):
		}
	}
}

func (l *PGListener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	log.Printf("📡 Listening for changes on %q", l.channel)

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		e, err := decodeNotification(n.Payload)
		if err != nil {
			log.Printf("⚠️ Skipping malformed change payload: %v", err)
			continue
		}
		l.pub.Publish(e)
	}
}

func decodeNotification(payload string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return Event{}, err
	}
	switch e.Type {
	case Insert, Update, Delete:
	default:
		return Event{}, fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.Table == "" {
		return Event{}, fmt.Errorf("event without table")
	}
	// json null decodes into a 4-byte RawMessage
	if string(e.New) == "null" {
		e.New = nil
	}
	if string(e.Old) == "null" {
		e.Old = nil
	}
	return e, nil
}
