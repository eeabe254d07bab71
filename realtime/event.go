package realtime

import "encoding/json"

type EventType string

const (
	Insert EventType = "INSERT"
	Update EventType = "UPDATE"
	Delete EventType = "DELETE"
)

// Event is one row change on a table. New is empty for deletes and Old is
// empty for inserts.
type Event struct {
	Type  EventType       `json:"type"`
	Table string          `json:"table"`
	New   json.RawMessage `json:"new,omitempty"`
	Old   json.RawMessage `json:"old,omitempty"`
}

// OldID is the primary key of the row before the change.
func (e Event) OldID() string {
	return rowID(e.Old)
}

// NewID is the primary key of the row after the change.
func (e Event) NewID() string {
	return rowID(e.New)
}

func rowID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var row struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &row); err != nil {
		return ""
	}
	return row.ID
}
