package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/junaidrashid-git/tribal-art-api/models"
)

// Listener is told about every change of signed-in user. prev or next may be
// nil.
type Listener func(prev, next *models.User)

// Session holds who is signed in. Stores that keep per-user state (cart,
// wishlist) register a Listener and reset themselves on transitions.
type Session struct {
	provider Provider

	mu        sync.RWMutex
	user      *models.User
	token     string
	loading   bool
	listeners []Listener
}

func NewSession(provider Provider) *Session {
	return &Session{provider: provider}
}

func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// UserID is "" when nobody is signed in.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Session) OnChange(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Restore installs an already verified user, e.g. from a bearer token.
func (s *Session) Restore(user *models.User, token string) {
	s.setUser(user, token)
}

func (s *Session) SignIn(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingFields
	}
	s.setLoading(true)
	defer s.setLoading(false)

	grant, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	s.setUser(grant.User, grant.Token)
	return nil
}

func (s *Session) SignUp(ctx context.Context, email, password, fullName string) error {
	if strings.TrimSpace(email) == "" || password == "" || strings.TrimSpace(fullName) == "" {
		return ErrMissingFields
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	s.setLoading(true)
	defer s.setLoading(false)

	grant, err := s.provider.SignUp(ctx, email, password, Metadata{FullName: fullName})
	if err != nil {
		return err
	}
	s.setUser(grant.User, grant.Token)
	return nil
}

// SignOut always clears the local user; the remote error, if any, is still
// returned.
func (s *Session) SignOut(ctx context.Context) error {
	userID := s.UserID()
	if userID == "" {
		return nil
	}
	err := s.provider.SignOut(ctx, userID)
	s.setUser(nil, "")
	return err
}

func (s *Session) ResetPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrMissingFields
	}
	return s.provider.ResetPassword(ctx, email)
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Session) setUser(user *models.User, token string) {
	s.mu.Lock()
	prev := s.user
	s.user = user
	s.token = token
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	if sameUser(prev, user) {
		return
	}
	for _, fn := range listeners {
		fn(prev, user)
	}
}

func sameUser(a, b *models.User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
