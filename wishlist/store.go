// Package wishlist is the per-user set of saved products.
package wishlist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/junaidrashid-git/tribal-art-api/auth"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"gorm.io/gorm"
)

var (
	ErrSignInRequired = errors.New("please sign in to add items to wishlist")
	ErrAlreadySaved   = errors.New("item already in wishlist")
)

type Remote interface {
	WishlistItems(ctx context.Context, userID string) ([]models.WishlistItem, error)
	InsertWishlistItem(ctx context.Context, userID, productID string) error
	DeleteWishlistItem(ctx context.Context, userID, productID string) error
}

type UserSource interface {
	UserID() string
	OnChange(fn auth.Listener)
}

type Store struct {
	user   UserSource
	remote Remote

	mu      sync.RWMutex
	items   []models.WishlistItem
	loading bool
}

func New(user UserSource, remote Remote) *Store {
	s := &Store{user: user, remote: remote}
	user.OnChange(func(_, next *models.User) {
		if next == nil {
			s.reset()
			return
		}
		if err := s.Load(context.Background()); err != nil {
			log.Printf("❌ Error loading wishlist: %v", err)
		}
	})
	return s
}

// Load refetches the saved products, newest first.
func (s *Store) Load(ctx context.Context) error {
	userID := s.user.UserID()
	if userID == "" {
		s.reset()
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.remote.WishlistItems(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch wishlist: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Add saves a product and refetches so the new entry carries its product and
// seller. Saving twice yields ErrAlreadySaved.
func (s *Store) Add(ctx context.Context, productID string) error {
	userID := s.user.UserID()
	if userID == "" {
		return ErrSignInRequired
	}
	if err := s.remote.InsertWishlistItem(ctx, userID, productID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadySaved
		}
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return s.Load(ctx)
}

// Remove deletes remotely, then filters the local list.
func (s *Store) Remove(ctx context.Context, productID string) error {
	userID := s.user.UserID()
	if userID == "" {
		return ErrSignInRequired
	}
	if err := s.remote.DeleteWishlistItem(ctx, userID, productID); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}

	s.mu.Lock()
	kept := s.items[:0:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

func (s *Store) IsMember(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *Store) Items() []models.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) reset() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
