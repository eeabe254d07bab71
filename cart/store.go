// Package cart is the per-user cart: line items, derived totals and the
// mutations behind the cart page. Every mutation is followed by a full
// refetch so lines always carry the product's current price and title.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/junaidrashid-git/tribal-art-api/auth"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrSignInRequired = errors.New("please sign in to add items to cart")

// Remote is the slice of the data service the cart needs.
type Remote interface {
	CartItems(ctx context.Context, userID string) ([]models.CartItem, error)
	InsertCartItem(ctx context.Context, userID, productID string, quantity int) error
	UpdateCartQuantity(ctx context.Context, userID, productID string, quantity int) error
	DeleteCartItem(ctx context.Context, userID, productID string) error
	ClearCart(ctx context.Context, userID string) error
}

// UserSource tells the store who is signed in and when that changes.
type UserSource interface {
	UserID() string
	OnChange(fn auth.Listener)
}

type Store struct {
	user   UserSource
	remote Remote

	mu      sync.RWMutex
	items   []models.CartItem
	loading bool
}

// New binds a cart to a session. A user change reloads the cart, or empties
// it on sign-out.
func New(user UserSource, remote Remote) *Store {
	s := &Store{user: user, remote: remote}
	user.OnChange(func(_, next *models.User) {
		if next == nil {
			s.reset()
			return
		}
		if err := s.Load(context.Background()); err != nil {
			log.Printf("❌ Error loading cart: %v", err)
		}
	})
	return s
}

// Load refetches the signed-in user's cart. Signed out, the cart is empty.
func (s *Store) Load(ctx context.Context) error {
	userID := s.user.UserID()
	if userID == "" {
		s.reset()
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.remote.CartItems(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Add puts one more of productID in the cart.
func (s *Store) Add(ctx context.Context, productID string) error {
	userID := s.user.UserID()
	if userID == "" {
		return ErrSignInRequired
	}

	if item, ok := s.find(productID); ok {
		return s.SetQuantity(ctx, productID, item.Quantity+1)
	}

	err := s.remote.InsertCartItem(ctx, userID, productID, 1)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// the row exists but our list was stale
		if err := s.Load(ctx); err != nil {
			return err
		}
		if item, ok := s.find(productID); ok {
			return s.SetQuantity(ctx, productID, item.Quantity+1)
		}
	}
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	return s.Load(ctx)
}

// SetQuantity sets a line's quantity. Zero or less removes the line.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}
	userID := s.user.UserID()
	if userID == "" {
		return ErrSignInRequired
	}
	if err := s.remote.UpdateCartQuantity(ctx, userID, productID, quantity); err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	return s.Load(ctx)
}

func (s *Store) Remove(ctx context.Context, productID string) error {
	userID := s.user.UserID()
	if userID == "" {
		return ErrSignInRequired
	}
	if err := s.remote.DeleteCartItem(ctx, userID, productID); err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}
	return s.Load(ctx)
}

// Clear empties the cart. The local list is reset without a refetch.
func (s *Store) Clear(ctx context.Context) error {
	userID := s.user.UserID()
	if userID == "" {
		return ErrSignInRequired
	}
	if err := s.remote.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.reset()
	return nil
}

// Items returns a copy of the current lines.
func (s *Store) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// TotalItems is the sum of quantities.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price x quantity over the current lines.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (s *Store) find(productID string) (models.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return models.CartItem{}, false
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
