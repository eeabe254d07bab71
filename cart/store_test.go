package cart

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/junaidrashid-git/tribal-art-api/auth"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRemote struct {
	mu       sync.Mutex
	products map[string]models.Product
	rows     map[string]map[string]int
	order    []string
	calls    int
	err      error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		products: map[string]models.Product{
			"warli": {ID: "warli", Title: "Warli Harvest", Price: decimal.NewFromInt(3000)},
			"gond":  {ID: "gond", Title: "Gond Peacock", Price: decimal.RequireFromString("7499.50")},
			"dokra": {ID: "dokra", Title: "Dokra Horse", Price: decimal.NewFromInt(22000)},
		},
		rows: map[string]map[string]int{},
	}
}

func (f *fakeRemote) CartItems(_ context.Context, userID string) ([]models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var items []models.CartItem
	for _, pid := range f.order {
		if q, ok := f.rows[userID][pid]; ok {
			items = append(items, models.CartItem{UserID: userID, ProductID: pid, Quantity: q, Product: f.products[pid]})
		}
	}
	return items, nil
}

func (f *fakeRemote) InsertCartItem(_ context.Context, userID, productID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	if f.rows[userID] == nil {
		f.rows[userID] = map[string]int{}
	}
	if _, ok := f.rows[userID][productID]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.rows[userID][productID] = quantity
	f.order = append(f.order, productID)
	return nil
}

func (f *fakeRemote) UpdateCartQuantity(_ context.Context, userID, productID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[userID][productID]; ok {
		f.rows[userID][productID] = quantity
	}
	return nil
}

func (f *fakeRemote) DeleteCartItem(_ context.Context, userID, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	delete(f.rows[userID], productID)
	f.prune()
	return nil
}

func (f *fakeRemote) ClearCart(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	delete(f.rows, userID)
	f.prune()
	return nil
}

// prune drops ids no user holds any more so a re-added product gets one line.
func (f *fakeRemote) prune() {
	kept := f.order[:0]
	for _, pid := range f.order {
		for _, rows := range f.rows {
			if _, ok := rows[pid]; ok {
				kept = append(kept, pid)
				break
			}
		}
	}
	f.order = kept
}

func signedIn(userID string) *auth.Session {
	s := auth.NewSession(nil)
	s.Restore(&models.User{ID: userID}, "token")
	return s
}

func assertTotals(t *testing.T, s *Store) {
	t.Helper()
	qty := 0
	price := decimal.Zero
	for _, item := range s.Items() {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		qty += item.Quantity
		price = price.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.Equal(t, qty, s.TotalItems())
	assert.True(t, price.Equal(s.TotalPrice()), "total %s != %s", s.TotalPrice(), price)
}

func TestAddTwiceMakesOneLine(t *testing.T) {
	s := New(signedIn("u1"), newFakeRemote())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "warli"))
	require.NoError(t, s.Add(ctx, "warli"))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, decimal.NewFromInt(6000).Equal(s.TotalPrice()))
}

func TestAddWithStaleListIncrements(t *testing.T) {
	remote := newFakeRemote()
	ctx := context.Background()
	require.NoError(t, remote.InsertCartItem(ctx, "u1", "gond", 3))

	// never loaded, so the local list does not know about the row
	s := New(signedIn("u1"), remote)
	require.NoError(t, s.Add(ctx, "gond"))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestSetQuantityNonPositiveRemoves(t *testing.T) {
	for _, q := range []int{0, -1} {
		s := New(signedIn("u1"), newFakeRemote())
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, "warli"))
		require.NoError(t, s.Add(ctx, "gond"))

		require.NoError(t, s.SetQuantity(ctx, "warli", q))
		for _, item := range s.Items() {
			assert.NotEqual(t, "warli", item.ProductID)
		}
		assert.Len(t, s.Items(), 1)
	}
}

func TestTotalsAcrossMutations(t *testing.T) {
	s := New(signedIn("u1"), newFakeRemote())
	ctx := context.Background()

	steps := []func() error{
		func() error { return s.Add(ctx, "warli") },
		func() error { return s.Add(ctx, "gond") },
		func() error { return s.SetQuantity(ctx, "gond", 5) },
		func() error { return s.Add(ctx, "dokra") },
		func() error { return s.Add(ctx, "warli") },
		func() error { return s.Remove(ctx, "dokra") },
		func() error { return s.SetQuantity(ctx, "warli", -3) },
		func() error { return s.Add(ctx, "dokra") },
	}
	for _, step := range steps {
		require.NoError(t, step())
		assertTotals(t, s)
	}

	got := map[string]int{}
	for _, item := range s.Items() {
		got[item.ProductID] = item.Quantity
	}
	assert.Equal(t, map[string]int{"gond": 5, "dokra": 1}, got)
	assert.Len(t, s.Items(), len(got))
	assert.Equal(t, 6, s.TotalItems())
	assert.True(t, decimal.RequireFromString("59497.50").Equal(s.TotalPrice()))
}

func TestSignedOutIsRejectedWithoutRemoteCall(t *testing.T) {
	remote := newFakeRemote()
	s := New(auth.NewSession(nil), remote)
	ctx := context.Background()

	assert.ErrorIs(t, s.Add(ctx, "warli"), ErrSignInRequired)
	assert.ErrorIs(t, s.SetQuantity(ctx, "warli", 2), ErrSignInRequired)
	assert.ErrorIs(t, s.Remove(ctx, "warli"), ErrSignInRequired)
	assert.ErrorIs(t, s.Clear(ctx), ErrSignInRequired)
	require.NoError(t, s.Load(ctx))
	assert.Zero(t, remote.calls)
}

func TestRemoteFailureLeavesListUntouched(t *testing.T) {
	remote := newFakeRemote()
	s := New(signedIn("u1"), remote)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, "warli"))

	remote.err = errors.New("timeout")
	err := s.Add(ctx, "warli")
	require.Error(t, err)
	assert.ErrorIs(t, err, remote.err)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestClearResetsLocally(t *testing.T) {
	remote := newFakeRemote()
	s := New(signedIn("u1"), remote)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, "warli"))
	require.NoError(t, s.Add(ctx, "gond"))

	before := remote.calls
	require.NoError(t, s.Clear(ctx))
	assert.Empty(t, s.Items())
	assert.Zero(t, s.TotalItems())
	assert.Equal(t, before+1, remote.calls)
}

func TestUserTransitionResetsCart(t *testing.T) {
	remote := newFakeRemote()
	ctx := context.Background()
	require.NoError(t, remote.InsertCartItem(ctx, "u2", "dokra", 1))
	require.NoError(t, remote.InsertCartItem(ctx, "u2", "warli", 2))

	session := signedIn("u1")
	s := New(session, remote)
	require.NoError(t, s.Add(ctx, "gond"))

	session.Restore(&models.User{ID: "u2"}, "other")
	var pids []string
	for _, item := range s.Items() {
		pids = append(pids, item.ProductID)
	}
	sort.Strings(pids)
	assert.Equal(t, []string{"dokra", "warli"}, pids)

	session.Restore(nil, "")
	assert.Empty(t, s.Items())
}
