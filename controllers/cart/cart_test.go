package cartControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/auth"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type accounts struct{ auth.Provider }

func (accounts) Authenticate(_ context.Context, token string) (*models.User, error) {
	if token == "" || token == "bad" {
		return nil, auth.ErrInvalidToken
	}
	return &models.User{ID: token}, nil
}

type memCart struct {
	products map[string]models.Product
	rows     map[string][]models.CartItem
}

func newMemCart() *memCart {
	return &memCart{
		products: map[string]models.Product{
			"warli": {ID: "warli", Price: decimal.NewFromInt(3000)},
			"gond":  {ID: "gond", Price: decimal.NewFromInt(7000)},
		},
		rows: map[string][]models.CartItem{},
	}
}

func (m *memCart) CartItems(_ context.Context, userID string) ([]models.CartItem, error) {
	return append([]models.CartItem(nil), m.rows[userID]...), nil
}

func (m *memCart) InsertCartItem(_ context.Context, userID, productID string, quantity int) error {
	p, ok := m.products[productID]
	if !ok {
		return gorm.ErrForeignKeyViolated
	}
	for _, it := range m.rows[userID] {
		if it.ProductID == productID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.rows[userID] = append(m.rows[userID], models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity, Product: p})
	return nil
}

func (m *memCart) UpdateCartQuantity(_ context.Context, userID, productID string, quantity int) error {
	for i := range m.rows[userID] {
		if m.rows[userID][i].ProductID == productID {
			m.rows[userID][i].Quantity = quantity
		}
	}
	return nil
}

func (m *memCart) DeleteCartItem(_ context.Context, userID, productID string) error {
	var kept []models.CartItem
	for _, it := range m.rows[userID] {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	m.rows[userID] = kept
	return nil
}

func (m *memCart) ClearCart(_ context.Context, userID string) error {
	delete(m.rows, userID)
	return nil
}

func setupRouter(remote *memCart) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/user/cart", middleware.ValidateToken(accounts{}))
	g.GET("", GetUserCart(remote))
	g.POST("", AddToCart(remote))
	g.PUT("/:product_id", UpdateCartItem(remote))
	g.DELETE("/:product_id", DeleteCartItem(remote))
	g.DELETE("", ClearUserCart(remote))
	return r
}

type cartBody struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice string            `json:"total_price"`
	Error      string            `json:"error"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, cartBody) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer u1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out cartBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func TestCartFlow(t *testing.T) {
	r := setupRouter(newMemCart())

	code, body := do(t, r, http.MethodGet, "/user/cart", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Items)
	assert.Equal(t, "0", body.TotalPrice)

	do(t, r, http.MethodPost, "/user/cart", `{"product_id":"warli"}`)
	code, body = do(t, r, http.MethodPost, "/user/cart", `{"product_id":"warli"}`)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, 2, body.TotalItems)
	assert.Equal(t, "6000", body.TotalPrice)

	code, body = do(t, r, http.MethodPost, "/user/cart", `{"product_id":"gond"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "13000", body.TotalPrice)

	_, body = do(t, r, http.MethodPut, "/user/cart/gond", `{"quantity":3}`)
	assert.Equal(t, 5, body.TotalItems)
	assert.Equal(t, "27000", body.TotalPrice)

	_, body = do(t, r, http.MethodPut, "/user/cart/warli", `{"quantity":0}`)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "gond", body.Items[0].ProductID)

	_, body = do(t, r, http.MethodDelete, "/user/cart/gond", "")
	assert.Empty(t, body.Items)

	do(t, r, http.MethodPost, "/user/cart", `{"product_id":"warli"}`)
	code, body = do(t, r, http.MethodDelete, "/user/cart", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Items)
	assert.Zero(t, body.TotalItems)
}

func TestCartValidation(t *testing.T) {
	r := setupRouter(newMemCart())

	code, body := do(t, r, http.MethodPost, "/user/cart", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Error, "Invalid input")

	code, _ = do(t, r, http.MethodPut, "/user/cart/warli", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = do(t, r, http.MethodPost, "/user/cart", `{"product_id":"missing"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Product does not exist", body.Error)
}

func TestCartRequiresToken(t *testing.T) {
	r := setupRouter(newMemCart())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
