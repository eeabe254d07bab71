package orderControllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/auth"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/stretchr/testify/assert"
)

type accounts struct{ auth.Provider }

func (accounts) Authenticate(_ context.Context, token string) (*models.User, error) {
	return &models.User{ID: token}, nil
}

type orderFunc func(ctx context.Context, buyerID string) ([]models.Order, error)

func (f orderFunc) BuyerOrders(ctx context.Context, buyerID string) ([]models.Order, error) {
	return f(ctx, buyerID)
}

func get(reader OrderReader) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user/orders", middleware.ValidateToken(accounts{}), GetMyOrders(reader))
	req := httptest.NewRequest(http.MethodGet, "/user/orders", nil)
	req.Header.Set("Authorization", "Bearer u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetMyOrders(t *testing.T) {
	var asked string
	w := get(orderFunc(func(_ context.Context, buyerID string) ([]models.Order, error) {
		asked = buyerID
		return nil, nil
	}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Equal(t, "u1", asked)

	w = get(orderFunc(func(context.Context, string) ([]models.Order, error) {
		return nil, errors.New("db down")
	}))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
