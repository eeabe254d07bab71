package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/cart"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type QuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type cartResponse struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

func respond(c *gin.Context, status int, store *cart.Store) {
	items := store.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	c.JSON(status, cartResponse{
		Items:      items,
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
	})
}

func fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, cart.ErrSignInRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
	default:
		log.Printf("❌ %s: %v", msg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// loadCart builds the request's cart from its session.
func loadCart(c *gin.Context, remote cart.Remote) (*cart.Store, bool) {
	session := middleware.Session(c)
	if session.UserID() == "" {
		fail(c, cart.ErrSignInRequired, "")
		return nil, false
	}
	store := cart.New(session, remote)
	if err := store.Load(c.Request.Context()); err != nil {
		fail(c, err, "Failed to fetch cart")
		return nil, false
	}
	return store, true
}

// GET /user/cart
func GetUserCart(remote cart.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadCart(c, remote)
		if !ok {
			return
		}
		respond(c, http.StatusOK, store)
	}
}

// POST /user/cart
func AddToCart(remote cart.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store, ok := loadCart(c, remote)
		if !ok {
			return
		}
		if err := store.Add(c.Request.Context(), input.ProductID); err != nil {
			fail(c, err, "Failed to add item to cart")
			return
		}
		respond(c, http.StatusOK, store)
	}
}

// PUT /user/cart/:product_id
func UpdateCartItem(remote cart.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store, ok := loadCart(c, remote)
		if !ok {
			return
		}
		if err := store.SetQuantity(c.Request.Context(), c.Param("product_id"), *input.Quantity); err != nil {
			fail(c, err, "Failed to update cart item")
			return
		}
		respond(c, http.StatusOK, store)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(remote cart.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadCart(c, remote)
		if !ok {
			return
		}
		if err := store.Remove(c.Request.Context(), c.Param("product_id")); err != nil {
			fail(c, err, "Failed to delete item")
			return
		}
		respond(c, http.StatusOK, store)
	}
}

// DELETE /user/cart
func ClearUserCart(remote cart.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadCart(c, remote)
		if !ok {
			return
		}
		if err := store.Clear(c.Request.Context()); err != nil {
			fail(c, err, "Failed to clear cart")
			return
		}
		respond(c, http.StatusOK, store)
	}
}
