package wishlistControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/wishlist"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

func fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, wishlist.ErrSignInRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, wishlist.ErrAlreadySaved):
		c.JSON(http.StatusConflict, gin.H{"error": "Item already in wishlist"})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
	default:
		log.Printf("❌ %s: %v", msg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func items(store *wishlist.Store) []models.WishlistItem {
	out := store.Items()
	if out == nil {
		out = []models.WishlistItem{}
	}
	return out
}

func loadWishlist(c *gin.Context, remote wishlist.Remote) (*wishlist.Store, bool) {
	session := middleware.Session(c)
	if session.UserID() == "" {
		fail(c, wishlist.ErrSignInRequired, "")
		return nil, false
	}
	store := wishlist.New(session, remote)
	if err := store.Load(c.Request.Context()); err != nil {
		fail(c, err, "Failed to fetch wishlist")
		return nil, false
	}
	return store, true
}

// GET /user/wishlist
func GetWishlist(remote wishlist.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadWishlist(c, remote)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, items(store))
	}
}

// POST /user/wishlist
func AddToWishlist(remote wishlist.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		session := middleware.Session(c)
		if session.UserID() == "" {
			fail(c, wishlist.ErrSignInRequired, "")
			return
		}
		// Add refetches, so there is nothing to load first.
		store := wishlist.New(session, remote)
		if err := store.Add(c.Request.Context(), input.ProductID); err != nil {
			fail(c, err, "Failed to add item to wishlist")
			return
		}
		c.JSON(http.StatusCreated, items(store))
	}
}

// DELETE /user/wishlist/:product_id
func RemoveFromWishlist(remote wishlist.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadWishlist(c, remote)
		if !ok {
			return
		}
		if err := store.Remove(c.Request.Context(), c.Param("product_id")); err != nil {
			fail(c, err, "Failed to remove item from wishlist")
			return
		}
		c.JSON(http.StatusOK, items(store))
	}
}

// GET /user/wishlist/:product_id
func CheckWishlist(remote wishlist.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := loadWishlist(c, remote)
		if !ok {
			return
		}
		productID := c.Param("product_id")
		c.JSON(http.StatusOK, gin.H{"product_id": productID, "saved": store.IsMember(productID)})
	}
}
