package sellerControllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/store"
	"gorm.io/gorm"
)

type Directory interface {
	Sellers(ctx context.Context, search string) ([]models.Seller, error)
	SellerByID(ctx context.Context, id string) (*models.Seller, error)
	SellerByUserID(ctx context.Context, userID string) (*models.Seller, error)
	CreateSeller(ctx context.Context, seller *models.Seller) error
	ActiveSellerProducts(ctx context.Context, sellerID string) ([]models.Product, error)
	ImageUploads(ctx context.Context, userID string) ([]models.ImageUpload, error)
}

type BecomeSellerInput struct {
	DisplayName string `json:"display_name"`
	Region      string `json:"region"`
	Bio         string `json:"bio"`
}

// GET /sellers?search=
func GetSellers(dir Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellers, err := dir.Sellers(c.Request.Context(), strings.TrimSpace(c.Query("search")))
		if err != nil {
			log.Printf("❌ Failed to fetch sellers: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artists"})
			return
		}
		if sellers == nil {
			sellers = []models.Seller{}
		}
		c.JSON(http.StatusOK, sellers)
	}
}

// GET /sellers/:id returns the public artist page: profile plus active
// listings.
func GetSellerProfile(dir Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, err := dir.SellerByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		if err != nil {
			log.Printf("❌ Failed to fetch seller %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artist"})
			return
		}

		products, err := dir.ActiveSellerProducts(c.Request.Context(), seller.ID)
		if err != nil {
			log.Printf("❌ Failed to fetch products of seller %s: %v", seller.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artist products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"seller": seller, "products": products})
	}
}

// POST /user/seller
func BecomeSeller(dir Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.Session(c).User()
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in first"})
			return
		}

		var input BecomeSellerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		region := strings.TrimSpace(input.Region)
		if region == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select your state/region"})
			return
		}

		existing, err := dir.SellerByUserID(c.Request.Context(), user.ID)
		if err == nil && existing != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "You're already registered as a seller!"})
			return
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Printf("⚠️ Error checking existing seller for %s: %v", user.ID, err)
		}

		seller := models.Seller{
			UserID:           user.ID,
			DisplayName:      displayName(input.DisplayName, user),
			Bio:              strings.TrimSpace(input.Bio),
			Region:           region,
			OnboardingStatus: models.OnboardingApproved,
		}
		if err := dir.CreateSeller(c.Request.Context(), &seller); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "You're already registered as a seller!"})
				return
			}
			log.Printf("❌ Failed to create seller for %s: %v", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create seller profile"})
			return
		}

		log.Printf("🎨 New seller %s (%s) from %s", seller.DisplayName, seller.ID, seller.Region)
		c.JSON(http.StatusCreated, seller)
	}
}

// GET /user/seller
func GetMySeller(dir Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.Session(c).UserID()
		seller, err := dir.SellerByUserID(c.Request.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "You are not a seller yet"})
			return
		}
		if err != nil {
			log.Printf("❌ Failed to fetch seller for %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller profile"})
			return
		}
		c.JSON(http.StatusOK, seller)
	}
}

// GET /user/seller/uploads lists every image the user has uploaded.
func GetMyUploads(dir Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.Session(c).UserID()
		files, err := dir.ImageUploads(c.Request.Context(), userID)
		if err != nil {
			log.Printf("❌ Failed to fetch uploads for %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch uploads"})
			return
		}
		if files == nil {
			files = []models.ImageUpload{}
		}
		c.JSON(http.StatusOK, files)
	}
}

// displayName falls back to the account name, then the email's local part.
func displayName(given string, user *models.User) string {
	if name := strings.TrimSpace(given); name != "" {
		return name
	}
	if name := strings.TrimSpace(user.FullName); name != "" {
		return name
	}
	local, _, _ := strings.Cut(user.Email, "@")
	return local
}
