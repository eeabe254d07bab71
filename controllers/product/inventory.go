package productcontroller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/catalog"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/store"
)

// Catalog is the shared cache of active products.
type Catalog interface {
	Products() []models.Product
	Get(id string) (models.Product, bool)
	Refresh(ctx context.Context)
	Update(id string, patch catalog.Patch)
	Remove(id string)
}

type ProductFinder interface {
	ProductByID(ctx context.Context, id string) (*models.Product, error)
}

// Inventory is what the seller dashboard reads and writes.
type Inventory interface {
	ProductFinder
	SellerByUserID(ctx context.Context, userID string) (*models.Seller, error)
	SellerProducts(ctx context.Context, sellerID string) ([]models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, sellerID, id string, updates map[string]interface{}) (*models.Product, error)
	DeleteProduct(ctx context.Context, sellerID, id string) error
	UpsertSellerProduct(ctx context.Context, sellerID string, p *models.Product) (bool, error)
	SaveImageUpload(ctx context.Context, userID, fileName, fileURL string) (*models.ImageUpload, error)
}

// currentSeller resolves the signed-in user's seller profile. Only approved
// sellers may manage listings.
func currentSeller(c *gin.Context, inv Inventory) (*models.Seller, bool) {
	userID := middleware.Session(c).UserID()
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in"})
		return nil, false
	}
	seller, err := inv.SellerByUserID(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You need to become a seller first"})
		return nil, false
	}
	if err != nil {
		log.Printf("❌ Failed to fetch seller for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller profile"})
		return nil, false
	}
	if seller.OnboardingStatus != models.OnboardingApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seller account is " + string(seller.OnboardingStatus)})
		return nil, false
	}
	return seller, true
}
