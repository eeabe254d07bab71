package adminController

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/store"
)

type Moderation interface {
	SellersByStatus(ctx context.Context, status models.OnboardingStatus) ([]models.Seller, error)
	SetSellerStatus(ctx context.Context, id string, status models.OnboardingStatus) (*models.Seller, error)
}

// ListSellers returns sellers in one onboarding state, pending by default.
// GET /admin/sellers?status=
func ListSellers(mod Moderation) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.OnboardingStatus(c.DefaultQuery("status", string(models.OnboardingPending)))
		switch status {
		case models.OnboardingPending, models.OnboardingApproved, models.OnboardingRejected:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		sellers, err := mod.SellersByStatus(c.Request.Context(), status)
		if err != nil {
			log.Printf("❌ Failed to fetch %s sellers: %v", status, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellers"})
			return
		}
		if sellers == nil {
			sellers = []models.Seller{}
		}
		c.JSON(http.StatusOK, sellers)
	}
}

// POST /admin/sellers/:id/approve
func ApproveSeller(mod Moderation) gin.HandlerFunc {
	return setStatus(mod, models.OnboardingApproved, "Seller approved")
}

// POST /admin/sellers/:id/reject
func RejectSeller(mod Moderation) gin.HandlerFunc {
	return setStatus(mod, models.OnboardingRejected, "Seller rejected")
}

func setStatus(mod Moderation, status models.OnboardingStatus, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, err := mod.SetSellerStatus(c.Request.Context(), c.Param("id"), status)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
			return
		}
		if err != nil {
			log.Printf("❌ Failed to mark seller %s %s: %v", c.Param("id"), status, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update seller"})
			return
		}
		log.Printf("🛡️ Seller %s is now %s", seller.ID, status)
		c.JSON(http.StatusOK, gin.H{"message": message, "seller": seller})
	}
}
