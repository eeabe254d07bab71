package orderControllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/models"
)

type OrderReader interface {
	BuyerOrders(ctx context.Context, buyerID string) ([]models.Order, error)
}

// GET /user/orders lists the buyer's orders, newest first. Checkout is not
// implemented, so this is normally empty.
func GetMyOrders(orders OrderReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.Session(c).UserID()
		list, err := orders.BuyerOrders(c.Request.Context(), userID)
		if err != nil {
			log.Printf("❌ Failed to fetch orders for %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if list == nil {
			list = []models.Order{}
		}
		c.JSON(http.StatusOK, list)
	}
}
