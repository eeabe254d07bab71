package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/store"
)

// DeleteProduct hard-deletes one of the seller's products. A delete that
// matches nothing means the product is not theirs (or already gone).
func DeleteProduct(inv Inventory, cat Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, inv)
		if !ok {
			return
		}
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		if err := inv.DeleteProduct(c.Request.Context(), seller.ID, id); err != nil {
			if errors.Is(err, store.ErrNoRowsAffected) {
				c.JSON(http.StatusForbidden, gin.H{"error": "No rows were deleted - this might be a permissions issue"})
				return
			}
			log.Printf("❌ Failed to delete product %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		cat.Remove(id)

		log.Printf("🗑️ Product %s deleted by seller %s", id, seller.ID)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
