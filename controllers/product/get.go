package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/store"
)

// GetProductByID returns a single product in any status, with its seller and
// the derived discount.
// URL param: /products/:id
func GetProductByID(finder ProductFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := finder.ProductByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				log.Printf("❌ Failed to retrieve product %s: %v", c.Param("id"), err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"product":          product,
			"discount_percent": product.DiscountPercent(),
		})
	}
}
