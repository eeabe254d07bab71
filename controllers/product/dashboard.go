package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/shopspring/decimal"
)

type SellerStats struct {
	TotalProducts  int             `json:"total_products"`
	ActiveProducts int             `json:"active_products"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

// ComputeStats summarizes a seller's listings. Revenue is the sum of listed
// prices across every status.
func ComputeStats(products []models.Product) SellerStats {
	stats := SellerStats{TotalProducts: len(products), TotalRevenue: decimal.Zero}
	for _, p := range products {
		if p.Status == models.ProductActive {
			stats.ActiveProducts++
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(p.Price)
	}
	return stats
}

// GET /user/seller/products
func GetSellerProducts(inv Inventory) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, inv)
		if !ok {
			return
		}
		products, err := inv.SellerProducts(c.Request.Context(), seller.ID)
		if err != nil {
			log.Printf("❌ Failed to fetch products of seller %s: %v", seller.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /user/seller/stats
func GetSellerStats(inv Inventory) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, inv)
		if !ok {
			return
		}
		products, err := inv.SellerProducts(c.Request.Context(), seller.ID)
		if err != nil {
			log.Printf("❌ Failed to fetch stats of seller %s: %v", seller.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, ComputeStats(products))
	}
}
