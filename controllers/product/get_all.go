package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/shop"
)

const featuredCount = 6

// GetProducts serves the shop page from the catalog cache.
// Query: search, category (repeatable), art_style (repeatable),
// price_range (repeatable bucket label), sort (newest|price-low|price-high).
func GetProducts(cat Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		sortKey := shop.SortKey(c.DefaultQuery("sort", string(shop.SortNewest)))
		switch sortKey {
		case shop.SortNewest, shop.SortPriceLow, shop.SortPriceHigh:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort"})
			return
		}

		filter := shop.Filter{
			Query:       c.Query("search"),
			Categories:  c.QueryArray("category"),
			ArtStyles:   c.QueryArray("art_style"),
			PriceRanges: c.QueryArray("price_range"),
			Sort:        sortKey,
		}
		products := shop.Apply(cat.Products(), filter)
		c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
	}
}

// GetFeaturedProducts returns the newest listings for the home page.
func GetFeaturedProducts(cat Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := featuredCount
		if v := c.Query("limit"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			n = parsed
		}
		c.JSON(http.StatusOK, shop.Featured(cat.Products(), n))
	}
}
