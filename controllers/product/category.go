package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/shop"
)

// GetFilterOptions lists the categories, art styles, price buckets and sort
// keys for the shop sidebar.
func GetFilterOptions(cat Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, shop.OptionsFor(cat.Products()))
	}
}

// GetListingOptions lists the choices of the add-product form.
func GetListingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": shop.ProductCategories,
		"art_forms":  shop.ArtForms,
	})
}
