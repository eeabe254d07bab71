package productcontroller

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/shop"
	"github.com/junaidrashid-git/tribal-art-api/store"
	"github.com/junaidrashid-git/tribal-art-api/uploads"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// UpdateProduct edits one of the seller's products. Only the form fields that
// are present change; an optional "image" file replaces the featured image.
// Sending original_price or art_form empty clears it.
func UpdateProduct(inv Inventory, cat Catalog, up uploads.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, inv)
		if !ok {
			return
		}
		id := c.Param("id")
		updates := map[string]interface{}{}

		for _, field := range []string{"title", "description", "category", "region", "dimensions"} {
			if v, present := c.GetPostForm(field); present {
				v = strings.TrimSpace(v)
				if v == "" && field != "description" && field != "dimensions" {
					c.JSON(http.StatusBadRequest, gin.H{"error": field + " cannot be empty"})
					return
				}
				updates[field] = v
			}
		}
		if v, present := c.GetPostForm("price"); present {
			price, err := decimal.NewFromString(strings.TrimSpace(v))
			if err != nil || !price.IsPositive() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			updates["price"] = price
		}
		if v, present := c.GetPostForm("original_price"); present {
			original, err := parseOptionalPrice(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
			updates["original_price"] = original
		}
		if v, present := c.GetPostForm("art_form"); present {
			if v = strings.TrimSpace(v); v == "" {
				updates["art_form"] = nil
			} else {
				updates["art_form"] = v
			}
		}
		for _, field := range []string{"tags", "materials", "colors"} {
			if v, present := c.GetPostForm(field); present {
				updates[field] = pq.StringArray(shop.ParseList(v))
			}
		}
		if v, present := c.GetPostForm("status"); present {
			status := models.ProductStatus(v)
			if !status.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
				return
			}
			updates["status"] = status
		}

		if fh, err := c.FormFile("image"); err == nil {
			urls, err := saveImages(c, inv, up, seller.UserID, []*multipart.FileHeader{fh})
			if err != nil {
				log.Printf("❌ Image upload failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
				return
			}
			updates["featured_image"] = urls[0]
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}

		product, err := inv.UpdateProduct(c.Request.Context(), seller.ID, id, updates)
		if err != nil {
			if errors.Is(err, store.ErrNoRowsAffected) || errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			log.Printf("❌ Failed to update product %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		switch _, cached := cat.Get(id); {
		case product.Status != models.ProductActive:
			cat.Remove(id)
		case cached:
			updated := *product
			cat.Update(id, func(p *models.Product) { *p = updated })
		default:
			// newly activated
			cat.Refresh(c.Request.Context())
		}

		c.JSON(http.StatusOK, product)
	}
}
