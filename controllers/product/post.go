package productcontroller

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/shop"
	"github.com/junaidrashid-git/tribal-art-api/uploads"
	"github.com/shopspring/decimal"
)

const maxImages = 5

// CreateProduct lists a new product for the signed-in seller.
// Multipart form: title, description, price, original_price, category,
// art_form, region, dimensions, materials, colors (comma lists) and one to
// five "images" files.
func CreateProduct(inv Inventory, cat Catalog, up uploads.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, inv)
		if !ok {
			return
		}

		title := strings.TrimSpace(c.PostForm("title"))
		description := strings.TrimSpace(c.PostForm("description"))
		priceStr := strings.TrimSpace(c.PostForm("price"))
		category := strings.TrimSpace(c.PostForm("category"))
		region := strings.TrimSpace(c.PostForm("region"))
		artForm := strings.TrimSpace(c.PostForm("art_form"))

		var files []*multipart.FileHeader
		if form, err := c.MultipartForm(); err == nil {
			files = form.File["images"]
		}

		if title == "" || description == "" || priceStr == "" || category == "" || region == "" || len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields and upload at least one image"})
			return
		}
		if len(files) > maxImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("At most %d images are allowed", maxImages)})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || !price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		originalPrice, err := parseOptionalPrice(c.PostForm("original_price"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
			return
		}

		imageURLs, err := saveImages(c, inv, up, seller.UserID, files)
		if err != nil {
			log.Printf("❌ Image upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload images"})
			return
		}

		product := models.Product{
			SellerID:      seller.ID,
			Title:         title,
			Description:   description,
			Price:         price,
			OriginalPrice: originalPrice,
			Category:      category,
			Region:        region,
			Dimensions:    strings.TrimSpace(c.PostForm("dimensions")),
			Materials:     shop.ParseList(c.PostForm("materials")),
			Colors:        shop.ParseList(c.PostForm("colors")),
			Tags:          shop.GenerateTags(category, artForm, region),
			Images:        imageURLs,
			FeaturedImage: imageURLs[0],
			Status:        models.ProductActive,
		}
		if artForm != "" {
			product.ArtForm = &artForm
		}

		if err := inv.CreateProduct(c.Request.Context(), &product); err != nil {
			log.Printf("❌ Failed to create product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		cat.Refresh(c.Request.Context())

		product.Seller = *seller
		c.JSON(http.StatusCreated, gin.H{
			"product":     product,
			"service_fee": shop.ServiceFee(price),
		})
	}
}

// saveImages uploads files in order and records each one.
func saveImages(c *gin.Context, inv Inventory, up uploads.Uploader, userID string, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		name := uploads.ObjectName(userID, fh.Filename, time.Now())
		url, err := up.Upload(c.Request.Context(), name, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		if _, err := inv.SaveImageUpload(c.Request.Context(), userID, fh.Filename, url); err != nil {
			log.Printf("⚠️ Failed to record upload %s: %v", url, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func parseOptionalPrice(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("invalid price %q", s)
	}
	return decimal.NewNullDecimal(d), nil
}
