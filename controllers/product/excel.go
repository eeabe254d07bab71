package productcontroller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/shop"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

// ImportProductsFromExcel creates or updates the seller's products from a
// sheet laid out like the export. Rows with an ID the seller owns are
// updated; everything else is inserted. Rows without a title or a valid
// price are skipped.
func ImportProductsFromExcel(inv Inventory, cat Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, inv)
		if !ok {
			return
		}

		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}
		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < len(sheet.Rows); i++ {
			product, ok := productFromRow(sheet.Rows[i])
			if !ok {
				skippedCount++
				continue
			}
			created, err := inv.UpsertSellerProduct(c.Request.Context(), seller.ID, product)
			switch {
			case err != nil:
				log.Printf("⚠️ Import row %d skipped: %v", i+1, err)
				skippedCount++
			case created:
				createdCount++
			default:
				updatedCount++
			}
		}

		if createdCount+updatedCount > 0 {
			cat.Refresh(c.Request.Context())
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

func productFromRow(row *xlsx.Row) (*models.Product, bool) {
	if row == nil {
		return nil, false
	}
	get := func(index int) string {
		if index < len(row.Cells) {
			return strings.TrimSpace(row.Cells[index].String())
		}
		return ""
	}

	title := get(1)
	price, err := decimal.NewFromString(get(3))
	if title == "" || err != nil || !price.IsPositive() {
		return nil, false
	}
	original, err := parseOptionalPrice(get(4))
	if err != nil {
		return nil, false
	}

	status := models.ProductStatus(get(13))
	if status == "" {
		status = models.ProductActive
	}
	if !status.Valid() {
		return nil, false
	}

	category, region, artForm := get(5), get(6), get(7)
	tags := shop.ParseList(get(11))
	if len(tags) == 0 {
		tags = shop.GenerateTags(category, artForm, region)
	}

	images := shop.ParseList(get(12))
	p := &models.Product{
		ID:            get(0),
		Title:         title,
		Description:   get(2),
		Price:         price,
		OriginalPrice: original,
		Category:      category,
		Region:        region,
		Dimensions:    get(8),
		Materials:     pq.StringArray(shop.ParseList(get(9))),
		Colors:        pq.StringArray(shop.ParseList(get(10))),
		Tags:          pq.StringArray(tags),
		Images:        pq.StringArray(images),
		Status:        status,
	}
	if artForm != "" {
		p.ArtForm = &artForm
	}
	if len(images) > 0 {
		p.FeaturedImage = images[0]
	}
	return p, true
}
