package productcontroller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// sheetHeaders is the column layout shared by export and import.
var sheetHeaders = []string{
	"ID", "Title", "Description", "Price", "OriginalPrice", "Category",
	"Region", "ArtForm", "Dimensions", "Materials", "Colors", "Tags",
	"Images", "Status", "CreatedAt", "UpdatedAt",
}

// ExportProductsToExcel downloads the seller's products as an xlsx sheet.
func ExportProductsToExcel(inv Inventory) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, inv)
		if !ok {
			return
		}
		products, err := inv.SellerProducts(c.Request.Context(), seller.ID)
		if err != nil {
			log.Printf("❌ Failed to fetch products for export: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range sheetHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetString(p.ID)
			row.AddCell().SetString(p.Title)
			row.AddCell().SetString(p.Description)
			row.AddCell().SetString(p.Price.String())
			original := ""
			if p.OriginalPrice.Valid {
				original = p.OriginalPrice.Decimal.String()
			}
			row.AddCell().SetString(original)
			row.AddCell().SetString(p.Category)
			row.AddCell().SetString(p.Region)
			artForm := ""
			if p.ArtForm != nil {
				artForm = *p.ArtForm
			}
			row.AddCell().SetString(artForm)
			row.AddCell().SetString(p.Dimensions)
			row.AddCell().SetString(strings.Join(p.Materials, ","))
			row.AddCell().SetString(strings.Join(p.Colors, ","))
			row.AddCell().SetString(strings.Join(p.Tags, ","))
			row.AddCell().SetString(strings.Join(p.Images, ","))
			row.AddCell().SetString(string(p.Status))
			row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetString(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			log.Printf("❌ Failed to write Excel file: %v", err)
		}
	}
}
