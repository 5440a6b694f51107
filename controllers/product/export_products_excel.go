package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/optombazar7-cpu/SportZone/store"
	"github.com/tealeg/xlsx"
)

// ExportProductsToExcel streams the whole catalog as an .xlsx download.
// GET /api/admin/products/export
func ExportProductsToExcel(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := st.Products()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Description", "Price", "OriginalPrice",
			"Category", "Subcategory", "Sizes", "InStock",
			"SpecialOffer", "BestSeller", "NewArrival", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			if p.OriginalPrice != nil {
				row.AddCell().SetValue(*p.OriginalPrice)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Category)
			if p.Subcategory != nil {
				row.AddCell().SetValue(*p.Subcategory)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(strings.Join(p.Sizes, ","))
			row.AddCell().SetValue(p.InStock)
			row.AddCell().SetValue(p.IsSpecialOffer)
			row.AddCell().SetValue(p.IsBestSeller)
			row.AddCell().SetValue(p.IsNewArrival)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
