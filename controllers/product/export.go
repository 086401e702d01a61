package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/catalog"
)

// ExportProductsToExcel streams the catalog as an .xlsx download.
func ExportProductsToExcel(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := store.ExportXLSX(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
