package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/catalog"
)

// GetCategories returns the category filter options: "all" first, then the
// catalog's categories in first-seen order, matching the products page
// dropdown.
func GetCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := append([]string{catalog.CategoryAll}, store.Categories()...)
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}
