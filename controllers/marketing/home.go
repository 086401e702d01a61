package marketingControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/catalog"
)

const featuredCount = 3

// GET /home
//
// GetHome returns the home page payload: featured products and customer
// testimonials.
func GetHome(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"featured_products": store.Featured(featuredCount),
			"testimonials":      catalog.Testimonials(),
		})
	}
}
