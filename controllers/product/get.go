package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/catalog"
)

// GetProductByID returns a single product with its reviews, ingredients and
// nutrition. URL param: /products/:id
func GetProductByID(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, ok := store.ByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, productView{
			Product:     product,
			Savings:     catalog.Savings(product),
			ReviewCount: catalog.ReviewCount(product),
		})
	}
}
