package productcontroller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/catalog"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/models"
)

// productView is a catalog row plus the badges the storefront renders.
type productView struct {
	models.Product
	Savings     int `json:"savings,omitempty"`
	ReviewCount int `json:"review_count"`
}

// GET /products?search=&category=&min_price=&max_price=&sort_by=
func GetProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := catalog.NewParams()
		params.Search = c.Query("search")
		params.Category = c.DefaultQuery("category", catalog.CategoryAll)
		params.Sort = c.DefaultQuery("sort_by", catalog.SortName)

		if raw := c.Query("min_price"); raw != "" {
			mp, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			params.MinPrice = mp
		}
		if raw := c.Query("max_price"); raw != "" {
			mp, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			params.MaxPrice = mp
		} else {
			params.MaxPrice = math.MaxInt
		}

		products := store.Search(params)

		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, productView{
				Product:     p,
				Savings:     catalog.Savings(p),
				ReviewCount: catalog.ReviewCount(p),
			})
		}

		// "Showing X of Y products"
		c.JSON(http.StatusOK, gin.H{
			"products": views,
			"count":    len(views),
			"total":    store.Len(),
		})
	}
}
