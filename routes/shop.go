package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	marketingControllers "github.com/GANESHVERMA730/HIMRAS-PROJECT/controllers/marketing"
	productControllers "github.com/GANESHVERMA730/HIMRAS-PROJECT/controllers/product"
)

// SetupShopRoutes registers the public storefront endpoints.
func SetupShopRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productControllers.GetProducts(deps.Store))        // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(deps.Store)) // GET /products/:id
	r.GET("/categories", productControllers.GetCategories(deps.Store))    // GET /categories

	// ──────────────── Home Page ────────────────
	r.GET("/home", marketingControllers.GetHome(deps.Store))                          // GET /home
	r.POST("/newsletter", marketingControllers.SubscribeNewsletter(deps.Newsletter)) // POST /newsletter

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
