package routes

import (
	"github.com/gin-gonic/gin"

	marketingControllers "github.com/GANESHVERMA730/HIMRAS-PROJECT/controllers/marketing"
	productControllers "github.com/GANESHVERMA730/HIMRAS-PROJECT/controllers/product"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/middleware"
)

// SetupAdminRoutes registers the back-office endpoints behind the API key.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAPIKey(deps.Config.AdminAPIKey))
	{
		adminGroup.GET("/catalog/export", productControllers.ExportProductsToExcel(deps.Store)) // GET /admin/catalog/export
		adminGroup.GET("/newsletter", marketingControllers.GetSubscribers(deps.Newsletter))     // GET /admin/newsletter
	}
}
