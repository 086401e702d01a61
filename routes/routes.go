package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/catalog"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/config"
	marketingControllers "github.com/GANESHVERMA730/HIMRAS-PROJECT/controllers/marketing"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/session"
)

// Deps is everything the handlers need, built once in main and passed down
// explicitly.
type Deps struct {
	Config     config.Config
	Store      *catalog.Store
	Sessions   *session.Manager
	Newsletter *marketingControllers.Newsletter
}

// SetupRoutes is the single entry-point that wires up the public shop,
// session, and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public shop routes (no middleware)
	SetupShopRoutes(r, deps)

	// 2️⃣ Auth + session routes (JWT-protected)
	SetupSessionRoutes(r, deps)

	// 3️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps)
}
