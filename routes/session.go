package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/auth"
	cartControllers "github.com/GANESHVERMA730/HIMRAS-PROJECT/controllers/cart"
	sessionControllers "github.com/GANESHVERMA730/HIMRAS-PROJECT/controllers/session"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/middleware"
)

// SetupSessionRoutes registers session creation plus the "/session/*"
// endpoints behind the JWT middleware.
func SetupSessionRoutes(r *gin.Engine, deps Deps) {
	// Public: starting a session is how a shopper gets a token.
	r.POST("/auth/session", auth.StartSession(deps.Config.JWTSecret, deps.Sessions))

	sessionGroup := r.Group("/session")
	sessionGroup.Use(middleware.ValidateSession(deps.Config.JWTSecret, deps.Sessions))
	{
		sessionGroup.GET("", sessionControllers.GetSession())                  // GET /session
		sessionGroup.DELETE("", sessionControllers.EndSession(deps.Sessions)) // DELETE /session

		// ──────────────── Shopping Cart ────────────────
		cartGroup := sessionGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart())                                        // GET /session/cart
			cartGroup.POST("", cartControllers.AddCartItem(deps.Store))                         // POST /session/cart
			cartGroup.PUT("/:product_id", cartControllers.SetCartItemQuantity())                // PUT /session/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem())                  // DELETE /session/cart/:product_id
			cartGroup.DELETE("", cartControllers.ClearCart())                                   // DELETE /session/cart
			cartGroup.GET("/totals", cartControllers.GetCartTotals(deps.Config.PricingRules())) // GET /session/cart/totals
		}
	}
}
