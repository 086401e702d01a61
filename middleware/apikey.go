package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAPIKey guards the admin routes.
func RequireAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-KEY")
		if key == "" || apiKey != key {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
