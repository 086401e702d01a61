package sessionControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/middleware"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/session"
)

// GET /session
func GetSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// DELETE /session
//
// EndSession discards the session and the cart it owns. The token stops
// resolving immediately.
func EndSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		sessions.End(s.ID)
		c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
	}
}
