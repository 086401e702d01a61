package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/session"
)

// ValidateSession checks the bearer token and resolves the session it
// names. The *Session lands in the gin context under "session".
func ValidateSession(secret string, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		sessionID, _ := claims["session_id"].(string)
		s, ok := sessions.Get(sessionID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found or expired"})
			c.Abort()
			return
		}

		c.Set("session", s)
		c.Next()
	}
}

// SessionFromContext pulls the session stored by ValidateSession.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get("session")
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
