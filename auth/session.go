package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/session"
)

type StartSessionInput struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// POST /auth/session
//
// StartSession opens a shopping session and returns its bearer token. The
// login is simulated: any name/email is accepted and nothing is verified.
func StartSession(secret string, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The body is optional: an anonymous shopper gets a session too.
		var input StartSessionInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
		}

		s := sessions.Create(input.Name, input.Email)

		token, err := issueSessionToken(secret, s)
		if err != nil {
			sessions.End(s.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": s.ID,
			"token":      token,
			"expires_at": s.ExpiresAt,
		})
	}
}

func issueSessionToken(secret string, s *session.Session) (string, error) {
	claims := jwt.MapClaims{
		"session_id": s.ID,
		"role":       "shopper",
		"exp":        s.ExpiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
