package marketingControllers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/models"
)

// Newsletter keeps the signup list in memory, one entry per email.
type Newsletter struct {
	mu          sync.Mutex
	subscribers []models.Subscriber
	byEmail     map[string]bool
}

func NewNewsletter() *Newsletter {
	return &Newsletter{byEmail: make(map[string]bool)}
}

// Subscribe records an email. Repeat signups are idempotent.
func (n *Newsletter) Subscribe(email string) models.Subscriber {
	email = strings.ToLower(strings.TrimSpace(email))

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.byEmail[email] {
		for _, s := range n.subscribers {
			if s.Email == email {
				return s
			}
		}
	}
	sub := models.Subscriber{Email: email, SignedUp: time.Now()}
	n.byEmail[email] = true
	n.subscribers = append(n.subscribers, sub)
	return sub
}

// Subscribers returns the signup list in signup order.
func (n *Newsletter) Subscribers() []models.Subscriber {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]models.Subscriber, len(n.subscribers))
	copy(out, n.subscribers)
	return out
}

type SubscribeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /newsletter
func SubscribeNewsletter(newsletter *Newsletter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubscribeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
			return
		}

		sub := newsletter.Subscribe(input.Email)
		c.JSON(http.StatusOK, gin.H{
			"message":    "Subscribed",
			"subscriber": sub,
		})
	}
}

// GET /admin/newsletter
func GetSubscribers(newsletter *Newsletter) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs := newsletter.Subscribers()
		c.JSON(http.StatusOK, gin.H{"subscribers": subs, "count": len(subs)})
	}
}
