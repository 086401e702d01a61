package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/cart"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/catalog"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/middleware"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/models"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/session"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	// Pointer so an omitted quantity defaults to 1 while an explicit bad
	// value still reaches the ledger's validation.
	Quantity *int `json:"quantity"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

func sessionOrAbort(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return s, true
}

// POST /session/cart
func AddCartItem(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := store.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		line, err := s.Cart.AddItem(product, quantity)
		if err != nil {
			if errors.Is(err, cart.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, line)
	}
}

// PUT /session/cart/:product_id
func SetCartItemQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		productID := c.Param("product_id")

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// A quantity of zero or less removes the line.
		s.Cart.SetQuantity(productID, input.Quantity)
		c.JSON(http.StatusOK, gin.H{"items": s.Cart.Lines()})
	}
}

// DELETE /session/cart/:product_id
func DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		// Removal is idempotent: deleting an absent product succeeds.
		s.Cart.RemoveItem(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /session/cart
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		s.Cart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /session/cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		lines := s.Cart.Lines()
		if lines == nil {
			lines = []models.CartLine{}
		}
		c.JSON(http.StatusOK, gin.H{"items": lines, "item_count": len(lines)})
	}
}

// GET /session/cart/totals
func GetCartTotals(rules cart.Rules) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionOrAbort(c)
		if !ok {
			return
		}

		totals, err := cart.ComputeTotals(s.Cart.Lines(), rules)
		if err != nil {
			if errors.Is(err, cart.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute totals"})
			return
		}

		c.JSON(http.StatusOK, totals)
	}
}
