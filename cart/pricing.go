package cart

import (
	"math"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/models"
)

// Rules are the pricing constants. They come from configuration so that the
// business numbers can change without touching the arithmetic.
type Rules struct {
	// Orders strictly above this subtotal ship free.
	FreeShippingThreshold int
	// Flat fee charged below the threshold.
	ShippingFee int
	// GST applied to the subtotal.
	TaxRate float64
}

// DefaultRules match the storefront: free shipping above 500, flat 50 fee,
// 18% GST.
func DefaultRules() Rules {
	return Rules{
		FreeShippingThreshold: 500,
		ShippingFee:           50,
		TaxRate:               0.18,
	}
}

// ComputeTotals derives the order summary from a set of cart lines.
//
//	subtotal = sum of unit price x quantity
//	shipping = 0 above the free-shipping threshold, flat fee otherwise
//	tax      = subtotal x rate, rounded half-up to a whole currency unit
//	total    = subtotal + shipping + tax
//
// An empty line set is a valid order with subtotal 0 (and therefore the
// flat shipping fee). Any non-positive quantity or negative unit price
// fails with ErrInvalidInput.
func ComputeTotals(lines []models.CartLine, rules Rules) (models.Totals, error) {
	subtotal := 0
	for _, line := range lines {
		if line.Quantity <= 0 {
			return models.Totals{}, invalidQuantity(line.Quantity)
		}
		if line.UnitPrice < 0 {
			return models.Totals{}, invalidUnitPrice(line.UnitPrice)
		}
		subtotal += line.UnitPrice * line.Quantity
	}

	shipping := rules.ShippingFee
	if subtotal > rules.FreeShippingThreshold {
		shipping = 0
	}

	tax := int(math.Floor(float64(subtotal)*rules.TaxRate + 0.5))

	return models.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}, nil
}
