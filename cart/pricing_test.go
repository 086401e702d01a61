package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/models"
)

func line(price, qty int) models.CartLine {
	return models.CartLine{ProductID: "p", UnitPrice: price, Quantity: qty}
}

func TestComputeTotals(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		lines []models.CartLine
		want  models.Totals
	}{
		{
			name:  "empty cart still pays the flat shipping fee",
			lines: nil,
			want:  models.Totals{Subtotal: 0, Shipping: 50, Tax: 0, Total: 50},
		},
		{
			name:  "subtotal adds unit price times quantity per line",
			lines: []models.CartLine{line(100, 2), {ProductID: "q", UnitPrice: 25, Quantity: 4}},
			want:  models.Totals{Subtotal: 300, Shipping: 50, Tax: 54, Total: 404},
		},
		{
			name:  "subtotal exactly at the threshold still ships paid",
			lines: []models.CartLine{line(500, 1)},
			want:  models.Totals{Subtotal: 500, Shipping: 50, Tax: 90, Total: 640},
		},
		{
			name:  "one unit over the threshold ships free",
			lines: []models.CartLine{line(501, 1)},
			want:  models.Totals{Subtotal: 501, Shipping: 0, Tax: 90, Total: 591},
		},
		{
			name:  "tax of 100 at 18 percent is exact",
			lines: []models.CartLine{line(100, 1)},
			want:  models.Totals{Subtotal: 100, Shipping: 50, Tax: 18, Total: 168},
		},
		{
			name:  "tax rounds half-up, 18.9 becomes 19",
			lines: []models.CartLine{line(105, 1)},
			want:  models.Totals{Subtotal: 105, Shipping: 50, Tax: 19, Total: 174},
		},
		{
			name:  "storefront walkthrough, thekua plus laddoo",
			lines: []models.CartLine{line(299, 1), {ProductID: "l", UnitPrice: 449, Quantity: 1}},
			want:  models.Totals{Subtotal: 748, Shipping: 0, Tax: 135, Total: 883},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTotals(tt.lines, rules)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeTotalsInvalidInput(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		lines []models.CartLine
	}{
		{"zero quantity", []models.CartLine{line(100, 0)}},
		{"negative quantity", []models.CartLine{line(100, -2)}},
		{"negative unit price", []models.CartLine{line(-1, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTotals(tt.lines, rules)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestComputeTotalsCustomRules(t *testing.T) {
	// The constants are configuration, not literals baked into the math.
	rules := Rules{FreeShippingThreshold: 1000, ShippingFee: 99, TaxRate: 0.05}

	got, err := ComputeTotals([]models.CartLine{line(200, 3)}, rules)
	require.NoError(t, err)
	assert.Equal(t, models.Totals{Subtotal: 600, Shipping: 99, Tax: 30, Total: 729}, got)
}
