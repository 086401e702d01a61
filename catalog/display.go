package catalog

import "github.com/GANESHVERMA730/HIMRAS-PROJECT/models"

// Display projections: pure formatting over Product data, consumed by the
// presentation layer for badges and summaries.

// Savings is the amount shown on the "SAVE X" badge, zero when the product
// has no strike-through price.
func Savings(p models.Product) int {
	if p.OriginalPrice <= p.Price {
		return 0
	}
	return p.OriginalPrice - p.Price
}

// ReviewCount backs the "(N reviews)" label.
func ReviewCount(p models.Product) int {
	return len(p.Reviews)
}

// FilledStars is how many of the five rating stars render filled: the
// rating rounded down, matching the card's star row.
func FilledStars(rating float64) int {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return int(rating)
}

// InStock backs the stock badge.
func InStock(p models.Product) bool {
	return p.Stock > 0
}
