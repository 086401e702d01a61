package cart

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the only error class the cart core produces. Callers
// match it with errors.Is; the wrapped message says which input was bad.
var ErrInvalidInput = errors.New("invalid input")

func invalidQuantity(q int) error {
	return fmt.Errorf("%w: quantity must be a positive integer, got %d", ErrInvalidInput, q)
}

func invalidUnitPrice(p int) error {
	return fmt.Errorf("%w: unit price must not be negative, got %d", ErrInvalidInput, p)
}

func outOfStock(productID string) error {
	return fmt.Errorf("%w: product %s is out of stock", ErrInvalidInput, productID)
}
