package cart

import (
	"sync"
	"time"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/models"
)

// Policy carries the ledger's configurable behavior.
type Policy struct {
	// ClampToStock caps a line's quantity at the product's stock level seen
	// at add-time. The storefront ships with this off: stock is advisory
	// display information, not a hard ceiling.
	ClampToStock bool
}

// Ledger is one session's shopping cart: a mapping from product ID to at
// most one CartLine, in insertion order. Adding a product that is already
// present merges quantities instead of creating a second line.
type Ledger struct {
	mu     sync.Mutex
	lines  map[string]*models.CartLine
	order  []string
	policy Policy
}

func NewLedger(policy Policy) *Ledger {
	return &Ledger{
		lines:  make(map[string]*models.CartLine),
		policy: policy,
	}
}

// AddItem puts quantity units of product into the ledger. If the product is
// already present its quantity increases; the unit price stays locked at
// whatever the catalog said on first insertion.
func (l *Ledger) AddItem(product models.Product, quantity int) (models.CartLine, error) {
	if quantity <= 0 {
		return models.CartLine{}, invalidQuantity(quantity)
	}
	if product.Price < 0 {
		return models.CartLine{}, invalidUnitPrice(product.Price)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	line, ok := l.lines[product.ID]

	// Under the clamp policy a line's quantity may never land at or below
	// zero, so a product with no stock cannot enter the ledger at all.
	if l.policy.ClampToStock {
		stock := product.Stock
		if ok {
			stock = line.ProductStock
		}
		if stock <= 0 {
			return models.CartLine{}, outOfStock(product.ID)
		}
	}

	if !ok {
		line = &models.CartLine{
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: firstImage(product),
			ProductStock: product.Stock,
			Weight:       product.Weight,
			UnitPrice:    product.Price,
			AddedAt:      time.Now(),
		}
		l.lines[product.ID] = line
		l.order = append(l.order, product.ID)
	}
	line.Quantity += quantity
	if l.policy.ClampToStock && line.Quantity > line.ProductStock {
		line.Quantity = line.ProductStock
	}
	return *line, nil
}

// SetQuantity replaces a line's quantity. A value of zero or less removes
// the line. Setting a product that is not in the ledger is a no-op.
func (l *Ledger) SetQuantity(productID string, quantity int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if quantity <= 0 {
		l.remove(productID)
		return
	}
	line, ok := l.lines[productID]
	if !ok {
		return
	}
	line.Quantity = quantity
	if l.policy.ClampToStock && line.Quantity > line.ProductStock {
		line.Quantity = line.ProductStock
	}
}

// RemoveItem drops a line. Removing a product that is not present is a
// no-op, not an error.
func (l *Ledger) RemoveItem(productID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.remove(productID)
}

func (l *Ledger) remove(productID string) {
	if _, ok := l.lines[productID]; !ok {
		return
	}
	delete(l.lines, productID)
	for i, id := range l.order {
		if id == productID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = make(map[string]*models.CartLine)
	l.order = nil
}

// Lines returns the cart's lines in insertion order. The returned slice is
// a copy; mutating it does not touch the ledger.
func (l *Ledger) Lines() []models.CartLine {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.CartLine, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.lines[id])
	}
	return out
}

// Len reports how many distinct products the ledger holds.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

func firstImage(p models.Product) string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
