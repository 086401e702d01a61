package catalog

import "github.com/GANESHVERMA730/HIMRAS-PROJECT/models"

// Store is the read-only product catalog. It is populated once at startup
// and never mutated; every accessor hands out copies so callers cannot
// reach the backing data.
type Store struct {
	products   []models.Product
	byID       map[string]int
	categories []string
}

// NewStore loads the catalog. Product order is preserved: it is the
// tie-break order for every query sort.
func NewStore(products []models.Product) *Store {
	s := &Store{
		products: make([]models.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(s.products, products)

	seen := make(map[string]bool)
	for i, p := range s.products {
		s.byID[p.ID] = i
		if !seen[p.Category] {
			seen[p.Category] = true
			s.categories = append(s.categories, p.Category)
		}
	}
	return s
}

// All returns every product in catalog order.
func (s *Store) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID looks up a single product.
func (s *Store) ByID(id string) (models.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

// Categories returns the distinct category labels in first-seen order.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Featured returns the first n products, the home page's featured set.
func (s *Store) Featured(n int) []models.Product {
	if n > len(s.products) {
		n = len(s.products)
	}
	out := make([]models.Product, n)
	copy(out, s.products[:n])
	return out
}

// Len reports the catalog size.
func (s *Store) Len() int {
	return len(s.products)
}
