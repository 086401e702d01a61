package catalog

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/models"
)

// Sort keys accepted by Search.
const (
	SortName      = "name"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Params is one catalog query: free-text search, category filter, inclusive
// price range, and a sort key. Filters are conjunctive.
type Params struct {
	Search   string
	Category string
	MinPrice int
	MaxPrice int
	Sort     string
}

// NewParams returns the storefront's default query: everything, sorted by
// name.
func NewParams() Params {
	return Params{
		Category: CategoryAll,
		MaxPrice: math.MaxInt,
		Sort:     SortName,
	}
}

// Search filters the catalog and sorts the matches. It is a pure function
// of the catalog and the params: the catalog is never touched, and the same
// query against the same catalog always yields the same sequence. Ties
// under the sort key keep catalog order.
func (s *Store) Search(p Params) []models.Product {
	needle := strings.ToLower(p.Search)

	var matched []models.Product
	for _, prod := range s.products {
		if !matchesSearch(prod, needle) {
			continue
		}
		if !matchesCategory(prod, p.Category) {
			continue
		}
		if prod.Price < p.MinPrice || prod.Price > p.MaxPrice {
			continue
		}
		matched = append(matched, prod)
	}

	sortProducts(matched, p.Sort)
	return matched
}

func matchesSearch(p models.Product, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

func matchesCategory(p models.Product, category string) bool {
	return category == "" || category == CategoryAll || p.Category == category
}

func sortProducts(products []models.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	default:
		// Name sort. The collator is per-call: it keeps an internal
		// buffer and is not safe for concurrent use.
		col := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
