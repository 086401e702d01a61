package catalog

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{
			ID: "1", Name: "Traditional Thekua", Description: "Crispy wheat cookies with jaggery",
			Price: 299, Category: "Traditional Sweets", Rating: 4.8,
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "2", Name: "Jaggery Thekua", Description: "Organic jaggery treats",
			Price: 399, Category: "Organic Sweets", Rating: 4.9,
			CreatedAt: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "3", Name: "Himalayan Combo Pack", Description: "Gift set of our best sweets",
			Price: 799, Category: "Combo Packs", Rating: 4.7,
			CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "4", Name: "Organic Sesame Laddoo", Description: "Sesame seed balls with jaggery",
			Price: 449, Category: "Organic Sweets", Rating: 4.6,
			CreatedAt: time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
		},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSearchFilters(t *testing.T) {
	store := NewStore(testCatalog())

	tests := []struct {
		name   string
		params Params
		want   []string
	}{
		{
			name:   "empty search matches everything",
			params: Params{Category: CategoryAll, MaxPrice: math.MaxInt, Sort: SortNewest},
			want:   []string{"4", "2", "3", "1"},
		},
		{
			name:   "search matches name case-insensitively",
			params: Params{Search: "THEKUA", Category: CategoryAll, MaxPrice: math.MaxInt, Sort: SortPriceLow},
			want:   []string{"1", "2"},
		},
		{
			name:   "search matches description too",
			params: Params{Search: "gift set", Category: CategoryAll, MaxPrice: math.MaxInt},
			want:   []string{"3"},
		},
		{
			name:   "category filter is exact",
			params: Params{Category: "Organic Sweets", MaxPrice: math.MaxInt, Sort: SortPriceLow},
			want:   []string{"2", "4"},
		},
		{
			name:   "category all passes every category",
			params: Params{Category: CategoryAll, MaxPrice: math.MaxInt, Sort: SortPriceLow},
			want:   []string{"1", "2", "4", "3"},
		},
		{
			name:   "price range is inclusive on both ends",
			params: Params{Category: CategoryAll, MinPrice: 299, MaxPrice: 449, Sort: SortPriceLow},
			want:   []string{"1", "2", "4"},
		},
		{
			name: "filters are conjunctive",
			params: Params{
				Search: "jaggery", Category: "Organic Sweets",
				MinPrice: 0, MaxPrice: 400, Sort: SortPriceLow,
			},
			want: []string{"2"},
		},
		{
			name:   "no match yields an empty, non-nil-safe result",
			params: Params{Search: "chocolate", Category: CategoryAll, MaxPrice: math.MaxInt},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.Search(tt.params)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearchSortOrders(t *testing.T) {
	store := NewStore(testCatalog())

	tests := []struct {
		sort string
		want []string
	}{
		{SortName, []string{"3", "2", "4", "1"}},
		{SortPriceLow, []string{"1", "2", "4", "3"}},
		{SortPriceHigh, []string{"3", "4", "2", "1"}},
		{SortRating, []string{"2", "1", "3", "4"}},
		{SortNewest, []string{"4", "2", "3", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			got := store.Search(Params{Category: CategoryAll, MaxPrice: math.MaxInt, Sort: tt.sort})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearchTiesKeepCatalogOrder(t *testing.T) {
	products := testCatalog()
	// Same price everywhere: the sort key never distinguishes two
	// products, so catalog order must survive.
	for i := range products {
		products[i].Price = 100
	}
	store := NewStore(products)

	got := store.Search(Params{Category: CategoryAll, MaxPrice: math.MaxInt, Sort: SortPriceLow})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
}

func TestSearchIsDeterministic(t *testing.T) {
	store := NewStore(testCatalog())
	params := Params{Search: "sweets", Category: CategoryAll, MaxPrice: math.MaxInt, Sort: SortRating}

	first := store.Search(params)
	second := store.Search(params)
	assert.Equal(t, first, second)
}

func TestSearchDoesNotMutateCatalog(t *testing.T) {
	store := NewStore(testCatalog())
	before := store.All()

	store.Search(Params{Category: CategoryAll, MaxPrice: math.MaxInt, Sort: SortPriceHigh})
	store.Search(Params{Category: CategoryAll, MaxPrice: math.MaxInt, Sort: SortName})

	assert.Equal(t, before, store.All())
}

func TestSearchWorkedExample(t *testing.T) {
	// Two-product catalog from the cart walkthrough.
	store := NewStore([]models.Product{
		{
			ID: "t", Name: "Thekua", Price: 299, Category: "Traditional Sweets",
			Rating: 4.8, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "l", Name: "Laddoo", Price: 449, Category: "Organic Sweets",
			Rating: 4.6, CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	})

	got := store.Search(Params{
		Search: "", Category: CategoryAll,
		MinPrice: 0, MaxPrice: 1000, Sort: SortPriceLow,
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Thekua", got[0].Name)
	assert.Equal(t, "Laddoo", got[1].Name)
}

func TestStoreLookups(t *testing.T) {
	store := NewStore(testCatalog())

	p, ok := store.ByID("3")
	require.True(t, ok)
	assert.Equal(t, "Himalayan Combo Pack", p.Name)

	_, ok = store.ByID("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{"Traditional Sweets", "Organic Sweets", "Combo Packs"}, store.Categories())
	assert.Len(t, store.Featured(3), 3)
	assert.Len(t, store.Featured(10), 4)
}
