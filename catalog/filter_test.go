package catalog

import (
	"testing"

	"github.com/opalstreet/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Watch", Price: 99.99, Category: "Electronics", Rating: 4.5},
		{ID: 2, Name: "Digital Watch", Price: 149.99, Category: "Clothing", Rating: 4.0},
		{ID: 3, Name: "Novel", Price: 12.50, Category: "Books", Rating: 3.5},
		{ID: 4, Name: "Bread Maker", Price: 650, Category: "Home & Kitchen", Rating: 4.8},
	}
}

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	products := sampleCatalog()
	got := Filter(products, Criteria{Category: CategoryAll})
	require.Len(t, got, len(products))
	// Order preserved from the source collection.
	for i := range products {
		assert.Equal(t, products[i].ID, got[i].ID)
	}
}

func TestFilterSearchCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(sampleCatalog(), Criteria{Search: "watch"})
	require.Len(t, got, 2)
	assert.Equal(t, "Watch", got[0].Name)
	assert.Equal(t, "Digital Watch", got[1].Name)
}

func TestFilterCategory(t *testing.T) {
	got := Filter(sampleCatalog(), Criteria{Category: "Books"})
	require.Len(t, got, 1)
	assert.Equal(t, "Novel", got[0].Name)

	// Empty category behaves like "All".
	assert.Len(t, Filter(sampleCatalog(), Criteria{}), 4)
}

func TestFilterPriceBuckets(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "A", Price: 49.99},
		{ID: 2, Name: "B", Price: 50},
		{ID: 3, Name: "C", Price: 100},
		{ID: 4, Name: "D", Price: 999},
	}

	tests := []struct {
		name   string
		bucket int
		want   []uint
	}{
		// Bucket ends are inclusive, so 50 sits in both neighbours.
		{"under 50", 0, []uint{1, 2}},
		{"50 to 100", 1, []uint{2, 3}},
		{"100 to 200", 2, []uint{3}},
		{"over 500", 4, []uint{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(products, Criteria{PriceRange: intPtr(tt.bucket)})
			ids := make([]uint, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterOutOfRangeBucketMatchesNothing(t *testing.T) {
	assert.Empty(t, Filter(sampleCatalog(), Criteria{PriceRange: intPtr(99)}))
}

func TestFilterMinRating(t *testing.T) {
	got := Filter(sampleCatalog(), Criteria{MinRating: intPtr(4)})
	require.Len(t, got, 3)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Rating, 4.0)
	}
}

func TestFilterPredicatesAreConjunctive(t *testing.T) {
	got := Filter(sampleCatalog(), Criteria{
		Search:     "watch",
		Category:   "Electronics",
		PriceRange: intPtr(1),
		MinRating:  intPtr(4),
	})
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestFilterEmptyCollection(t *testing.T) {
	assert.Empty(t, Filter(nil, Criteria{Search: "watch"}))
}
