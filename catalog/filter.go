// Package catalog implements product filtering and offset pagination for
// the storefront listing and the admin product table.
package catalog

import (
	"math"
	"strings"

	"github.com/opalstreet/storefront-api/models"
)

// CategoryAll matches every category.
const CategoryAll = "All"

// Categories the storefront filter sidebar offers.
var Categories = []string{CategoryAll, "Electronics", "Clothing", "Books", "Home & Kitchen"}

// PriceRange is a named price interval. Both ends are inclusive, so a
// boundary price like 50 matches the buckets on either side of it.
type PriceRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Label string  `json:"label"`
}

var PriceRanges = []PriceRange{
	{Min: 0, Max: 50, Label: "Under $50"},
	{Min: 50, Max: 100, Label: "$50 - $100"},
	{Min: 100, Max: 200, Label: "$100 - $200"},
	{Min: 200, Max: 500, Label: "$200 - $500"},
	{Min: 500, Max: math.Inf(1), Label: "Over $500"},
}

// Criteria is a set of independent, conjunctive filter predicates.
// Nil pointer fields mean the predicate is not applied.
type Criteria struct {
	Search     string
	Category   string // empty or "All" matches everything
	PriceRange *int   // index into PriceRanges
	MinRating  *int
}

func (c Criteria) matches(p models.Product) bool {
	if c.Search != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.Search)) {
		return false
	}
	if c.Category != "" && c.Category != CategoryAll && p.Category != c.Category {
		return false
	}
	if c.PriceRange != nil {
		i := *c.PriceRange
		if i < 0 || i >= len(PriceRanges) {
			return false
		}
		r := PriceRanges[i]
		if p.Price < r.Min || p.Price > r.Max {
			return false
		}
	}
	if c.MinRating != nil && p.Rating < float64(*c.MinRating) {
		return false
	}
	return true
}

// Filter returns the products matching every selected predicate,
// preserving the input order. Search is a case-insensitive substring
// match against the product name.
func Filter(products []models.Product, c Criteria) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if c.matches(p) {
			out = append(out, p)
		}
	}
	return out
}
