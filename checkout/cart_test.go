package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []LineItem {
	return []LineItem{
		{ID: 1, Name: "Product 1", UnitPrice: 99.99, Quantity: 2},
		{ID: 2, Name: "Product 2", UnitPrice: 149.99, Quantity: 1},
	}
}

func TestTotals(t *testing.T) {
	items := sampleItems()
	totals := Totals(items)

	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	assert.Equal(t, subtotal, totals.Subtotal)
	assert.Equal(t, ShippingFlat, totals.Shipping)
	assert.Equal(t, subtotal*TaxRate, totals.Tax)
	// Exact float identity, no hidden rounding.
	assert.Equal(t, totals.Subtotal+totals.Shipping+totals.Tax, totals.Total)
}

func TestTotalsEmpty(t *testing.T) {
	totals := Totals(nil)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, ShippingFlat, totals.Total)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		quantity int
		want     []int // resulting quantities in order
	}{
		{"set existing", 1, 5, []int{5, 1}},
		{"zero is a no-op", 1, 0, []int{2, 1}},
		{"negative is a no-op", 2, -1, []int{2, 1}},
		{"unknown id is a no-op", 99, 3, []int{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateQuantity(sampleItems(), tt.id, tt.quantity)
			require.Len(t, got, 2)
			for i, q := range tt.want {
				assert.Equal(t, q, got[i].Quantity)
			}
		})
	}
}

func TestRemoveItem(t *testing.T) {
	items := RemoveItem(sampleItems(), 1)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)

	// Removing an absent id leaves the set unchanged.
	again := RemoveItem(items, 1)
	assert.Equal(t, items, again)
}
