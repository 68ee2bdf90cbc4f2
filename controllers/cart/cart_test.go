package cartcontroller

import (
	"testing"

	"github.com/opalstreet/storefront-api/checkout"
	"github.com/opalstreet/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItems(t *testing.T) {
	rows := []models.CartItem{
		{ProductID: 3, ProductName: "Watch", ProductPrice: 99.99, Quantity: 2},
		{ProductID: 7, ProductName: "Strap", ProductPrice: 19.50, Quantity: 1},
	}

	lines := LineItems(rows)
	require.Len(t, lines, 2)
	assert.Equal(t, checkout.LineItem{ID: 3, Name: "Watch", UnitPrice: 99.99, Quantity: 2}, lines[0])
	assert.Equal(t, checkout.LineItem{ID: 7, Name: "Strap", UnitPrice: 19.50, Quantity: 1}, lines[1])
}

// The stored cart rows feed the same quantity rules the wizard uses, so a
// quantity update on the HTTP surface lands on the engine's answer.
func TestCartRowsFollowEngineQuantityRules(t *testing.T) {
	rows := []models.CartItem{
		{ProductID: 3, ProductName: "Watch", ProductPrice: 99.99, Quantity: 2},
		{ProductID: 7, ProductName: "Strap", ProductPrice: 19.50, Quantity: 1},
	}

	lines := checkout.UpdateQuantity(LineItems(rows), 3, 5)
	require.Len(t, lines, 2)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)

	// A below-minimum quantity leaves the lines untouched.
	lines = checkout.UpdateQuantity(lines, 7, 0)
	assert.Equal(t, 1, lines[1].Quantity)

	lines = checkout.RemoveItem(lines, 3)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].ID)
}
