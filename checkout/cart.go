// Package checkout holds the cart and checkout-wizard engine: line items,
// order totals, the shipping form and the three-step wizard state machine.
// It is pure session state; nothing here touches the database.
package checkout

const (
	// ShippingFlat is the flat shipping charge applied to every order.
	ShippingFlat = 10.00
	// TaxRate is applied to the item subtotal.
	TaxRate = 0.10
)

// LineItem is one product-quantity pairing inside a cart session.
type LineItem struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// OrderTotals is always derived from the current line items, never stored.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Totals computes the order totals over items. Arithmetic stays in full
// float64 precision; formatting to two decimals is a presentation concern.
func Totals(items []LineItem) OrderTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	tax := subtotal * TaxRate
	return OrderTotals{
		Subtotal: subtotal,
		Shipping: ShippingFlat,
		Tax:      tax,
		Total:    subtotal + ShippingFlat + tax,
	}
}

// UpdateQuantity sets the quantity of the item with the given id.
// Quantities below 1 are rejected as a no-op, as is an unknown id.
func UpdateQuantity(items []LineItem, id, quantity int) []LineItem {
	if quantity < 1 {
		return items
	}
	out := make([]LineItem, len(items))
	for i, item := range items {
		if item.ID == id {
			item.Quantity = quantity
		}
		out[i] = item
	}
	return out
}

// RemoveItem drops the item with the given id. Removing an absent id is
// a no-op, so the operation is idempotent.
func RemoveItem(items []LineItem, id int) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}
