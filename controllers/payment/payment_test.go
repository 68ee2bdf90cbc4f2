package paymentcontroller

import (
	"testing"

	"github.com/opalstreet/storefront-api/checkout"
	"github.com/stretchr/testify/assert"
)

func TestAmountInCents(t *testing.T) {
	// A $19.99 cart totals 31.989…, presented as $31.99; the gateway must
	// be asked for 3199 cents, not the truncated 3198.
	totals := checkout.Totals([]checkout.LineItem{
		{ID: 1, Name: "Watch", UnitPrice: 19.99, Quantity: 1},
	})
	assert.Equal(t, int64(3199), amountInCents(totals.Total))

	assert.Equal(t, int64(0), amountInCents(0))
	assert.Equal(t, int64(1000), amountInCents(10.00))
	assert.Equal(t, int64(2000), amountInCents(19.999))
}
