package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardStepClamping(t *testing.T) {
	w := NewWizard(sampleItems())
	require.Equal(t, StepShipping, w.Step)

	// Regressing at the first step stays put.
	w.Regress()
	assert.Equal(t, StepShipping, w.Step)

	w.Advance()
	w.Advance()
	require.Equal(t, StepReview, w.Step)

	// Advancing at the last step stays put.
	w.Advance()
	assert.Equal(t, StepReview, w.Step)

	w.Regress()
	assert.Equal(t, StepPayment, w.Step)
}

func TestWizardSubmitShipping(t *testing.T) {
	w := NewWizard(sampleItems())

	form := validShippingForm()
	form.ZipCode = "123"
	violations := w.SubmitShipping(form)
	require.NotNil(t, violations)
	assert.Equal(t, "ZIP code is required", violations["zipCode"])
	assert.Equal(t, StepShipping, w.Step, "failed validation must not advance")
	assert.Equal(t, violations, w.FieldErrors)

	violations = w.SubmitShipping(validShippingForm())
	assert.Nil(t, violations)
	assert.Equal(t, StepPayment, w.Step)
	assert.Nil(t, w.FieldErrors)
}

func TestWizardPaymentFlow(t *testing.T) {
	w := NewWizard(sampleItems())

	// Payment outcomes are only expected on the payment step.
	assert.ErrorIs(t, w.CompletePayment("pm_123"), ErrNotPayment)

	require.Nil(t, w.SubmitShipping(validShippingForm()))

	w.FailPayment("Your card was declined.")
	assert.Equal(t, StepPayment, w.Step)
	assert.Equal(t, "Your card was declined.", w.PaymentError)

	w.FailPayment("")
	assert.Equal(t, "Payment failed. Please try again.", w.PaymentError)

	// Manual retry succeeds.
	require.NoError(t, w.CompletePayment("pm_123"))
	assert.Equal(t, StepReview, w.Step)
	assert.Equal(t, "pm_123", w.PaymentRef)
	assert.Empty(t, w.PaymentError)
}

func TestWizardPlaceOrder(t *testing.T) {
	w := NewWizard(sampleItems())

	assert.ErrorIs(t, w.PlaceOrder(), ErrNotAtReview)
	assert.False(t, w.Placed)

	require.Nil(t, w.SubmitShipping(validShippingForm()))
	require.NoError(t, w.CompletePayment("pm_123"))

	require.NoError(t, w.PlaceOrder())
	assert.True(t, w.Placed)
}

func TestWizardTotals(t *testing.T) {
	w := NewWizard(sampleItems())
	assert.Equal(t, Totals(sampleItems()), w.Totals())
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "shipping", StepShipping.String())
	assert.Equal(t, "payment", StepPayment.String())
	assert.Equal(t, "review", StepReview.String())
	assert.Equal(t, "unknown", Step(0).String())
}
