package checkout

import "errors"

// Step is one of the three linear checkout stages.
type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

var (
	ErrNotAtReview = errors.New("order can only be placed at the review step")
	ErrNotPayment  = errors.New("no payment is expected at this step")
)

// Wizard drives the shipping → payment → review flow for one checkout
// session. All state is in memory and discarded with the session.
type Wizard struct {
	Items        []LineItem
	Step         Step
	Shipping     ShippingForm
	FieldErrors  map[string]string
	PaymentRef   string // payment-method handle on success
	PaymentError string // displayable message on failure
	Placed       bool
}

func NewWizard(items []LineItem) *Wizard {
	return &Wizard{Items: items, Step: StepShipping}
}

// Advance moves one step forward. Advancing past review is a no-op.
func (w *Wizard) Advance() {
	if w.Step < StepReview {
		w.Step++
	}
}

// Regress moves one step back. Regressing before shipping is a no-op.
func (w *Wizard) Regress() {
	if w.Step > StepShipping {
		w.Step--
	}
}

// SubmitShipping validates the address form. On success the form is stored
// and the wizard advances; on failure the field-level violations are
// returned and the wizard stays on the shipping step.
func (w *Wizard) SubmitShipping(form ShippingForm) map[string]string {
	if violations := ValidateShipping(form); violations != nil {
		w.FieldErrors = violations
		return violations
	}
	w.FieldErrors = nil
	w.Shipping = form
	w.Advance()
	return nil
}

// CompletePayment records the payment-method handle reported by the payment
// collaborator and advances to review.
func (w *Wizard) CompletePayment(methodRef string) error {
	if w.Step != StepPayment {
		return ErrNotPayment
	}
	w.PaymentRef = methodRef
	w.PaymentError = ""
	w.Advance()
	return nil
}

// FailPayment records a displayable error; the wizard stays on the payment
// step so the user can retry.
func (w *Wizard) FailPayment(message string) {
	if message == "" {
		message = "Payment failed. Please try again."
	}
	w.PaymentError = message
}

// PlaceOrder is the terminal action, only legal at the review step.
func (w *Wizard) PlaceOrder() error {
	if w.Step != StepReview {
		return ErrNotAtReview
	}
	w.Placed = true
	return nil
}

// Totals derives the order totals from the session's line items.
func (w *Wizard) Totals() OrderTotals {
	return Totals(w.Items)
}
