package checkout

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ShippingForm carries the step-1 address fields.
type ShippingForm struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Street  string `json:"street" validate:"required,min=5"`
	City    string `json:"city" validate:"required,min=2"`
	State   string `json:"state" validate:"required,min=2"`
	ZipCode string `json:"zipCode" validate:"required,min=5"`
	Country string `json:"country" validate:"required,min=2"`
}

var validate = validator.New()

var shippingFieldNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Street":  "street",
	"City":    "city",
	"State":   "state",
	"ZipCode": "zipCode",
	"Country": "country",
}

var shippingMessages = map[string]string{
	"Name":    "Name must be at least 2 characters",
	"Email":   "Invalid email address",
	"Street":  "Street address is required",
	"City":    "City is required",
	"State":   "State is required",
	"ZipCode": "ZIP code is required",
	"Country": "Country is required",
}

// ValidateShipping checks the form against the schema and returns a map of
// field name to violation message. A nil map means the form is valid.
func ValidateShipping(form ShippingForm) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	violations := make(map[string]string)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			violations[shippingFieldNames[fe.Field()]] = shippingMessages[fe.Field()]
		}
	}
	return violations
}
