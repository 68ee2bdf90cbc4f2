package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validShippingForm() ShippingForm {
	return ShippingForm{
		Name:    "Jamie Doe",
		Email:   "jamie@example.com",
		Street:  "1 Long Street Name",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62704",
		Country: "US",
	}
}

func TestValidateShippingOK(t *testing.T) {
	assert.Nil(t, ValidateShipping(validShippingForm()))
}

func TestValidateShippingViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ShippingForm)
		field   string
		message string
	}{
		{
			"short name",
			func(f *ShippingForm) { f.Name = "J" },
			"name", "Name must be at least 2 characters",
		},
		{
			"bad email",
			func(f *ShippingForm) { f.Email = "not-an-email" },
			"email", "Invalid email address",
		},
		{
			"short street",
			func(f *ShippingForm) { f.Street = "1 St" },
			"street", "Street address is required",
		},
		{
			"short zip",
			func(f *ShippingForm) { f.ZipCode = "123" },
			"zipCode", "ZIP code is required",
		},
		{
			"short country",
			func(f *ShippingForm) { f.Country = "U" },
			"country", "Country is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validShippingForm()
			tt.mutate(&form)
			violations := ValidateShipping(form)
			assert.Equal(t, tt.message, violations[tt.field])
		})
	}
}

func TestValidateShippingEmptyFormFlagsEveryField(t *testing.T) {
	violations := ValidateShipping(ShippingForm{})
	assert.Len(t, violations, 7)
}
