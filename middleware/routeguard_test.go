package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		cookie     bool
		path       string
		allow      bool
		redirectTo string
	}{
		{"admin without cookie", false, "/admin", false, "/admin/login"},
		{"nested admin without cookie", false, "/admin/products", false, "/admin/login"},
		{"login page stays open", false, "/admin/login", true, ""},
		{"signup page stays open", false, "/admin/signup", true, ""},
		{"admin with cookie", true, "/admin", true, ""},
		{"login page with cookie bounces", true, "/admin/login", false, "/admin"},
		{"public path without cookie", false, "/products", true, ""},
		{"public path with cookie", true, "/products", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.cookie, tt.path)
			assert.Equal(t, tt.allow, d.Allow)
			assert.Equal(t, tt.redirectTo, d.RedirectTo)
		})
	}
}
