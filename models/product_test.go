package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductStatus(t *testing.T) {
	tests := []struct {
		stock int
		want  StockStatus
	}{
		{0, StockStatusOut},
		{1, StockStatusLow},
		{LowStockThreshold - 1, StockStatusLow},
		{LowStockThreshold, StockStatusIn},
		{50, StockStatusIn},
	}

	for _, tt := range tests {
		p := Product{Stock: tt.stock}
		assert.Equal(t, tt.want, p.Status(), "stock=%d", tt.stock)
	}
}

func TestProductWithStatus(t *testing.T) {
	p := Product{ID: 7, Name: "Watch", Stock: 3}
	view := p.WithStatus()
	assert.Equal(t, p.ID, view.Product.ID)
	assert.Equal(t, StockStatusLow, view.Status)
}
