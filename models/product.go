package models

import (
	"time"

	"gorm.io/gorm"
)

type StockStatus string

const (
	StockStatusIn  StockStatus = "In Stock"
	StockStatusLow StockStatus = "Low Stock"
	StockStatusOut StockStatus = "Out of Stock"
)

// LowStockThreshold is the stock level below which a product is flagged
// as low stock on the admin dashboard.
const LowStockThreshold = 10

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Category    string         `gorm:"not null;index" json:"category"`
	Rating      float64        `json:"rating"` // 0–5
	Stock       int            `json:"stock"`
	Image       string         `json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Status derives the stock status; it is never stored.
func (p Product) Status() StockStatus {
	switch {
	case p.Stock == 0:
		return StockStatusOut
	case p.Stock < LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// ProductView is the response shape with the derived status attached.
type ProductView struct {
	Product
	Status StockStatus `json:"status"`
}

func (p Product) WithStatus() ProductView {
	return ProductView{Product: p, Status: p.Status()}
}
