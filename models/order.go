package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the store
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping

	PaymentStatusPending  PaymentStatus = "pending"  // payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // money returned to customer
)

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        string        `gorm:"not null" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64       `json:"subtotal"`
	ShippingCost  float64       `json:"shipping_cost"`
	Tax           float64       `json:"tax"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentRef    string        `gorm:"index" json:"payment_ref"` // payment-method handle from the gateway
	OrderRef      string        `gorm:"uniqueIndex" json:"order_ref"`
	CreatedAt     time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
}
