package models

import "time"

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CustomerID uint        `gorm:"index;not null" json:"customerId"`
	Status     string      `gorm:"not null" json:"status"`
	TotalPrice float64     `gorm:"not null;default:0" json:"totalPrice"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// OrderItem captures the unit price at the time the item was added,
// not a live reference to the product's current price.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"orderId"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	Quantity  uint      `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
