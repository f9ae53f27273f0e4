package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(20);not null"`
	Total           float64   `gorm:"type:numeric(12,2);not null"`
	ShippingName    string    `gorm:"type:varchar(100);not null"`
	ShippingAddress string    `gorm:"type:text;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product name and unit price
// are copied at order time so later catalog edits do not rewrite history.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	UnitPrice   float64   `gorm:"type:numeric(12,2);not null"`
	Quantity    int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
