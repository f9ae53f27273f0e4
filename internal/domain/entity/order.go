package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every placed order.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusCompleted marks an order that has been fulfilled.
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusCancelled marks an order that was cancelled.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is a placed purchase belonging to a single user.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Status          OrderStatus
	Total           float64 // Computed server-side from the item lines.
	ShippingName    string
	ShippingAddress string
	Items           []*OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is a single product line within an order. Product name and price
// are denormalized at order time so later catalog edits do not rewrite history.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   float64
	Quantity    int
}
