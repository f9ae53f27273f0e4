package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderLineInput is one product line of an order being placed.
type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrderInput defines the data required to place an order.
// Prices are never taken from the client; the server reads them from the
// catalog when the order is written.
type PlaceOrderInput struct {
	Items           []OrderLineInput
	ShippingName    string
	ShippingAddress string
}

// OrderUsecase defines order placement and retrieval for the calling user.
type OrderUsecase interface {
	// PlaceOrder validates stock, computes the total server-side and writes
	// the order with its items in one transaction. Status starts at PENDING.
	PlaceOrder(ctx context.Context, actor Actor, input *PlaceOrderInput) (*entity.Order, error)

	// ListOrders retrieves the caller's orders, newest first.
	ListOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)

	// GetOrder retrieves one of the caller's orders. Admins may read any order.
	GetOrder(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Order, error)
}
