package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines operations for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its item lines.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUser retrieves a user's orders, newest first, items attached.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
