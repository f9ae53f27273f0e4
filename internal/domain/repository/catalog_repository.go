package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Catalog sentinel errors.
var (
	ErrProductNotFound       = errors.New("product not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCarouselImageNotFound = errors.New("carousel image not found")
)

// ProductFilter narrows product listings. Nil fields mean "no constraint".
// Free-text matching is deliberately not part of the filter; it happens
// in-process over the fetched set.
type ProductFilter struct {
	CategoryID *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindAll retrieves every product.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindFiltered retrieves products matching the given filter.
	FindFiltered(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites an existing product document.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// FindAll retrieves every category ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update overwrites an existing category document.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID. Products referencing it keep their
	// dangling category ID; there is no cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CarouselRepository defines the standard operations for carousel image persistence.
type CarouselRepository interface {
	// FindAll retrieves every carousel image ordered by display order.
	FindAll(ctx context.Context) ([]*entity.CarouselImage, error)

	// FindByID retrieves a single carousel image by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CarouselImage, error)

	// Create persists a new carousel image.
	Create(ctx context.Context, image *entity.CarouselImage) error

	// Update overwrites an existing carousel image document.
	Update(ctx context.Context, image *entity.CarouselImage) error

	// Delete removes a carousel image by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
