package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item offered by the store.
type Product struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         float64 // Non-negative; validated at the boundary.
	StockQuantity int     // Non-negative; validated at the boundary.
	MainImageURL  string
	CategoryID    *uuid.UUID // Soft reference; may dangle after a category delete.
	Category      *Category  // Denormalized on reads when the reference resolves, nil otherwise.
	Featured      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Category groups products for browsing and filtering.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedBy   uuid.UUID // The admin who created this category.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CarouselImage is a banner shown on the storefront landing page.
// Display order is only a client-side sort key, no uniqueness is enforced.
type CarouselImage struct {
	ID           uuid.UUID
	ImageURL     string
	Title        string
	Subtitle     string
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
