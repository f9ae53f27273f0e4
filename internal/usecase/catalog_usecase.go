package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Product sort orders accepted by SearchProducts.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortNewest    = "newest"
)

// --- Input DTOs ---

// ProductInput carries the writable fields of a product.
// The same shape serves create and update; update overwrites every field.
// Price and StockQuantity are pointers so a request that omits them is
// rejected instead of silently writing zero.
type ProductInput struct {
	Name          string
	Description   string
	Price         *float64
	StockQuantity *int
	MainImageURL  string
	CategoryID    *uuid.UUID
	Featured      bool
}

// SearchProductsInput narrows and orders the product listing.
// The zero value returns everything, newest first.
type SearchProductsInput struct {
	Query      string // Whitespace-split terms; every term must match name+description.
	CategoryID *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     string // One of the Sort* constants; empty means newest.
	Page       int    // 1-based; 0 disables pagination.
	PageSize   int
}

// SearchProductsOutput returns one page of matching products.
type SearchProductsOutput struct {
	Products   []*entity.Product
	TotalCount int
	Page       int
	PageSize   int
}

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name        string
	Description string
}

// CarouselImageInput carries the writable fields of a carousel image.
// Optional fields are pointers so absent values fall back to defaults
// (title/subtitle "", display order 0, active true).
type CarouselImageInput struct {
	ImageURL     string
	Title        *string
	Subtitle     *string
	DisplayOrder *int
	Active       *bool
}

// CatalogUsecase defines catalog browsing and admin-gated catalog management.
type CatalogUsecase interface {
	// ListProducts retrieves every product, newest first, categories resolved.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// SearchProducts filters, sorts and paginates the catalog in-process.
	SearchProducts(ctx context.Context, input *SearchProductsInput) (*SearchProductsOutput, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct creates a product. ADMIN only.
	CreateProduct(ctx context.Context, actor Actor, input *ProductInput) (*entity.Product, error)

	// UpdateProduct overwrites a product. ADMIN only.
	UpdateProduct(ctx context.Context, actor Actor, id uuid.UUID, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product. ADMIN only.
	DeleteProduct(ctx context.Context, actor Actor, id uuid.UUID) error

	// ListCategories retrieves every category ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory creates a category. ADMIN only.
	CreateCategory(ctx context.Context, actor Actor, input *CategoryInput) (*entity.Category, error)

	// UpdateCategory overwrites a category. ADMIN only.
	UpdateCategory(ctx context.Context, actor Actor, id uuid.UUID, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category. Products keep their dangling
	// category reference. ADMIN only.
	DeleteCategory(ctx context.Context, actor Actor, id uuid.UUID) error

	// ListCarouselImages retrieves every carousel image by display order.
	ListCarouselImages(ctx context.Context) ([]*entity.CarouselImage, error)

	// CreateCarouselImage creates a carousel image. ADMIN only.
	CreateCarouselImage(ctx context.Context, actor Actor, input *CarouselImageInput) (*entity.CarouselImage, error)

	// UpdateCarouselImage overwrites a carousel image. ADMIN only.
	UpdateCarouselImage(ctx context.Context, actor Actor, id uuid.UUID, input *CarouselImageInput) (*entity.CarouselImage, error)

	// DeleteCarouselImage removes a carousel image. ADMIN only.
	DeleteCarouselImage(ctx context.Context, actor Actor, id uuid.UUID) error
}
