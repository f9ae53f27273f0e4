package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. CategoryID is a soft reference:
// deleting a category leaves its products in place with a dangling ID.
type ProductModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Description   string     `gorm:"type:text;not null"`
	Price         float64    `gorm:"type:numeric(12,2);not null"`
	StockQuantity int        `gorm:"not null;default:0"`
	MainImageURL  string     `gorm:"type:text;not null"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"`
	Featured      bool       `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	CreatedBy   uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// CarouselImageModel mirrors the 'carousel_images' table.
type CarouselImageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ImageURL     string    `gorm:"type:text;not null"`
	Title        string    `gorm:"type:varchar(255)"`
	Subtitle     string    `gorm:"type:varchar(255)"`
	DisplayOrder int       `gorm:"not null;default:0"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CarouselImageModel) TableName() string {
	return "carousel_images"
}
