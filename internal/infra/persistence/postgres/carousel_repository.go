package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// carouselRepository implements the domain.CarouselRepository interface using GORM.
type carouselRepository struct {
	db *gorm.DB
}

// NewCarouselRepository is the constructor for carouselRepository.
func NewCarouselRepository(db *gorm.DB) repository.CarouselRepository {
	return &carouselRepository{db: db}
}

// FindAll retrieves every carousel image ordered by display order.
func (repo *carouselRepository) FindAll(ctx context.Context) ([]*entity.CarouselImage, error) {
	var imageModels []model.CarouselImageModel
	err := repo.db.WithContext(ctx).
		Order("display_order ASC, created_at ASC").
		Find(&imageModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carousel images")
	}

	images := make([]*entity.CarouselImage, 0, len(imageModels))
	for i := range imageModels {
		images = append(images, toCarouselImageDomain(&imageModels[i]))
	}

	return images, nil
}

// FindByID retrieves a single carousel image by its unique ID.
func (repo *carouselRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CarouselImage, error) {
	var imageM model.CarouselImageModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCarouselImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find carousel image by id")
	}

	return toCarouselImageDomain(&imageM), nil
}

// Create persists a new carousel image.
func (repo *carouselRepository) Create(ctx context.Context, image *entity.CarouselImage) error {
	imageM := fromCarouselImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create carousel image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt
	image.UpdatedAt = imageM.UpdatedAt

	return nil
}

// Update overwrites an existing carousel image document.
func (repo *carouselRepository) Update(ctx context.Context, image *entity.CarouselImage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CarouselImageModel{}).
		Where("id = ?", image.ID).
		// Select by name so false/zero values (active, display order) still write.
		Select("image_url", "title", "subtitle", "display_order", "active").
		Updates(fromCarouselImageDomain(image))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update carousel image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCarouselImageNotFound
	}

	return nil
}

// Delete removes a carousel image by ID.
func (repo *carouselRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CarouselImageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete carousel image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCarouselImageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCarouselImageDomain converts a GORM CarouselImageModel to a domain CarouselImage entity.
func toCarouselImageDomain(data *model.CarouselImageModel) *entity.CarouselImage {
	if data == nil {
		return nil
	}

	return &entity.CarouselImage{
		ID:           data.ID,
		ImageURL:     data.ImageURL,
		Title:        data.Title,
		Subtitle:     data.Subtitle,
		DisplayOrder: data.DisplayOrder,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromCarouselImageDomain converts a domain CarouselImage entity to a GORM CarouselImageModel.
func fromCarouselImageDomain(data *entity.CarouselImage) *model.CarouselImageModel {
	if data == nil {
		return nil
	}

	return &model.CarouselImageModel{
		ID:           data.ID,
		ImageURL:     data.ImageURL,
		Title:        data.Title,
		Subtitle:     data.Subtitle,
		DisplayOrder: data.DisplayOrder,
		Active:       data.Active,
	}
}
