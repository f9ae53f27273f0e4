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

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindAll retrieves every product with its category resolved where possible.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return repo.findWhere(ctx, repo.db.WithContext(ctx))
}

// FindFiltered retrieves products matching the given filter.
func (repo *productRepository) FindFiltered(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	tx := repo.db.WithContext(ctx)
	if filter.CategoryID != nil {
		tx = tx.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		tx = tx.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		tx = tx.Where("price <= ?", *filter.MaxPrice)
	}

	return repo.findWhere(ctx, tx)
}

func (repo *productRepository) findWhere(ctx context.Context, tx *gorm.DB) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	if err := tx.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	if err := repo.attachCategories(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// attachCategories resolves soft category references in one batched query.
// Dangling references stay nil; they are not an error.
func (repo *productRepository) attachCategories(ctx context.Context, products []*entity.Product) error {
	idSet := make(map[uuid.UUID]struct{})
	for _, p := range products {
		if p.CategoryID != nil {
			idSet[*p.CategoryID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var categoryModels []model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&categoryModels).Error; err != nil {
		return errors.Wrap(err, "failed to resolve product categories")
	}

	byID := make(map[uuid.UUID]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		byID[categoryModels[i].ID] = toCategoryDomain(&categoryModels[i])
	}

	for _, p := range products {
		if p.CategoryID != nil {
			p.Category = byID[*p.CategoryID]
		}
	}

	return nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	product := toProductDomain(&productM)
	if err := repo.attachCategories(ctx, []*entity.Product{product}); err != nil {
		return nil, err
	}

	return product, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update overwrites an existing product document.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "stock_quantity", "main_image_url", "category_id", "featured").
		Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		MainImageURL:  data.MainImageURL,
		CategoryID:    data.CategoryID,
		Featured:      data.Featured,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		MainImageURL:  data.MainImageURL,
		CategoryID:    data.CategoryID,
		Featured:      data.Featured,
	}
}
