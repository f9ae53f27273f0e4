package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Resource types carried on catalog events.
const (
	resourceTypeProduct       = "product"
	resourceTypeCategory      = "category"
	resourceTypeCarouselImage = "carousel_image"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	carouselRepo repository.CarouselRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	CarouselRepo repository.CarouselRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		carouselRepo: params.CarouselRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// publishEvent emits a catalog change event. Publishing is best-effort: the
// mutation has already been committed, so a broker failure is logged and
// swallowed rather than surfaced to the caller.
func (srv *catalogService) publishEvent(ctx context.Context, resourceType string, resourceID uuid.UUID, action string, actor usecase.Actor) {
	event := &service.CatalogEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		ResourceType: resourceType,
		ResourceID:   resourceID.String(),
		Action:       action,
		ActorID:      actor.ID.String(),
	}
	if err := srv.publisher.PublishCatalogEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish catalog event",
			slog.String("resourceType", resourceType),
			slog.String("resourceID", resourceID.String()),
			slog.String("action", action),
			slog.Any("error", err))
	}
}

// --- Products ---

// validateProductInput checks product fields in a fixed order so the first
// violated rule determines the reported error: name, description, price,
// image, category, then stock.
func validateProductInput(input *usecase.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrProductNameRequired.WithDetails("name")
	}
	if strings.TrimSpace(input.Description) == "" {
		return domainerrors.ErrProductDescriptionRequired.WithDetails("description")
	}
	if input.Price == nil || *input.Price < 0 {
		return domainerrors.ErrProductPriceInvalid.WithDetails("price")
	}
	if strings.TrimSpace(input.MainImageURL) == "" {
		return domainerrors.ErrProductImageRequired.WithDetails("mainImageUrl")
	}
	if input.CategoryID == nil || *input.CategoryID == uuid.Nil {
		return domainerrors.ErrProductCategoryRequired.WithDetails("categoryId")
	}
	if input.StockQuantity == nil || *input.StockQuantity < 0 {
		return domainerrors.ErrProductStockInvalid.WithDetails("stockQuantity")
	}

	return nil
}

func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) SearchProducts(ctx context.Context, input *usecase.SearchProductsInput) (*usecase.SearchProductsOutput, error) {
	filter := repository.ProductFilter{
		CategoryID: input.CategoryID,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
	}
	products, err := srv.productRepo.FindFiltered(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	products = filterByQuery(products, input.Query)
	sortProducts(products, input.SortBy)

	total := len(products)
	page, pageSize := input.Page, input.PageSize
	if page > 0 && pageSize > 0 {
		start := (page - 1) * pageSize
		if start >= total {
			products = nil
		} else {
			end := start + pageSize
			if end > total {
				end = total
			}
			products = products[start:end]
		}
	}

	return &usecase.SearchProductsOutput{
		Products:   products,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// filterByQuery keeps products whose name or description contains every
// whitespace-separated term, case-insensitively. An empty query keeps all.
func filterByQuery(products []*entity.Product, query string) []*entity.Product {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return products
	}

	matched := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		haystack := strings.ToLower(product.Name + " " + product.Description)
		hit := true
		for _, term := range terms {
			if !strings.Contains(haystack, term) {
				hit = false

				break
			}
		}
		if hit {
			matched = append(matched, product)
		}
	}

	return matched
}

// sortProducts reorders products in place. The repository already returns
// newest first, so the default and "newest" orders are left untouched.
func sortProducts(products []*entity.Product, sortBy string) {
	switch sortBy {
	case usecase.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case usecase.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case usecase.SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case usecase.SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) > strings.ToLower(products[j].Name)
		})
	}
}

func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, actor usecase.Actor, input *usecase.ProductInput) (*entity.Product, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrAdminRequired, "create product requires admin")
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         *input.Price,
		StockQuantity: *input.StockQuantity,
		MainImageURL:  input.MainImageURL,
		CategoryID:    input.CategoryID,
		Featured:      input.Featured,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("actorID", actor.ID))
	srv.publishEvent(ctx, resourceTypeProduct, product.ID, service.CatalogActionCreated, actor)

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrAdminRequired, "update product requires admin")
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	// Full overwrite: every writable field takes the incoming value.
	product.Name = input.Name
	product.Description = input.Description
	product.Price = *input.Price
	product.StockQuantity = *input.StockQuantity
	product.MainImageURL = input.MainImageURL
	product.CategoryID = input.CategoryID
	product.Featured = input.Featured

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.publishEvent(ctx, resourceTypeProduct, product.ID, service.CatalogActionUpdated, actor)

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return errors.Wrap(domainerrors.ErrAdminRequired, "delete product requires admin")
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id), slog.Any("actorID", actor.ID))
	srv.publishEvent(ctx, resourceTypeProduct, id, service.CatalogActionDeleted, actor)

	return nil
}

// --- Categories ---

func validateCategoryInput(input *usecase.CategoryInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrCategoryNameRequired.WithDetails("name")
	}
	if strings.TrimSpace(input.Description) == "" {
		return domainerrors.ErrCategoryDescriptionRequired.WithDetails("description")
	}

	return nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, actor usecase.Actor, input *usecase.CategoryInput) (*entity.Category, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrAdminRequired, "create category requires admin")
	}
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   actor.ID,
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.Any("actorID", actor.ID))
	srv.publishEvent(ctx, resourceTypeCategory, category.ID, service.CatalogActionCreated, actor)

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrAdminRequired, "update category requires admin")
	}
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	category.Name = input.Name
	category.Description = input.Description

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	srv.publishEvent(ctx, resourceTypeCategory, category.ID, service.CatalogActionUpdated, actor)

	return category, nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return errors.Wrap(domainerrors.ErrAdminRequired, "delete category requires admin")
	}

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id), slog.Any("actorID", actor.ID))
	srv.publishEvent(ctx, resourceTypeCategory, id, service.CatalogActionDeleted, actor)

	return nil
}

// --- Carousel ---

func (srv *catalogService) ListCarouselImages(ctx context.Context) ([]*entity.CarouselImage, error) {
	images, err := srv.carouselRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carousel images")
	}

	return images, nil
}

// applyCarouselDefaults resolves the optional carousel fields: title and
// subtitle default to empty, display order to 0 and active to true.
func applyCarouselDefaults(image *entity.CarouselImage, input *usecase.CarouselImageInput) {
	image.ImageURL = input.ImageURL
	image.Title = ""
	if input.Title != nil {
		image.Title = *input.Title
	}
	image.Subtitle = ""
	if input.Subtitle != nil {
		image.Subtitle = *input.Subtitle
	}
	image.DisplayOrder = 0
	if input.DisplayOrder != nil {
		image.DisplayOrder = *input.DisplayOrder
	}
	image.Active = true
	if input.Active != nil {
		image.Active = *input.Active
	}
}

func (srv *catalogService) CreateCarouselImage(ctx context.Context, actor usecase.Actor, input *usecase.CarouselImageInput) (*entity.CarouselImage, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrAdminRequired, "create carousel image requires admin")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, domainerrors.ErrImageURLRequired.WithDetails("imageUrl")
	}

	image := &entity.CarouselImage{}
	applyCarouselDefaults(image, input)

	if err := srv.carouselRepo.Create(ctx, image); err != nil {
		return nil, errors.Wrap(err, "failed to create carousel image")
	}

	srv.log(ctx).Info("Carousel image created", slog.Any("imageID", image.ID), slog.Any("actorID", actor.ID))
	srv.publishEvent(ctx, resourceTypeCarouselImage, image.ID, service.CatalogActionCreated, actor)

	return image, nil
}

func (srv *catalogService) UpdateCarouselImage(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.CarouselImageInput) (*entity.CarouselImage, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrAdminRequired, "update carousel image requires admin")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, domainerrors.ErrImageURLRequired.WithDetails("imageUrl")
	}

	image, err := srv.carouselRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCarouselImageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCarouselImageNotFound, "carousel image not found")
		}

		return nil, errors.Wrap(err, "failed to find carousel image")
	}

	applyCarouselDefaults(image, input)

	if err := srv.carouselRepo.Update(ctx, image); err != nil {
		if errors.Is(err, repository.ErrCarouselImageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCarouselImageNotFound, "carousel image not found")
		}

		return nil, errors.Wrap(err, "failed to update carousel image")
	}

	srv.publishEvent(ctx, resourceTypeCarouselImage, image.ID, service.CatalogActionUpdated, actor)

	return image, nil
}

func (srv *catalogService) DeleteCarouselImage(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return errors.Wrap(domainerrors.ErrAdminRequired, "delete carousel image requires admin")
	}

	if err := srv.carouselRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCarouselImageNotFound) {
			return errors.Wrap(domainerrors.ErrCarouselImageNotFound, "carousel image not found")
		}

		return errors.Wrap(err, "failed to delete carousel image")
	}

	srv.log(ctx).Info("Carousel image deleted", slog.Any("imageID", id), slog.Any("actorID", actor.ID))
	srv.publishEvent(ctx, resourceTypeCarouselImage, id, service.CatalogActionDeleted, actor)

	return nil
}
