package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	carouselRepo *mockRepo.MockCarouselRepository
	publisher    *mockService.MockEventPublisher
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	carouselRepo := mockRepo.NewMockCarouselRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		CarouselRepo: carouselRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      svc,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		carouselRepo: carouselRepo,
		publisher:    publisher,
	}
}

func adminActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}
}

func userActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
}

func validProductInput() *usecase.ProductInput {
	categoryID := uuid.New()
	price := 499.90
	stock := 12

	return &usecase.ProductInput{
		Name:          "Walnut Desk",
		Description:   "Solid walnut standing desk",
		Price:         &price,
		StockQuantity: &stock,
		MainImageURL:  "https://img.example.com/desk.jpg",
		CategoryID:    &categoryID,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := adminActor()
	input := validProductInput()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, input.Name, product.Name)
	assert.Equal(t, *input.Price, product.Price)
}

func TestCatalogService_CreateProduct_RequiresAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

	product, err := fx.service.CreateProduct(context.Background(), userActor(), validProductInput())

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

// Validation checks fields in a fixed order, so an input violating several
// rules reports only the first one.
func TestCatalogService_CreateProduct_ValidationOrder(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := adminActor()

	testCases := []struct {
		name    string
		mutate  func(*usecase.ProductInput)
		wantErr *domainerrors.BaseError
	}{
		{
			name:    "missing name reported before missing description",
			mutate:  func(in *usecase.ProductInput) { in.Name = ""; in.Description = "" },
			wantErr: domainerrors.ErrProductNameRequired,
		},
		{
			name:    "missing description reported before negative price",
			mutate:  func(in *usecase.ProductInput) { in.Description = ""; *in.Price = -1 },
			wantErr: domainerrors.ErrProductDescriptionRequired,
		},
		{
			name:    "negative price reported before missing image",
			mutate:  func(in *usecase.ProductInput) { *in.Price = -1; in.MainImageURL = "" },
			wantErr: domainerrors.ErrProductPriceInvalid,
		},
		{
			name:    "omitted price reported as a price violation",
			mutate:  func(in *usecase.ProductInput) { in.Price = nil; in.MainImageURL = "" },
			wantErr: domainerrors.ErrProductPriceInvalid,
		},
		{
			name:    "missing image reported before missing category",
			mutate:  func(in *usecase.ProductInput) { in.MainImageURL = ""; in.CategoryID = nil },
			wantErr: domainerrors.ErrProductImageRequired,
		},
		{
			name:    "missing category reported before negative stock",
			mutate:  func(in *usecase.ProductInput) { in.CategoryID = nil; *in.StockQuantity = -1 },
			wantErr: domainerrors.ErrProductCategoryRequired,
		},
		{
			name:    "negative stock reported last",
			mutate:  func(in *usecase.ProductInput) { *in.StockQuantity = -1 },
			wantErr: domainerrors.ErrProductStockInvalid,
		},
		{
			name:    "omitted stock reported as a stock violation",
			mutate:  func(in *usecase.ProductInput) { in.StockQuantity = nil },
			wantErr: domainerrors.ErrProductStockInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validProductInput()
			tc.mutate(input)

			product, err := fx.service.CreateProduct(ctx, actor, input)

			require.Error(t, err)
			assert.Nil(t, product)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func fixedCatalog() []*entity.Product {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return []*entity.Product{
		{ID: uuid.New(), Name: "Cedar Bookshelf", Description: "Tall cedar shelf", Price: 120, CreatedAt: base.Add(3 * time.Hour)},
		{ID: uuid.New(), Name: "Walnut Desk", Description: "Solid walnut standing desk", Price: 499.90, CreatedAt: base.Add(2 * time.Hour)},
		{ID: uuid.New(), Name: "Desk Lamp", Description: "Brass lamp with walnut base", Price: 45.50, CreatedAt: base.Add(time.Hour)},
		{ID: uuid.New(), Name: "Oak Chair", Description: "Upholstered oak chair", Price: 210, CreatedAt: base},
	}
}

// Every whitespace-separated term must match, against name and description
// combined, case-insensitively.
func TestCatalogService_SearchProducts_AllTermsMustMatch(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindFiltered(ctx, mock.AnythingOfType("repository.ProductFilter")).
		Return(fixedCatalog(), nil)

	// "walnut" alone matches the desk and the lamp (via its description);
	// adding "lamp" narrows it to the lamp only.
	output, err := fx.service.SearchProducts(ctx, &usecase.SearchProductsInput{Query: "WALNUT lamp"})

	require.NoError(t, err)
	require.Len(t, output.Products, 1)
	assert.Equal(t, "Desk Lamp", output.Products[0].Name)
	assert.Equal(t, 1, output.TotalCount)
}

func TestCatalogService_SearchProducts_TermsSpanNameAndDescription(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindFiltered(ctx, mock.AnythingOfType("repository.ProductFilter")).
		Return(fixedCatalog(), nil)

	// "desk" hits the name, "standing" only the description; a product must
	// match both even though they live in different fields.
	output, err := fx.service.SearchProducts(ctx, &usecase.SearchProductsInput{Query: "desk standing"})

	require.NoError(t, err)
	require.Len(t, output.Products, 1)
	assert.Equal(t, "Walnut Desk", output.Products[0].Name)
}

func TestCatalogService_SearchProducts_SortOrders(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	names := func(products []*entity.Product) []string {
		out := make([]string, len(products))
		for i, p := range products {
			out[i] = p.Name
		}

		return out
	}

	testCases := []struct {
		sortBy string
		want   []string
	}{
		{usecase.SortPriceAsc, []string{"Desk Lamp", "Cedar Bookshelf", "Oak Chair", "Walnut Desk"}},
		{usecase.SortPriceDesc, []string{"Walnut Desk", "Oak Chair", "Cedar Bookshelf", "Desk Lamp"}},
		{usecase.SortNameAsc, []string{"Cedar Bookshelf", "Desk Lamp", "Oak Chair", "Walnut Desk"}},
		{usecase.SortNameDesc, []string{"Walnut Desk", "Oak Chair", "Desk Lamp", "Cedar Bookshelf"}},
		// Default keeps the repository's newest-first order.
		{usecase.SortNewest, []string{"Cedar Bookshelf", "Walnut Desk", "Desk Lamp", "Oak Chair"}},
		{"", []string{"Cedar Bookshelf", "Walnut Desk", "Desk Lamp", "Oak Chair"}},
	}

	for _, tc := range testCases {
		t.Run("sort "+tc.sortBy, func(t *testing.T) {
			fx.productRepo.EXPECT().
				FindFiltered(ctx, mock.AnythingOfType("repository.ProductFilter")).
				Return(fixedCatalog(), nil).
				Once()

			output, err := fx.service.SearchProducts(ctx, &usecase.SearchProductsInput{SortBy: tc.sortBy})

			require.NoError(t, err)
			assert.Equal(t, tc.want, names(output.Products))
		})
	}
}

func TestCatalogService_SearchProducts_Pagination(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindFiltered(ctx, mock.AnythingOfType("repository.ProductFilter")).
		Return(fixedCatalog(), nil).
		Times(3)

	page1, err := fx.service.SearchProducts(ctx, &usecase.SearchProductsInput{Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, page1.Products, 3)
	assert.Equal(t, 4, page1.TotalCount)

	page2, err := fx.service.SearchProducts(ctx, &usecase.SearchProductsInput{Page: 2, PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, page2.Products, 1)
	assert.Equal(t, 4, page2.TotalCount)

	beyond, err := fx.service.SearchProducts(ctx, &usecase.SearchProductsInput{Page: 5, PageSize: 3})
	require.NoError(t, err)
	assert.Empty(t, beyond.Products)
	assert.Equal(t, 4, beyond.TotalCount)
}

func TestCatalogService_UpdateProduct_OverwritesEveryField(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := adminActor()
	productID := uuid.New()
	existing := &entity.Product{
		ID:            productID,
		Name:          "Old Name",
		Description:   "Old description",
		Price:         10,
		StockQuantity: 5,
		MainImageURL:  "https://img.example.com/old.jpg",
		Featured:      true,
	}
	input := validProductInput()
	input.Featured = false

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
	fx.productRepo.EXPECT().Update(ctx, existing).Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, actor, productID, input)

	require.NoError(t, err)
	assert.Equal(t, input.Name, updated.Name)
	assert.Equal(t, input.CategoryID, updated.CategoryID)
	assert.False(t, updated.Featured)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().Delete(ctx, productID).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, adminActor(), productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

// A broker outage must not fail a committed mutation.
func TestCatalogService_DeleteProduct_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(assert.AnError)

	err := fx.service.DeleteProduct(ctx, adminActor(), productID)

	require.NoError(t, err)
}

func TestCatalogService_CreateCategory_Validation(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := adminActor()

	_, err := fx.service.CreateCategory(ctx, actor, &usecase.CategoryInput{Name: "", Description: ""})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameRequired)

	_, err = fx.service.CreateCategory(ctx, actor, &usecase.CategoryInput{Name: "Furniture", Description: ""})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryDescriptionRequired)
}

func TestCatalogService_CreateCategory_RecordsCreator(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := adminActor()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = uuid.New()

			assert.Equal(t, actor.ID, category.CreatedBy)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, actor, &usecase.CategoryInput{
		Name:        "Furniture",
		Description: "Desks, chairs and shelves",
	})

	require.NoError(t, err)
	assert.Equal(t, "Furniture", category.Name)
}

func TestCatalogService_CreateCarouselImage_Defaults(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.carouselRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CarouselImage")).
		Run(func(ctx context.Context, image *entity.CarouselImage) {
			image.ID = uuid.New()
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	image, err := fx.service.CreateCarouselImage(ctx, adminActor(), &usecase.CarouselImageInput{
		ImageURL: "https://img.example.com/banner.jpg",
	})

	require.NoError(t, err)
	assert.Empty(t, image.Title)
	assert.Empty(t, image.Subtitle)
	assert.Zero(t, image.DisplayOrder)
	assert.True(t, image.Active, "active defaults to true when not provided")
}

func TestCatalogService_UpdateCarouselImage_ExplicitFalseWins(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	imageID := uuid.New()
	active := false
	existing := &entity.CarouselImage{ID: imageID, ImageURL: "https://img.example.com/old.jpg", Active: true}

	fx.carouselRepo.EXPECT().FindByID(ctx, imageID).Return(existing, nil)
	fx.carouselRepo.EXPECT().Update(ctx, existing).Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	image, err := fx.service.UpdateCarouselImage(ctx, adminActor(), imageID, &usecase.CarouselImageInput{
		ImageURL: "https://img.example.com/banner.jpg",
		Active:   &active,
	})

	require.NoError(t, err)
	assert.False(t, image.Active)
}

func TestCatalogService_CarouselMutations_RequireAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := userActor()
	input := &usecase.CarouselImageInput{ImageURL: "https://img.example.com/banner.jpg"}

	_, err := fx.service.CreateCarouselImage(ctx, actor, input)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)

	_, err = fx.service.UpdateCarouselImage(ctx, actor, uuid.New(), input)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)

	err = fx.service.DeleteCarouselImage(ctx, actor, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}
