package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

func TestOrderService_PlaceOrder_ComputesTotalServerSide(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := userActor()
	deskID := uuid.New()
	lampID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(txOrderRepo)

			txProductRepo.EXPECT().FindByID(ctx, deskID).Return(&entity.Product{
				ID: deskID, Name: "Walnut Desk", Price: 499.90, StockQuantity: 5,
			}, nil)
			txProductRepo.EXPECT().FindByID(ctx, lampID).Return(&entity.Product{
				ID: lampID, Name: "Desk Lamp", Price: 45.50, StockQuantity: 20,
			}, nil)
			txOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, actor, &usecase.PlaceOrderInput{
		Items: []usecase.OrderLineInput{
			{ProductID: deskID, Quantity: 1},
			{ProductID: lampID, Quantity: 2},
		},
		ShippingName:    "Alice",
		ShippingAddress: "1 Main St",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.InDelta(t, 499.90+2*45.50, order.Total, 0.001)
	require.Len(t, order.Items, 2)
	// Name and price are snapshotted from the catalog, not the client.
	assert.Equal(t, "Walnut Desk", order.Items[0].ProductName)
	assert.InDelta(t, 45.50, order.Items[1].UnitPrice, 0.001)
	assert.Equal(t, actor.ID, order.UserID)
}

func TestOrderService_PlaceOrder_EmptyOrder(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), userActor(), &usecase.PlaceOrderInput{})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderEmpty)
}

func TestOrderService_PlaceOrder_NonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), userActor(), &usecase.PlaceOrderInput{
		Items: []usecase.OrderLineInput{{ProductID: uuid.New(), Quantity: 0}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	deskID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))

			txProductRepo.EXPECT().FindByID(ctx, deskID).Return(&entity.Product{
				ID: deskID, Name: "Walnut Desk", Price: 499.90, StockQuantity: 1,
			}, nil)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, userActor(), &usecase.PlaceOrderInput{
		Items: []usecase.OrderLineInput{{ProductID: deskID, Quantity: 3}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_PlaceOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ghostID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))

			txProductRepo.EXPECT().FindByID(ctx, ghostID).Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, userActor(), &usecase.PlaceOrderInput{
		Items: []usecase.OrderLineInput{{ProductID: ghostID, Quantity: 1}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := userActor()
	orders := []*entity.Order{{ID: uuid.New(), UserID: actor.ID}}

	fx.orderRepo.EXPECT().FindByUser(ctx, actor.ID).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_GetOrder_OwnerReads(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := userActor()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: actor.ID}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, actor, orderID)

	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_GetOrder_StrangerDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{
		ID:     orderID,
		UserID: uuid.New(),
	}, nil)

	got, err := fx.service.GetOrder(ctx, userActor(), orderID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestOrderService_GetOrder_AdminReadsAny(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, adminActor(), orderID)

	require.NoError(t, err)
	assert.Equal(t, order, got)
}
