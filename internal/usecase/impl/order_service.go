package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder turns a validated set of product lines into a persisted order.
// Product names and unit prices are read from the catalog inside the same
// transaction, never taken from the client, and the total is the sum of
// unit price times quantity over all lines.
func (srv *orderService) PlaceOrder(ctx context.Context, actor usecase.Actor, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrOrderEmpty, "an order needs at least one item")
	}
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be at least 1")
		}
	}

	var placedOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		items := make([]*entity.OrderItem, 0, len(input.Items))
		total := 0.0
		for _, line := range input.Items {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.Wrap(domainerrors.ErrProductNotFound, "ordered product not found")
				}

				return errors.Wrap(err, "failed to find ordered product")
			}

			if product.StockQuantity < line.Quantity {
				return errors.Wrap(domainerrors.ErrInsufficientStock.WithDetails(product.Name), "insufficient stock")
			}

			items = append(items, &entity.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    line.Quantity,
			})
			total += product.Price * float64(line.Quantity)
		}

		order := &entity.Order{
			UserID:          actor.ID,
			Status:          entity.OrderStatusPending,
			Total:           total,
			ShippingName:    input.ShippingName,
			ShippingAddress: input.ShippingAddress,
			Items:           items,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		placedOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.Any("userID", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order placement transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", placedOrder.ID),
		slog.Any("userID", actor.ID),
		slog.Float64("total", placedOrder.Total))

	return placedOrder, nil
}

func (srv *orderService) ListOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !entity.Authorize(actor.Roles, entity.RequireOwnerOrAdmin, actor.ID, order.UserID) {
		return nil, errors.Wrap(domainerrors.ErrPermissionDenied, "order belongs to another user")
	}

	return order, nil
}
