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

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with its item lines.
// GORM's association handling inserts the items in the same statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = itemM.ID
			order.Items[i].OrderID = itemM.OrderID
		}
	}

	return nil
}

// FindByUser retrieves a user's orders, newest first, items attached.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

// FindByID retrieves a single order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		items = append(items, &entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			UnitPrice:   itemM.UnitPrice,
			Quantity:    itemM.Quantity,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          entity.OrderStatus(data.Status),
		Total:           data.Total,
		ShippingName:    data.ShippingName,
		ShippingAddress: data.ShippingAddress,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          string(data.Status),
		Total:           data.Total,
		ShippingName:    data.ShippingName,
		ShippingAddress: data.ShippingAddress,
		Items:           items,
	}
}
