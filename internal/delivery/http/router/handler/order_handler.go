package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one cart line in a checkout request. Prices are never
// accepted from the client; they are read from the catalog server-side.
type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// PlaceOrderRequest represents the request body for checkout.
type PlaceOrderRequest struct {
	Items           []OrderLineRequest `json:"items"`
	ShippingName    string             `json:"shippingName" validate:"required"`
	ShippingAddress string             `json:"shippingAddress" validate:"required"`
}

// PlaceOrder submits the caller's cart as an order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.PlaceOrderInput{
		Items:           make([]usecase.OrderLineInput, 0, len(req.Items)),
		ShippingName:    req.ShippingName,
		ShippingAddress: req.ShippingAddress,
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, usecase.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.InfoContext(c.Request().Context(), "order placed",
		slog.String("order_id", order.ID.String()),
		slog.Float64("total", order.Total))

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListOrders returns the caller's own orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder returns a single order. Owner or admin.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}
