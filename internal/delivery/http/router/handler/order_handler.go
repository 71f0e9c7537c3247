package handler

import (
	"log/slog"
	"net/http"

	"cakery/internal/delivery/http/middleware"
	"cakery/internal/delivery/http/response"
	"cakery/internal/domain/entity"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ConvertOrderRequest represents the request body for converting an
// approved design into an order
type ConvertOrderRequest struct {
	AmountDeclared  int64                `json:"amount_declared" validate:"required,gt=0"`
	ShippingAddress string               `json:"shipping_address" validate:"required"`
	PaymentMethod   entity.PaymentMethod `json:"payment_method" validate:"required,oneof=cash_on_delivery electronic"`
	ProofOfPayment  string               `json:"proof_of_payment,omitempty"`
}

// ConvertToOrder handles converting an approved design into an order
func (h *OrderHandler) ConvertToOrder(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	designID, err := uuid.Parse(c.Param("designId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid design ID")
	}

	var req ConvertOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.ConvertToOrder(c.Request().Context(), buyerID, designID, usecase.ConvertOrderInput{
		AmountDeclared:  req.AmountDeclared,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ProofOfPayment:  req.ProofOfPayment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// GetOrder handles retrieving a single order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actorID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListBuyerOrders handles retrieving the buyer's orders
func (h *OrderHandler) ListBuyerOrders(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := pagination(c)
	orders, err := h.orderUC.ListBuyerOrders(c.Request().Context(), buyerID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListBakerOrders handles retrieving the baker's orders
func (h *OrderHandler) ListBakerOrders(c echo.Context) error {
	bakerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := pagination(c)
	orders, err := h.orderUC.ListBakerOrders(c.Request().Context(), bakerID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// VerifyPayment handles the baker confirming an electronic payment
func (h *OrderHandler) VerifyPayment(c echo.Context) error {
	bakerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.VerifyPayment(c.Request().Context(), bakerID, orderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Payment verified"}, "Payment verified successfully")
}
