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

// DesignHandlerParams holds dependencies for DesignHandler, injected by Fx.
type DesignHandlerParams struct {
	fx.In

	DesignUC usecase.DesignUsecase
	Logger   *slog.Logger
}

// DesignHandler holds dependencies for design submission handlers
type DesignHandler struct {
	designUC usecase.DesignUsecase
	logger   *slog.Logger
}

// NewDesignHandler is the constructor for DesignHandler
func NewDesignHandler(params DesignHandlerParams) *DesignHandler {
	return &DesignHandler{
		designUC: params.DesignUC,
		logger:   params.Logger,
	}
}

// SubmitDesignRequest represents the request body for submitting a design
type SubmitDesignRequest struct {
	RequestType entity.RequestType  `json:"request_type" validate:"required,oneof=direct broadcast"`
	BakerID     *uuid.UUID          `json:"baker_id,omitempty"`
	Config      entity.DesignConfig `json:"config" validate:"required"`
}

// UpdateStatusRequest represents the request body for a baker-side status change
type UpdateStatusRequest struct {
	Status            entity.DesignStatus      `json:"status" validate:"required"`
	FinalPrice        *int64                   `json:"final_price,omitempty"`
	ShippingFee       int64                    `json:"shipping_fee"`
	DownpaymentAmount int64                    `json:"downpayment_amount"`
	PaymentPreference entity.PaymentPreference `json:"payment_preference,omitempty"`
	BakerNote         string                   `json:"baker_note,omitempty"`
}

// EditDesignRequest represents the request body for editing a pending design
type EditDesignRequest struct {
	Config entity.DesignConfig `json:"config" validate:"required"`
}

// SubmitDesign handles creating a new design submission
func (h *DesignHandler) SubmitDesign(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubmitDesignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid design submission input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	design, err := h.designUC.SubmitDesign(c.Request().Context(), buyerID, usecase.SubmitDesignInput{
		RequestType: req.RequestType,
		BakerID:     req.BakerID,
		Config:      req.Config,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, design, "Design submitted successfully")
}

// GetDesign handles retrieving a single design submission
func (h *DesignHandler) GetDesign(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	designID, err := uuid.Parse(c.Param("designId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid design ID")
	}

	design, err := h.designUC.GetDesign(c.Request().Context(), actorID, designID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, design, "Design retrieved successfully")
}

// ListBuyerDesigns handles retrieving the buyer's own submissions
func (h *DesignHandler) ListBuyerDesigns(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := pagination(c)
	designs, err := h.designUC.ListBuyerDesigns(c.Request().Context(), buyerID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, designs, "Designs retrieved successfully")
}

// ListBakerInbox handles retrieving the baker's inbox: the unclaimed
// broadcast pool plus everything assigned to the baker
func (h *DesignHandler) ListBakerInbox(c echo.Context) error {
	bakerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := pagination(c)
	designs, err := h.designUC.ListBakerInbox(c.Request().Context(), bakerID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, designs, "Inbox retrieved successfully")
}

// UpdateStatus handles a baker-side lifecycle transition
func (h *DesignHandler) UpdateStatus(c echo.Context) error {
	bakerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	designID, err := uuid.Parse(c.Param("designId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid design ID")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	design, err := h.designUC.UpdateStatusByBaker(c.Request().Context(), bakerID, designID, usecase.StatusUpdateInput{
		Status:            req.Status,
		FinalPrice:        req.FinalPrice,
		ShippingFee:       req.ShippingFee,
		DownpaymentAmount: req.DownpaymentAmount,
		PaymentPreference: req.PaymentPreference,
		BakerNote:         req.BakerNote,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, design, "Design status updated successfully")
}

// ApproveQuote handles the buyer approving a quote
func (h *DesignHandler) ApproveQuote(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	designID, err := uuid.Parse(c.Param("designId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid design ID")
	}

	design, err := h.designUC.ApproveQuote(c.Request().Context(), buyerID, designID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, design, "Quote approved successfully")
}

// DeclineQuote handles the buyer declining a quote or discussion
func (h *DesignHandler) DeclineQuote(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	designID, err := uuid.Parse(c.Param("designId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid design ID")
	}

	design, err := h.designUC.DeclineQuote(c.Request().Context(), buyerID, designID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, design, "Quote declined successfully")
}

// EditDesign handles replacing the configuration of a pending design
func (h *DesignHandler) EditDesign(c echo.Context) error {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	designID, err := uuid.Parse(c.Param("designId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid design ID")
	}

	var req EditDesignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid design edit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	design, err := h.designUC.EditDesign(c.Request().Context(), buyerID, designID, req.Config)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, design, "Design updated successfully")
}
