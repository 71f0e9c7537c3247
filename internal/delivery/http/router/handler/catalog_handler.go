package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"cakery/internal/delivery/http/middleware"
	"cakery/internal/delivery/http/response"
	"cakery/internal/domain/entity"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	PricingUC usecase.PricingUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog and pricing handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	pricingUC usecase.PricingUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		pricingUC: params.PricingUC,
		logger:    params.Logger,
	}
}

// AssetRequest represents the request body for creating or updating a catalog asset
type AssetRequest struct {
	Type          entity.AssetType `json:"type" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	PriceModifier string           `json:"price_modifier" validate:"required"`
	IsAvailable   bool             `json:"is_available"`
	Metadata      map[string]any   `json:"metadata,omitempty"`
}

// EstimateRequest represents the request body for a price estimate
type EstimateRequest struct {
	Config entity.DesignConfig `json:"config" validate:"required"`
}

// EstimateResponse carries the computed estimate
type EstimateResponse struct {
	EstimatedPrice int64 `json:"estimated_price"`
}

// CreateAsset handles creating a catalog asset
func (h *CatalogHandler) CreateAsset(c echo.Context) error {
	var req AssetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid asset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	asset, err := h.catalogUC.CreateAsset(c.Request().Context(), usecase.AssetInput{
		Type:          req.Type,
		Name:          req.Name,
		PriceModifier: req.PriceModifier,
		IsAvailable:   req.IsAvailable,
		Metadata:      req.Metadata,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, asset, "Asset created successfully")
}

// UpdateAsset handles updating a catalog asset
func (h *CatalogHandler) UpdateAsset(c echo.Context) error {
	assetID, err := uuid.Parse(c.Param("assetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid asset ID")
	}

	var req AssetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid asset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	asset, err := h.catalogUC.UpdateAsset(c.Request().Context(), assetID, usecase.AssetInput{
		Type:          req.Type,
		Name:          req.Name,
		PriceModifier: req.PriceModifier,
		IsAvailable:   req.IsAvailable,
		Metadata:      req.Metadata,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, asset, "Asset updated successfully")
}

// DeleteAsset handles removing a catalog asset
func (h *CatalogHandler) DeleteAsset(c echo.Context) error {
	assetID, err := uuid.Parse(c.Param("assetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid asset ID")
	}

	if err := h.catalogUC.DeleteAsset(c.Request().Context(), assetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Asset deleted"}, "Asset deleted successfully")
}

// GetAsset handles retrieving a single catalog asset
func (h *CatalogHandler) GetAsset(c echo.Context) error {
	assetID, err := uuid.Parse(c.Param("assetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid asset ID")
	}

	asset, err := h.catalogUC.GetAsset(c.Request().Context(), assetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, asset, "Asset retrieved successfully")
}

// ListAssets handles listing catalog assets. Admins may request
// unavailable entries as well.
func (h *CatalogHandler) ListAssets(c echo.Context) error {
	includeUnavailable := c.QueryParam("include_unavailable") == "true" &&
		slices.Contains(middleware.GetRoles(c), "admin")

	assets, err := h.catalogUC.ListAssets(c.Request().Context(), includeUnavailable)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assets, "Assets retrieved successfully")
}

// EstimatePrice handles computing a non-binding price estimate for a
// design configuration
func (h *CatalogHandler) EstimatePrice(c echo.Context) error {
	var req EstimateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid estimate input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	price, err := h.pricingUC.EstimatePrice(c.Request().Context(), req.Config)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, EstimateResponse{EstimatedPrice: price}, "Estimate computed successfully")
}
