// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cakery/internal/delivery/http/middleware"
	"cakery/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DesignHandler       *handler.DesignHandler
	OrderHandler        *handler.OrderHandler
	CatalogHandler      *handler.CatalogHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	UploadHandler       *handler.UploadHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	designHandler       *handler.DesignHandler
	orderHandler        *handler.OrderHandler
	catalogHandler      *handler.CatalogHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	uploadHandler       *handler.UploadHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		designHandler:       params.DesignHandler,
		orderHandler:        params.OrderHandler,
		catalogHandler:      params.CatalogHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		uploadHandler:       params.UploadHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog browsing and price estimation
	e.GET("/catalog/assets", r.catalogHandler.ListAssets)
	e.GET("/catalog/assets/:assetId", r.catalogHandler.GetAsset)
	e.POST("/designs/estimate", r.catalogHandler.EstimatePrice)

	// Design submission lifecycle
	designGroup := e.Group("/designs")
	designGroup.Use(r.authMiddleware.Authenticate)
	{
		designGroup.POST("", r.designHandler.SubmitDesign)
		designGroup.GET("", r.designHandler.ListBuyerDesigns)
		designGroup.GET("/inbox", r.designHandler.ListBakerInbox, r.authMiddleware.RequireRole("baker"))
		designGroup.GET("/:designId", r.designHandler.GetDesign)
		designGroup.PUT("/:designId/config", r.designHandler.EditDesign)
		designGroup.PATCH("/:designId/status", r.designHandler.UpdateStatus, r.authMiddleware.RequireRole("baker"))
		designGroup.POST("/:designId/approve", r.designHandler.ApproveQuote)
		designGroup.POST("/:designId/decline", r.designHandler.DeclineQuote)
		designGroup.POST("/:designId/order", r.orderHandler.ConvertToOrder)
	}

	// Orders
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListBuyerOrders)
		orderGroup.GET("/baker", r.orderHandler.ListBakerOrders, r.authMiddleware.RequireRole("baker"))
		orderGroup.GET("/:orderId", r.orderHandler.GetOrder)
		orderGroup.POST("/:orderId/verify-payment", r.orderHandler.VerifyPayment, r.authMiddleware.RequireRole("baker"))
	}

	// Catalog administration requires the "admin" role
	adminGroup := e.Group("/catalog/assets")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("", r.catalogHandler.CreateAsset)
		adminGroup.PUT("/:assetId", r.catalogHandler.UpdateAsset)
		adminGroup.DELETE("/:assetId", r.catalogHandler.DeleteAsset)
	}

	// Push devices
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.DELETE("/:token", r.deviceHandler.UnregisterDevice)
	}

	// Notification inbox
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.POST("/:notificationId/read", r.notificationHandler.MarkRead)
	}

	// Image uploads (design snapshots, proof of payment)
	uploadGroup := e.Group("/uploads")
	uploadGroup.Use(r.authMiddleware.Authenticate)
	{
		uploadGroup.POST("", r.uploadHandler.UploadImage)
	}
}
