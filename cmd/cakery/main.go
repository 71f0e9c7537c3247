package main

import (
	"context"
	"log/slog"
	"os"

	"cakery/config"
	"cakery/internal/delivery"
	"cakery/internal/delivery/http"
	"cakery/internal/delivery/http/middleware"
	"cakery/internal/delivery/http/router/handler"
	"cakery/internal/domain/service"
	"cakery/internal/infra/auth"
	logs "cakery/internal/infra/log"
	"cakery/internal/infra/persistence/postgres"
	"cakery/internal/infra/qrcode"
	"cakery/internal/infra/upload"
	"cakery/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDesignRepository,
			postgres.NewOrderRepository,
			postgres.NewAssetRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			newUploadService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newUploadService opens the configured blob bucket for image uploads
func newUploadService(params upload.Params, cfg *config.Config) (service.UploadService, error) {
	bucketURL := "mem://"
	publicBaseURL := "http://localhost"
	if cfg.Upload != nil {
		bucketURL = cfg.Upload.BucketURL
		publicBaseURL = cfg.Upload.PublicBaseURL
	}

	return upload.NewBlobService(params, bucketURL, publicBaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPricingService,
			impl.NewDesignService,
			impl.NewOrderService,
			impl.NewCatalogService,
			impl.NewDeviceService,
			impl.NewNotificationService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDesignHandler,
			handler.NewOrderHandler,
			handler.NewCatalogHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
