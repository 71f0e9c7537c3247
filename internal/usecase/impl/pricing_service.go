package impl

import (
	"context"

	"cakery/config"
	"cakery/internal/domain/entity"
	"cakery/internal/domain/pricing"
	"cakery/internal/domain/repository"
	"cakery/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pricingService struct {
	assetRepo repository.AssetRepository
	engine    *pricing.Engine
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	AssetRepo repository.AssetRepository
	Config    *config.Config
}

// NewPricingService creates a new pricing service instance
func NewPricingService(params PricingServiceParams) usecase.PricingUsecase {
	return &pricingService{
		assetRepo: params.AssetRepo,
		engine:    engineFromConfig(params.Config),
	}
}

// EstimatePrice prices a design configuration against the current
// catalog snapshot.
func (s *pricingService) EstimatePrice(ctx context.Context, config entity.DesignConfig) (int64, error) {
	assets, err := s.assetRepo.ListAvailableAssets(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list available assets")
	}

	return s.engine.ComputePrice(config, pricing.NewCatalog(assets)), nil
}

// engineFromConfig builds the pricing engine from the configured
// constants, falling back to the engine defaults when unset.
func engineFromConfig(cfg *config.Config) *pricing.Engine {
	if cfg == nil || cfg.Pricing == nil {
		return pricing.NewEngine(0, 0, 0)
	}

	return pricing.NewEngine(
		cfg.Pricing.BaseFee,
		cfg.Pricing.LayerDiameterCost,
		cfg.Pricing.DefaultLayerHeight,
	)
}
