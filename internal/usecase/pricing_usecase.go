package usecase

import (
	"context"

	"cakery/internal/domain/entity"
)

// PricingUsecase exposes the price engine to clients for informational
// estimates. The figure it returns is never trusted by money-moving
// operations; those recompute server-side.
type PricingUsecase interface {
	// EstimatePrice prices a design configuration against the current
	// catalog snapshot.
	EstimatePrice(ctx context.Context, config entity.DesignConfig) (int64, error)
}
