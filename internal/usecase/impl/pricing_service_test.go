package impl

import (
	"context"
	"testing"

	"cakery/config"
	"cakery/internal/domain/entity"
	mockRepo "cakery/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingService_EstimatePrice(t *testing.T) {
	assetRepo := mockRepo.NewMockAssetRepository(t)
	service := NewPricingService(PricingServiceParams{
		AssetRepo: assetRepo,
		Config: &config.Config{
			Pricing: &config.PricingConfig{
				BaseFee:            500,
				LayerDiameterCost:  100,
				DefaultLayerHeight: 4,
			},
		},
	})

	ctx := context.Background()
	assetRepo.EXPECT().ListAvailableAssets(ctx).Return([]*entity.AssetEntry{
		{
			ID:            uuid.New(),
			Type:          entity.AssetTypeFlavor,
			Name:          "chocolate",
			PriceModifier: decimal.NewFromInt(250),
			IsAvailable:   true,
		},
	}, nil)

	// base 500 + layer (8in * 100) + chocolate 250.
	price, err := service.EstimatePrice(ctx, entity.DesignConfig{
		Shape: "round",
		Layers: []entity.Layer{
			{Width: 8, Flavor: "chocolate", Height: 4},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1550), price)
}

func TestPricingService_EstimatePrice_DefaultConstants(t *testing.T) {
	assetRepo := mockRepo.NewMockAssetRepository(t)
	service := NewPricingService(PricingServiceParams{
		AssetRepo: assetRepo,
		Config:    &config.Config{},
	})

	ctx := context.Background()
	assetRepo.EXPECT().ListAvailableAssets(ctx).Return(nil, nil)

	// base 300 + layer (8in * 60) with an empty catalog.
	price, err := service.EstimatePrice(ctx, entity.DesignConfig{
		Shape: "round",
		Layers: []entity.Layer{
			{Width: 8, Flavor: "vanilla"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(780), price)
}

func TestPricingService_EstimatePrice_RepoError(t *testing.T) {
	assetRepo := mockRepo.NewMockAssetRepository(t)
	service := NewPricingService(PricingServiceParams{
		AssetRepo: assetRepo,
		Config:    &config.Config{},
	})

	ctx := context.Background()
	assetRepo.EXPECT().ListAvailableAssets(ctx).Return(nil, assert.AnError)

	_, err := service.EstimatePrice(ctx, testDesignConfig())
	require.Error(t, err)
}
