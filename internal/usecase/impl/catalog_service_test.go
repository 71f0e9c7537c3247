package impl

import (
	"context"
	"testing"

	"cakery/internal/domain/entity"
	domainerrors "cakery/internal/domain/errors"
	"cakery/internal/domain/repository"
	mockRepo "cakery/internal/mocks/repository"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceFixture(t *testing.T) (*mockRepo.MockAssetRepository, usecase.CatalogUsecase) {
	t.Helper()

	assetRepo := mockRepo.NewMockAssetRepository(t)
	service := NewCatalogService(CatalogServiceParams{AssetRepo: assetRepo})

	return assetRepo, service
}

func TestCatalogService_CreateAsset(t *testing.T) {
	assetRepo, service := newCatalogServiceFixture(t)

	ctx := context.Background()

	var created *entity.AssetEntry
	assetRepo.EXPECT().
		CreateAsset(ctx, mock.AnythingOfType("*entity.AssetEntry")).
		Run(func(_ context.Context, asset *entity.AssetEntry) {
			created = asset
		}).
		Return(nil)

	asset, err := service.CreateAsset(ctx, usecase.AssetInput{
		Type:          entity.AssetTypeFlavor,
		Name:          "Chocolate",
		PriceModifier: "350.50",
		IsAvailable:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, asset.ID)
	assert.Equal(t, "Chocolate", asset.Name)
	assert.True(t, asset.PriceModifier.Equal(decimal.RequireFromString("350.50")))
	assert.True(t, asset.IsAvailable)
}

func TestCatalogService_CreateAsset_Validation(t *testing.T) {
	_, service := newCatalogServiceFixture(t)

	ctx := context.Background()

	_, err := service.CreateAsset(ctx, usecase.AssetInput{
		Type:          entity.AssetType("sprinkle"),
		Name:          "Rainbow",
		PriceModifier: "10",
	})
	assertAppError(t, domainerrors.ErrInvalidAssetType, err)

	_, err = service.CreateAsset(ctx, usecase.AssetInput{
		Type:          entity.AssetTypeTopping,
		PriceModifier: "10",
	})
	assertAppError(t, domainerrors.ErrValidationFailed, err)

	_, err = service.CreateAsset(ctx, usecase.AssetInput{
		Type:          entity.AssetTypeTopping,
		Name:          "Cherry",
		PriceModifier: "not-a-number",
	})
	assertAppError(t, domainerrors.ErrValidationFailed, err)
}

func TestCatalogService_CreateAsset_Duplicate(t *testing.T) {
	assetRepo, service := newCatalogServiceFixture(t)

	ctx := context.Background()
	assetRepo.EXPECT().
		CreateAsset(ctx, mock.AnythingOfType("*entity.AssetEntry")).
		Return(repository.ErrDuplicateAsset)

	_, err := service.CreateAsset(ctx, usecase.AssetInput{
		Type:          entity.AssetTypeFlavor,
		Name:          "Chocolate",
		PriceModifier: "350",
	})
	assertAppError(t, domainerrors.ErrDuplicateAsset, err)
}

func TestCatalogService_UpdateAsset_PreservesIdentity(t *testing.T) {
	assetRepo, service := newCatalogServiceFixture(t)

	ctx := context.Background()
	existing := &entity.AssetEntry{
		ID:            uuid.New(),
		Type:          entity.AssetTypeFlavor,
		Name:          "Chocolate",
		PriceModifier: decimal.NewFromInt(350),
	}

	assetRepo.EXPECT().FindAssetByID(ctx, existing.ID).Return(existing, nil)
	assetRepo.EXPECT().
		UpdateAsset(ctx, mock.MatchedBy(func(asset *entity.AssetEntry) bool {
			return asset.ID == existing.ID && asset.Name == "Dark Chocolate"
		})).
		Return(nil)

	updated, err := service.UpdateAsset(ctx, existing.ID, usecase.AssetInput{
		Type:          entity.AssetTypeFlavor,
		Name:          "Dark Chocolate",
		PriceModifier: "400",
		IsAvailable:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID)
}

func TestCatalogService_UpdateAsset_NotFound(t *testing.T) {
	assetRepo, service := newCatalogServiceFixture(t)

	id := uuid.New()
	assetRepo.EXPECT().
		FindAssetByID(mock.Anything, id).
		Return(nil, repository.ErrAssetNotFound)

	_, err := service.UpdateAsset(context.Background(), id, usecase.AssetInput{
		Type:          entity.AssetTypeFlavor,
		Name:          "Vanilla",
		PriceModifier: "300",
	})
	assertAppError(t, domainerrors.ErrAssetNotFound, err)
}

func TestCatalogService_DeleteAsset_NotFound(t *testing.T) {
	assetRepo, service := newCatalogServiceFixture(t)

	id := uuid.New()
	assetRepo.EXPECT().
		DeleteAsset(mock.Anything, id).
		Return(repository.ErrAssetNotFound)

	err := service.DeleteAsset(context.Background(), id)
	assertAppError(t, domainerrors.ErrAssetNotFound, err)
}

func TestCatalogService_ListAssets(t *testing.T) {
	assetRepo, service := newCatalogServiceFixture(t)

	ctx := context.Background()
	available := []*entity.AssetEntry{{ID: uuid.New(), IsAvailable: true}}
	all := append(available, &entity.AssetEntry{ID: uuid.New()})

	assetRepo.EXPECT().ListAvailableAssets(ctx).Return(available, nil)
	got, err := service.ListAssets(ctx, false)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	assetRepo.EXPECT().ListAssets(ctx).Return(all, nil)
	got, err = service.ListAssets(ctx, true)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
