// Package impl contains the concrete implementations of the use case
// interfaces.
package impl

import (
	"context"
	"time"

	"cakery/internal/domain/entity"
	domainerrors "cakery/internal/domain/errors"
	"cakery/internal/domain/repository"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type catalogService struct {
	assetRepo repository.AssetRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	AssetRepo repository.AssetRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		assetRepo: params.AssetRepo,
	}
}

// CreateAsset creates a new catalog asset
func (s *catalogService) CreateAsset(ctx context.Context, input usecase.AssetInput) (*entity.AssetEntry, error) {
	asset, err := assetFromInput(input)
	if err != nil {
		return nil, err
	}
	asset.ID = uuid.New()
	asset.CreatedAt = time.Now()
	asset.UpdatedAt = asset.CreatedAt

	if err := s.assetRepo.CreateAsset(ctx, asset); err != nil {
		if errors.Is(err, repository.ErrDuplicateAsset) {
			return nil, domainerrors.ErrDuplicateAsset
		}

		return nil, errors.Wrap(err, "failed to create asset")
	}

	return asset, nil
}

// UpdateAsset replaces the mutable fields of an existing asset
func (s *catalogService) UpdateAsset(ctx context.Context, id uuid.UUID, input usecase.AssetInput) (*entity.AssetEntry, error) {
	existing, err := s.assetRepo.FindAssetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, domainerrors.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset")
	}

	updated, err := assetFromInput(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if err := s.assetRepo.UpdateAsset(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrDuplicateAsset) {
			return nil, domainerrors.ErrDuplicateAsset
		}

		return nil, errors.Wrap(err, "failed to update asset")
	}

	return updated, nil
}

// DeleteAsset removes an asset from the catalog
func (s *catalogService) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	if err := s.assetRepo.DeleteAsset(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return domainerrors.ErrAssetNotFound
		}

		return errors.Wrap(err, "failed to delete asset")
	}

	return nil
}

// GetAsset retrieves a single asset by ID
func (s *catalogService) GetAsset(ctx context.Context, id uuid.UUID) (*entity.AssetEntry, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, domainerrors.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset")
	}

	return asset, nil
}

// ListAssets retrieves catalog assets
func (s *catalogService) ListAssets(ctx context.Context, includeUnavailable bool) ([]*entity.AssetEntry, error) {
	var assets []*entity.AssetEntry
	var err error

	if includeUnavailable {
		assets, err = s.assetRepo.ListAssets(ctx)
	} else {
		assets, err = s.assetRepo.ListAvailableAssets(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assets")
	}

	return assets, nil
}

// assetFromInput validates and converts an AssetInput to an entity.
func assetFromInput(input usecase.AssetInput) (*entity.AssetEntry, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidAssetType
	}
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("asset name is required")
	}

	modifier, err := decimal.NewFromString(input.PriceModifier)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("priceModifier must be a decimal number")
	}

	return &entity.AssetEntry{
		Type:          input.Type,
		Name:          input.Name,
		PriceModifier: modifier,
		IsAvailable:   input.IsAvailable,
		Metadata:      input.Metadata,
	}, nil
}
