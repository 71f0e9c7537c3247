// Package usecase defines the application's use case interfaces. The
// delivery layer depends on these contracts, never on the impl package.
package usecase

import (
	"context"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// AssetInput carries the admin-settable fields of a catalog asset.
type AssetInput struct {
	Type          entity.AssetType
	Name          string
	PriceModifier string // decimal string, parsed by the service
	IsAvailable   bool
	Metadata      map[string]any
}

// CatalogUsecase defines the interface for catalog asset management.
// The pricing engine itself never mutates the catalog; this surface is
// for administrators.
type CatalogUsecase interface {
	// CreateAsset creates a new catalog asset.
	CreateAsset(ctx context.Context, input AssetInput) (*entity.AssetEntry, error)

	// UpdateAsset replaces the mutable fields of an existing asset.
	UpdateAsset(ctx context.Context, id uuid.UUID, input AssetInput) (*entity.AssetEntry, error)

	// DeleteAsset removes an asset from the catalog.
	DeleteAsset(ctx context.Context, id uuid.UUID) error

	// GetAsset retrieves a single asset by ID.
	GetAsset(ctx context.Context, id uuid.UUID) (*entity.AssetEntry, error)

	// ListAssets retrieves catalog assets. Non-privileged callers only
	// see available entries.
	ListAssets(ctx context.Context, includeUnavailable bool) ([]*entity.AssetEntry, error)
}
