package repository

import (
	"context"
	"errors"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog asset persistence.
var (
	// ErrAssetNotFound is returned when a catalog asset is not found.
	ErrAssetNotFound = errors.New("catalog asset not found")
	// ErrDuplicateAsset is returned when (type, name) already exists.
	ErrDuplicateAsset = errors.New("catalog asset already exists")
)

// AssetRepository defines the interface for catalog asset database
// operations. The pricing engine only ever calls ListAvailableAssets.
type AssetRepository interface {
	// CreateAsset persists a new catalog asset.
	CreateAsset(ctx context.Context, asset *entity.AssetEntry) error

	// FindAssetByID retrieves an asset by its unique ID.
	FindAssetByID(ctx context.Context, id uuid.UUID) (*entity.AssetEntry, error)

	// ListAvailableAssets retrieves every asset with IsAvailable set,
	// the catalog snapshot the pricing engine consumes.
	ListAvailableAssets(ctx context.Context) ([]*entity.AssetEntry, error)

	// ListAssets retrieves every asset regardless of availability.
	ListAssets(ctx context.Context) ([]*entity.AssetEntry, error)

	// UpdateAsset persists changes to an existing asset.
	UpdateAsset(ctx context.Context, asset *entity.AssetEntry) error

	// DeleteAsset removes an asset by its ID.
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}
