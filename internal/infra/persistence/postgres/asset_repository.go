package postgres

import (
	"context"

	"cakery/internal/domain/entity"
	"cakery/internal/domain/repository"
	"cakery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assetRepository implements the repository.AssetRepository interface.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository is the constructor for assetRepository.
func NewAssetRepository(db *gorm.DB) repository.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// CreateAsset persists a new catalog asset.
func (repo *assetRepository) CreateAsset(ctx context.Context, asset *entity.AssetEntry) error {
	assetM := fromAssetDomain(asset)

	if err := repo.db.WithContext(ctx).Create(assetM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAsset
		}

		return errors.Wrap(err, "failed to create catalog asset")
	}

	asset.ID = assetM.ID
	asset.CreatedAt = assetM.CreatedAt
	asset.UpdatedAt = assetM.UpdatedAt

	return nil
}

// FindAssetByID retrieves an asset by its unique ID.
func (repo *assetRepository) FindAssetByID(ctx context.Context, id uuid.UUID) (*entity.AssetEntry, error) {
	var assetM model.AssetEntryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by ID")
	}

	return toAssetDomain(&assetM), nil
}

// ListAvailableAssets retrieves the pricing snapshot: every available asset.
func (repo *assetRepository) ListAvailableAssets(ctx context.Context) ([]*entity.AssetEntry, error) {
	var assetModels []*model.AssetEntryModel

	if err := repo.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("type, name").
		Find(&assetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list available assets")
	}

	return toAssetDomainList(assetModels), nil
}

// ListAssets retrieves every asset regardless of availability.
func (repo *assetRepository) ListAssets(ctx context.Context) ([]*entity.AssetEntry, error) {
	var assetModels []*model.AssetEntryModel

	if err := repo.db.WithContext(ctx).
		Order("type, name").
		Find(&assetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list assets")
	}

	return toAssetDomainList(assetModels), nil
}

// UpdateAsset persists changes to an existing asset.
func (repo *assetRepository) UpdateAsset(ctx context.Context, asset *entity.AssetEntry) error {
	assetM := fromAssetDomain(asset)

	result := repo.db.WithContext(ctx).
		Model(&model.AssetEntryModel{}).
		Where("id = ?", asset.ID).
		Updates(map[string]any{
			"type":           assetM.Type,
			"name":           assetM.Name,
			"price_modifier": assetM.PriceModifier,
			"is_available":   assetM.IsAvailable,
			"metadata":       assetM.Metadata,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateAsset
		}

		return errors.Wrap(result.Error, "failed to update asset")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssetNotFound
	}

	return nil
}

// DeleteAsset removes an asset by its ID.
func (repo *assetRepository) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AssetEntryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete asset")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssetNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAssetDomain converts a GORM AssetEntryModel to a domain AssetEntry entity.
func toAssetDomain(data *model.AssetEntryModel) *entity.AssetEntry {
	if data == nil {
		return nil
	}

	return &entity.AssetEntry{
		ID:            data.ID,
		Type:          entity.AssetType(data.Type),
		Name:          data.Name,
		PriceModifier: data.PriceModifier,
		IsAvailable:   data.IsAvailable,
		Metadata:      data.Metadata,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toAssetDomainList(models []*model.AssetEntryModel) []*entity.AssetEntry {
	assets := make([]*entity.AssetEntry, 0, len(models))
	for _, assetM := range models {
		assets = append(assets, toAssetDomain(assetM))
	}

	return assets
}

// fromAssetDomain converts a domain AssetEntry entity to a GORM AssetEntryModel.
func fromAssetDomain(data *entity.AssetEntry) *model.AssetEntryModel {
	if data == nil {
		return nil
	}

	return &model.AssetEntryModel{
		ID:            data.ID,
		Type:          string(data.Type),
		Name:          data.Name,
		PriceModifier: data.PriceModifier,
		IsAvailable:   data.IsAvailable,
		Metadata:      data.Metadata,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
