// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"cakery/internal/domain/entity"
	"cakery/internal/domain/repository"
	"cakery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// designRepository implements the repository.DesignRepository interface.
type designRepository struct {
	db *gorm.DB
}

// NewDesignRepository is the constructor for designRepository.
func NewDesignRepository(db *gorm.DB) repository.DesignRepository {
	return &designRepository{
		db: db,
	}
}

// CreateDesign persists a new design submission.
func (repo *designRepository) CreateDesign(ctx context.Context, design *entity.DesignSubmission) error {
	designM := fromDesignDomain(design)

	if err := repo.db.WithContext(ctx).Create(designM).Error; err != nil {
		return errors.Wrap(err, "failed to create design submission")
	}

	design.ID = designM.ID
	design.CreatedAt = designM.CreatedAt
	design.UpdatedAt = designM.UpdatedAt

	return nil
}

// FindDesignByID retrieves a submission by its unique ID.
func (repo *designRepository) FindDesignByID(ctx context.Context, id uuid.UUID) (*entity.DesignSubmission, error) {
	var designM model.DesignSubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&designM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDesignNotFound
		}

		return nil, errors.Wrap(err, "failed to find design by ID")
	}

	return toDesignDomain(&designM), nil
}

// ListDesignsByBuyer retrieves a buyer's own submissions, newest first.
func (repo *designRepository) ListDesignsByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.DesignSubmission, error) {
	var designModels []*model.DesignSubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&designModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list designs by buyer")
	}

	return toDesignDomainList(designModels), nil
}

// ListBakerInbox retrieves the unclaimed broadcast pool plus everything
// assigned to the baker, newest first.
func (repo *designRepository) ListBakerInbox(ctx context.Context, bakerID uuid.UUID, limit, offset int) ([]*entity.DesignSubmission, error) {
	var designModels []*model.DesignSubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("(baker_id IS NULL AND request_type = ? AND status = ?) OR baker_id = ?",
			entity.RequestTypeBroadcast, entity.DesignStatusPending, bakerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&designModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list baker inbox")
	}

	return toDesignDomainList(designModels), nil
}

// ClaimDesign atomically assigns an unclaimed broadcast submission to
// the baker and applies the quote update. The guard runs inside the
// UPDATE itself so two bakers racing on the same row cannot both win:
// the loser's conditional write matches zero rows.
func (repo *designRepository) ClaimDesign(ctx context.Context, designID, bakerID uuid.UUID, update repository.QuoteUpdate) error {
	values := quoteUpdateValues(update)
	values["baker_id"] = bakerID

	result := repo.db.WithContext(ctx).
		Model(&model.DesignSubmissionModel{}).
		Where("id = ? AND baker_id IS NULL AND request_type = ? AND status = ?",
			designID, entity.RequestTypeBroadcast, entity.DesignStatusPending).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim design")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDesignAlreadyClaimed
	}

	return nil
}

// UpdateStatusByBaker applies a quote update guarded on the submission
// still being assigned to the baker and in one of the given states.
func (repo *designRepository) UpdateStatusByBaker(ctx context.Context, designID, bakerID uuid.UUID, from []entity.DesignStatus, update repository.QuoteUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DesignSubmissionModel{}).
		Where("id = ? AND baker_id = ? AND status IN ?", designID, bakerID, from).
		Updates(quoteUpdateValues(update))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update design status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDesignStateChanged
	}

	return nil
}

// TransitionStatus moves the submission between states with the guard
// evaluated by the database (compare-and-swap on status).
func (repo *designRepository) TransitionStatus(ctx context.Context, designID uuid.UUID, from []entity.DesignStatus, to entity.DesignStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DesignSubmissionModel{}).
		Where("id = ? AND status IN ?", designID, from).
		Updates(map[string]any{
			"status":     to,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to transition design status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDesignStateChanged
	}

	return nil
}

// ReleaseDesign returns a claimed broadcast submission to the open
// pool, clearing the baker and every quote field.
func (repo *designRepository) ReleaseDesign(ctx context.Context, designID uuid.UUID, from []entity.DesignStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DesignSubmissionModel{}).
		Where("id = ? AND baker_id IS NOT NULL AND request_type = ? AND status IN ?",
			designID, entity.RequestTypeBroadcast, from).
		Updates(map[string]any{
			"status":             entity.DesignStatusPending,
			"baker_id":           nil,
			"final_price":        nil,
			"baker_note":         "",
			"shipping_fee":       0,
			"downpayment_amount": 0,
			"payment_preference": "",
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to release design")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDesignStateChanged
	}

	return nil
}

// UpdateConfig replaces the design configuration while the submission
// is still pending.
func (repo *designRepository) UpdateConfig(ctx context.Context, designID uuid.UUID, config entity.DesignConfig, estimatedPrice int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DesignSubmissionModel{}).
		Where("id = ? AND status = ?", designID, entity.DesignStatusPending).
		Updates(map[string]any{
			"config":          config,
			"estimated_price": estimatedPrice,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update design config")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDesignStateChanged
	}

	return nil
}

// quoteUpdateValues builds the column map for a quote-bearing status
// write. A nil FinalPrice leaves the stored price untouched.
func quoteUpdateValues(update repository.QuoteUpdate) map[string]any {
	values := map[string]any{
		"status":     update.Status,
		"updated_at": time.Now(),
	}
	if update.FinalPrice != nil {
		values["final_price"] = *update.FinalPrice
		values["shipping_fee"] = update.ShippingFee
		values["downpayment_amount"] = update.DownpaymentAmount
		values["payment_preference"] = update.PaymentPreference
	}
	if update.BakerNote != "" {
		values["baker_note"] = update.BakerNote
	}

	return values
}

// --- Mapper Functions ---

// toDesignDomain converts a GORM DesignSubmissionModel to a domain DesignSubmission entity.
func toDesignDomain(data *model.DesignSubmissionModel) *entity.DesignSubmission {
	if data == nil {
		return nil
	}

	return &entity.DesignSubmission{
		ID:                data.ID,
		BuyerID:           data.BuyerID,
		BakerID:           data.BakerID,
		RequestType:       entity.RequestType(data.RequestType),
		Status:            entity.DesignStatus(data.Status),
		Config:            data.Config,
		EstimatedPrice:    data.EstimatedPrice,
		FinalPrice:        data.FinalPrice,
		ShippingFee:       data.ShippingFee,
		DownpaymentAmount: data.DownpaymentAmount,
		PaymentPreference: entity.PaymentPreference(data.PaymentPreference),
		BakerNote:         data.BakerNote,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toDesignDomainList(models []*model.DesignSubmissionModel) []*entity.DesignSubmission {
	designs := make([]*entity.DesignSubmission, 0, len(models))
	for _, designM := range models {
		designs = append(designs, toDesignDomain(designM))
	}

	return designs
}

// fromDesignDomain converts a domain DesignSubmission entity to a GORM DesignSubmissionModel.
func fromDesignDomain(data *entity.DesignSubmission) *model.DesignSubmissionModel {
	if data == nil {
		return nil
	}

	return &model.DesignSubmissionModel{
		ID:                data.ID,
		BuyerID:           data.BuyerID,
		BakerID:           data.BakerID,
		RequestType:       string(data.RequestType),
		Status:            string(data.Status),
		Config:            data.Config,
		EstimatedPrice:    data.EstimatedPrice,
		FinalPrice:        data.FinalPrice,
		ShippingFee:       data.ShippingFee,
		DownpaymentAmount: data.DownpaymentAmount,
		PaymentPreference: string(data.PaymentPreference),
		BakerNote:         data.BakerNote,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
