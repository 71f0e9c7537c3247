package postgres

import (
	"context"
	"time"

	"cakery/internal/domain/entity"
	"cakery/internal/domain/repository"
	"cakery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

// Enqueue persists a pending outbox message. Callers run this inside
// the same transaction as the state change producing the intent.
func (repo *outboxRepository) Enqueue(ctx context.Context, message *entity.OutboxMessage) error {
	messageM := fromOutboxDomain(message)
	messageM.Status = string(entity.OutboxStatusPending)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return errors.Wrap(err, "failed to enqueue outbox message")
	}

	message.ID = messageM.ID
	message.Status = entity.OutboxStatusPending
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FetchPending retrieves up to limit pending messages, oldest first.
// SKIP LOCKED lets multiple dispatcher instances poll the same table
// without handing out the same message twice.
func (repo *outboxRepository) FetchPending(ctx context.Context, limit int) ([]*entity.OutboxMessage, error) {
	var messageModels []*model.OutboxMessageModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", entity.OutboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch pending outbox messages")
	}

	messages := make([]*entity.OutboxMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toOutboxDomain(messageM))
	}

	return messages, nil
}

// MarkDelivered flags a message as successfully delivered.
func (repo *outboxRepository) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.OutboxMessageModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       entity.OutboxStatusDelivered,
			"delivered_at": now,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark outbox message delivered")
	}

	return nil
}

// MarkFailed records a failed delivery attempt, retiring the message
// when final is true.
func (repo *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, final bool) error {
	status := entity.OutboxStatusPending
	if final {
		status = entity.OutboxStatusFailed
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OutboxMessageModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": lastError,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark outbox message failed")
	}

	return nil
}

// --- Mapper Functions ---

func toOutboxDomain(data *model.OutboxMessageModel) *entity.OutboxMessage {
	if data == nil {
		return nil
	}

	return &entity.OutboxMessage{
		ID:          data.ID,
		Kind:        entity.OutboxKind(data.Kind),
		Payload:     []byte(data.Payload),
		Status:      entity.OutboxStatus(data.Status),
		Attempts:    data.Attempts,
		LastError:   data.LastError,
		CreatedAt:   data.CreatedAt,
		DeliveredAt: data.DeliveredAt,
	}
}

func fromOutboxDomain(data *entity.OutboxMessage) *model.OutboxMessageModel {
	if data == nil {
		return nil
	}

	return &model.OutboxMessageModel{
		ID:          data.ID,
		Kind:        string(data.Kind),
		Payload:     datatypes.JSON(data.Payload),
		Status:      string(data.Status),
		Attempts:    data.Attempts,
		LastError:   data.LastError,
		CreatedAt:   data.CreatedAt,
		DeliveredAt: data.DeliveredAt,
	}
}
