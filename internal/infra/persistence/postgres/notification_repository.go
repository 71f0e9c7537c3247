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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new user notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.UserNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListNotificationsByUser retrieves a user's notifications, newest first.
func (repo *notificationRepository) ListNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.UserNotification, error) {
	var notificationModels []*model.UserNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by user")
	}

	notifications := make([]*entity.UserNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkNotificationRead flags a notification as read.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserNotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.UserNotificationModel) *entity.UserNotification {
	if data == nil {
		return nil
	}

	return &entity.UserNotification{
		ID:        data.ID,
		UserID:    data.UserID,
		Kind:      entity.NotificationKind(data.Kind),
		Title:     data.Title,
		Message:   data.Message,
		RelatedID: data.RelatedID,
		IsRead:    data.IsRead,
		CreatedAt: data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.UserNotification) *model.UserNotificationModel {
	if data == nil {
		return nil
	}

	return &model.UserNotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Kind:      string(data.Kind),
		Title:     data.Title,
		Message:   data.Message,
		RelatedID: data.RelatedID,
		IsRead:    data.IsRead,
		CreatedAt: data.CreatedAt,
	}
}
