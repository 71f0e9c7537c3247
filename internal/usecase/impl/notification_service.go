package impl

import (
	"context"

	"cakery/internal/domain/entity"
	"cakery/internal/domain/repository"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification inbox service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
	}
}

// ListNotifications retrieves a user's notifications, newest first
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.UserNotification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flags a notification as read
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, id); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}
