package usecase

import (
	"context"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase serves the in-app notification inbox. Creation
// happens through the outbox dispatcher, not here.
type NotificationUsecase interface {
	// ListNotifications retrieves a user's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.UserNotification, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
