package repository

import (
	"context"
	"errors"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app notification
// database operations.
type NotificationRepository interface {
	// CreateNotification persists a new user notification.
	CreateNotification(ctx context.Context, notification *entity.UserNotification) error

	// ListNotificationsByUser retrieves a user's notifications, newest first.
	ListNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.UserNotification, error)

	// MarkNotificationRead flags a notification as read.
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
}
