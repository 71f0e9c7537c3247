package impl

import (
	"context"
	"testing"

	"cakery/internal/domain/entity"
	mockRepo "cakery/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{NotificationRepo: notificationRepo})

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.UserNotification{
		{ID: uuid.New(), UserID: userID, Kind: entity.NotificationKindQuoteReceived},
		{ID: uuid.New(), UserID: userID, Kind: entity.NotificationKindStatusChanged},
	}

	notificationRepo.EXPECT().ListNotificationsByUser(ctx, userID, 20, 0).Return(expected, nil)

	notifications, err := service.ListNotifications(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_ListNotifications_RepoError(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{NotificationRepo: notificationRepo})

	ctx := context.Background()
	userID := uuid.New()
	notificationRepo.EXPECT().ListNotificationsByUser(ctx, userID, 20, 0).Return(nil, assert.AnError)

	_, err := service.ListNotifications(ctx, userID, 20, 0)
	require.Error(t, err)
}

func TestNotificationService_MarkRead(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{NotificationRepo: notificationRepo})

	ctx := context.Background()
	notificationID := uuid.New()
	notificationRepo.EXPECT().MarkNotificationRead(ctx, notificationID).Return(nil)

	require.NoError(t, service.MarkRead(ctx, notificationID))
}
