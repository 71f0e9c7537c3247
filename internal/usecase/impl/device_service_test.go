package impl

import (
	"context"
	"testing"

	"cakery/internal/domain/entity"
	domainerrors "cakery/internal/domain/errors"
	"cakery/internal/domain/repository"
	mockRepo "cakery/internal/mocks/repository"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo})

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(device *entity.UserDevice) bool {
			return device.UserID == userID &&
				device.FCMToken == "token-abc" &&
				device.Platform == "android" &&
				device.IsActive
		})).
		Return(nil)

	err := service.RegisterDevice(ctx, userID, usecase.DeviceInfo{
		FCMToken: "token-abc",
		Platform: "android",
	})
	require.NoError(t, err)
}

func TestDeviceService_RegisterDevice_EmptyToken(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo})

	err := service.RegisterDevice(context.Background(), uuid.New(), usecase.DeviceInfo{Platform: "ios"})
	assertAppError(t, domainerrors.ErrValidationFailed, err)
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo})

	ctx := context.Background()
	deviceRepo.EXPECT().DeactivateDevice(ctx, "token-abc").Return(nil)

	require.NoError(t, service.UnregisterDevice(ctx, "token-abc"))
}

func TestDeviceService_UnregisterDevice_AlreadyGone(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo})

	ctx := context.Background()
	deviceRepo.EXPECT().DeactivateDevice(ctx, "token-gone").Return(repository.ErrDeviceNotFound)

	// retiring an unknown token is not an error
	assert.NoError(t, service.UnregisterDevice(ctx, "token-gone"))
}

func TestDeviceService_UnregisterDevice_EmptyToken(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{DeviceRepo: deviceRepo})

	err := service.UnregisterDevice(context.Background(), "")
	assertAppError(t, domainerrors.ErrValidationFailed, err)
}
