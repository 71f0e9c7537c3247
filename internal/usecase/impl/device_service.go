package impl

import (
	"context"
	"time"

	"cakery/internal/domain/entity"
	domainerrors "cakery/internal/domain/errors"
	"cakery/internal/domain/repository"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device registration service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
	}
}

// RegisterDevice registers or reactivates a device token for a user
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info usecase.DeviceInfo) error {
	if info.FCMToken == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcmToken is required")
	}

	now := time.Now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  info.FCMToken,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return errors.Wrap(err, "failed to upsert device")
	}

	return nil
}

// UnregisterDevice retires a device token
func (s *deviceService) UnregisterDevice(ctx context.Context, fcmToken string) error {
	if fcmToken == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcmToken is required")
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil // already gone, nothing to do
		}

		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}
