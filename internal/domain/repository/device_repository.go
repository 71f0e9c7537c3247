package repository

import (
	"context"
	"errors"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device registration is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for push device registrations.
type DeviceRepository interface {
	// UpsertDevice registers a device token, reactivating it if the token
	// is already known.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser retrieves a user's active push targets.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice retires a device token, e.g. after FCM reports it
	// invalid or the user logs out of the device.
	DeactivateDevice(ctx context.Context, fcmToken string) error
}
