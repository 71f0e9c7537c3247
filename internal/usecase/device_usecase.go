package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DeviceInfo carries a push device registration.
type DeviceInfo struct {
	FCMToken string
	Platform string // ios, android, web
}

// DeviceUsecase manages push device registrations.
type DeviceUsecase interface {
	// RegisterDevice registers or reactivates a device token for a user.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info DeviceInfo) error

	// UnregisterDevice retires a device token.
	UnregisterDevice(ctx context.Context, fcmToken string) error
}
