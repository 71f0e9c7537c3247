package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies user notifications the lifecycle emits.
type NotificationKind string

const (
	NotificationKindNewRequest    NotificationKind = "new_request"    // a design request landed in a baker's inbox
	NotificationKindStatusChanged NotificationKind = "status_changed" // a submission the user is party to changed state
	NotificationKindQuoteReceived NotificationKind = "quote_received" // the baker attached a quote
	NotificationKindOrderPlaced   NotificationKind = "order_placed"   // an approved design was converted
)

// UserNotification is a persisted in-app notification. Push delivery to
// registered devices is best-effort on top of this record.
type UserNotification struct {
	ID        uuid.UUID        `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID        `json:"user_id"`    // The recipient.
	Kind      NotificationKind `json:"kind"`       // Notification classification.
	Title     string           `json:"title"`      // Short headline.
	Message   string           `json:"message"`    // Body text.
	RelatedID *uuid.UUID       `json:"related_id"` // The design or order the notification is about.
	IsRead    bool             `json:"is_read"`    // Whether the user has seen it.
	CreatedAt time.Time        `json:"created_at"` // Timestamp of when this notification was created.
}

// UserDevice is a registered push target for a user.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID `json:"user_id"`    // The owning user.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging registration token.
	Platform  string    `json:"platform"`   // ios, android, web.
	IsActive  bool      `json:"is_active"`  // Inactive devices are skipped during push fan-out.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
