package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxKind classifies a deferred side effect recorded alongside a
// state transition.
type OutboxKind string

const (
	// OutboxKindSystemMessage ensures the design's conversation exists
	// and posts a system chat message into it.
	OutboxKindSystemMessage OutboxKind = "system_message"
	// OutboxKindNotification persists a user notification and pushes it
	// to the recipient's active devices.
	OutboxKindNotification OutboxKind = "notification"
	// OutboxKindEvent publishes a lifecycle event to the event bus.
	OutboxKindEvent OutboxKind = "event"
)

// OutboxStatus is the delivery state of an outbox message.
type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "pending"
	OutboxStatusDelivered OutboxStatus = "delivered"
	OutboxStatusFailed    OutboxStatus = "failed" // gave up after max attempts
)

// OutboxMessage is a side-effect intent written in the same transaction
// as the state transition that caused it. A worker delivers pending
// messages after commit; delivery failures never roll back the
// transition that produced them.
type OutboxMessage struct {
	ID          uuid.UUID       `json:"id"`           // The Global Unique Identifier (GUID) for the message.
	Kind        OutboxKind      `json:"kind"`         // What kind of side effect to perform.
	Payload     json.RawMessage `json:"payload"`      // Kind-specific payload.
	Status      OutboxStatus    `json:"status"`       // Delivery state.
	Attempts    int             `json:"attempts"`     // Number of delivery attempts so far.
	LastError   string          `json:"last_error"`   // Most recent delivery error, if any.
	CreatedAt   time.Time       `json:"created_at"`   // Timestamp of when the intent was recorded.
	DeliveredAt *time.Time      `json:"delivered_at"` // Timestamp of successful delivery.
}

// SystemMessagePayload is the payload for OutboxKindSystemMessage.
type SystemMessagePayload struct {
	DesignID uuid.UUID   `json:"design_id"`
	BuyerID  uuid.UUID   `json:"buyer_id"`
	BakerID  uuid.UUID   `json:"baker_id"`
	SenderID uuid.UUID   `json:"sender_id"`
	Kind     MessageKind `json:"kind"`
	Text     string      `json:"text"`
}

// NotificationPayload is the payload for OutboxKindNotification.
type NotificationPayload struct {
	UserID    uuid.UUID        `json:"user_id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	RelatedID *uuid.UUID       `json:"related_id,omitempty"`
}

// EventPayload is the payload for OutboxKindEvent.
type EventPayload struct {
	Topic    string     `json:"topic"` // e.g. "design.status_changed", "order.created"
	DesignID uuid.UUID  `json:"design_id"`
	OrderID  *uuid.UUID `json:"order_id,omitempty"`
	Status   string     `json:"status,omitempty"`
}
