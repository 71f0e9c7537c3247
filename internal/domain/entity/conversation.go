package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind classifies the system messages the lifecycle emits.
type MessageKind string

const (
	MessageKindText       MessageKind = "text"       // ordinary user chat
	MessageKindQuotation  MessageKind = "quotation"  // formatted quote announcement
	MessageKindDiscussion MessageKind = "discussion" // discussion-opener on claim or re-entry
	MessageKindApproval   MessageKind = "approval"   // buyer approved the quote
	MessageKindDecline    MessageKind = "decline"    // buyer declined the quote
)

// Conversation links a design submission to a chat thread between its
// buyer and assigned baker. One conversation exists per (design, buyer,
// baker) triple; lookup before create keeps creation idempotent.
type Conversation struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the conversation.
	DesignID  uuid.UUID `json:"design_id"`  // The design submission this thread belongs to.
	BuyerID   uuid.UUID `json:"buyer_id"`   // Buyer participant.
	BakerID   uuid.UUID `json:"baker_id"`   // Baker participant.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this conversation was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// ChatMessage is a single message in a conversation. The lifecycle core
// only writes system messages; ordinary chat is outside its scope.
type ChatMessage struct {
	ID             uuid.UUID   `json:"id"`              // The Global Unique Identifier (GUID) for the message.
	ConversationID uuid.UUID   `json:"conversation_id"` // The conversation this message belongs to.
	SenderID       uuid.UUID   `json:"sender_id"`       // The user on whose behalf the message was sent.
	Kind           MessageKind `json:"kind"`            // text or one of the system kinds.
	Text           string      `json:"text"`            // Rendered message body.
	SentAt         time.Time   `json:"sent_at"`         // Timestamp of when the message was sent.
}
