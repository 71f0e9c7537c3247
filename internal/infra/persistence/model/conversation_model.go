package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel is the GORM-specific struct for the 'conversations'
// table. The unique index on (design_id, buyer_id, baker_id) keeps
// find-or-create idempotent under concurrent dispatchers.
type ConversationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DesignID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_participants"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_participants;index"`
	BakerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_participants;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// ChatMessageModel is the GORM-specific struct for the 'chat_messages' table.
type ChatMessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null"`
	Kind           string    `gorm:"type:text;not null;default:'text'"`
	Text           string    `gorm:"type:text;not null"`
	SentAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
