package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OutboxMessageModel is the GORM-specific struct for the 'outbox_messages'
// table. Rows are written in the same transaction as the state change
// that produced them and consumed by the dispatcher worker.
type OutboxMessageModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind        string         `gorm:"type:text;not null"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	Status      string         `gorm:"type:text;not null;default:'pending';index"`
	Attempts    int            `gorm:"not null;default:0"`
	LastError   string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"index"`
	DeliveredAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OutboxMessageModel) TableName() string {
	return "outbox_messages"
}
