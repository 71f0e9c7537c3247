package model

import (
	"time"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// DesignSubmissionModel is the GORM-specific struct for the
// 'design_submissions' table. The design configuration is stored as a
// jsonb document; the lifecycle fields are first-class columns so the
// conditional claim and status updates can be expressed in SQL.
type DesignSubmissionModel struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	BakerID     *uuid.UUID          `gorm:"type:uuid;index"`
	RequestType string              `gorm:"type:text;not null"`
	Status      string              `gorm:"type:text;not null;index"`
	Config      entity.DesignConfig `gorm:"type:jsonb;serializer:json;not null"`

	EstimatedPrice    int64  `gorm:"not null;default:0"`
	FinalPrice        *int64 `gorm:""`
	ShippingFee       int64  `gorm:"not null;default:0"`
	DownpaymentAmount int64  `gorm:"not null;default:0"`
	PaymentPreference string `gorm:"type:text"`
	BakerNote         string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DesignSubmissionModel) TableName() string {
	return "design_submissions"
}
