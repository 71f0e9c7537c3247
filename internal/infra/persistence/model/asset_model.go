// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetEntryModel is the GORM-specific struct for the 'catalog_assets' table.
// (Type, Name) carries a unique index; the pricing engine only reads
// rows with is_available set.
type AssetEntryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type          string          `gorm:"type:text;not null;uniqueIndex:idx_catalog_assets_type_name"`
	Name          string          `gorm:"type:text;not null;uniqueIndex:idx_catalog_assets_type_name"`
	PriceModifier decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	IsAvailable   bool            `gorm:"not null;default:true;index"`
	Metadata      map[string]any  `gorm:"type:jsonb;serializer:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssetEntryModel) TableName() string {
	return "catalog_assets"
}
