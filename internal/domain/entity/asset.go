// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType classifies a priced catalog asset.
type AssetType string

const (
	AssetTypeShape   AssetType = "shape"   // price modifier is a per-layer multiplier
	AssetTypeFlavor  AssetType = "flavor"  // price modifier is a per-layer surcharge
	AssetTypeHeight  AssetType = "height"  // price modifier is a per-layer surcharge keyed by height value
	AssetTypeTopping AssetType = "topping" // price modifier is a flat or per-unit cost
	AssetTypeTexture AssetType = "texture" // price modifier is a flat surcharge
)

// ValidAssetTypes lists every asset type accepted by the catalog.
var ValidAssetTypes = []AssetType{
	AssetTypeShape,
	AssetTypeFlavor,
	AssetTypeHeight,
	AssetTypeTopping,
	AssetTypeTexture,
}

// IsValid reports whether the asset type is one of the known catalog types.
func (t AssetType) IsValid() bool {
	for _, valid := range ValidAssetTypes {
		if t == valid {
			return true
		}
	}

	return false
}

// AssetEntry represents a single priced asset in the design catalog.
// (Type, Name) is unique; only available entries participate in pricing.
type AssetEntry struct {
	ID            uuid.UUID       `json:"id"`             // The Global Unique Identifier (GUID) for the asset.
	Type          AssetType       `json:"type"`           // The asset classification (shape, flavor, height, topping, texture).
	Name          string          `json:"name"`           // The display name; unique within its type.
	PriceModifier decimal.Decimal `json:"price_modifier"` // Multiplier for shapes, surcharge/cost for everything else.
	IsAvailable   bool            `json:"is_available"`   // Unavailable entries are hidden from pricing for non-privileged callers.
	Metadata      map[string]any  `json:"metadata"`       // Free-form descriptive metadata (height value, image URL, etc.).
	CreatedAt     time.Time       `json:"created_at"`     // Timestamp of when this asset was created.
	UpdatedAt     time.Time       `json:"updated_at"`     // Timestamp of the last modification.
}

// HeightValue resolves the numeric height a height asset prices,
// preferring the metadata "value" entry and falling back to the name.
func (a *AssetEntry) HeightValue() (float64, bool) {
	if a.Type != AssetTypeHeight {
		return 0, false
	}
	if raw, ok := a.Metadata["value"]; ok {
		switch v := raw.(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		}
	}
	if v, err := strconv.ParseFloat(a.Name, 64); err == nil {
		return v, true
	}

	return 0, false
}
