// Package pricing implements the deterministic price calculation for a
// design configuration against a catalog snapshot. It is pure: no I/O,
// no hidden state, same inputs always produce the same price.
package pricing

import (
	"strconv"
	"strings"

	"cakery/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Catalog is an immutable pricing snapshot built from the available
// asset entries. Shape, flavor, height and texture are addressed
// case-insensitively; toppings by their exact catalog name.
type Catalog struct {
	shapeMultiplier map[string]decimal.Decimal
	flavorSurcharge map[string]decimal.Decimal
	heightSurcharge map[string]decimal.Decimal
	toppingCost     map[string]decimal.Decimal
	textureCost     map[string]decimal.Decimal
}

// NewCatalog builds the lookup tables from a catalog listing,
// restricted to available entries. Unavailable assets never price.
func NewCatalog(assets []*entity.AssetEntry) *Catalog {
	catalog := &Catalog{
		shapeMultiplier: make(map[string]decimal.Decimal),
		flavorSurcharge: make(map[string]decimal.Decimal),
		heightSurcharge: make(map[string]decimal.Decimal),
		toppingCost:     make(map[string]decimal.Decimal),
		textureCost:     make(map[string]decimal.Decimal),
	}

	for _, asset := range assets {
		if asset == nil || !asset.IsAvailable {
			continue
		}

		switch asset.Type {
		case entity.AssetTypeShape:
			catalog.shapeMultiplier[strings.ToLower(asset.Name)] = asset.PriceModifier
		case entity.AssetTypeFlavor:
			catalog.flavorSurcharge[strings.ToLower(asset.Name)] = asset.PriceModifier
		case entity.AssetTypeHeight:
			if value, ok := asset.HeightValue(); ok {
				catalog.heightSurcharge[FormatHeight(value)] = asset.PriceModifier
			}
		case entity.AssetTypeTopping:
			catalog.toppingCost[asset.Name] = asset.PriceModifier
		case entity.AssetTypeTexture:
			catalog.textureCost[strings.ToLower(asset.Name)] = asset.PriceModifier
		}
	}

	return catalog
}

// FormatHeight is the canonical string key for a numeric height value.
func FormatHeight(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// ShapeMultiplier resolves a shape multiplier, defaulting to 1 for
// shapes absent from the catalog. Lookups fail open so catalog gaps
// never block a quote.
func (c *Catalog) ShapeMultiplier(name string) decimal.Decimal {
	if multiplier, ok := c.shapeMultiplier[strings.ToLower(name)]; ok {
		return multiplier
	}

	return decimal.NewFromInt(1)
}

// FlavorSurcharge resolves a flavor surcharge, defaulting to 0.
func (c *Catalog) FlavorSurcharge(name string) decimal.Decimal {
	return c.flavorSurcharge[strings.ToLower(name)]
}

// HeightSurcharge resolves a height surcharge, defaulting to 0.
func (c *Catalog) HeightSurcharge(value float64) decimal.Decimal {
	return c.heightSurcharge[FormatHeight(value)]
}

// ToppingCost resolves a topping cost by exact name, defaulting to 0.
func (c *Catalog) ToppingCost(name string) decimal.Decimal {
	return c.toppingCost[name]
}

// TextureCost resolves a texture surcharge, defaulting to 0.
func (c *Catalog) TextureCost(name string) decimal.Decimal {
	return c.textureCost[strings.ToLower(name)]
}
