package pricing

import (
	"cakery/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Defaults for the pricing constants when not configured.
const (
	DefaultBaseFee           = 300 // flat fee every design starts from
	DefaultLayerDiameterCost = 60  // cost per inch of layer diameter
	DefaultLayerHeight       = 4   // height assumed when a layer omits one
)

// Engine computes design prices. It holds only constants; the catalog
// snapshot is an argument, so repeated calls with the same inputs are
// guaranteed to produce the same price.
type Engine struct {
	baseFee           decimal.Decimal
	layerDiameterCost decimal.Decimal
	defaultHeight     float64
}

// NewEngine creates a pricing engine with the given constants. Non
// positive values fall back to the defaults.
func NewEngine(baseFee, layerDiameterCost int64, defaultHeight float64) *Engine {
	if baseFee <= 0 {
		baseFee = DefaultBaseFee
	}
	if layerDiameterCost <= 0 {
		layerDiameterCost = DefaultLayerDiameterCost
	}
	if defaultHeight <= 0 {
		defaultHeight = DefaultLayerHeight
	}

	return &Engine{
		baseFee:           decimal.NewFromInt(baseFee),
		layerDiameterCost: decimal.NewFromInt(layerDiameterCost),
		defaultHeight:     defaultHeight,
	}
}

// ComputePrice derives the integer price of a design configuration from
// the catalog snapshot:
//
//	price = ceil(baseFee
//	           + sum over layers of width*diameterCost*shapeMultiplier
//	                               + flavorSurcharge + heightSurcharge
//	           + topping costs + texture cost)
//
// All layers use the submission's single shape. Unknown assets fall
// back to their neutral defaults rather than erroring, and the delivery
// fee is deliberately excluded: it is order-level, added at conversion.
func (e *Engine) ComputePrice(config entity.DesignConfig, catalog *Catalog) int64 {
	price := e.baseFee

	shapeMultiplier := catalog.ShapeMultiplier(config.Shape)
	for _, layer := range config.Layers {
		layerCost := decimal.NewFromFloat(layer.Width).
			Mul(e.layerDiameterCost).
			Mul(shapeMultiplier)
		layerCost = layerCost.Add(catalog.FlavorSurcharge(layer.Flavor))

		height := layer.Height
		if height <= 0 {
			height = e.defaultHeight
		}
		layerCost = layerCost.Add(catalog.HeightSurcharge(height))

		price = price.Add(layerCost)
	}

	for name, selection := range config.Toppings {
		switch selection.Mode {
		case entity.ToppingOn:
			price = price.Add(catalog.ToppingCost(name))
		case entity.ToppingQuantity:
			if selection.Quantity > 0 {
				price = price.Add(catalog.ToppingCost(name).Mul(decimal.NewFromFloat(selection.Quantity)))
			}
		}
	}

	if config.Texture != "" {
		price = price.Add(catalog.TextureCost(config.Texture))
	}

	return price.Ceil().IntPart()
}
