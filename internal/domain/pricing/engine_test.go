package pricing

import (
	"testing"

	"cakery/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func asset(assetType entity.AssetType, name string, modifier string, available bool) *entity.AssetEntry {
	return &entity.AssetEntry{
		Type:          assetType,
		Name:          name,
		PriceModifier: decimal.RequireFromString(modifier),
		IsAvailable:   available,
	}
}

func heightAsset(value float64, modifier string, available bool) *entity.AssetEntry {
	a := asset(entity.AssetTypeHeight, FormatHeight(value), modifier, available)
	a.Metadata = map[string]any{"value": value}

	return a
}

func testCatalog() *Catalog {
	return NewCatalog([]*entity.AssetEntry{
		asset(entity.AssetTypeShape, "Round", "1", true),
		asset(entity.AssetTypeShape, "Heart", "1.5", true),
		asset(entity.AssetTypeShape, "Hexagon", "2", false), // unavailable
		asset(entity.AssetTypeFlavor, "Vanilla", "0", true),
		asset(entity.AssetTypeFlavor, "Red Velvet", "120", true),
		heightAsset(4, "0", true),
		heightAsset(6, "80", true),
		asset(entity.AssetTypeTopping, "Strawberry", "25", true),
		asset(entity.AssetTypeTopping, "Chocolate Drip", "150", true),
		asset(entity.AssetTypeTexture, "Marble", "200", true),
	})
}

func TestComputePrice_ZeroLayersYieldsBaseFee(t *testing.T) {
	engine := NewEngine(300, 60, 4)

	price := engine.ComputePrice(entity.DesignConfig{}, testCatalog())

	assert.Equal(t, int64(300), price)
}

func TestComputePrice_WorkedExample(t *testing.T) {
	// BASE_FEE=300, LAYER_DIAMETER_COST=60; one 6" round vanilla layer
	// at the default height with no matching surcharges: 300 + 6*60*1.
	engine := NewEngine(300, 60, 4)
	config := entity.DesignConfig{
		Shape: "Round",
		Layers: []entity.Layer{
			{Width: 6, Flavor: "Vanilla", Height: 4},
		},
	}

	price := engine.ComputePrice(config, testCatalog())

	assert.Equal(t, int64(660), price)
}

func TestComputePrice_Deterministic(t *testing.T) {
	engine := NewEngine(300, 60, 4)
	catalog := testCatalog()
	config := entity.DesignConfig{
		Shape: "Heart",
		Layers: []entity.Layer{
			{Width: 8, Flavor: "Red Velvet", Height: 6},
			{Width: 6, Flavor: "Vanilla"},
		},
		Toppings: map[string]entity.ToppingSelection{
			"Strawberry": {Mode: entity.ToppingQuantity, Quantity: 3},
		},
		Texture: "Marble",
	}

	first := engine.ComputePrice(config, catalog)
	for range 10 {
		assert.Equal(t, first, engine.ComputePrice(config, catalog))
	}
}

func TestComputePrice_AllLayersContribute(t *testing.T) {
	engine := NewEngine(300, 60, 4)
	config := entity.DesignConfig{
		Shape: "Heart", // 1.5 multiplier applies to every layer
		Layers: []entity.Layer{
			{Width: 8, Flavor: "Red Velvet", Height: 6},
			{Width: 6, Flavor: "Vanilla", Height: 4},
		},
	}

	// 300 + (8*60*1.5 + 120 + 80) + (6*60*1.5 + 0 + 0)
	price := engine.ComputePrice(config, testCatalog())

	assert.Equal(t, int64(300+720+120+80+540), price)
}

func TestComputePrice_UnknownAssetsFailOpen(t *testing.T) {
	tests := []struct {
		name   string
		config entity.DesignConfig
		want   int64
	}{
		{
			name: "unknown shape uses multiplier 1",
			config: entity.DesignConfig{
				Shape:  "Dodecahedron",
				Layers: []entity.Layer{{Width: 6, Flavor: "Vanilla", Height: 4}},
			},
			want: 660,
		},
		{
			name: "unknown flavor adds nothing",
			config: entity.DesignConfig{
				Shape:  "Round",
				Layers: []entity.Layer{{Width: 6, Flavor: "Durian", Height: 4}},
			},
			want: 660,
		},
		{
			name: "unknown height adds nothing",
			config: entity.DesignConfig{
				Shape:  "Round",
				Layers: []entity.Layer{{Width: 6, Flavor: "Vanilla", Height: 42}},
			},
			want: 660,
		},
		{
			name: "unknown texture adds nothing",
			config: entity.DesignConfig{
				Shape:   "Round",
				Layers:  []entity.Layer{{Width: 6, Flavor: "Vanilla", Height: 4}},
				Texture: "Invisible",
			},
			want: 660,
		},
		{
			name: "unknown topping adds nothing",
			config: entity.DesignConfig{
				Shape:  "Round",
				Layers: []entity.Layer{{Width: 6, Flavor: "Vanilla", Height: 4}},
				Toppings: map[string]entity.ToppingSelection{
					"Gold Leaf": {Mode: entity.ToppingOn},
				},
			},
			want: 660,
		},
	}

	engine := NewEngine(300, 60, 4)
	catalog := testCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ComputePrice(tt.config, catalog))
		})
	}
}

func TestComputePrice_UnavailableAssetsExcluded(t *testing.T) {
	engine := NewEngine(300, 60, 4)
	config := entity.DesignConfig{
		Shape:  "Hexagon", // in the catalog, but unavailable: multiplier 1
		Layers: []entity.Layer{{Width: 6, Flavor: "Vanilla", Height: 4}},
	}

	assert.Equal(t, int64(660), engine.ComputePrice(config, testCatalog()))
}

func TestComputePrice_Toppings(t *testing.T) {
	tests := []struct {
		name      string
		selection entity.ToppingSelection
		want      int64
	}{
		{name: "on adds flat cost", selection: entity.ToppingSelection{Mode: entity.ToppingOn}, want: 660 + 25},
		{name: "quantity multiplies", selection: entity.ToppingSelection{Mode: entity.ToppingQuantity, Quantity: 4}, want: 660 + 100},
		{name: "off adds nothing", selection: entity.ToppingSelection{Mode: entity.ToppingOff}, want: 660},
		{name: "zero quantity adds nothing", selection: entity.ToppingSelection{Mode: entity.ToppingQuantity, Quantity: 0}, want: 660},
	}

	engine := NewEngine(300, 60, 4)
	catalog := testCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := entity.DesignConfig{
				Shape:  "Round",
				Layers: []entity.Layer{{Width: 6, Flavor: "Vanilla", Height: 4}},
				Toppings: map[string]entity.ToppingSelection{
					"Strawberry": tt.selection,
				},
			}

			assert.Equal(t, tt.want, engine.ComputePrice(config, catalog))
		})
	}
}

func TestComputePrice_ToppingNamesAreCaseSensitive(t *testing.T) {
	engine := NewEngine(300, 60, 4)
	config := entity.DesignConfig{
		Shape:  "round", // shapes are case-insensitive
		Layers: []entity.Layer{{Width: 6, Flavor: "VANILLA", Height: 4}},
		Toppings: map[string]entity.ToppingSelection{
			"strawberry": {Mode: entity.ToppingOn}, // toppings are not
		},
	}

	assert.Equal(t, int64(660), engine.ComputePrice(config, testCatalog()))
}

func TestComputePrice_DefaultHeightApplies(t *testing.T) {
	engine := NewEngine(300, 60, 6)
	config := entity.DesignConfig{
		Shape:  "Round",
		Layers: []entity.Layer{{Width: 6, Flavor: "Vanilla"}}, // no height, default 6 carries an 80 surcharge
	}

	assert.Equal(t, int64(660+80), engine.ComputePrice(config, testCatalog()))
}

func TestComputePrice_RoundsUp(t *testing.T) {
	engine := NewEngine(300, 60, 4)
	config := entity.DesignConfig{
		Shape:  "Round",
		Layers: []entity.Layer{{Width: 6.505, Flavor: "Vanilla", Height: 4}},
	}

	// 300 + 6.505*60 = 690.3, ceiling 691.
	assert.Equal(t, int64(691), engine.ComputePrice(config, testCatalog()))
}

func TestComputePrice_TextureSurcharge(t *testing.T) {
	engine := NewEngine(300, 60, 4)
	config := entity.DesignConfig{
		Shape:   "Round",
		Layers:  []entity.Layer{{Width: 6, Flavor: "Vanilla", Height: 4}},
		Texture: "marble",
	}

	assert.Equal(t, int64(860), engine.ComputePrice(config, testCatalog()))
}
