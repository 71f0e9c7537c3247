package entity

import (
	"encoding/json"

	"cakery/internal/errors"
)

// ToppingMode describes how a topping was selected on a design.
type ToppingMode string

const (
	ToppingOff      ToppingMode = "off"      // not selected, contributes nothing
	ToppingOn       ToppingMode = "on"       // selected once at its flat cost
	ToppingQuantity ToppingMode = "quantity" // selected N times at cost * N
)

// ToppingSelection is the tagged variant behind the loosely typed
// "bool or number" topping values clients send: boolean true maps to
// ToppingOn, a positive number to ToppingQuantity, anything else to
// ToppingOff.
type ToppingSelection struct {
	Mode     ToppingMode `json:"mode"`
	Quantity float64     `json:"quantity,omitempty"`
}

// UnmarshalJSON accepts the wire forms `true`, `false`, a bare number,
// or the explicit {"mode": ..., "quantity": ...} object.
func (s *ToppingSelection) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.Quantity = 0
		s.Mode = ToppingOff
		if b {
			s.Mode = ToppingOn
		}

		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		s.Mode = ToppingOff
		s.Quantity = 0
		if n > 0 {
			s.Mode = ToppingQuantity
			s.Quantity = n
		}

		return nil
	}

	type selectionAlias ToppingSelection
	var alias selectionAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return errors.Wrap(err, "invalid topping selection")
	}
	*s = ToppingSelection(alias)

	return nil
}

// Layer is a single tier of the cake, ordered bottom-up.
type Layer struct {
	Width  float64 `json:"width"`  // Diameter in inches; drives the base layer cost.
	Flavor string  `json:"flavor"` // Catalog flavor name (case-insensitive lookup).
	Height float64 `json:"height"` // Layer height in inches; zero means the catalog default.
}

// MessageConfig holds the decoration message written on the cake.
type MessageConfig struct {
	Text      string `json:"text"`
	Placement string `json:"placement"` // e.g. "top", "side"
	Color     string `json:"color"`
}

// DesignConfig is the buyer-authored description of the cake. It is a
// value type embedded in a DesignSubmission and is frozen once the
// submission leaves the pending state.
type DesignConfig struct {
	Shape         string                      `json:"shape"`          // Single shape applied to every layer.
	Layers        []Layer                     `json:"layers"`         // Ordered bottom-up; every layer contributes to the price.
	Frosting      string                      `json:"frosting"`       // Frosting choice; descriptive, not priced.
	Toppings      map[string]ToppingSelection `json:"toppings"`       // Keyed by exact catalog topping name.
	Texture       string                      `json:"texture"`        // Catalog texture name (case-insensitive lookup).
	MessageConfig MessageConfig               `json:"message_config"` // Decoration message settings.
	SnapshotURL   string                      `json:"snapshot_url"`   // Rendered preview image uploaded by the client.
}
