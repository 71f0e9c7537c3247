package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    DesignStatus
		to      DesignStatus
		allowed bool
	}{
		{DesignStatusPending, DesignStatusDiscussion, true},
		{DesignStatusPending, DesignStatusQuoted, true},
		{DesignStatusPending, DesignStatusDeclined, true},
		{DesignStatusPending, DesignStatusApproved, false},
		{DesignStatusPending, DesignStatusOrdered, false},
		{DesignStatusDiscussion, DesignStatusQuoted, true},
		{DesignStatusDiscussion, DesignStatusDeclined, true},
		{DesignStatusDiscussion, DesignStatusApproved, false},
		{DesignStatusQuoted, DesignStatusApproved, true},
		{DesignStatusQuoted, DesignStatusDeclined, true},
		{DesignStatusQuoted, DesignStatusOrdered, false},
		{DesignStatusApproved, DesignStatusOrdered, true},
		{DesignStatusApproved, DesignStatusDeclined, false},
		{DesignStatusDeclined, DesignStatusPending, false},
		{DesignStatusOrdered, DesignStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDesignStatus_IsTerminal(t *testing.T) {
	assert.True(t, DesignStatusDeclined.IsTerminal())
	assert.True(t, DesignStatusOrdered.IsTerminal())
	assert.False(t, DesignStatusPending.IsTerminal())
	assert.False(t, DesignStatusQuoted.IsTerminal())
	assert.False(t, DesignStatusApproved.IsTerminal())
}

func TestDesignSubmission_IsClaimable(t *testing.T) {
	bakerID := uuid.New()

	design := &DesignSubmission{
		RequestType: RequestTypeBroadcast,
		Status:      DesignStatusPending,
	}
	assert.True(t, design.IsClaimable())

	claimed := &DesignSubmission{
		RequestType: RequestTypeBroadcast,
		Status:      DesignStatusDiscussion,
		BakerID:     &bakerID,
	}
	assert.False(t, claimed.IsClaimable())

	direct := &DesignSubmission{
		RequestType: RequestTypeDirect,
		Status:      DesignStatusPending,
		BakerID:     &bakerID,
	}
	assert.False(t, direct.IsClaimable())
}

func TestToppingSelection_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ToppingSelection
	}{
		{name: "true is on", raw: `true`, want: ToppingSelection{Mode: ToppingOn}},
		{name: "false is off", raw: `false`, want: ToppingSelection{Mode: ToppingOff}},
		{name: "positive number is quantity", raw: `3`, want: ToppingSelection{Mode: ToppingQuantity, Quantity: 3}},
		{name: "zero is off", raw: `0`, want: ToppingSelection{Mode: ToppingOff}},
		{name: "negative is off", raw: `-2`, want: ToppingSelection{Mode: ToppingOff}},
		{name: "explicit object", raw: `{"mode":"quantity","quantity":5}`, want: ToppingSelection{Mode: ToppingQuantity, Quantity: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ToppingSelection
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDesignConfig_ToppingsFromLooseJSON(t *testing.T) {
	raw := `{"shape":"Round","layers":[{"width":6,"flavor":"Vanilla","height":4}],"toppings":{"Strawberry":true,"Sprinkles":2,"Cherries":false}}`

	var config DesignConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &config))

	assert.Equal(t, ToppingOn, config.Toppings["Strawberry"].Mode)
	assert.Equal(t, ToppingQuantity, config.Toppings["Sprinkles"].Mode)
	assert.Equal(t, float64(2), config.Toppings["Sprinkles"].Quantity)
	assert.Equal(t, ToppingOff, config.Toppings["Cherries"].Mode)
}
