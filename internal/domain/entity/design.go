package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestType distinguishes how a design submission is addressed.
type RequestType string

const (
	// RequestTypeDirect targets a single baker chosen at creation time.
	RequestTypeDirect RequestType = "direct"
	// RequestTypeBroadcast is visible to every baker until one claims it.
	RequestTypeBroadcast RequestType = "broadcast"
)

// DesignStatus is the lifecycle state of a design submission.
type DesignStatus string

const (
	DesignStatusPending    DesignStatus = "pending"
	DesignStatusDiscussion DesignStatus = "discussion"
	DesignStatusQuoted     DesignStatus = "quoted"
	DesignStatusApproved   DesignStatus = "approved"
	DesignStatusDeclined   DesignStatus = "declined"
	DesignStatusOrdered    DesignStatus = "ordered"

	// DesignStatusReleased is a transition label, not a resting state:
	// a broadcast submission returns to pending with its baker cleared,
	// a direct submission is declined instead.
	DesignStatusReleased DesignStatus = "released"
)

// transitions maps each resting state to the statuses it may move to.
// Released is validated separately since it is an alias, not a state.
var transitions = map[DesignStatus][]DesignStatus{
	DesignStatusPending:    {DesignStatusDiscussion, DesignStatusQuoted, DesignStatusDeclined},
	DesignStatusDiscussion: {DesignStatusQuoted, DesignStatusDeclined},
	DesignStatusQuoted:     {DesignStatusApproved, DesignStatusDeclined},
	DesignStatusApproved:   {DesignStatusOrdered},
}

// CanTransitionTo reports whether the state machine permits moving from
// the current status to next.
func (s DesignStatus) CanTransitionTo(next DesignStatus) bool {
	for _, allowed := range transitions[s] {
		if next == allowed {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s DesignStatus) IsTerminal() bool {
	return s == DesignStatusDeclined || s == DesignStatusOrdered
}

// PaymentPreference is the payment channel proposed with a quote.
type PaymentPreference string

const (
	PaymentPreferenceCash       PaymentPreference = "cash"
	PaymentPreferenceElectronic PaymentPreference = "electronic"
)

// DesignSubmission is the central entity of the marketplace: a custom
// cake request owned by one buyer, worked by at most one baker at a
// time, and convertible into exactly one order.
type DesignSubmission struct {
	ID          uuid.UUID    `json:"id"`           // The Global Unique Identifier (GUID) for the submission.
	BuyerID     uuid.UUID    `json:"buyer_id"`     // Fixed at creation, never changes.
	BakerID     *uuid.UUID   `json:"baker_id"`     // The currently assigned baker; nil until claimed.
	RequestType RequestType  `json:"request_type"` // direct or broadcast.
	Status      DesignStatus `json:"status"`       // Current lifecycle state.
	Config      DesignConfig `json:"config"`       // The buyer-authored design; frozen once past pending.

	EstimatedPrice    int64             `json:"estimated_price"`    // Server-computed at submission; informational only.
	FinalPrice        *int64            `json:"final_price"`        // Baker-set quote; authoritative once present.
	ShippingFee       int64             `json:"shipping_fee"`       // Baker-set delivery fee, applied at order conversion.
	DownpaymentAmount int64             `json:"downpayment_amount"` // Optional minimum upfront payment; 0 means full amount due.
	PaymentPreference PaymentPreference `json:"payment_preference"` // Baker-proposed payment channel.
	BakerNote         string            `json:"baker_note"`         // Free-form note attached to the quote.

	CreatedAt time.Time `json:"created_at"` // Timestamp of when this submission was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// IsAssignedTo reports whether the given baker currently holds the
// submission.
func (d *DesignSubmission) IsAssignedTo(bakerID uuid.UUID) bool {
	return d.BakerID != nil && *d.BakerID == bakerID
}

// IsClaimable reports whether a baker without an assignment may claim
// the submission.
func (d *DesignSubmission) IsClaimable() bool {
	return d.RequestType == RequestTypeBroadcast &&
		d.BakerID == nil &&
		d.Status == DesignStatusPending
}
