// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for design submission persistence.
var (
	// ErrDesignNotFound is returned when a design submission is not found.
	ErrDesignNotFound = errors.New("design submission not found")
	// ErrDesignAlreadyClaimed is returned when a conditional claim finds the
	// submission already assigned to another baker.
	ErrDesignAlreadyClaimed = errors.New("design submission already claimed")
	// ErrDesignStateChanged is returned when a conditional status update finds
	// the submission no longer in the expected state.
	ErrDesignStateChanged = errors.New("design submission state changed concurrently")
)

// QuoteUpdate carries the baker-settable fields written together with a
// status change. A nil FinalPrice leaves the stored price untouched.
type QuoteUpdate struct {
	Status            entity.DesignStatus
	FinalPrice        *int64
	ShippingFee       int64
	DownpaymentAmount int64
	PaymentPreference entity.PaymentPreference
	BakerNote         string
}

// DesignRepository defines the interface for design submission database
// operations. The conditional methods are single atomic writes: their
// guards are evaluated by the database, never by a prior read.
type DesignRepository interface {
	// CreateDesign persists a new design submission.
	CreateDesign(ctx context.Context, design *entity.DesignSubmission) error

	// FindDesignByID retrieves a submission by its unique ID.
	FindDesignByID(ctx context.Context, id uuid.UUID) (*entity.DesignSubmission, error)

	// ListDesignsByBuyer retrieves a buyer's own submissions, newest first.
	ListDesignsByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.DesignSubmission, error)

	// ListBakerInbox retrieves the submissions visible to a baker: the
	// unclaimed broadcast pool plus everything assigned to the baker.
	ListBakerInbox(ctx context.Context, bakerID uuid.UUID, limit, offset int) ([]*entity.DesignSubmission, error)

	// ClaimDesign atomically assigns an unclaimed broadcast submission to
	// the baker and applies the quote update. Fails with
	// ErrDesignAlreadyClaimed if another baker won the race, without
	// touching the row.
	ClaimDesign(ctx context.Context, designID, bakerID uuid.UUID, update QuoteUpdate) error

	// UpdateStatusByBaker applies a quote update guarded on the submission
	// still being assigned to the baker and in one of the given states.
	// Fails with ErrDesignStateChanged when the guard no longer holds.
	UpdateStatusByBaker(ctx context.Context, designID, bakerID uuid.UUID, from []entity.DesignStatus, update QuoteUpdate) error

	// TransitionStatus moves the submission from one of the given states to
	// the target state. Fails with ErrDesignStateChanged when the
	// submission is no longer in any of the expected states.
	TransitionStatus(ctx context.Context, designID uuid.UUID, from []entity.DesignStatus, to entity.DesignStatus) error

	// ReleaseDesign returns a claimed broadcast submission to the open
	// pool: status pending, baker cleared, quote fields cleared.
	ReleaseDesign(ctx context.Context, designID uuid.UUID, from []entity.DesignStatus) error

	// UpdateConfig replaces the design configuration and its recomputed
	// estimate while the submission is still pending.
	UpdateConfig(ctx context.Context, designID uuid.UUID, config entity.DesignConfig, estimatedPrice int64) error
}
