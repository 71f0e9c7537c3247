package usecase

import (
	"context"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitDesignInput carries the buyer's design request.
type SubmitDesignInput struct {
	RequestType entity.RequestType
	BakerID     *uuid.UUID // required for direct requests, ignored for broadcast
	Config      entity.DesignConfig
}

// StatusUpdateInput carries a baker-side status change and the quote
// fields that may accompany it. FinalPrice is required when the new
// status is quoted.
type StatusUpdateInput struct {
	Status            entity.DesignStatus
	FinalPrice        *int64
	ShippingFee       int64
	DownpaymentAmount int64
	PaymentPreference entity.PaymentPreference
	BakerNote         string
}

// DesignUsecase owns the design submission lifecycle: creation, the
// baker-side claim/quote path, buyer approve/decline, and pre-quote
// edits. Every state transition is guarded by a conditional write so
// concurrent actors cannot corrupt the state machine.
type DesignUsecase interface {
	// SubmitDesign creates a pending submission. The estimated price is
	// recomputed server-side; any client-supplied figure is ignored.
	SubmitDesign(ctx context.Context, buyerID uuid.UUID, input SubmitDesignInput) (*entity.DesignSubmission, error)

	// GetDesign retrieves a submission the actor is allowed to see.
	GetDesign(ctx context.Context, actorID, designID uuid.UUID) (*entity.DesignSubmission, error)

	// ListBuyerDesigns retrieves the buyer's own submissions.
	ListBuyerDesigns(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.DesignSubmission, error)

	// ListBakerInbox retrieves the unclaimed broadcast pool plus
	// everything assigned to the baker.
	ListBakerInbox(ctx context.Context, bakerID uuid.UUID, limit, offset int) ([]*entity.DesignSubmission, error)

	// UpdateStatusByBaker applies a baker-side transition. When the
	// submission is an unclaimed broadcast request this also performs the
	// claim, atomically with the status write.
	UpdateStatusByBaker(ctx context.Context, bakerID, designID uuid.UUID, input StatusUpdateInput) (*entity.DesignSubmission, error)

	// ApproveQuote moves a quoted submission to approved. Buyer only.
	ApproveQuote(ctx context.Context, buyerID, designID uuid.UUID) (*entity.DesignSubmission, error)

	// DeclineQuote declines a quoted or in-discussion submission. A
	// broadcast submission returns to the open pool instead.
	DeclineQuote(ctx context.Context, buyerID, designID uuid.UUID) (*entity.DesignSubmission, error)

	// EditDesign replaces the configuration of a still-pending submission
	// and recomputes its estimate.
	EditDesign(ctx context.Context, buyerID, designID uuid.UUID, config entity.DesignConfig) (*entity.DesignSubmission, error)
}
