package impl

import (
	"context"
	"encoding/json"
	"time"

	"cakery/internal/domain/entity"
	domainerrors "cakery/internal/domain/errors"
	"cakery/internal/domain/repository"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type designService struct {
	designRepo repository.DesignRepository
	txManager  repository.TransactionManager
	pricing    usecase.PricingUsecase
}

// DesignServiceParams holds dependencies for DesignService, injected by Fx.
type DesignServiceParams struct {
	fx.In

	DesignRepo repository.DesignRepository
	TxManager  repository.TransactionManager
	Pricing    usecase.PricingUsecase
}

// NewDesignService creates a new design lifecycle service instance
func NewDesignService(params DesignServiceParams) usecase.DesignUsecase {
	return &designService{
		designRepo: params.DesignRepo,
		txManager:  params.TxManager,
		pricing:    params.Pricing,
	}
}

// bakerSettableStatuses are the targets a baker may name in a status
// update. Released is a transition label resolved per request type.
var bakerSettableStatuses = map[entity.DesignStatus]struct{}{
	entity.DesignStatusDiscussion: {},
	entity.DesignStatusQuoted:     {},
	entity.DesignStatusDeclined:   {},
	entity.DesignStatusReleased:   {},
}

// SubmitDesign creates a pending submission. The estimate is always
// recomputed here; client-sent figures never reach storage.
func (s *designService) SubmitDesign(ctx context.Context, buyerID uuid.UUID, input usecase.SubmitDesignInput) (*entity.DesignSubmission, error) {
	var bakerID *uuid.UUID
	switch input.RequestType {
	case entity.RequestTypeDirect:
		if input.BakerID == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("direct requests must name a baker")
		}
		bakerID = input.BakerID
	case entity.RequestTypeBroadcast:
		// Broadcast submissions stay unassigned until a baker claims them.
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("requestType must be direct or broadcast")
	}

	estimate, err := s.pricing.EstimatePrice(ctx, input.Config)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	design := &entity.DesignSubmission{
		ID:             uuid.New(),
		BuyerID:        buyerID,
		BakerID:        bakerID,
		RequestType:    input.RequestType,
		Status:         entity.DesignStatusPending,
		Config:         input.Config,
		EstimatedPrice: estimate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewDesignRepository().CreateDesign(ctx, design); err != nil {
			return errors.Wrap(err, "failed to create design")
		}

		outboxRepo := f.NewOutboxRepository()
		if bakerID != nil {
			// Direct requests notify the targeted baker. Broadcast fan-out
			// rides on the submitted event instead; the notifier side
			// resolves the audience.
			if err := enqueueOutbox(ctx, outboxRepo, entity.OutboxKindNotification, entity.NotificationPayload{
				UserID:    *bakerID,
				Kind:      entity.NotificationKindNewRequest,
				Title:     "New design request",
				Message:   "A customer sent you a custom cake design request.",
				RelatedID: &design.ID,
			}); err != nil {
				return err
			}
		}

		return enqueueOutbox(ctx, outboxRepo, entity.OutboxKindEvent, entity.EventPayload{
			Topic:    "design.submitted",
			DesignID: design.ID,
			Status:   string(entity.DesignStatusPending),
		})
	})
	if err != nil {
		return nil, asAppError(err)
	}

	return design, nil
}

// GetDesign retrieves a submission visible to the actor: its buyer, its
// assigned baker, or any baker while it sits unclaimed in the pool.
func (s *designService) GetDesign(ctx context.Context, actorID, designID uuid.UUID) (*entity.DesignSubmission, error) {
	design, err := s.findDesign(ctx, designID)
	if err != nil {
		return nil, err
	}

	if design.BuyerID != actorID && !design.IsAssignedTo(actorID) && !design.IsClaimable() {
		return nil, domainerrors.ErrForbidden
	}

	return design, nil
}

// ListBuyerDesigns retrieves the buyer's own submissions.
func (s *designService) ListBuyerDesigns(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.DesignSubmission, error) {
	designs, err := s.designRepo.ListDesignsByBuyer(ctx, buyerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer designs")
	}

	return designs, nil
}

// ListBakerInbox retrieves the unclaimed broadcast pool plus everything
// assigned to the baker.
func (s *designService) ListBakerInbox(ctx context.Context, bakerID uuid.UUID, limit, offset int) ([]*entity.DesignSubmission, error) {
	designs, err := s.designRepo.ListBakerInbox(ctx, bakerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list baker inbox")
	}

	return designs, nil
}

// UpdateStatusByBaker applies a baker-side transition. Claiming an
// unassigned broadcast submission happens atomically with the status
// write; losers of the claim race get a conflict, never an overwrite.
func (s *designService) UpdateStatusByBaker(ctx context.Context, bakerID, designID uuid.UUID, input usecase.StatusUpdateInput) (*entity.DesignSubmission, error) {
	design, err := s.findDesign(ctx, designID)
	if err != nil {
		return nil, err
	}

	if design.Status == entity.DesignStatusOrdered {
		return nil, domainerrors.ErrDesignLocked
	}
	if design.Status.IsTerminal() {
		return nil, domainerrors.ErrInvalidTransition
	}
	if design.BakerID != nil && !design.IsAssignedTo(bakerID) {
		return nil, domainerrors.ErrNotAssignedBaker
	}

	if _, ok := bakerSettableStatuses[input.Status]; !ok {
		return nil, domainerrors.ErrInvalidStatus
	}

	if input.Status == entity.DesignStatusReleased {
		return s.releaseByBaker(ctx, bakerID, design)
	}

	if input.Status == entity.DesignStatusQuoted &&
		(input.FinalPrice == nil || *input.FinalPrice <= 0) {
		return nil, domainerrors.ErrQuoteRequiresPrice
	}
	if !design.Status.CanTransitionTo(input.Status) {
		return nil, domainerrors.ErrInvalidTransition
	}

	// The claim is fused with the first status write. Declining an
	// unclaimed request never assigns it.
	claiming := design.BakerID == nil && input.Status != entity.DesignStatusDeclined

	update := repository.QuoteUpdate{
		Status:            input.Status,
		FinalPrice:        input.FinalPrice,
		ShippingFee:       input.ShippingFee,
		DownpaymentAmount: input.DownpaymentAmount,
		PaymentPreference: input.PaymentPreference,
		BakerNote:         input.BakerNote,
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		designRepo := f.NewDesignRepository()

		if claiming {
			if err := designRepo.ClaimDesign(ctx, designID, bakerID, update); err != nil {
				if errors.Is(err, repository.ErrDesignAlreadyClaimed) {
					return domainerrors.ErrDesignAlreadyClaimed
				}

				return errors.Wrap(err, "failed to claim design")
			}
		} else if design.BakerID == nil {
			// Unclaimed decline: the request leaves the pool unassigned.
			if err := designRepo.TransitionStatus(ctx, designID,
				[]entity.DesignStatus{design.Status}, entity.DesignStatusDeclined); err != nil {
				if errors.Is(err, repository.ErrDesignStateChanged) {
					return domainerrors.ErrInvalidTransition
				}

				return errors.Wrap(err, "failed to decline design")
			}
		} else {
			if err := designRepo.UpdateStatusByBaker(ctx, designID, bakerID,
				[]entity.DesignStatus{design.Status}, update); err != nil {
				if errors.Is(err, repository.ErrDesignStateChanged) {
					return domainerrors.ErrInvalidTransition
				}

				return errors.Wrap(err, "failed to update design status")
			}
		}

		return s.enqueueBakerTransitionEffects(ctx, f.NewOutboxRepository(), design, bakerID, input, claiming)
	})
	if err != nil {
		return nil, asAppError(err)
	}

	return s.findDesign(ctx, designID)
}

// releaseByBaker resolves the released transition label: a broadcast
// submission returns to the open pool, a direct one is declined.
func (s *designService) releaseByBaker(ctx context.Context, bakerID uuid.UUID, design *entity.DesignSubmission) (*entity.DesignSubmission, error) {
	if design.BakerID == nil {
		return nil, domainerrors.ErrInvalidTransition
	}

	activeStates := []entity.DesignStatus{
		entity.DesignStatusPending,
		entity.DesignStatusDiscussion,
		entity.DesignStatusQuoted,
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		designRepo := f.NewDesignRepository()

		var err error
		if design.RequestType == entity.RequestTypeBroadcast {
			err = designRepo.ReleaseDesign(ctx, design.ID, activeStates)
		} else {
			err = designRepo.TransitionStatus(ctx, design.ID, activeStates, entity.DesignStatusDeclined)
		}
		if err != nil {
			if errors.Is(err, repository.ErrDesignStateChanged) {
				return domainerrors.ErrInvalidTransition
			}

			return errors.Wrap(err, "failed to release design")
		}

		outboxRepo := f.NewOutboxRepository()
		if err := enqueueOutbox(ctx, outboxRepo, entity.OutboxKindNotification, entity.NotificationPayload{
			UserID:    design.BuyerID,
			Kind:      entity.NotificationKindStatusChanged,
			Title:     "Design request update",
			Message:   "The baker has released your design request.",
			RelatedID: &design.ID,
		}); err != nil {
			return err
		}

		status := entity.DesignStatusPending
		if design.RequestType == entity.RequestTypeDirect {
			status = entity.DesignStatusDeclined
		}

		return enqueueOutbox(ctx, outboxRepo, entity.OutboxKindEvent, entity.EventPayload{
			Topic:    "design.status_changed",
			DesignID: design.ID,
			Status:   string(status),
		})
	})
	if err != nil {
		return nil, asAppError(err)
	}

	return s.findDesign(ctx, design.ID)
}

// enqueueBakerTransitionEffects records the side-effect intents of a
// successful baker transition: at most one system message, a buyer
// notification, and a lifecycle event.
func (s *designService) enqueueBakerTransitionEffects(ctx context.Context, outboxRepo repository.OutboxRepository, design *entity.DesignSubmission, bakerID uuid.UUID, input usecase.StatusUpdateInput, claiming bool) error {
	messagePayload := entity.SystemMessagePayload{
		DesignID: design.ID,
		BuyerID:  design.BuyerID,
		BakerID:  bakerID,
		SenderID: bakerID,
	}

	switch {
	case input.Status == entity.DesignStatusQuoted:
		messagePayload.Kind = entity.MessageKindQuotation
		messagePayload.Text = quotationMessageText(*input.FinalPrice, input.BakerNote)
	case claiming || input.Status == entity.DesignStatusDiscussion:
		messagePayload.Kind = entity.MessageKindDiscussion
		messagePayload.Text = discussionOpenerText()
	}

	if messagePayload.Kind != "" {
		if err := enqueueOutbox(ctx, outboxRepo, entity.OutboxKindSystemMessage, messagePayload); err != nil {
			return err
		}
	}

	notification := entity.NotificationPayload{
		UserID:    design.BuyerID,
		Kind:      entity.NotificationKindStatusChanged,
		Title:     "Design request update",
		Message:   "Your design request is now " + string(input.Status) + ".",
		RelatedID: &design.ID,
	}
	if input.Status == entity.DesignStatusQuoted {
		notification.Kind = entity.NotificationKindQuoteReceived
		notification.Title = "Quote received"
		notification.Message = quotationMessageText(*input.FinalPrice, "")
	}
	if err := enqueueOutbox(ctx, outboxRepo, entity.OutboxKindNotification, notification); err != nil {
		return err
	}

	return enqueueOutbox(ctx, outboxRepo, entity.OutboxKindEvent, entity.EventPayload{
		Topic:    "design.status_changed",
		DesignID: design.ID,
		Status:   string(input.Status),
	})
}

// ApproveQuote moves a quoted submission to approved.
func (s *designService) ApproveQuote(ctx context.Context, buyerID, designID uuid.UUID) (*entity.DesignSubmission, error) {
	design, err := s.findDesign(ctx, designID)
	if err != nil {
		return nil, err
	}

	if design.BuyerID != buyerID {
		return nil, domainerrors.ErrNotDesignBuyer
	}
	if design.Status == entity.DesignStatusOrdered {
		return nil, domainerrors.ErrDesignLocked
	}
	if design.Status != entity.DesignStatusQuoted || design.FinalPrice == nil {
		return nil, domainerrors.ErrDesignNotQuoted
	}

	bakerID := *design.BakerID

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewDesignRepository().TransitionStatus(ctx, designID,
			[]entity.DesignStatus{entity.DesignStatusQuoted}, entity.DesignStatusApproved); err != nil {
			if errors.Is(err, repository.ErrDesignStateChanged) {
				return domainerrors.ErrInvalidTransition
			}

			return errors.Wrap(err, "failed to approve design")
		}

		return s.enqueueBuyerDecisionEffects(ctx, f.NewOutboxRepository(), design, bakerID,
			entity.MessageKindApproval, approvalMessageText(), entity.DesignStatusApproved)
	})
	if err != nil {
		return nil, asAppError(err)
	}

	return s.findDesign(ctx, designID)
}

// DeclineQuote declines a quoted or in-discussion submission. A
// broadcast submission is re-pooled instead of terminally declined.
func (s *designService) DeclineQuote(ctx context.Context, buyerID, designID uuid.UUID) (*entity.DesignSubmission, error) {
	design, err := s.findDesign(ctx, designID)
	if err != nil {
		return nil, err
	}

	if design.BuyerID != buyerID {
		return nil, domainerrors.ErrNotDesignBuyer
	}
	if design.Status == entity.DesignStatusOrdered {
		return nil, domainerrors.ErrDesignLocked
	}
	if design.Status != entity.DesignStatusQuoted && design.Status != entity.DesignStatusDiscussion {
		return nil, domainerrors.ErrDesignNotQuoted
	}
	if design.BakerID == nil {
		return nil, domainerrors.ErrInvalidTransition
	}

	bakerID := *design.BakerID
	activeStates := []entity.DesignStatus{entity.DesignStatusQuoted, entity.DesignStatusDiscussion}
	resultStatus := entity.DesignStatusDeclined

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		designRepo := f.NewDesignRepository()

		var err error
		if design.RequestType == entity.RequestTypeBroadcast {
			// Declining a broadcast quote re-pools the request for other
			// bakers rather than killing it.
			resultStatus = entity.DesignStatusPending
			err = designRepo.ReleaseDesign(ctx, designID, activeStates)
		} else {
			err = designRepo.TransitionStatus(ctx, designID, activeStates, entity.DesignStatusDeclined)
		}
		if err != nil {
			if errors.Is(err, repository.ErrDesignStateChanged) {
				return domainerrors.ErrInvalidTransition
			}

			return errors.Wrap(err, "failed to decline design")
		}

		return s.enqueueBuyerDecisionEffects(ctx, f.NewOutboxRepository(), design, bakerID,
			entity.MessageKindDecline, declineMessageText(), resultStatus)
	})
	if err != nil {
		return nil, asAppError(err)
	}

	return s.findDesign(ctx, designID)
}

// enqueueBuyerDecisionEffects records the intents of a buyer decision:
// a system message, a baker notification, and a lifecycle event.
func (s *designService) enqueueBuyerDecisionEffects(ctx context.Context, outboxRepo repository.OutboxRepository, design *entity.DesignSubmission, bakerID uuid.UUID, kind entity.MessageKind, text string, resultStatus entity.DesignStatus) error {
	if err := enqueueOutbox(ctx, outboxRepo, entity.OutboxKindSystemMessage, entity.SystemMessagePayload{
		DesignID: design.ID,
		BuyerID:  design.BuyerID,
		BakerID:  bakerID,
		SenderID: design.BuyerID,
		Kind:     kind,
		Text:     text,
	}); err != nil {
		return err
	}

	if err := enqueueOutbox(ctx, outboxRepo, entity.OutboxKindNotification, entity.NotificationPayload{
		UserID:    bakerID,
		Kind:      entity.NotificationKindStatusChanged,
		Title:     "Design request update",
		Message:   text,
		RelatedID: &design.ID,
	}); err != nil {
		return err
	}

	return enqueueOutbox(ctx, outboxRepo, entity.OutboxKindEvent, entity.EventPayload{
		Topic:    "design.status_changed",
		DesignID: design.ID,
		Status:   string(resultStatus),
	})
}

// EditDesign replaces the configuration of a still-pending submission.
func (s *designService) EditDesign(ctx context.Context, buyerID, designID uuid.UUID, config entity.DesignConfig) (*entity.DesignSubmission, error) {
	design, err := s.findDesign(ctx, designID)
	if err != nil {
		return nil, err
	}

	if design.BuyerID != buyerID {
		return nil, domainerrors.ErrNotDesignBuyer
	}
	if design.Status == entity.DesignStatusOrdered {
		return nil, domainerrors.ErrDesignLocked
	}
	if design.Status != entity.DesignStatusPending {
		return nil, domainerrors.ErrEditAfterQuote
	}

	estimate, err := s.pricing.EstimatePrice(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := s.designRepo.UpdateConfig(ctx, designID, config, estimate); err != nil {
		if errors.Is(err, repository.ErrDesignStateChanged) {
			return nil, domainerrors.ErrEditAfterQuote
		}

		return nil, errors.Wrap(err, "failed to update design config")
	}

	return s.findDesign(ctx, designID)
}

// findDesign loads a submission, translating the not-found sentinel.
func (s *designService) findDesign(ctx context.Context, designID uuid.UUID) (*entity.DesignSubmission, error) {
	design, err := s.designRepo.FindDesignByID(ctx, designID)
	if err != nil {
		if errors.Is(err, repository.ErrDesignNotFound) {
			return nil, domainerrors.ErrDesignNotFound
		}

		return nil, errors.Wrap(err, "failed to find design")
	}

	return design, nil
}

// enqueueOutbox marshals a payload and records the intent.
func enqueueOutbox(ctx context.Context, outboxRepo repository.OutboxRepository, kind entity.OutboxKind, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal outbox payload")
	}

	return outboxRepo.Enqueue(ctx, &entity.OutboxMessage{
		ID:      uuid.New(),
		Kind:    kind,
		Payload: data,
	})
}

// asAppError passes application errors through untouched and converts
// anything else into an internal database error.
func asAppError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return domainerrors.NewDatabaseExecuteError(err, err.Error())
}
