package impl

import (
	"context"
	"encoding/json"
	"testing"

	"cakery/internal/domain/entity"
	domainerrors "cakery/internal/domain/errors"
	"cakery/internal/domain/repository"
	mockRepo "cakery/internal/mocks/repository"
	mockUsecase "cakery/internal/mocks/usecase"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertAppError(t *testing.T, want domainerrors.AppError, err error) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}

func newDesignServiceFixture(t *testing.T) (*mockRepo.MockDesignRepository, *mockUsecase.MockPricingUsecase, *txFixture, usecase.DesignUsecase) {
	t.Helper()

	designRepo := mockRepo.NewMockDesignRepository(t)
	pricing := mockUsecase.NewMockPricingUsecase(t)
	tx := newTxFixture(t)
	tx.ServeDesignRepo(designRepo)

	service := NewDesignService(DesignServiceParams{
		DesignRepo: designRepo,
		TxManager:  tx.TxManager,
		Pricing:    pricing,
	})

	return designRepo, pricing, tx, service
}

func TestDesignService_SubmitDesign_Broadcast(t *testing.T) {
	designRepo, pricing, tx, service := newDesignServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	config := testDesignConfig()

	pricing.EXPECT().EstimatePrice(ctx, config).Return(int64(2500), nil)
	designRepo.EXPECT().
		CreateDesign(ctx, mock.AnythingOfType("*entity.DesignSubmission")).
		Return(nil)

	design, err := service.SubmitDesign(ctx, buyerID, usecase.SubmitDesignInput{
		RequestType: entity.RequestTypeBroadcast,
		Config:      config,
	})
	require.NoError(t, err)
	assert.Equal(t, buyerID, design.BuyerID)
	assert.Nil(t, design.BakerID)
	assert.Equal(t, entity.DesignStatusPending, design.Status)
	assert.Equal(t, int64(2500), design.EstimatedPrice)

	// Broadcast submissions only record the lifecycle event; fan-out to
	// bakers happens on the consumer side.
	require.Equal(t, []entity.OutboxKind{entity.OutboxKindEvent}, outboxKinds(enqueued))

	var event entity.EventPayload
	require.NoError(t, json.Unmarshal(enqueued[0].Payload, &event))
	assert.Equal(t, "design.submitted", event.Topic)
	assert.Equal(t, design.ID, event.DesignID)
}

func TestDesignService_SubmitDesign_DirectNotifiesBaker(t *testing.T) {
	designRepo, pricing, tx, service := newDesignServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	bakerID := uuid.New()
	config := testDesignConfig()

	pricing.EXPECT().EstimatePrice(ctx, config).Return(int64(3200), nil)
	designRepo.EXPECT().
		CreateDesign(ctx, mock.AnythingOfType("*entity.DesignSubmission")).
		Return(nil)

	design, err := service.SubmitDesign(ctx, buyerID, usecase.SubmitDesignInput{
		RequestType: entity.RequestTypeDirect,
		BakerID:     &bakerID,
		Config:      config,
	})
	require.NoError(t, err)
	require.NotNil(t, design.BakerID)
	assert.Equal(t, bakerID, *design.BakerID)

	require.Equal(t, []entity.OutboxKind{
		entity.OutboxKindNotification,
		entity.OutboxKindEvent,
	}, outboxKinds(enqueued))

	var notification entity.NotificationPayload
	require.NoError(t, json.Unmarshal(enqueued[0].Payload, &notification))
	assert.Equal(t, bakerID, notification.UserID)
	assert.Equal(t, entity.NotificationKindNewRequest, notification.Kind)
}

func TestDesignService_SubmitDesign_DirectWithoutBaker(t *testing.T) {
	_, _, _, service := newDesignServiceFixture(t)

	_, err := service.SubmitDesign(context.Background(), uuid.New(), usecase.SubmitDesignInput{
		RequestType: entity.RequestTypeDirect,
		Config:      testDesignConfig(),
	})
	assertAppError(t, domainerrors.ErrValidationFailed, err)
}

func TestDesignService_SubmitDesign_UnknownRequestType(t *testing.T) {
	_, _, _, service := newDesignServiceFixture(t)

	_, err := service.SubmitDesign(context.Background(), uuid.New(), usecase.SubmitDesignInput{
		RequestType: entity.RequestType("carrier_pigeon"),
		Config:      testDesignConfig(),
	})
	assertAppError(t, domainerrors.ErrValidationFailed, err)
}

func TestDesignService_GetDesign_Visibility(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	design := pendingBroadcastDesign(buyerID)

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil)
	got, err := service.GetDesign(ctx, buyerID, design.ID)
	require.NoError(t, err)
	assert.Equal(t, design.ID, got.ID)

	// Any baker may inspect an unclaimed broadcast submission.
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil)
	_, err = service.GetDesign(ctx, uuid.New(), design.ID)
	require.NoError(t, err)

	// Once claimed, only the buyer and the assigned baker see it.
	assignedBaker := uuid.New()
	design.BakerID = &assignedBaker
	design.Status = entity.DesignStatusDiscussion

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil)
	_, err = service.GetDesign(ctx, uuid.New(), design.ID)
	assertAppError(t, domainerrors.ErrForbidden, err)
}

func TestDesignService_GetDesign_NotFound(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	designID := uuid.New()
	designRepo.EXPECT().
		FindDesignByID(mock.Anything, designID).
		Return(nil, repository.ErrDesignNotFound)

	_, err := service.GetDesign(context.Background(), uuid.New(), designID)
	assertAppError(t, domainerrors.ErrDesignNotFound, err)
}

func TestDesignService_UpdateStatusByBaker_ClaimAndQuote(t *testing.T) {
	designRepo, _, tx, service := newDesignServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	bakerID := uuid.New()
	design := pendingBroadcastDesign(buyerID)

	input := usecase.StatusUpdateInput{
		Status:            entity.DesignStatusQuoted,
		FinalPrice:        int64Ptr(4500),
		ShippingFee:       200,
		PaymentPreference: entity.PaymentPreferenceElectronic,
		BakerNote:         "Fondant finish included.",
	}

	quoted := *design
	quoted.BakerID = &bakerID
	quoted.Status = entity.DesignStatusQuoted
	quoted.FinalPrice = input.FinalPrice

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	designRepo.EXPECT().
		ClaimDesign(ctx, design.ID, bakerID, repository.QuoteUpdate{
			Status:            entity.DesignStatusQuoted,
			FinalPrice:        input.FinalPrice,
			ShippingFee:       200,
			PaymentPreference: entity.PaymentPreferenceElectronic,
			BakerNote:         "Fondant finish included.",
		}).
		Return(nil).Once()
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(&quoted, nil).Once()

	got, err := service.UpdateStatusByBaker(ctx, bakerID, design.ID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.DesignStatusQuoted, got.Status)
	require.NotNil(t, got.BakerID)
	assert.Equal(t, bakerID, *got.BakerID)

	// A quote produces exactly one system message plus the notification
	// and the lifecycle event.
	require.Equal(t, []entity.OutboxKind{
		entity.OutboxKindSystemMessage,
		entity.OutboxKindNotification,
		entity.OutboxKindEvent,
	}, outboxKinds(enqueued))

	var message entity.SystemMessagePayload
	require.NoError(t, json.Unmarshal(enqueued[0].Payload, &message))
	assert.Equal(t, entity.MessageKindQuotation, message.Kind)
	assert.Equal(t, bakerID, message.SenderID)
	assert.Contains(t, message.Text, "4500")
	assert.Contains(t, message.Text, "Fondant finish included.")

	var notification entity.NotificationPayload
	require.NoError(t, json.Unmarshal(enqueued[1].Payload, &notification))
	assert.Equal(t, buyerID, notification.UserID)
	assert.Equal(t, entity.NotificationKindQuoteReceived, notification.Kind)
}

func TestDesignService_UpdateStatusByBaker_LostClaimRace(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	design := pendingBroadcastDesign(uuid.New())
	bakerID := uuid.New()

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	designRepo.EXPECT().
		ClaimDesign(ctx, design.ID, bakerID, mock.AnythingOfType("repository.QuoteUpdate")).
		Return(repository.ErrDesignAlreadyClaimed).Once()

	_, err := service.UpdateStatusByBaker(ctx, bakerID, design.ID, usecase.StatusUpdateInput{
		Status: entity.DesignStatusDiscussion,
	})
	assertAppError(t, domainerrors.ErrDesignAlreadyClaimed, err)
}

func TestDesignService_UpdateStatusByBaker_ClaimOpensDiscussion(t *testing.T) {
	designRepo, _, tx, service := newDesignServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	bakerID := uuid.New()
	design := pendingBroadcastDesign(buyerID)

	claimed := *design
	claimed.BakerID = &bakerID
	claimed.Status = entity.DesignStatusDiscussion

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	designRepo.EXPECT().
		ClaimDesign(ctx, design.ID, bakerID, mock.AnythingOfType("repository.QuoteUpdate")).
		Return(nil).Once()
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(&claimed, nil).Once()

	_, err := service.UpdateStatusByBaker(ctx, bakerID, design.ID, usecase.StatusUpdateInput{
		Status: entity.DesignStatusDiscussion,
	})
	require.NoError(t, err)

	require.Equal(t, []entity.OutboxKind{
		entity.OutboxKindSystemMessage,
		entity.OutboxKindNotification,
		entity.OutboxKindEvent,
	}, outboxKinds(enqueued))

	var message entity.SystemMessagePayload
	require.NoError(t, json.Unmarshal(enqueued[0].Payload, &message))
	assert.Equal(t, entity.MessageKindDiscussion, message.Kind)
}

func TestDesignService_UpdateStatusByBaker_UnclaimedDeclineLeavesPool(t *testing.T) {
	designRepo, _, tx, service := newDesignServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	design := pendingBroadcastDesign(uuid.New())
	bakerID := uuid.New()

	declined := *design
	declined.Status = entity.DesignStatusDeclined

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	// Declining an unclaimed request never assigns it to the baker.
	designRepo.EXPECT().
		TransitionStatus(ctx, design.ID,
			[]entity.DesignStatus{entity.DesignStatusPending}, entity.DesignStatusDeclined).
		Return(nil).Once()
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(&declined, nil).Once()

	got, err := service.UpdateStatusByBaker(ctx, bakerID, design.ID, usecase.StatusUpdateInput{
		Status: entity.DesignStatusDeclined,
	})
	require.NoError(t, err)
	assert.Nil(t, got.BakerID)

	// No system message for a plain decline.
	require.Equal(t, []entity.OutboxKind{
		entity.OutboxKindNotification,
		entity.OutboxKindEvent,
	}, outboxKinds(enqueued))
}

func TestDesignService_UpdateStatusByBaker_QuoteRequiresPrice(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	design := pendingBroadcastDesign(uuid.New())

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	_, err := service.UpdateStatusByBaker(ctx, uuid.New(), design.ID, usecase.StatusUpdateInput{
		Status: entity.DesignStatusQuoted,
	})
	assertAppError(t, domainerrors.ErrQuoteRequiresPrice, err)

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	_, err = service.UpdateStatusByBaker(ctx, uuid.New(), design.ID, usecase.StatusUpdateInput{
		Status:     entity.DesignStatusQuoted,
		FinalPrice: int64Ptr(0),
	})
	assertAppError(t, domainerrors.ErrQuoteRequiresPrice, err)
}

func TestDesignService_UpdateStatusByBaker_ForeignBaker(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	assignedBaker := uuid.New()
	design := pendingDirectDesign(uuid.New(), assignedBaker)
	design.Status = entity.DesignStatusDiscussion

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()

	_, err := service.UpdateStatusByBaker(ctx, uuid.New(), design.ID, usecase.StatusUpdateInput{
		Status:     entity.DesignStatusQuoted,
		FinalPrice: int64Ptr(4000),
	})
	assertAppError(t, domainerrors.ErrNotAssignedBaker, err)
}

func TestDesignService_UpdateStatusByBaker_OrderedIsLocked(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	bakerID := uuid.New()
	design := pendingDirectDesign(uuid.New(), bakerID)
	design.Status = entity.DesignStatusOrdered

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()

	_, err := service.UpdateStatusByBaker(ctx, bakerID, design.ID, usecase.StatusUpdateInput{
		Status: entity.DesignStatusDiscussion,
	})
	assertAppError(t, domainerrors.ErrDesignLocked, err)
}

func TestDesignService_UpdateStatusByBaker_InvalidTargetStatus(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	bakerID := uuid.New()
	design := pendingDirectDesign(uuid.New(), bakerID)

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()

	// Approved is a buyer-side transition; bakers cannot set it.
	_, err := service.UpdateStatusByBaker(ctx, bakerID, design.ID, usecase.StatusUpdateInput{
		Status: entity.DesignStatusApproved,
	})
	assertAppError(t, domainerrors.ErrInvalidStatus, err)
}

func TestDesignService_UpdateStatusByBaker_ReleaseBroadcastRepools(t *testing.T) {
	designRepo, _, tx, service := newDesignServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	bakerID := uuid.New()
	design := pendingBroadcastDesign(buyerID)
	design.BakerID = &bakerID
	design.Status = entity.DesignStatusDiscussion

	released := *design
	released.BakerID = nil
	released.Status = entity.DesignStatusPending

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	designRepo.EXPECT().
		ReleaseDesign(ctx, design.ID, []entity.DesignStatus{
			entity.DesignStatusPending,
			entity.DesignStatusDiscussion,
			entity.DesignStatusQuoted,
		}).
		Return(nil).Once()
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(&released, nil).Once()

	got, err := service.UpdateStatusByBaker(ctx, bakerID, design.ID, usecase.StatusUpdateInput{
		Status: entity.DesignStatusReleased,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DesignStatusPending, got.Status)
	assert.Nil(t, got.BakerID)

	require.Equal(t, []entity.OutboxKind{
		entity.OutboxKindNotification,
		entity.OutboxKindEvent,
	}, outboxKinds(enqueued))

	var event entity.EventPayload
	require.NoError(t, json.Unmarshal(enqueued[1].Payload, &event))
	assert.Equal(t, string(entity.DesignStatusPending), event.Status)
}

func TestDesignService_UpdateStatusByBaker_ReleaseDirectDeclines(t *testing.T) {
	designRepo, _, tx, service := newDesignServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	bakerID := uuid.New()
	design := pendingDirectDesign(uuid.New(), bakerID)
	design.Status = entity.DesignStatusQuoted
	design.FinalPrice = int64Ptr(4000)

	declined := *design
	declined.Status = entity.DesignStatusDeclined

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	designRepo.EXPECT().
		TransitionStatus(ctx, design.ID, []entity.DesignStatus{
			entity.DesignStatusPending,
			entity.DesignStatusDiscussion,
			entity.DesignStatusQuoted,
		}, entity.DesignStatusDeclined).
		Return(nil).Once()
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(&declined, nil).Once()

	got, err := service.UpdateStatusByBaker(ctx, bakerID, design.ID, usecase.StatusUpdateInput{
		Status: entity.DesignStatusReleased,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DesignStatusDeclined, got.Status)

	var event entity.EventPayload
	require.NoError(t, json.Unmarshal(enqueued[1].Payload, &event))
	assert.Equal(t, string(entity.DesignStatusDeclined), event.Status)
}

func TestDesignService_ApproveQuote(t *testing.T) {
	designRepo, _, tx, service := newDesignServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	bakerID := uuid.New()
	design := pendingDirectDesign(buyerID, bakerID)
	design.Status = entity.DesignStatusQuoted
	design.FinalPrice = int64Ptr(4000)

	approved := *design
	approved.Status = entity.DesignStatusApproved

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	designRepo.EXPECT().
		TransitionStatus(ctx, design.ID,
			[]entity.DesignStatus{entity.DesignStatusQuoted}, entity.DesignStatusApproved).
		Return(nil).Once()
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(&approved, nil).Once()

	got, err := service.ApproveQuote(ctx, buyerID, design.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DesignStatusApproved, got.Status)

	require.Equal(t, []entity.OutboxKind{
		entity.OutboxKindSystemMessage,
		entity.OutboxKindNotification,
		entity.OutboxKindEvent,
	}, outboxKinds(enqueued))

	var message entity.SystemMessagePayload
	require.NoError(t, json.Unmarshal(enqueued[0].Payload, &message))
	assert.Equal(t, entity.MessageKindApproval, message.Kind)
	assert.Equal(t, buyerID, message.SenderID)

	var notification entity.NotificationPayload
	require.NoError(t, json.Unmarshal(enqueued[1].Payload, &notification))
	assert.Equal(t, bakerID, notification.UserID)
}

func TestDesignService_ApproveQuote_Preconditions(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	design := pendingDirectDesign(buyerID, uuid.New())

	// Not yet quoted.
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	_, err := service.ApproveQuote(ctx, buyerID, design.ID)
	assertAppError(t, domainerrors.ErrDesignNotQuoted, err)

	// Wrong actor.
	design.Status = entity.DesignStatusQuoted
	design.FinalPrice = int64Ptr(4000)
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	_, err = service.ApproveQuote(ctx, uuid.New(), design.ID)
	assertAppError(t, domainerrors.ErrNotDesignBuyer, err)
}

func TestDesignService_ApproveQuote_LostRace(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	design := pendingDirectDesign(buyerID, uuid.New())
	design.Status = entity.DesignStatusQuoted
	design.FinalPrice = int64Ptr(4000)

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	designRepo.EXPECT().
		TransitionStatus(ctx, design.ID,
			[]entity.DesignStatus{entity.DesignStatusQuoted}, entity.DesignStatusApproved).
		Return(repository.ErrDesignStateChanged).Once()

	_, err := service.ApproveQuote(ctx, buyerID, design.ID)
	assertAppError(t, domainerrors.ErrInvalidTransition, err)
}

func TestDesignService_DeclineQuote_BroadcastRepools(t *testing.T) {
	designRepo, _, tx, service := newDesignServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	bakerID := uuid.New()
	design := pendingBroadcastDesign(buyerID)
	design.BakerID = &bakerID
	design.Status = entity.DesignStatusQuoted
	design.FinalPrice = int64Ptr(4000)

	repooled := *design
	repooled.BakerID = nil
	repooled.Status = entity.DesignStatusPending
	repooled.FinalPrice = nil

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	designRepo.EXPECT().
		ReleaseDesign(ctx, design.ID, []entity.DesignStatus{
			entity.DesignStatusQuoted,
			entity.DesignStatusDiscussion,
		}).
		Return(nil).Once()
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(&repooled, nil).Once()

	got, err := service.DeclineQuote(ctx, buyerID, design.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DesignStatusPending, got.Status)
	assert.Nil(t, got.BakerID)

	var event entity.EventPayload
	require.NoError(t, json.Unmarshal(enqueued[2].Payload, &event))
	assert.Equal(t, string(entity.DesignStatusPending), event.Status)
}

func TestDesignService_DeclineQuote_DirectIsTerminal(t *testing.T) {
	designRepo, _, tx, service := newDesignServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	design := pendingDirectDesign(buyerID, uuid.New())
	design.Status = entity.DesignStatusDiscussion

	declined := *design
	declined.Status = entity.DesignStatusDeclined

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	designRepo.EXPECT().
		TransitionStatus(ctx, design.ID, []entity.DesignStatus{
			entity.DesignStatusQuoted,
			entity.DesignStatusDiscussion,
		}, entity.DesignStatusDeclined).
		Return(nil).Once()
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(&declined, nil).Once()

	got, err := service.DeclineQuote(ctx, buyerID, design.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DesignStatusDeclined, got.Status)

	require.Equal(t, []entity.OutboxKind{
		entity.OutboxKindSystemMessage,
		entity.OutboxKindNotification,
		entity.OutboxKindEvent,
	}, outboxKinds(enqueued))

	var event entity.EventPayload
	require.NoError(t, json.Unmarshal(enqueued[2].Payload, &event))
	assert.Equal(t, string(entity.DesignStatusDeclined), event.Status)
}

func TestDesignService_DeclineQuote_Preconditions(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	design := pendingDirectDesign(buyerID, uuid.New())
	design.Status = entity.DesignStatusApproved
	design.FinalPrice = int64Ptr(4000)

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	_, err := service.DeclineQuote(ctx, buyerID, design.ID)
	assertAppError(t, domainerrors.ErrDesignNotQuoted, err)
}

func TestDesignService_EditDesign(t *testing.T) {
	designRepo, pricing, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	design := pendingBroadcastDesign(buyerID)

	newConfig := testDesignConfig()
	newConfig.Layers = append(newConfig.Layers, entity.Layer{Width: 6, Flavor: "vanilla"})

	edited := *design
	edited.Config = newConfig
	edited.EstimatedPrice = 3100

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	pricing.EXPECT().EstimatePrice(ctx, newConfig).Return(int64(3100), nil)
	designRepo.EXPECT().UpdateConfig(ctx, design.ID, newConfig, int64(3100)).Return(nil).Once()
	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(&edited, nil).Once()

	got, err := service.EditDesign(ctx, buyerID, design.ID, newConfig)
	require.NoError(t, err)
	assert.Equal(t, int64(3100), got.EstimatedPrice)
	assert.Len(t, got.Config.Layers, 2)
}

func TestDesignService_EditDesign_BlockedAfterQuote(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	design := pendingDirectDesign(buyerID, uuid.New())
	design.Status = entity.DesignStatusQuoted
	design.FinalPrice = int64Ptr(4000)

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()

	_, err := service.EditDesign(ctx, buyerID, design.ID, testDesignConfig())
	assertAppError(t, domainerrors.ErrEditAfterQuote, err)
}

func TestDesignService_EditDesign_BlockedWhenOrdered(t *testing.T) {
	designRepo, _, _, service := newDesignServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	design := pendingDirectDesign(buyerID, uuid.New())
	design.Status = entity.DesignStatusOrdered

	designRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()

	_, err := service.EditDesign(ctx, buyerID, design.ID, testDesignConfig())
	assertAppError(t, domainerrors.ErrDesignLocked, err)
}
