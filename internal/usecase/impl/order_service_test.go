package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"cakery/internal/domain/entity"
	domainerrors "cakery/internal/domain/errors"
	"cakery/internal/domain/repository"
	mockRepo "cakery/internal/mocks/repository"
	mockSvc "cakery/internal/mocks/service"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	DesignRepo *mockRepo.MockDesignRepository
	OrderRepo  *mockRepo.MockOrderRepository
	QRCode     *mockSvc.MockQRCodeService
	Upload     *mockSvc.MockUploadService
	Tx         *txFixture
	Service    usecase.OrderUsecase
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	t.Helper()

	designRepo := mockRepo.NewMockDesignRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	uploadService := mockSvc.NewMockUploadService(t)
	tx := newTxFixture(t)
	tx.ServeDesignRepo(designRepo)
	tx.ServeOrderRepo(orderRepo)

	service := NewOrderService(OrderServiceParams{
		DesignRepo:    designRepo,
		OrderRepo:     orderRepo,
		TxManager:     tx.TxManager,
		QRCodeService: qrcodeService,
		UploadService: uploadService,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &orderServiceFixture{
		DesignRepo: designRepo,
		OrderRepo:  orderRepo,
		QRCode:     qrcodeService,
		Upload:     uploadService,
		Tx:         tx,
		Service:    service,
	}
}

func approvedDesign(buyerID, bakerID uuid.UUID) *entity.DesignSubmission {
	design := pendingDirectDesign(buyerID, bakerID)
	design.Status = entity.DesignStatusApproved
	design.FinalPrice = int64Ptr(4000)
	design.ShippingFee = 200

	return design
}

func TestOrderService_ConvertToOrder_CashOnDelivery(t *testing.T) {
	f := newOrderServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	f.Tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	bakerID := uuid.New()
	design := approvedDesign(buyerID, bakerID)

	f.DesignRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil)
	f.DesignRepo.EXPECT().
		TransitionStatus(ctx, design.ID,
			[]entity.DesignStatus{entity.DesignStatusApproved}, entity.DesignStatusOrdered).
		Return(nil)

	var created *entity.Order
	f.OrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			created = order
		}).
		Return(nil)

	order, err := f.Service.ConvertToOrder(ctx, buyerID, design.ID, usecase.ConvertOrderInput{
		AmountDeclared:  4200,
		ShippingAddress: "12 Mabini St, Quezon City",
		PaymentMethod:   entity.PaymentMethodCashOnDelivery,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, buyerID, order.BuyerID)
	assert.Equal(t, bakerID, order.BakerID)
	assert.Equal(t, int64(4200), order.TotalAmount)
	assert.Equal(t, entity.PaymentStatusUnpaid, order.PaymentStatus)
	assert.Empty(t, order.PaymentQRURL)

	// The line item freezes the design's final price.
	assert.Equal(t, design.ID, order.Item.DesignID)
	assert.Equal(t, int64(4000), order.Item.Price)
	assert.Equal(t, 1, order.Item.Quantity)
	assert.Equal(t, order.ID, order.Item.OrderID)

	require.Equal(t, []entity.OutboxKind{
		entity.OutboxKindNotification,
		entity.OutboxKindEvent,
	}, outboxKinds(enqueued))

	var notification entity.NotificationPayload
	require.NoError(t, json.Unmarshal(enqueued[0].Payload, &notification))
	assert.Equal(t, bakerID, notification.UserID)
	assert.Equal(t, entity.NotificationKindOrderPlaced, notification.Kind)

	var event entity.EventPayload
	require.NoError(t, json.Unmarshal(enqueued[1].Payload, &event))
	assert.Equal(t, "order.created", event.Topic)
	require.NotNil(t, event.OrderID)
	assert.Equal(t, order.ID, *event.OrderID)
}

func TestOrderService_ConvertToOrder_ElectronicWithProof(t *testing.T) {
	f := newOrderServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	f.Tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	design := approvedDesign(buyerID, uuid.New())

	f.DesignRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil)
	f.QRCode.EXPECT().
		GenerateQRCode(mock.MatchedBy(func(content string) bool {
			return len(content) > len("cakery://payment/") && content[:len("cakery://payment/")] == "cakery://payment/"
		})).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)
	f.Upload.EXPECT().
		Upload(ctx, "image/png", mock.Anything).
		Return("https://cdn.example.com/qr/abc.png", nil)
	f.DesignRepo.EXPECT().
		TransitionStatus(ctx, design.ID,
			[]entity.DesignStatus{entity.DesignStatusApproved}, entity.DesignStatusOrdered).
		Return(nil)
	f.OrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := f.Service.ConvertToOrder(ctx, buyerID, design.ID, usecase.ConvertOrderInput{
		AmountDeclared:  4200,
		ShippingAddress: "12 Mabini St, Quezon City",
		PaymentMethod:   entity.PaymentMethodElectronic,
		ProofOfPayment:  "https://cdn.example.com/proof/xyz.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPendingVerification, order.PaymentStatus)
	assert.Equal(t, "https://cdn.example.com/qr/abc.png", order.PaymentQRURL)
}

func TestOrderService_ConvertToOrder_ElectronicRequiresProof(t *testing.T) {
	f := newOrderServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	design := approvedDesign(buyerID, uuid.New())

	f.DesignRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil)

	_, err := f.Service.ConvertToOrder(ctx, buyerID, design.ID, usecase.ConvertOrderInput{
		AmountDeclared: 4200,
		PaymentMethod:  entity.PaymentMethodElectronic,
	})
	assertAppError(t, domainerrors.ErrProofOfPaymentRequired, err)
}

func TestOrderService_ConvertToOrder_QRFailureDoesNotBlock(t *testing.T) {
	f := newOrderServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	f.Tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	design := approvedDesign(buyerID, uuid.New())

	f.DesignRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil)
	f.QRCode.EXPECT().
		GenerateQRCode(mock.AnythingOfType("string")).
		Return(nil, assert.AnError)
	f.DesignRepo.EXPECT().
		TransitionStatus(ctx, design.ID,
			[]entity.DesignStatus{entity.DesignStatusApproved}, entity.DesignStatusOrdered).
		Return(nil)
	f.OrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := f.Service.ConvertToOrder(ctx, buyerID, design.ID, usecase.ConvertOrderInput{
		AmountDeclared: 4200,
		PaymentMethod:  entity.PaymentMethodElectronic,
		ProofOfPayment: "https://cdn.example.com/proof/xyz.jpg",
	})
	require.NoError(t, err)
	assert.Empty(t, order.PaymentQRURL)
}

func TestOrderService_ConvertToOrder_Underpayment(t *testing.T) {
	f := newOrderServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	design := approvedDesign(buyerID, uuid.New())

	f.DesignRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil)

	// FinalPrice 4000 + shipping 200 and no downpayment: 4199 is short.
	_, err := f.Service.ConvertToOrder(ctx, buyerID, design.ID, usecase.ConvertOrderInput{
		AmountDeclared: 4199,
		PaymentMethod:  entity.PaymentMethodCashOnDelivery,
	})
	assertAppError(t, domainerrors.ErrUnderpayment, err)
}

func TestOrderService_ConvertToOrder_DownpaymentLowersMinimum(t *testing.T) {
	f := newOrderServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	f.Tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	design := approvedDesign(buyerID, uuid.New())
	design.DownpaymentAmount = 1000

	f.DesignRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil)
	f.DesignRepo.EXPECT().
		TransitionStatus(ctx, design.ID,
			[]entity.DesignStatus{entity.DesignStatusApproved}, entity.DesignStatusOrdered).
		Return(nil)
	f.OrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := f.Service.ConvertToOrder(ctx, buyerID, design.ID, usecase.ConvertOrderInput{
		AmountDeclared: 1000,
		PaymentMethod:  entity.PaymentMethodCashOnDelivery,
	})
	require.NoError(t, err)
	// The order still records the full total; the downpayment only
	// lowers what must be declared upfront.
	assert.Equal(t, int64(4200), order.TotalAmount)
	assert.Equal(t, int64(1000), order.AmountDeclared)
}

func TestOrderService_ConvertToOrder_LostRace(t *testing.T) {
	f := newOrderServiceFixture(t)

	var enqueued []*entity.OutboxMessage
	f.Tx.ServeOutboxRepo(outboxRecorder(t, &enqueued))

	ctx := context.Background()
	buyerID := uuid.New()
	design := approvedDesign(buyerID, uuid.New())

	f.DesignRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil)
	f.DesignRepo.EXPECT().
		TransitionStatus(ctx, design.ID,
			[]entity.DesignStatus{entity.DesignStatusApproved}, entity.DesignStatusOrdered).
		Return(repository.ErrDesignStateChanged)

	_, err := f.Service.ConvertToOrder(ctx, buyerID, design.ID, usecase.ConvertOrderInput{
		AmountDeclared: 4200,
		PaymentMethod:  entity.PaymentMethodCashOnDelivery,
	})
	assertAppError(t, domainerrors.ErrOrderConflict, err)
}

func TestOrderService_ConvertToOrder_Preconditions(t *testing.T) {
	f := newOrderServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	design := approvedDesign(buyerID, uuid.New())

	// Wrong actor.
	f.DesignRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	_, err := f.Service.ConvertToOrder(ctx, uuid.New(), design.ID, usecase.ConvertOrderInput{
		AmountDeclared: 4200,
		PaymentMethod:  entity.PaymentMethodCashOnDelivery,
	})
	assertAppError(t, domainerrors.ErrNotDesignBuyer, err)

	// Not approved yet.
	quoted := approvedDesign(buyerID, uuid.New())
	quoted.Status = entity.DesignStatusQuoted
	f.DesignRepo.EXPECT().FindDesignByID(ctx, quoted.ID).Return(quoted, nil).Once()
	_, err = f.Service.ConvertToOrder(ctx, buyerID, quoted.ID, usecase.ConvertOrderInput{
		AmountDeclared: 4200,
		PaymentMethod:  entity.PaymentMethodCashOnDelivery,
	})
	assertAppError(t, domainerrors.ErrDesignNotApproved, err)

	// Already ordered.
	ordered := approvedDesign(buyerID, uuid.New())
	ordered.Status = entity.DesignStatusOrdered
	f.DesignRepo.EXPECT().FindDesignByID(ctx, ordered.ID).Return(ordered, nil).Once()
	_, err = f.Service.ConvertToOrder(ctx, buyerID, ordered.ID, usecase.ConvertOrderInput{
		AmountDeclared: 4200,
		PaymentMethod:  entity.PaymentMethodCashOnDelivery,
	})
	assertAppError(t, domainerrors.ErrDesignLocked, err)

	// Unknown payment method.
	f.DesignRepo.EXPECT().FindDesignByID(ctx, design.ID).Return(design, nil).Once()
	_, err = f.Service.ConvertToOrder(ctx, buyerID, design.ID, usecase.ConvertOrderInput{
		AmountDeclared: 4200,
		PaymentMethod:  entity.PaymentMethod("barter"),
	})
	assertAppError(t, domainerrors.ErrValidationFailed, err)
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	f := newOrderServiceFixture(t)

	ctx := context.Background()
	buyerID := uuid.New()
	bakerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), BuyerID: buyerID, BakerID: bakerID}

	f.OrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Times(3)

	_, err := f.Service.GetOrder(ctx, buyerID, order.ID)
	require.NoError(t, err)

	_, err = f.Service.GetOrder(ctx, bakerID, order.ID)
	require.NoError(t, err)

	_, err = f.Service.GetOrder(ctx, uuid.New(), order.ID)
	assertAppError(t, domainerrors.ErrForbidden, err)
}

func TestOrderService_VerifyPayment(t *testing.T) {
	f := newOrderServiceFixture(t)

	ctx := context.Background()
	bakerID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerID:       uuid.New(),
		BakerID:       bakerID,
		PaymentStatus: entity.PaymentStatusPendingVerification,
	}

	f.OrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.OrderRepo.EXPECT().
		UpdatePaymentStatus(ctx, order.ID, entity.PaymentStatusVerified).
		Return(nil)

	require.NoError(t, f.Service.VerifyPayment(ctx, bakerID, order.ID))
}

func TestOrderService_VerifyPayment_Guards(t *testing.T) {
	f := newOrderServiceFixture(t)

	ctx := context.Background()
	bakerID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerID:       uuid.New(),
		BakerID:       bakerID,
		PaymentStatus: entity.PaymentStatusPendingVerification,
	}

	// Only the order's baker may verify.
	f.OrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	err := f.Service.VerifyPayment(ctx, uuid.New(), order.ID)
	assertAppError(t, domainerrors.ErrForbidden, err)

	// Cash orders never enter verification.
	order.PaymentStatus = entity.PaymentStatusUnpaid
	f.OrderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	err = f.Service.VerifyPayment(ctx, bakerID, order.ID)
	assertAppError(t, domainerrors.ErrInvalidTransition, err)
}
