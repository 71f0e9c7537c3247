package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"cakery/internal/domain/entity"
	domainerrors "cakery/internal/domain/errors"
	"cakery/internal/domain/repository"
	"cakery/internal/domain/service"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	designRepo    repository.DesignRepository
	orderRepo     repository.OrderRepository
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	uploadService service.UploadService
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	DesignRepo    repository.DesignRepository
	OrderRepo     repository.OrderRepository
	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	UploadService service.UploadService
	Logger        *slog.Logger
}

// NewOrderService creates a new order conversion service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		designRepo:    params.DesignRepo,
		orderRepo:     params.OrderRepo,
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		uploadService: params.UploadService,
		logger:        params.Logger,
	}
}

// ConvertToOrder converts an approved submission into an order. The
// payable amount is recomputed here; the declared figure only has to
// cover it. The approved-to-ordered flip is a conditional write inside
// the same transaction as the order insert, so two concurrent checkouts
// can never both produce an order.
func (s *orderService) ConvertToOrder(ctx context.Context, buyerID, designID uuid.UUID, input usecase.ConvertOrderInput) (*entity.Order, error) {
	design, err := s.designRepo.FindDesignByID(ctx, designID)
	if err != nil {
		if errors.Is(err, repository.ErrDesignNotFound) {
			return nil, domainerrors.ErrDesignNotFound
		}

		return nil, errors.Wrap(err, "failed to find design")
	}

	if design.BuyerID != buyerID {
		return nil, domainerrors.ErrNotDesignBuyer
	}
	if design.Status == entity.DesignStatusOrdered {
		return nil, domainerrors.ErrDesignLocked
	}
	if design.Status != entity.DesignStatusApproved ||
		design.FinalPrice == nil || design.BakerID == nil {
		return nil, domainerrors.ErrDesignNotApproved
	}

	if input.PaymentMethod != entity.PaymentMethodCashOnDelivery &&
		input.PaymentMethod != entity.PaymentMethodElectronic {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method")
	}

	requiredAmount := *design.FinalPrice + design.ShippingFee
	payableMinimum := requiredAmount
	if design.DownpaymentAmount > 0 {
		payableMinimum = design.DownpaymentAmount
	}
	if input.AmountDeclared < payableMinimum {
		return nil, domainerrors.ErrUnderpayment.WithDetails(
			fmt.Sprintf("declared %d, required at least %d", input.AmountDeclared, payableMinimum))
	}

	paymentStatus := entity.PaymentStatusUnpaid
	if input.PaymentMethod == entity.PaymentMethodElectronic {
		if input.ProofOfPayment == "" {
			return nil, domainerrors.ErrProofOfPaymentRequired
		}
		paymentStatus = entity.PaymentStatusPendingVerification
	}

	now := time.Now()
	order := &entity.Order{
		ID:      uuid.New(),
		BuyerID: buyerID,
		BakerID: *design.BakerID,
		Item: entity.OrderItem{
			ID:       uuid.New(),
			DesignID: designID,
			Price:    *design.FinalPrice,
			Quantity: 1,
		},
		ShippingFee:     design.ShippingFee,
		TotalAmount:     requiredAmount,
		AmountDeclared:  input.AmountDeclared,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   paymentStatus,
		ProofOfPayment:  input.ProofOfPayment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	order.Item.OrderID = order.ID

	if input.PaymentMethod == entity.PaymentMethodElectronic {
		// Best-effort: a missing QR never blocks the checkout.
		order.PaymentQRURL = s.generatePaymentQR(ctx, order.ID)
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		// Lock the design first; losing this conditional write means a
		// concurrent conversion already won.
		if err := f.NewDesignRepository().TransitionStatus(ctx, designID,
			[]entity.DesignStatus{entity.DesignStatusApproved}, entity.DesignStatusOrdered); err != nil {
			if errors.Is(err, repository.ErrDesignStateChanged) {
				return domainerrors.ErrOrderConflict
			}

			return errors.Wrap(err, "failed to lock design")
		}

		if err := f.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			if errors.Is(err, repository.ErrDuplicateOrder) {
				return domainerrors.ErrOrderConflict
			}

			return errors.Wrap(err, "failed to create order")
		}

		outboxRepo := f.NewOutboxRepository()
		if err := enqueueOutbox(ctx, outboxRepo, entity.OutboxKindNotification, entity.NotificationPayload{
			UserID:    *design.BakerID,
			Kind:      entity.NotificationKindOrderPlaced,
			Title:     "Order placed",
			Message:   fmt.Sprintf("The customer placed an order for ₱%d.", requiredAmount),
			RelatedID: &order.ID,
		}); err != nil {
			return err
		}

		return enqueueOutbox(ctx, outboxRepo, entity.OutboxKindEvent, entity.EventPayload{
			Topic:    "order.created",
			DesignID: designID,
			OrderID:  &order.ID,
			Status:   string(entity.DesignStatusOrdered),
		})
	})
	if err != nil {
		return nil, asAppError(err)
	}

	return order, nil
}

// generatePaymentQR renders and stores the payment reference QR,
// returning its URL or empty on failure.
func (s *orderService) generatePaymentQR(ctx context.Context, orderID uuid.UUID) string {
	png, err := s.qrcodeService.GenerateQRCode("cakery://payment/" + orderID.String())
	if err != nil {
		s.logger.Warn("failed to generate payment QR",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err),
		)

		return ""
	}

	url, err := s.uploadService.Upload(ctx, "image/png", bytes.NewReader(png))
	if err != nil {
		s.logger.Warn("failed to upload payment QR",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err),
		)

		return ""
	}

	return url
}

// GetOrder retrieves an order visible to its buyer or baker.
func (s *orderService) GetOrder(ctx context.Context, actorID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != actorID && order.BakerID != actorID {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListBuyerOrders retrieves the buyer's orders.
func (s *orderService) ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrdersByBuyer(ctx, buyerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer orders")
	}

	return orders, nil
}

// ListBakerOrders retrieves the baker's orders.
func (s *orderService) ListBakerOrders(ctx context.Context, bakerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrdersByBaker(ctx, bakerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list baker orders")
	}

	return orders, nil
}

// VerifyPayment marks an electronic payment as verified.
func (s *orderService) VerifyPayment(ctx context.Context, bakerID, orderID uuid.UUID) error {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if order.BakerID != bakerID {
		return domainerrors.ErrForbidden
	}
	if order.PaymentStatus != entity.PaymentStatusPendingVerification {
		return domainerrors.ErrInvalidTransition.WithDetails("payment is not awaiting verification")
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, orderID, entity.PaymentStatusVerified); err != nil {
		return errors.Wrap(err, "failed to update payment status")
	}

	return nil
}

// findOrder loads an order, translating the not-found sentinel.
func (s *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
