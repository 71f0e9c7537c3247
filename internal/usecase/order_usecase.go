package usecase

import (
	"context"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// ConvertOrderInput carries the buyer's checkout declaration. The
// declared amount is validated against the server-side figure, never
// trusted on its own.
type ConvertOrderInput struct {
	AmountDeclared  int64
	ShippingAddress string
	PaymentMethod   entity.PaymentMethod
	ProofOfPayment  string // upload URL; required for electronic payments
}

// OrderUsecase converts approved design submissions into immutable
// orders and serves order queries.
type OrderUsecase interface {
	// ConvertToOrder creates the order for an approved submission and
	// locks the submission. At most one order ever exists per design.
	ConvertToOrder(ctx context.Context, buyerID, designID uuid.UUID, input ConvertOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order visible to the actor.
	GetOrder(ctx context.Context, actorID, orderID uuid.UUID) (*entity.Order, error)

	// ListBuyerOrders retrieves the buyer's orders.
	ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// ListBakerOrders retrieves the baker's orders.
	ListBakerOrders(ctx context.Context, bakerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// VerifyPayment marks an electronic payment as verified by the baker.
	VerifyPayment(ctx context.Context, bakerID, orderID uuid.UUID) error
}
