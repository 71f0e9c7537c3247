package repository

import (
	"context"
	"errors"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when an order already references the
	// design submission. The terminal ordered status is the primary
	// mutex; the unique index backing this error is the backstop.
	ErrDuplicateOrder = errors.New("order already exists for design")
)

// OrderRepository defines the interface for order database operations.
// Orders are immutable after creation apart from payment verification.
type OrderRepository interface {
	// CreateOrder persists a new order together with its line item.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByDesignID retrieves the order referencing a design.
	FindOrderByDesignID(ctx context.Context, designID uuid.UUID) (*entity.Order, error)

	// ListOrdersByBuyer retrieves a buyer's orders, newest first.
	ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// ListOrdersByBaker retrieves a baker's orders, newest first.
	ListOrdersByBaker(ctx context.Context, bakerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// UpdatePaymentStatus updates the payment verification state.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}
