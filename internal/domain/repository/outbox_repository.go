package repository

import (
	"context"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// OutboxRepository defines the interface for the side-effect outbox.
// Enqueue is called inside the same transaction as the state transition
// that produced the intent; the remaining methods are used by the
// dispatcher worker after commit.
type OutboxRepository interface {
	// Enqueue persists a pending outbox message.
	Enqueue(ctx context.Context, message *entity.OutboxMessage) error

	// FetchPending retrieves up to limit pending messages, oldest first,
	// locking them against concurrent dispatchers.
	FetchPending(ctx context.Context, limit int) ([]*entity.OutboxMessage, error)

	// MarkDelivered flags a message as successfully delivered.
	MarkDelivered(ctx context.Context, id uuid.UUID) error

	// MarkFailed records a failed delivery attempt. When final is true the
	// message is retired and will not be retried.
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, final bool) error
}
