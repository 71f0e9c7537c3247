package usecase

import (
	"context"
)

// OutboxUsecase delivers the side-effect intents recorded alongside
// state transitions. Delivery failures are recorded on the message and
// never propagate to the transitions that produced them.
type OutboxUsecase interface {
	// DispatchPending fetches a batch of pending outbox messages and
	// delivers each one. Returns the number of messages processed.
	DispatchPending(ctx context.Context) (int, error)
}
