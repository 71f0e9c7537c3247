package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so a state transition and its outbox intents commit or
// roll back together.
type RepositoryFactory interface {
	// NewDesignRepository returns a DesignRepository bound to the current transaction.
	NewDesignRepository() DesignRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewOutboxRepository returns an OutboxRepository bound to the current transaction.
	NewOutboxRepository() OutboxRepository
}
