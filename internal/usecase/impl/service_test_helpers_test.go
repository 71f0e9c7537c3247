package impl

import (
	"context"
	"testing"

	"cakery/internal/domain/entity"
	"cakery/internal/domain/repository"
	mockRepo "cakery/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// txFixture wires a transaction manager mock that runs the callback
// against a factory serving per-test repository mocks, mimicking a
// committed transaction.
type txFixture struct {
	TxManager *mockRepo.MockTransactionManager
	Factory   *mockRepo.MockRepositoryFactory
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return &txFixture{TxManager: txManager, Factory: factory}
}

func (f *txFixture) ServeDesignRepo(repo repository.DesignRepository) {
	f.Factory.EXPECT().NewDesignRepository().Return(repo).Maybe()
}

func (f *txFixture) ServeOrderRepo(repo repository.OrderRepository) {
	f.Factory.EXPECT().NewOrderRepository().Return(repo).Maybe()
}

func (f *txFixture) ServeOutboxRepo(repo repository.OutboxRepository) {
	f.Factory.EXPECT().NewOutboxRepository().Return(repo).Maybe()
}

// outboxRecorder captures every enqueued intent so tests can assert on
// the exact side effects a transition recorded.
func outboxRecorder(t *testing.T, messages *[]*entity.OutboxMessage) *mockRepo.MockOutboxRepository {
	t.Helper()

	outboxRepo := mockRepo.NewMockOutboxRepository(t)
	outboxRepo.EXPECT().
		Enqueue(mock.Anything, mock.AnythingOfType("*entity.OutboxMessage")).
		Run(func(_ context.Context, message *entity.OutboxMessage) {
			*messages = append(*messages, message)
		}).
		Return(nil).
		Maybe()

	return outboxRepo
}

func outboxKinds(messages []*entity.OutboxMessage) []entity.OutboxKind {
	kinds := make([]entity.OutboxKind, 0, len(messages))
	for _, message := range messages {
		kinds = append(kinds, message.Kind)
	}

	return kinds
}

func testDesignConfig() entity.DesignConfig {
	return entity.DesignConfig{
		Shape: "round",
		Layers: []entity.Layer{
			{Width: 8, Flavor: "chocolate", Height: 4},
		},
		Frosting: "buttercream",
		Toppings: map[string]entity.ToppingSelection{
			"strawberries": {Mode: entity.ToppingQuantity, Quantity: 6},
		},
		Texture: "smooth",
	}
}

func pendingBroadcastDesign(buyerID uuid.UUID) *entity.DesignSubmission {
	return &entity.DesignSubmission{
		ID:             uuid.New(),
		BuyerID:        buyerID,
		RequestType:    entity.RequestTypeBroadcast,
		Status:         entity.DesignStatusPending,
		Config:         testDesignConfig(),
		EstimatedPrice: 2500,
	}
}

func pendingDirectDesign(buyerID, bakerID uuid.UUID) *entity.DesignSubmission {
	design := pendingBroadcastDesign(buyerID)
	design.RequestType = entity.RequestTypeDirect
	design.BakerID = &bakerID

	return design
}

func int64Ptr(v int64) *int64 {
	return &v
}
