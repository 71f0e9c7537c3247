package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"cakery/config"
	"cakery/internal/domain/entity"
	"cakery/internal/domain/service"
	mockRepo "cakery/internal/mocks/repository"
	mockSvc "cakery/internal/mocks/service"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type outboxServiceFixture struct {
	OutboxRepo       *mockRepo.MockOutboxRepository
	ConversationRepo *mockRepo.MockConversationRepository
	NotificationRepo *mockRepo.MockNotificationRepository
	DeviceRepo       *mockRepo.MockDeviceRepository
	PushSender       *mockSvc.MockPushSender
	EventPublisher   *mockSvc.MockEventPublisher
	Service          usecase.OutboxUsecase
}

func newOutboxServiceFixture(t *testing.T) *outboxServiceFixture {
	t.Helper()

	outboxRepo := mockRepo.NewMockOutboxRepository(t)
	conversationRepo := mockRepo.NewMockConversationRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	tx := newTxFixture(t)
	tx.ServeOutboxRepo(outboxRepo)

	service := NewOutboxService(OutboxServiceParams{
		TxManager:        tx.TxManager,
		ConversationRepo: conversationRepo,
		NotificationRepo: notificationRepo,
		DeviceRepo:       deviceRepo,
		PushSender:       pushSender,
		EventPublisher:   eventPublisher,
		Config: &config.Config{
			Outbox: &config.OutboxConfig{
				PollInterval: time.Second,
				BatchSize:    10,
				MaxAttempts:  3,
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &outboxServiceFixture{
		OutboxRepo:       outboxRepo,
		ConversationRepo: conversationRepo,
		NotificationRepo: notificationRepo,
		DeviceRepo:       deviceRepo,
		PushSender:       pushSender,
		EventPublisher:   eventPublisher,
		Service:          service,
	}
}

func outboxMessage(t *testing.T, kind entity.OutboxKind, payload any) *entity.OutboxMessage {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	return &entity.OutboxMessage{
		ID:      uuid.New(),
		Kind:    kind,
		Payload: data,
		Status:  entity.OutboxStatusPending,
	}
}

func TestOutboxService_DispatchPending_Empty(t *testing.T) {
	f := newOutboxServiceFixture(t)

	f.OutboxRepo.EXPECT().FetchPending(mock.Anything, 10).Return(nil, nil)

	processed, err := f.Service.DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, processed)
}

func TestOutboxService_DispatchPending_SystemMessage(t *testing.T) {
	f := newOutboxServiceFixture(t)

	designID := uuid.New()
	buyerID := uuid.New()
	bakerID := uuid.New()
	message := outboxMessage(t, entity.OutboxKindSystemMessage, entity.SystemMessagePayload{
		DesignID: designID,
		BuyerID:  buyerID,
		BakerID:  bakerID,
		SenderID: bakerID,
		Kind:     entity.MessageKindQuotation,
		Text:     "The baker has quoted ₱4500 for your design.",
	})

	conversation := &entity.Conversation{ID: uuid.New(), DesignID: designID}

	f.OutboxRepo.EXPECT().FetchPending(mock.Anything, 10).
		Return([]*entity.OutboxMessage{message}, nil)
	f.ConversationRepo.EXPECT().
		FindOrCreateConversation(mock.Anything, designID, buyerID, bakerID).
		Return(conversation, nil)
	f.ConversationRepo.EXPECT().
		CreateMessage(mock.Anything, mock.MatchedBy(func(m *entity.ChatMessage) bool {
			return m.ConversationID == conversation.ID &&
				m.SenderID == bakerID &&
				m.Kind == entity.MessageKindQuotation
		})).
		Return(nil)
	f.OutboxRepo.EXPECT().MarkDelivered(mock.Anything, message.ID).Return(nil)

	processed, err := f.Service.DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestOutboxService_DispatchPending_NotificationWithPush(t *testing.T) {
	f := newOutboxServiceFixture(t)

	userID := uuid.New()
	relatedID := uuid.New()
	message := outboxMessage(t, entity.OutboxKindNotification, entity.NotificationPayload{
		UserID:    userID,
		Kind:      entity.NotificationKindQuoteReceived,
		Title:     "Quote received",
		Message:   "The baker has quoted ₱4500 for your design.",
		RelatedID: &relatedID,
	})

	f.OutboxRepo.EXPECT().FetchPending(mock.Anything, 10).
		Return([]*entity.OutboxMessage{message}, nil)
	f.NotificationRepo.EXPECT().
		CreateNotification(mock.Anything, mock.MatchedBy(func(n *entity.UserNotification) bool {
			return n.UserID == userID && n.Kind == entity.NotificationKindQuoteReceived
		})).
		Return(nil)
	f.DeviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{
			{FCMToken: "token-a"},
			{FCMToken: "token-b"},
		}, nil)
	f.PushSender.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a", "token-b"},
			"Quote received", "The baker has quoted ₱4500 for your design.",
			map[string]string{
				"kind":       string(entity.NotificationKindQuoteReceived),
				"related_id": relatedID.String(),
			}).
		Return(1, 1, []string{"token-b"}, nil)
	// Dead tokens reported by the push service are retired.
	f.DeviceRepo.EXPECT().DeactivateDevice(mock.Anything, "token-b").Return(nil)
	f.OutboxRepo.EXPECT().MarkDelivered(mock.Anything, message.ID).Return(nil)

	processed, err := f.Service.DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestOutboxService_DispatchPending_PushFailureStillDelivers(t *testing.T) {
	f := newOutboxServiceFixture(t)

	userID := uuid.New()
	message := outboxMessage(t, entity.OutboxKindNotification, entity.NotificationPayload{
		UserID:  userID,
		Kind:    entity.NotificationKindStatusChanged,
		Title:   "Design request update",
		Message: "Your design request is now discussion.",
	})

	f.OutboxRepo.EXPECT().FetchPending(mock.Anything, 10).
		Return([]*entity.OutboxMessage{message}, nil)
	f.NotificationRepo.EXPECT().
		CreateNotification(mock.Anything, mock.AnythingOfType("*entity.UserNotification")).
		Return(nil)
	f.DeviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{{FCMToken: "token-a"}}, nil)
	f.PushSender.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a"},
			mock.AnythingOfType("string"), mock.AnythingOfType("string"),
			mock.AnythingOfType("map[string]string")).
		Return(0, 0, nil, assert.AnError)
	// The persisted record is the authoritative delivery; a failed push
	// never fails the message.
	f.OutboxRepo.EXPECT().MarkDelivered(mock.Anything, message.ID).Return(nil)

	processed, err := f.Service.DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestOutboxService_DispatchPending_Event(t *testing.T) {
	f := newOutboxServiceFixture(t)

	designID := uuid.New()
	orderID := uuid.New()
	message := outboxMessage(t, entity.OutboxKindEvent, entity.EventPayload{
		Topic:    "order.created",
		DesignID: designID,
		OrderID:  &orderID,
		Status:   string(entity.DesignStatusOrdered),
	})

	f.OutboxRepo.EXPECT().FetchPending(mock.Anything, 10).
		Return([]*entity.OutboxMessage{message}, nil)
	f.EventPublisher.EXPECT().
		PublishLifecycleEvent(mock.Anything, mock.MatchedBy(func(e *service.LifecycleEvent) bool {
			return e.Topic == "order.created" &&
				e.DesignID == designID.String() &&
				e.OrderID == orderID.String()
		})).
		Return(nil)
	f.OutboxRepo.EXPECT().MarkDelivered(mock.Anything, message.ID).Return(nil)

	processed, err := f.Service.DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestOutboxService_DispatchPending_FailureMarksAndContinues(t *testing.T) {
	f := newOutboxServiceFixture(t)

	designID := uuid.New()
	failing := outboxMessage(t, entity.OutboxKindEvent, entity.EventPayload{
		Topic:    "design.status_changed",
		DesignID: designID,
		Status:   string(entity.DesignStatusQuoted),
	})
	succeeding := outboxMessage(t, entity.OutboxKindEvent, entity.EventPayload{
		Topic:    "design.status_changed",
		DesignID: designID,
		Status:   string(entity.DesignStatusApproved),
	})

	f.OutboxRepo.EXPECT().FetchPending(mock.Anything, 10).
		Return([]*entity.OutboxMessage{failing, succeeding}, nil)
	f.EventPublisher.EXPECT().
		PublishLifecycleEvent(mock.Anything, mock.MatchedBy(func(e *service.LifecycleEvent) bool {
			return e.Status == string(entity.DesignStatusQuoted)
		})).
		Return(assert.AnError).Once()
	f.OutboxRepo.EXPECT().
		MarkFailed(mock.Anything, failing.ID, mock.AnythingOfType("string"), false).
		Return(nil)
	f.EventPublisher.EXPECT().
		PublishLifecycleEvent(mock.Anything, mock.MatchedBy(func(e *service.LifecycleEvent) bool {
			return e.Status == string(entity.DesignStatusApproved)
		})).
		Return(nil).Once()
	f.OutboxRepo.EXPECT().MarkDelivered(mock.Anything, succeeding.ID).Return(nil)

	processed, err := f.Service.DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
}

func TestOutboxService_DispatchPending_FinalFailureRetires(t *testing.T) {
	f := newOutboxServiceFixture(t)

	message := outboxMessage(t, entity.OutboxKindEvent, entity.EventPayload{
		Topic:    "design.status_changed",
		DesignID: uuid.New(),
		Status:   string(entity.DesignStatusQuoted),
	})
	// Two failed attempts already recorded; this one exhausts the budget.
	message.Attempts = 2

	f.OutboxRepo.EXPECT().FetchPending(mock.Anything, 10).
		Return([]*entity.OutboxMessage{message}, nil)
	f.EventPublisher.EXPECT().
		PublishLifecycleEvent(mock.Anything, mock.Anything).
		Return(assert.AnError)
	f.OutboxRepo.EXPECT().
		MarkFailed(mock.Anything, message.ID, mock.AnythingOfType("string"), true).
		Return(nil)

	processed, err := f.Service.DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestOutboxService_DispatchPending_UnknownKindFails(t *testing.T) {
	f := newOutboxServiceFixture(t)

	message := &entity.OutboxMessage{
		ID:      uuid.New(),
		Kind:    entity.OutboxKind("carrier_pigeon"),
		Payload: json.RawMessage(`{}`),
	}

	f.OutboxRepo.EXPECT().FetchPending(mock.Anything, 10).
		Return([]*entity.OutboxMessage{message}, nil)
	f.OutboxRepo.EXPECT().
		MarkFailed(mock.Anything, message.ID, mock.AnythingOfType("string"), false).
		Return(nil)

	processed, err := f.Service.DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}
