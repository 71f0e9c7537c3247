package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cakery/config"
	"cakery/internal/domain/entity"
	"cakery/internal/domain/repository"
	"cakery/internal/domain/service"
	"cakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOutboxBatchSize   = 50
	defaultOutboxMaxAttempts = 5
)

type outboxService struct {
	txManager        repository.TransactionManager
	conversationRepo repository.ConversationRepository
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushSender       service.PushSender
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
	batchSize        int
	maxAttempts      int
}

// OutboxServiceParams holds dependencies for OutboxService, injected by Fx.
// PushSender is optional: without Firebase credentials notifications are
// persisted but not pushed.
type OutboxServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ConversationRepo repository.ConversationRepository
	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	PushSender       service.PushSender `optional:"true"`
	EventPublisher   service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewOutboxService creates a new outbox dispatcher service instance
func NewOutboxService(params OutboxServiceParams) usecase.OutboxUsecase {
	batchSize := defaultOutboxBatchSize
	maxAttempts := defaultOutboxMaxAttempts
	if params.Config.Outbox != nil {
		if params.Config.Outbox.BatchSize > 0 {
			batchSize = params.Config.Outbox.BatchSize
		}
		if params.Config.Outbox.MaxAttempts > 0 {
			maxAttempts = params.Config.Outbox.MaxAttempts
		}
	}

	return &outboxService{
		txManager:        params.TxManager,
		conversationRepo: params.ConversationRepo,
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		pushSender:       params.PushSender,
		eventPublisher:   params.EventPublisher,
		logger:           params.Logger,
		batchSize:        batchSize,
		maxAttempts:      maxAttempts,
	}
}

// DispatchPending fetches and delivers one batch of pending messages.
// The fetch locks its rows (skip-locked) for the duration of the
// transaction, so concurrent dispatcher instances never double-deliver
// a message within the same poll.
func (s *outboxService) DispatchPending(ctx context.Context) (int, error) {
	var processed int

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		outboxRepo := f.NewOutboxRepository()

		messages, err := outboxRepo.FetchPending(ctx, s.batchSize)
		if err != nil {
			return errors.Wrap(err, "failed to fetch pending outbox messages")
		}

		for _, message := range messages {
			processed++

			if err := s.deliver(ctx, message); err != nil {
				final := message.Attempts+1 >= s.maxAttempts
				s.logger.Warn("outbox delivery failed",
					slog.String("message_id", message.ID.String()),
					slog.String("kind", string(message.Kind)),
					slog.Int("attempts", message.Attempts+1),
					slog.Bool("final", final),
					slog.Any("error", err),
				)

				if markErr := outboxRepo.MarkFailed(ctx, message.ID, err.Error(), final); markErr != nil {
					return errors.Wrap(markErr, "failed to mark outbox message failed")
				}

				continue
			}

			if err := outboxRepo.MarkDelivered(ctx, message.ID); err != nil {
				return errors.Wrap(err, "failed to mark outbox message delivered")
			}
		}

		return nil
	})
	if err != nil {
		return processed, err
	}

	return processed, nil
}

// deliver performs the side effect a message describes.
func (s *outboxService) deliver(ctx context.Context, message *entity.OutboxMessage) error {
	switch message.Kind {
	case entity.OutboxKindSystemMessage:
		return s.deliverSystemMessage(ctx, message.Payload)
	case entity.OutboxKindNotification:
		return s.deliverNotification(ctx, message.Payload)
	case entity.OutboxKindEvent:
		return s.deliverEvent(ctx, message.Payload)
	default:
		return errors.Errorf("unknown outbox kind: %s", message.Kind)
	}
}

// deliverSystemMessage ensures the design's conversation exists and
// posts the system chat message into it.
func (s *outboxService) deliverSystemMessage(ctx context.Context, payload json.RawMessage) error {
	var data entity.SystemMessagePayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return errors.Wrap(err, "failed to unmarshal system message payload")
	}

	conversation, err := s.conversationRepo.FindOrCreateConversation(ctx, data.DesignID, data.BuyerID, data.BakerID)
	if err != nil {
		return errors.Wrap(err, "failed to find or create conversation")
	}

	if err := s.conversationRepo.CreateMessage(ctx, &entity.ChatMessage{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       data.SenderID,
		Kind:           data.Kind,
		Text:           data.Text,
		SentAt:         time.Now(),
	}); err != nil {
		return errors.Wrap(err, "failed to create system message")
	}

	return nil
}

// deliverNotification persists the in-app notification, then pushes it
// to the recipient's active devices. Push failures are logged only; the
// persisted record is the authoritative delivery.
func (s *outboxService) deliverNotification(ctx context.Context, payload json.RawMessage) error {
	var data entity.NotificationPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return errors.Wrap(err, "failed to unmarshal notification payload")
	}

	if err := s.notificationRepo.CreateNotification(ctx, &entity.UserNotification{
		ID:        uuid.New(),
		UserID:    data.UserID,
		Kind:      data.Kind,
		Title:     data.Title,
		Message:   data.Message,
		RelatedID: data.RelatedID,
		CreatedAt: time.Now(),
	}); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	s.pushToDevices(ctx, data)

	return nil
}

// pushToDevices fans the notification out to the user's registered
// devices, best-effort.
func (s *outboxService) pushToDevices(ctx context.Context, data entity.NotificationPayload) {
	if s.pushSender == nil {
		return
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, data.UserID)
	if err != nil {
		s.logger.Warn("failed to load devices for push",
			slog.String("user_id", data.UserID.String()),
			slog.Any("error", err),
		)

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	pushData := map[string]string{"kind": string(data.Kind)}
	if data.RelatedID != nil {
		pushData["related_id"] = data.RelatedID.String()
	}

	_, _, invalidTokens, err := s.pushSender.SendBatchNotification(ctx, tokens, data.Title, data.Message, pushData)
	if err != nil {
		s.logger.Warn("push fan-out failed",
			slog.String("user_id", data.UserID.String()),
			slog.Any("error", err),
		)

		return
	}

	// Tokens FCM reports as dead are retired so future fan-outs shrink.
	for _, token := range invalidTokens {
		if err := s.deviceRepo.DeactivateDevice(ctx, token); err != nil {
			s.logger.Warn("failed to deactivate invalid device token",
				slog.Any("error", err),
			)
		}
	}
}

// deliverEvent publishes the lifecycle event to the event bus.
func (s *outboxService) deliverEvent(ctx context.Context, payload json.RawMessage) error {
	var data entity.EventPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return errors.Wrap(err, "failed to unmarshal event payload")
	}

	event := &service.LifecycleEvent{
		Topic:    data.Topic,
		DesignID: data.DesignID.String(),
		Status:   data.Status,
	}
	if data.OrderID != nil {
		event.OrderID = data.OrderID.String()
	}

	if err := s.eventPublisher.PublishLifecycleEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish lifecycle event")
	}

	return nil
}
