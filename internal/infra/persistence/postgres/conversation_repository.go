package postgres

import (
	"context"
	"time"

	"cakery/internal/domain/entity"
	"cakery/internal/domain/repository"
	"cakery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// FindOrCreateConversation returns the conversation for the design,
// creating it if absent. A concurrent creator losing the unique-index
// race falls back to reading the winner's row.
func (repo *conversationRepository) FindOrCreateConversation(ctx context.Context, designID, buyerID, bakerID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := repo.findConversation(ctx, designID, buyerID, bakerID)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, repository.ErrConversationNotFound) {
		return nil, err
	}

	conversationM := &model.ConversationModel{
		DesignID: designID,
		BuyerID:  buyerID,
		BakerID:  bakerID,
	}
	if err := repo.db.WithContext(ctx).Create(conversationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.findConversation(ctx, designID, buyerID, bakerID)
		}

		return nil, errors.Wrap(err, "failed to create conversation")
	}

	return toConversationDomain(conversationM), nil
}

func (repo *conversationRepository) findConversation(ctx context.Context, designID, buyerID, bakerID uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("design_id = ? AND buyer_id = ? AND baker_id = ?", designID, buyerID, bakerID).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	return toConversationDomain(&conversationM), nil
}

// CreateMessage appends a message to a conversation.
func (repo *conversationRepository) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	messageM := fromChatMessageDomain(message)
	if messageM.SentAt.IsZero() {
		messageM.SentAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return errors.Wrap(err, "failed to create chat message")
	}

	message.ID = messageM.ID
	message.SentAt = messageM.SentAt

	return nil
}

// ListMessages retrieves a conversation's messages, oldest first.
func (repo *conversationRepository) ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toChatMessageDomain(messageM))
	}

	return messages, nil
}

// --- Mapper Functions ---

func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	return &entity.Conversation{
		ID:        data.ID,
		DesignID:  data.DesignID,
		BuyerID:   data.BuyerID,
		BakerID:   data.BakerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toChatMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	if data == nil {
		return nil
	}

	return &entity.ChatMessage{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Kind:           entity.MessageKind(data.Kind),
		Text:           data.Text,
		SentAt:         data.SentAt,
	}
}

func fromChatMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	if data == nil {
		return nil
	}

	return &model.ChatMessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Kind:           string(data.Kind),
		Text:           data.Text,
		SentAt:         data.SentAt,
	}
}
