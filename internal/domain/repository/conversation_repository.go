package repository

import (
	"context"
	"errors"

	"cakery/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when a conversation is not found.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository defines the interface for chat thread database
// operations. The lifecycle core only ensures threads exist and posts
// system messages; ordinary chat traffic is handled elsewhere.
type ConversationRepository interface {
	// FindOrCreateConversation returns the conversation for the design,
	// creating it if absent. Idempotent: look up before create.
	FindOrCreateConversation(ctx context.Context, designID, buyerID, bakerID uuid.UUID) (*entity.Conversation, error)

	// CreateMessage appends a message to a conversation.
	CreateMessage(ctx context.Context, message *entity.ChatMessage) error

	// ListMessages retrieves a conversation's messages, oldest first.
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.ChatMessage, error)
}
