package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/logger"
	"devlink_backend/internal/models"
	"devlink_backend/internal/repositories"
	"devlink_backend/internal/services/dto"
)

// ConversationService serves the inbox and follow-up messaging for
// threads created by the application workflow.
type ConversationService struct {
	conversations repositories.ConversationRepository
	messages      repositories.MessageRepository
}

func NewConversationService(
	conversations repositories.ConversationRepository,
	messages repositories.MessageRepository,
) *ConversationService {
	return &ConversationService{
		conversations: conversations,
		messages:      messages,
	}
}

// Inbox returns the user's conversations with unread counts, most
// recently active first.
func (s *ConversationService) Inbox(ctx context.Context, userID string) ([]dto.ConversationSummary, error) {
	conversations, err := s.conversations.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.PersistenceError(err)
	}

	summaries := make([]dto.ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		unread, err := s.messages.CountUnread(ctx, conversation.ID, userID)
		if err != nil {
			logger.CtxWithError(ctx, "inbox unread count failed", err, "conversation_id", conversation.ID)
			unread = 0
		}
		summaries = append(summaries, dto.ConversationSummary{
			Conversation: conversation,
			UnreadCount:  unread,
		})
	}
	return summaries, nil
}

// GetMessages returns a conversation's messages to one of its two
// participants.
func (s *ConversationService) GetMessages(ctx context.Context, userID, conversationID string) ([]models.Message, error) {
	if _, err := s.authorize(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, appErrors.PersistenceError(err)
	}
	return messages, nil
}

// SendMessage appends a follow-up message and refreshes the
// conversation's activity timestamps.
func (s *ConversationService) SendMessage(ctx context.Context, userID, conversationID, content string) (*models.Message, error) {
	if content == "" {
		return nil, appErrors.ValidationError("message content is required")
	}

	if _, err := s.authorize(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       userID,
		Content:        content,
		IsRead:         false,
		CreatedAt:      time.Now(),
	}
	if err := s.messages.Create(ctx, message); err != nil {
		logger.CtxWithError(ctx, "message insert failed", err, "conversation_id", conversationID)
		return nil, appErrors.PersistenceError(err)
	}

	if err := s.conversations.Touch(ctx, conversationID, message.CreatedAt); err != nil {
		logger.CtxWithError(ctx, "conversation touch failed", err, "conversation_id", conversationID)
		return nil, appErrors.PersistenceError(err)
	}

	return message, nil
}

// MarkRead marks everything the other participant sent as read.
func (s *ConversationService) MarkRead(ctx context.Context, userID, conversationID string) error {
	if _, err := s.authorize(ctx, userID, conversationID); err != nil {
		return err
	}

	if err := s.messages.MarkConversationRead(ctx, conversationID, userID); err != nil {
		return appErrors.PersistenceError(err)
	}
	return nil
}

func (s *ConversationService) authorize(ctx context.Context, userID, conversationID string) (*models.Conversation, error) {
	conversation, err := s.conversations.FindByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrConversationNotFound
		}
		return nil, appErrors.PersistenceError(err)
	}

	if conversation.ClientID != userID && conversation.DeveloperID != userID {
		return nil, appErrors.ErrConversationAccessDenied
	}
	return conversation, nil
}
