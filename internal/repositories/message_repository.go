package repositories

import (
	"context"

	"gorm.io/gorm"

	"devlink_backend/internal/models"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error)
	// MarkConversationRead marks every message in the conversation not
	// sent by the reader as read.
	MarkConversationRead(ctx context.Context, conversationID, readerID string) error
	CountUnread(ctx context.Context, conversationID, readerID string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) MarkConversationRead(ctx context.Context, conversationID, readerID string) error {
	return r.db.WithContext(ctx).Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true).Error
}

func (r *messageRepository) CountUnread(ctx context.Context, conversationID, readerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Count(&count).Error
	return count, err
}
