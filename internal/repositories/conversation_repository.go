package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"devlink_backend/internal/models"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *models.Conversation) error
	FindByID(ctx context.Context, id string) (*models.Conversation, error)
	// FindByParticipants looks up the single conversation for the
	// (client, developer, project) triple.
	FindByParticipants(ctx context.Context, clientID, developerID, projectID string) (*models.Conversation, error)
	// Touch refreshes updated_at and last_message_at.
	Touch(ctx context.Context, id string, t time.Time) error
	ListByUser(ctx context.Context, userID string) ([]models.Conversation, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *models.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *conversationRepository) FindByID(ctx context.Context, id string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.WithContext(ctx).First(&conversation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) FindByParticipants(ctx context.Context, clientID, developerID, projectID string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND developer_id = ? AND project_id = ?", clientID, developerID, projectID).
		First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) Touch(ctx context.Context, id string, t time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Conversation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"updated_at":      t,
			"last_message_at": t,
		}).Error
}

func (r *conversationRepository) ListByUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.WithContext(ctx).
		Where("client_id = ? OR developer_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&conversations).Error
	return conversations, err
}
