package dto

import "devlink_backend/internal/models"

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// ConversationSummary is one inbox row: the thread plus its unread
// count for the requesting user.
type ConversationSummary struct {
	Conversation models.Conversation `json:"conversation"`
	UnreadCount  int64               `json:"unread_count"`
}
