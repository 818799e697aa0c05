package models

import "time"

// Conversation is the thread between exactly one client and one
// developer about one project. The composite unique index backs the
// one-conversation-per-triple invariant; lookups still go
// get-or-create first.
type Conversation struct {
	BaseModel
	ClientID      string             `gorm:"not null;uniqueIndex:idx_conversation_triple" json:"client_id"`
	DeveloperID   string             `gorm:"not null;uniqueIndex:idx_conversation_triple" json:"developer_id"`
	ProjectID     string             `gorm:"not null;uniqueIndex:idx_conversation_triple" json:"project_id"`
	Subject       string             `json:"subject"`
	Status        ConversationStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	LastMessageAt time.Time          `json:"last_message_at"`
}

func (Conversation) TableName() string {
	return "conversations"
}
