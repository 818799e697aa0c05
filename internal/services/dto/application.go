package dto

import "devlink_backend/internal/models"

type SubmitApplicationRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// SubmitApplicationResult reports a completed submission: the created
// application and the conversation seeded for the negotiation.
type SubmitApplicationResult struct {
	ApplicationID  string `json:"application_id"`
	ConversationID string `json:"conversation_id"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}
