package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/middleware"
	"devlink_backend/internal/services"
	"devlink_backend/internal/services/dto"
)

type ConversationHandler struct {
	conversationService *services.ConversationService
	authMW              gin.HandlerFunc
}

func NewConversationHandler(conversationService *services.ConversationService, authMW gin.HandlerFunc) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService, authMW: authMW}
}

func (h *ConversationHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/conversations", h.authMW)
	{
		group.GET("", h.Inbox)
		group.GET("/:conversationID/messages", h.GetMessages)
		group.POST("/:conversationID/messages", h.SendMessage)
		group.PUT("/:conversationID/read", h.MarkRead)
	}
}

func (h *ConversationHandler) Inbox(c *gin.Context) {
	summaries, err := h.conversationService.Inbox(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": summaries, "total": len(summaries)})
}

func (h *ConversationHandler) GetMessages(c *gin.Context) {
	messages, err := h.conversationService.GetMessages(c.Request.Context(), middleware.GetUserID(c), c.Param("conversationID"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "total": len(messages)})
}

// SendMessage godoc
// @Summary  Post a message into a conversation
// @Tags     conversations
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    conversationID path string true "conversation id"
// @Param    request body dto.SendMessageRequest true "message body"
// @Success  201 {object} models.Message
// @Router   /api/v1/conversations/{conversationID}/messages [post]
func (h *ConversationHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErrors.HandleError(c, appErrors.ValidationError(err.Error()))
		return
	}

	message, err := h.conversationService.SendMessage(c.Request.Context(), middleware.GetUserID(c), c.Param("conversationID"), req.Content)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *ConversationHandler) MarkRead(c *gin.Context) {
	if err := h.conversationService.MarkRead(c.Request.Context(), middleware.GetUserID(c), c.Param("conversationID")); err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
