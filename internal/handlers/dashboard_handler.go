package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/middleware"
	"devlink_backend/internal/models"
	"devlink_backend/internal/repositories"
	"devlink_backend/internal/services"
)

// DashboardHandler serves the role-gated landing routes. Each dashboard
// sits behind RequireUserType, so a visitor only ever sees the one that
// matches their profile; everyone else is bounced by the guard before
// these handlers run.
type DashboardHandler struct {
	projectService      *services.ProjectService
	applicationService  *services.ApplicationService
	conversationService *services.ConversationService
	profiles            repositories.ProfileRepository
	optionalAuthMW      gin.HandlerFunc
}

func NewDashboardHandler(
	projectService *services.ProjectService,
	applicationService *services.ApplicationService,
	conversationService *services.ConversationService,
	profiles repositories.ProfileRepository,
	optionalAuthMW gin.HandlerFunc,
) *DashboardHandler {
	return &DashboardHandler{
		projectService:      projectService,
		applicationService:  applicationService,
		conversationService: conversationService,
		profiles:            profiles,
		optionalAuthMW:      optionalAuthMW,
	}
}

func (h *DashboardHandler) RegisterRoutes(root *gin.Engine) {
	root.GET("/auth/login", h.LoginPage)

	client := root.Group("/dashboard/client", h.optionalAuthMW, middleware.RequireUserType(models.UserTypeClient, h.profiles))
	{
		client.GET("", h.ClientDashboard)
	}

	developer := root.Group("/dashboard/developer", h.optionalAuthMW, middleware.RequireUserType(models.UserTypeDeveloper, h.profiles))
	{
		developer.GET("", h.DeveloperDashboard)
	}
}

// LoginPage is the target of the guard's unauthenticated redirect.
func (h *DashboardHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

func (h *DashboardHandler) ClientDashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	projects, err := h.projectService.ListByClient(c.Request.Context(), userID)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	conversations, err := h.conversationService.Inbox(c.Request.Context(), userID)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":          models.UserTypeClient,
		"projects":      projects,
		"conversations": conversations,
	})
}

func (h *DashboardHandler) DeveloperDashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	applications, err := h.applicationService.ListMine(c.Request.Context(), userID)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	conversations, err := h.conversationService.Inbox(c.Request.Context(), userID)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":          models.UserTypeDeveloper,
		"applications":  applications,
		"conversations": conversations,
	})
}
