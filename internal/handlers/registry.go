package handlers

import (
	"github.com/gin-gonic/gin"

	"devlink_backend/internal/auth"
	"devlink_backend/internal/middleware"
	"devlink_backend/internal/repositories"
	"devlink_backend/internal/services"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Project      *ProjectHandler
	Application  *ApplicationHandler
	Conversation *ConversationHandler
	Dashboard    *DashboardHandler
}

func NewAppHandlers(svc *services.ServiceContainer, tokens *auth.TokenManager, profiles repositories.ProfileRepository) *AppHandlers {
	authMW := middleware.AuthMiddleware(tokens)
	optionalAuthMW := middleware.OptionalAuthMiddleware(tokens)

	return &AppHandlers{
		Auth:         NewAuthHandler(svc.AuthService, authMW),
		Profile:      NewProfileHandler(svc.ProfileService, authMW),
		Project:      NewProjectHandler(svc.ProjectService, authMW),
		Application:  NewApplicationHandler(svc.ApplicationService, authMW),
		Conversation: NewConversationHandler(svc.ConversationService, authMW),
		Dashboard: NewDashboardHandler(
			svc.ProjectService,
			svc.ApplicationService,
			svc.ConversationService,
			profiles,
			optionalAuthMW,
		),
	}
}

// RegisterRoutes mounts the API under /api/v1 and the guarded dashboard
// routes at the root.
func (h *AppHandlers) RegisterRoutes(root *gin.Engine) {
	api := root.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.Profile.RegisterRoutes(api)
		h.Project.RegisterRoutes(api)
		h.Application.RegisterRoutes(api)
		h.Conversation.RegisterRoutes(api)
	}

	h.Dashboard.RegisterRoutes(root)
}
