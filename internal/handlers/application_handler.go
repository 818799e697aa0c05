package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/middleware"
	"devlink_backend/internal/models"
	"devlink_backend/internal/services"
	"devlink_backend/internal/services/dto"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	authMW             gin.HandlerFunc
}

func NewApplicationHandler(applicationService *services.ApplicationService, authMW gin.HandlerFunc) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService, authMW: authMW}
}

func (h *ApplicationHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/applications", h.authMW)
	{
		group.POST("", middleware.RoleMiddleware(models.UserTypeDeveloper), h.Submit)
		group.GET("/my", middleware.RoleMiddleware(models.UserTypeDeveloper), h.ListMine)
		group.PUT("/:applicationID/status", middleware.RoleMiddleware(models.UserTypeClient), h.UpdateStatus)
	}

	api.GET("/projects/:projectID/applications", h.authMW, middleware.RoleMiddleware(models.UserTypeClient), h.ListForProject)
}

// Submit godoc
// @Summary  Apply to a project
// @Description Records the application, opens (or reuses) a conversation with the client and posts the application text as its first message.
// @Tags     applications
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    request body dto.SubmitApplicationRequest true "application data"
// @Success  201 {object} dto.SubmitApplicationResult
// @Failure  409 {object} appErrors.AppError "already applied"
// @Router   /api/v1/applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErrors.HandleError(c, appErrors.ValidationError(err.Error()))
		return
	}

	result, err := h.applicationService.Submit(c.Request.Context(), req.ProjectID, middleware.GetUserID(c), req.Message)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applications, err := h.applicationService.ListMine(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications, "total": len(applications)})
}

func (h *ApplicationHandler) ListForProject(c *gin.Context) {
	applications, err := h.applicationService.ListForProject(c.Request.Context(), middleware.GetUserID(c), c.Param("projectID"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications, "total": len(applications)})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErrors.HandleError(c, appErrors.ValidationError(err.Error()))
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Request.Context(), middleware.GetUserID(c), c.Param("applicationID"), req.Status)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
