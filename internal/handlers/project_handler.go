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

type ProjectHandler struct {
	projectService *services.ProjectService
	authMW         gin.HandlerFunc
}

func NewProjectHandler(projectService *services.ProjectService, authMW gin.HandlerFunc) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, authMW: authMW}
}

func (h *ProjectHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/projects")
	{
		group.GET("", h.ListOpen)
		group.GET("/:projectID", h.GetByID)

		clientOnly := group.Group("", h.authMW, middleware.RoleMiddleware(models.UserTypeClient))
		{
			clientOnly.POST("", h.Create)
			clientOnly.GET("/my", h.ListMine)
			clientOnly.PUT("/:projectID", h.Update)
		}
	}
}

func (h *ProjectHandler) ListOpen(c *gin.Context) {
	projects, err := h.projectService.ListOpen(c.Request.Context())
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// Create godoc
// @Summary  Post a new project
// @Tags     projects
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    request body dto.CreateProjectRequest true "project data"
// @Success  201 {object} models.Project
// @Router   /api/v1/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErrors.HandleError(c, appErrors.ValidationError(err.Error()))
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErrors.HandleError(c, appErrors.ValidationError(err.Error()))
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("projectID"), &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) ListMine(c *gin.Context) {
	projects, err := h.projectService.ListByClient(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}
