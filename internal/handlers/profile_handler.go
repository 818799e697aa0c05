package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/middleware"
	"devlink_backend/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	authMW         gin.HandlerFunc
}

func NewProfileHandler(profileService *services.ProfileService, authMW gin.HandlerFunc) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, authMW: authMW}
}

func (h *ProfileHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/profiles")
	{
		group.GET("/me", h.authMW, h.Me)
		group.GET("/:userID", h.GetByUserID)
	}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.profileService.GetByUserID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	profile, err := h.profileService.GetByUserID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
