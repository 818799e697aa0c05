package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/middleware"
	"devlink_backend/internal/services"
	"devlink_backend/internal/services/dto"
)

type AuthHandler struct {
	authService *services.AuthService
	authMW      gin.HandlerFunc
}

func NewAuthHandler(authService *services.AuthService, authMW gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{authService: authService, authMW: authMW}
}

func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/auth")
	{
		group.POST("/register", h.Register)
		group.POST("/login", h.Login)
		group.GET("/me", h.authMW, h.Me)
	}
}

// Register godoc
// @Summary  Create an account with a client or developer profile
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body dto.RegisterRequest true "registration data"
// @Success  201 {object} dto.AuthResponse
// @Router   /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErrors.HandleError(c, appErrors.ValidationError(err.Error()))
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary  Authenticate and receive a token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body dto.LoginRequest true "credentials"
// @Success  200 {object} dto.AuthResponse
// @Router   /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErrors.HandleError(c, appErrors.ValidationError(err.Error()))
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
