package dto

import "devlink_backend/internal/models"

type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	UserType models.UserType `json:"user_type" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	User    *models.User    `json:"user"`
	Profile *models.Profile `json:"profile"`
}
