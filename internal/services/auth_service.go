package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/auth"
	"devlink_backend/internal/logger"
	"devlink_backend/internal/models"
	"devlink_backend/internal/repositories"
	"devlink_backend/internal/services/dto"
)

type AuthService struct {
	users    repositories.UserRepository
	profiles repositories.ProfileRepository
	tokens   *auth.TokenManager
}

func NewAuthService(
	users repositories.UserRepository,
	profiles repositories.ProfileRepository,
	tokens *auth.TokenManager,
) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
	}
}

// Register creates an identity and its role-carrying profile, and
// signs the new user in.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !models.ValidUserType(req.UserType) {
		return nil, appErrors.ErrInvalidUserType
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.FindByEmail(ctx, normalizedEmail); err == nil {
		return nil, appErrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.PersistenceError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New().String()},
		Email:        normalizedEmail,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		logger.CtxWithError(ctx, "register: user insert failed", err, "email", normalizedEmail)
		return nil, appErrors.PersistenceError(err)
	}

	profile := &models.Profile{
		ID:       user.ID,
		UserType: req.UserType,
		Name:     strings.TrimSpace(req.Name),
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		logger.CtxWithError(ctx, "register: profile insert failed", err, "user_id", user.ID)
		return nil, appErrors.PersistenceError(err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email, string(profile.UserType))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "user_type", profile.UserType)

	return &dto.AuthResponse{Token: token, User: user, Profile: profile}, nil
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.FindByEmail(ctx, normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.PersistenceError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	profile, err := s.profiles.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.PersistenceError(err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email, string(profile.UserType))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: user, Profile: profile}, nil
}

// Me returns the authenticated user with profile.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.PersistenceError(err)
	}
	return user, nil
}
