package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/models"
	"devlink_backend/internal/repositories"
)

type ProfileService struct {
	profiles repositories.ProfileRepository
}

func NewProfileService(profiles repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.PersistenceError(err)
	}
	return profile, nil
}
