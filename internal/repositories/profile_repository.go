package repositories

import (
	"context"

	"gorm.io/gorm"

	"devlink_backend/internal/models"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	// FindByUserID is a single-row lookup keyed on the identity id.
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
