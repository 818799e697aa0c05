package repositories

import (
	"context"

	"gorm.io/gorm"

	"devlink_backend/internal/models"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	FindByID(ctx context.Context, id string) (*models.Application, error)
	// CountByProjectAndDeveloper counts rows for the pair regardless of
	// status; any row blocks a new submission.
	CountByProjectAndDeveloper(ctx context.Context, projectID, developerID string) (int64, error)
	ListByDeveloper(ctx context.Context, developerID string) ([]models.Application, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).Preload("Project").First(&application, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) CountByProjectAndDeveloper(ctx context.Context, projectID, developerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("project_id = ? AND developer_id = ?", projectID, developerID).
		Count(&count).Error
	return count, err
}

func (r *applicationRepository) ListByDeveloper(ctx context.Context, developerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("developer_id = ?", developerID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) ListByProject(ctx context.Context, projectID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	return r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}
