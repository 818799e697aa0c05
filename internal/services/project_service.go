package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/models"
	"devlink_backend/internal/repositories"
	"devlink_backend/internal/services/dto"
)

type ProjectService struct {
	projects repositories.ProjectRepository
}

func NewProjectService(projects repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) Create(ctx context.Context, clientID string, req *dto.CreateProjectRequest) (*models.Project, error) {
	if req.BudgetMin != nil && req.BudgetMax != nil && *req.BudgetMax < *req.BudgetMin {
		return nil, appErrors.ValidationError("maximum budget cannot be less than minimum budget")
	}

	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New().String()},
		ClientID:    clientID,
		Title:       req.Title,
		Description: req.Description,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Status:      models.ProjectStatusOpen,
	}
	if len(req.Skills) > 0 {
		project.SetSkills(req.Skills)
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, appErrors.PersistenceError(err)
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, clientID, projectID string, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.PersistenceError(err)
	}

	if project.ClientID != clientID {
		return nil, appErrors.ErrForbidden
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.BudgetMin != nil {
		project.BudgetMin = req.BudgetMin
	}
	if req.BudgetMax != nil {
		project.BudgetMax = req.BudgetMax
	}
	if req.Skills != nil {
		project.SetSkills(req.Skills)
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		if status != models.ProjectStatusOpen && status != models.ProjectStatusClosed {
			return nil, appErrors.ValidationError("status must be open or closed")
		}
		project.Status = status
	}

	if project.BudgetMin != nil && project.BudgetMax != nil && *project.BudgetMax < *project.BudgetMin {
		return nil, appErrors.ValidationError("maximum budget cannot be less than minimum budget")
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, appErrors.PersistenceError(err)
	}
	return project, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		return nil, appErrors.PersistenceError(err)
	}
	return project, nil
}

func (s *ProjectService) ListOpen(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projects.ListOpen(ctx)
	if err != nil {
		return nil, appErrors.PersistenceError(err)
	}
	return projects, nil
}

func (s *ProjectService) ListByClient(ctx context.Context, clientID string) ([]models.Project, error) {
	projects, err := s.projects.ListByClient(ctx, clientID)
	if err != nil {
		return nil, appErrors.PersistenceError(err)
	}
	return projects, nil
}
