package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devlink_backend/internal/appErrors"
	"devlink_backend/internal/email"
	"devlink_backend/internal/logger"
	"devlink_backend/internal/models"
	"devlink_backend/internal/repositories"
	"devlink_backend/internal/services/dto"
)

// applicationMessageTemplate wraps the applicant's free text in the
// fixed introduction seeded into every new conversation.
const applicationMessageTemplate = "You have received a new application!\n\n%s\n\nYou can reply to the candidate directly in this conversation. Good luck with your project!"

// ApplicationService runs the apply-to-project workflow: duplicate
// check, application insert, conversation get-or-create, seed message.
// Steps run strictly in order; a failed step aborts the rest and no
// compensating rollback is performed.
type ApplicationService struct {
	applications  repositories.ApplicationRepository
	conversations repositories.ConversationRepository
	messages      repositories.MessageRepository
	projects      repositories.ProjectRepository
	users         repositories.UserRepository
	profiles      repositories.ProfileRepository
	email         email.Sender
}

func NewApplicationService(
	applications repositories.ApplicationRepository,
	conversations repositories.ConversationRepository,
	messages repositories.MessageRepository,
	projects repositories.ProjectRepository,
	users repositories.UserRepository,
	profiles repositories.ProfileRepository,
	emailSender email.Sender,
) *ApplicationService {
	return &ApplicationService{
		applications:  applications,
		conversations: conversations,
		messages:      messages,
		projects:      projects,
		users:         users,
		profiles:      profiles,
		email:         emailSender,
	}
}

// Submit applies developerID to projectID with the given message and
// returns the ids of the created application and the conversation
// seeded for the negotiation.
func (s *ApplicationService) Submit(ctx context.Context, projectID, developerID, message string) (*dto.SubmitApplicationResult, error) {
	trimmed := strings.TrimSpace(message)
	if projectID == "" || developerID == "" || trimmed == "" {
		return nil, appErrors.ValidationError("project, applicant and a non-empty message are required")
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrProjectNotFound
		}
		logger.CtxWithError(ctx, "application submit: project lookup failed", err, "project_id", projectID)
		return nil, appErrors.PersistenceError(err)
	}

	if project.ClientID == developerID {
		return nil, appErrors.ErrCannotApplyOwnProject
	}
	if project.Status != models.ProjectStatusOpen {
		return nil, appErrors.ErrProjectNotOpen
	}

	// Step 1: duplicate check. Any existing row for the pair blocks,
	// regardless of status.
	count, err := s.applications.CountByProjectAndDeveloper(ctx, projectID, developerID)
	if err != nil {
		logger.CtxWithError(ctx, "application submit: duplicate check failed", err,
			"project_id", projectID, "developer_id", developerID)
		return nil, appErrors.PersistenceError(err)
	}
	if count > 0 {
		return nil, appErrors.ErrAlreadyApplied
	}

	// Step 2: create the application.
	application := &models.Application{
		BaseModel:   models.BaseModel{ID: uuid.New().String()},
		ProjectID:   projectID,
		DeveloperID: developerID,
		Message:     trimmed,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent submission won the unique index race.
			return nil, appErrors.ErrAlreadyApplied
		}
		logger.CtxWithError(ctx, "application submit: application insert failed", err,
			"project_id", projectID, "developer_id", developerID)
		return nil, appErrors.PersistenceError(err)
	}

	// Step 3: resolve the conversation for the triple.
	conversation, err := s.resolveConversation(ctx, project, developerID)
	if err != nil {
		// The application row stays; see the duplicate check above for
		// why resubmission is blocked after this point.
		return nil, err
	}

	// Step 4: seed the conversation with the introductory message.
	seed := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversation.ID,
		SenderID:       developerID,
		Content:        fmt.Sprintf(applicationMessageTemplate, trimmed),
		IsRead:         false,
		CreatedAt:      time.Now(),
	}
	if err := s.messages.Create(ctx, seed); err != nil {
		logger.CtxWithError(ctx, "application submit: seed message insert failed", err,
			"conversation_id", conversation.ID, "developer_id", developerID)
		return nil, appErrors.PersistenceError(err)
	}

	go s.notifyClient(project, developerID)

	logger.CtxInfo(ctx, "application submitted",
		"application_id", application.ID,
		"conversation_id", conversation.ID,
		"project_id", projectID,
	)

	return &dto.SubmitApplicationResult{
		ApplicationID:  application.ID,
		ConversationID: conversation.ID,
	}, nil
}

// resolveConversation finds the conversation for the triple or creates
// it. On a lost insert race the unique index fires and the winner's row
// is re-read.
func (s *ApplicationService) resolveConversation(ctx context.Context, project *models.Project, developerID string) (*models.Conversation, error) {
	now := time.Now()

	existing, err := s.conversations.FindByParticipants(ctx, project.ClientID, developerID, project.ID)
	if err == nil {
		if err := s.conversations.Touch(ctx, existing.ID, now); err != nil {
			logger.CtxWithError(ctx, "application submit: conversation touch failed", err,
				"conversation_id", existing.ID)
			return nil, appErrors.PersistenceError(err)
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.CtxWithError(ctx, "application submit: conversation lookup failed", err,
			"project_id", project.ID, "developer_id", developerID)
		return nil, appErrors.PersistenceError(err)
	}

	conversation := &models.Conversation{
		BaseModel:     models.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		ClientID:      project.ClientID,
		DeveloperID:   developerID,
		ProjectID:     project.ID,
		Subject:       fmt.Sprintf("Application for %q", project.Title),
		Status:        models.ConversationStatusActive,
		LastMessageAt: now,
	}
	if err := s.conversations.Create(ctx, conversation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, findErr := s.conversations.FindByParticipants(ctx, project.ClientID, developerID, project.ID)
			if findErr == nil {
				return winner, nil
			}
			err = findErr
		}
		logger.CtxWithError(ctx, "application submit: conversation insert failed", err,
			"project_id", project.ID, "developer_id", developerID)
		return nil, appErrors.PersistenceError(err)
	}
	return conversation, nil
}

// notifyClient emails the project owner. Best effort: failures are
// logged and never affect the submission result.
func (s *ApplicationService) notifyClient(project *models.Project, developerID string) {
	ctx := context.Background()

	client, err := s.users.FindByID(ctx, project.ClientID)
	if err != nil {
		logger.WithError(err).Warn("application notification skipped: client lookup failed",
			"client_id", project.ClientID)
		return
	}

	applicantName := "A developer"
	if profile, err := s.profiles.FindByUserID(ctx, developerID); err == nil && profile.Name != "" {
		applicantName = profile.Name
	}

	if err := s.email.SendApplicationReceived(client.Email, project.Title, applicantName); err != nil {
		logger.WithError(err).Warn("application notification failed",
			"client_id", project.ClientID, "project_id", project.ID)
	}
}

// ListMine returns the developer's applications, newest first.
func (s *ApplicationService) ListMine(ctx context.Context, developerID string) ([]models.Application, error) {
	applications, err := s.applications.ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, appErrors.PersistenceError(err)
	}
	return applications, nil
}

// ListForProject returns a project's applications to its owner.
func (s *ApplicationService) ListForProject(ctx context.Context, clientID, projectID string) ([]models.Application, error) {
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

	applications, err := s.applications.ListByProject(ctx, projectID)
	if err != nil {
		return nil, appErrors.PersistenceError(err)
	}
	return applications, nil
}

// UpdateStatus lets the owning client accept or reject an application
// and returns the updated row.
func (s *ApplicationService) UpdateStatus(ctx context.Context, clientID, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	if status != models.ApplicationStatusAccepted && status != models.ApplicationStatusRejected {
		return nil, appErrors.ErrInvalidApplicationStatus
	}

	application, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.PersistenceError(err)
	}

	project, err := s.projects.FindByID(ctx, application.ProjectID)
	if err != nil {
		return nil, appErrors.PersistenceError(err)
	}
	if project.ClientID != clientID {
		return nil, appErrors.ErrForbidden
	}

	if err := s.applications.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, appErrors.PersistenceError(err)
	}

	application.Status = status
	return application, nil
}
