package services

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"devlink_backend/internal/models"
)

// In-memory repository fakes. Each mirrors the store semantics the
// services depend on: gorm.ErrRecordNotFound on misses and
// gorm.ErrDuplicatedKey when a unique index would fire, so the
// duplicate-handling paths behave exactly as against a real database.

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*models.Project
	findErr  error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*models.Project)}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) FindByID(ctx context.Context, id string) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	project, ok := r.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *project
	return &clone, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) ListOpen(ctx context.Context) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.Status == models.ProjectStatusOpen {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ListByClient(ctx context.Context, clientID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.ClientID == clientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications []*models.Application
	createErr    error
	countErr     error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, a := range r.applications {
		if a.ProjectID == application.ProjectID && a.DeveloperID == application.DeveloperID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.applications = append(r.applications, application)
	return nil
}

func (r *fakeApplicationRepo) FindByID(ctx context.Context, id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeApplicationRepo) CountByProjectAndDeveloper(ctx context.Context, projectID, developerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	var count int64
	for _, a := range r.applications {
		if a.ProjectID == projectID && a.DeveloperID == developerID {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) ListByDeveloper(ctx context.Context, developerID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.applications {
		if a.DeveloperID == developerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByProject(ctx context.Context, projectID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.applications {
		if a.ProjectID == projectID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeApplicationRepo) all() []*models.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Application(nil), r.applications...)
}

type fakeConversationRepo struct {
	mu            sync.Mutex
	conversations []*models.Conversation
	createErr     error
	touched       map[string]time.Time
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{touched: make(map[string]time.Time)}
}

func (r *fakeConversationRepo) Create(ctx context.Context, conversation *models.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, c := range r.conversations {
		if c.ClientID == conversation.ClientID &&
			c.DeveloperID == conversation.DeveloperID &&
			c.ProjectID == conversation.ProjectID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.conversations = append(r.conversations, conversation)
	return nil
}

func (r *fakeConversationRepo) FindByID(ctx context.Context, id string) (*models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.conversations {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeConversationRepo) FindByParticipants(ctx context.Context, clientID, developerID, projectID string) (*models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.conversations {
		if c.ClientID == clientID && c.DeveloperID == developerID && c.ProjectID == projectID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeConversationRepo) Touch(ctx context.Context, id string, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.conversations {
		if c.ID == id {
			c.UpdatedAt = t
			c.LastMessageAt = t
			r.touched[id] = t
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeConversationRepo) ListByUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Conversation
	for _, c := range r.conversations {
		if c.ClientID == userID || c.DeveloperID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeConversationRepo) add(conversation *models.Conversation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversations = append(r.conversations, conversation)
}

func (r *fakeConversationRepo) all() []*models.Conversation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Conversation(nil), r.conversations...)
}

type fakeMessageRepo struct {
	mu        sync.Mutex
	messages  []*models.Message
	createErr error
	countErr  error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Message
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkConversationRead(ctx context.Context, conversationID, readerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.ConversationID == conversationID && m.SenderID != readerID {
			m.IsRead = true
		}
	}
	return nil
}

func (r *fakeMessageRepo) CountUnread(ctx context.Context, conversationID, readerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	var count int64
	for _, m := range r.messages {
		if m.ConversationID == conversationID && m.SenderID != readerID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) all() []*models.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Message(nil), r.messages...)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *profile
	return &clone, nil
}

// recordingEmailSender captures notifications on a channel so tests can
// wait for the background send.
type recordingEmailSender struct {
	sent chan sentEmail
}

type sentEmail struct {
	to            string
	projectTitle  string
	applicantName string
}

func newRecordingEmailSender() *recordingEmailSender {
	return &recordingEmailSender{sent: make(chan sentEmail, 4)}
}

func (s *recordingEmailSender) SendApplicationReceived(to, projectTitle, applicantName string) error {
	s.sent <- sentEmail{to: to, projectTitle: projectTitle, applicantName: applicantName}
	return nil
}
