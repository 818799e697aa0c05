package services

// ServiceContainer groups every service for dependency injection.
type ServiceContainer struct {
	AuthService         *AuthService
	ProfileService      *ProfileService
	ProjectService      *ProjectService
	ApplicationService  *ApplicationService
	ConversationService *ConversationService
}
