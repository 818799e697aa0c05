package appErrors

// Error codes grouped by domain
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserType  ErrorCode = "INVALID_USER_TYPE"

	// Users and profiles
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeProfileNotFound    ErrorCode = "PROFILE_NOT_FOUND"

	// Projects
	CodeProjectNotFound ErrorCode = "PROJECT_NOT_FOUND"
	CodeProjectNotOpen  ErrorCode = "PROJECT_NOT_OPEN"
	CodeOwnProject      ErrorCode = "CANNOT_APPLY_OWN_PROJECT"

	// Applications
	CodeAlreadyApplied           ErrorCode = "ALREADY_APPLIED"
	CodeApplicationNotFound      ErrorCode = "APPLICATION_NOT_FOUND"
	CodeInvalidApplicationStatus ErrorCode = "INVALID_APPLICATION_STATUS"

	// Conversations
	CodeConversationNotFound     ErrorCode = "CONVERSATION_NOT_FOUND"
	CodeConversationAccessDenied ErrorCode = "CONVERSATION_ACCESS_DENIED"

	// Infrastructure
	CodePersistence   ErrorCode = "PERSISTENCE_ERROR"
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
