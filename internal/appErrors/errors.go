package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class across the API.
type ErrorCode string

// AppError is the application error carried across component boundaries.
// Raw store or driver errors never cross a service boundary; they are
// wrapped into an AppError at the point of the call.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Users and profiles
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrProfileNotFound    = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserType    = New(CodeInvalidUserType, "User type must be client or developer", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Projects
	ErrProjectNotFound       = New(CodeProjectNotFound, "Project not found", http.StatusNotFound)
	ErrProjectNotOpen        = New(CodeProjectNotOpen, "Project is not open for applications", http.StatusBadRequest)
	ErrCannotApplyOwnProject = New(CodeOwnProject, "Cannot apply to your own project", http.StatusBadRequest)

	// Applications
	ErrAlreadyApplied           = New(CodeAlreadyApplied, "You have already applied to this project", http.StatusConflict)
	ErrApplicationNotFound      = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrInvalidApplicationStatus = New(CodeInvalidApplicationStatus, "Application status is invalid", http.StatusBadRequest)

	// Conversations
	ErrConversationNotFound     = New(CodeConversationNotFound, "Conversation not found", http.StatusNotFound)
	ErrConversationAccessDenied = New(CodeConversationAccessDenied, "Access to conversation denied", http.StatusForbidden)
)

// ValidationError builds a validation error carrying field details.
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

// PersistenceError wraps a failed store round trip. Retryable by
// re-invoking the whole operation.
func PersistenceError(err error) *AppError {
	return Wrap(err, CodePersistence, "Something went wrong, please try again", http.StatusInternalServerError)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}
