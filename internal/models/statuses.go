package models

type UserType string
type ProjectStatus string
type ApplicationStatus string
type ConversationStatus string

const (
	UserTypeClient    UserType = "client"
	UserTypeDeveloper UserType = "developer"

	ProjectStatusOpen   ProjectStatus = "open"
	ProjectStatusClosed ProjectStatus = "closed"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	ConversationStatusActive   ConversationStatus = "active"
	ConversationStatusArchived ConversationStatus = "archived"
)

// ValidUserType reports whether t is a role this platform knows.
func ValidUserType(t UserType) bool {
	return t == UserTypeClient || t == UserTypeDeveloper
}

// ValidApplicationStatus reports whether s is a reviewable status.
func ValidApplicationStatus(s ApplicationStatus) bool {
	return s == ApplicationStatusPending || s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}
