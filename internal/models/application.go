package models

// Application is a developer's expressed interest in a project.
// The composite unique index backs the at-most-one-per-pair invariant;
// any existing row for the pair blocks a new submission regardless of
// status.
type Application struct {
	BaseModel
	ProjectID   string            `gorm:"not null;uniqueIndex:idx_application_project_developer" json:"project_id"`
	DeveloperID string            `gorm:"not null;uniqueIndex:idx_application_project_developer" json:"developer_id"`
	Message     string            `gorm:"type:text;not null" json:"message"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Application) TableName() string {
	return "project_applications"
}
