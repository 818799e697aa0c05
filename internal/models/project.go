package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Project is posted and owned by a client. Read-mostly for the
// application workflow.
type Project struct {
	BaseModel
	ClientID    string         `gorm:"index;not null" json:"client_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	BudgetMin   *float64       `json:"budget_min,omitempty"`
	BudgetMax   *float64       `json:"budget_max,omitempty"`
	Skills      datatypes.JSON `json:"skills,omitempty"` // ["go", "react"]
	Status      ProjectStatus  `gorm:"type:varchar(20);default:'open'" json:"status"`
}

func (Project) TableName() string {
	return "projects"
}

// GetSkills returns the requested skills as a string slice.
func (p *Project) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

// SetSkills stores the requested skills.
func (p *Project) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}
