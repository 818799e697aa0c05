package models

// User is the authenticated identity. The profile carries the role.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Profile *Profile `gorm:"foreignKey:ID;references:ID" json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}
