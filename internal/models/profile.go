package models

import "time"

// Profile attaches a role to an identity, 1:1 keyed on the user id.
// Created at signup, read-only afterwards.
type Profile struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserType  UserType  `gorm:"type:varchar(20);not null" json:"user_type"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
