package database

import (
	"gorm.io/gorm"

	"devlink_backend/internal/models"
)

// Migrate applies the schema. The composite unique indexes on
// applications and conversations are part of the model tags and come
// along here; they back the duplicate-key handling in the services.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.Application{},
		&models.Conversation{},
		&models.Message{},
	)
}
