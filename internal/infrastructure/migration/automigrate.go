package migration

import (
	"vigia/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns the models registered for gorm auto migration.
// Order matters when new tables reference existing ones.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AlertModel{},
		&models.ReplyModel{},
		&models.AutoAlertConfigModel{},
	}
}
