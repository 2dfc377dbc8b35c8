package migrations

import (
	"gemma.link/configs/configslog"
	"gemma.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateEventConfigsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating event_configs table...")
	if err := db.AutoMigrate(&models.EventConfig{}); err != nil {
		configslog.Log.Error("Failed to migrate event_configs table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Event_configs table migrated successfully")
	return nil
}
