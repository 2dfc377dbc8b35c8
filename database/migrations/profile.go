package migrations

import (
	"gemma.link/configs/configslog"
	"gemma.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateProfilesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating profiles table...")
	if err := db.AutoMigrate(&models.Profile{}); err != nil {
		configslog.Log.Error("Failed to migrate profiles table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Profiles table migrated successfully")
	return nil
}
