package migrations

import (
	"gemma.link/configs/configslog"
	"gemma.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateIdentitiesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating identities table...")
	if err := db.AutoMigrate(&models.Identity{}); err != nil {
		configslog.Log.Error("Failed to migrate identities table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Identities table migrated successfully")
	return nil
}
