package migrations

import (
	"gemma.link/configs/configslog"
	"gemma.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateInvitesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating invites table...")
	if err := db.AutoMigrate(&models.Invite{}); err != nil {
		configslog.Log.Error("Failed to migrate invites table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Invites table migrated successfully")
	return nil
}
