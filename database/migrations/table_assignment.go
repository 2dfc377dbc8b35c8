package migrations

import (
	"gemma.link/configs/configslog"
	"gemma.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateTableAssignmentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating table_assignments table...")
	if err := db.AutoMigrate(&models.TableAssignment{}); err != nil {
		configslog.Log.Error("Failed to migrate table_assignments table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Table_assignments table migrated successfully")
	return nil
}
