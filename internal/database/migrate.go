package database

import (
	"rentdesk/internal/models"
	"rentdesk/pkg/kvstore"
	"rentdesk/pkg/logger"

	"gorm.io/gorm"
)

// Migrate 执行数据库迁移
func Migrate(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	appLogger := logger.GetLogger()
	appLogger.Info("Starting database migration...")

	err := db.AutoMigrate(
		&kvstore.Entry{},
		// 报表快照
		&models.ReportSnapshot{},
	)
	if err != nil {
		appLogger.Errorf("Database migration failed: %v", err)
		return err
	}

	appLogger.Info("Database migration completed successfully")
	return nil
}
