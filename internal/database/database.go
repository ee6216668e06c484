package database

import (
	"fmt"
	"os"
	"path/filepath"

	"rentdesk/pkg/config"
	"rentdesk/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB 全局数据库实例，内存与Redis后端下为nil
var DB *gorm.DB

// Initialize 按偏好存储后端初始化数据库连接
func Initialize(cfg *config.Config) error {
	switch cfg.Preferences.Backend {
	case config.BackendSQLite, config.BackendPostgres:
	default:
		return nil
	}

	db, err := Open(cfg)
	if err != nil {
		return err
	}
	DB = db
	logger.GetLogger().Infof("Database connected (%s)", cfg.Preferences.Backend)
	return nil
}

// Open 打开 SQLite 本地文件或 PostgreSQL 连接
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch cfg.Preferences.Backend {
	case config.BackendSQLite:
		if dir := filepath.Dir(cfg.Preferences.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("创建数据目录失败: %v", err)
			}
		}
		db, err := gorm.Open(sqlite.Open(cfg.Preferences.SQLitePath), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("打开SQLite数据库失败: %v", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("获取数据库实例失败: %v", err)
		}
		// SQLite 单写者
		sqlDB.SetMaxOpenConns(1)
		return db, nil

	case config.BackendPostgres:
		d := cfg.Database
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("连接数据库失败: %v", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("获取数据库实例失败: %v", err)
		}
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		return db, nil
	}

	return nil, fmt.Errorf("不支持的数据库后端: %s", cfg.Preferences.Backend)
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}

// Close 关闭数据库连接
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
