package kvstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry 偏好键值表
type Entry struct {
	Key       string    `json:"key" gorm:"column:pref_key;primaryKey;size:100"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 表名
func (Entry) TableName() string {
	return "preference_entries"
}

// GormStore 基于数据库的键值存储（SQLite本地文件或PostgreSQL）
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建数据库存储，调用方负责迁移 Entry 表
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate 迁移偏好表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Entry{})
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).Where("pref_key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("pref_key = ?", key).Delete(&Entry{}).Error
}

// Close 数据库连接由 database 包统一关闭
func (s *GormStore) Close() error {
	return nil
}
