package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// :memory: 数据库每个连接独立，固定单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, AutoMigrate(db))
	return db
}

func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "darkMode", "true"))
	v, ok, err := s.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	// 覆盖写入
	require.NoError(t, s.Set(ctx, "darkMode", "false"))
	v, _, err = s.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.Equal(t, "false", v)

	require.NoError(t, s.Set(ctx, "language", "fr"))
	require.NoError(t, s.Delete(ctx, "language"))
	_, ok, err = s.Get(ctx, "language")
	require.NoError(t, err)
	assert.False(t, ok)

	// 删除不存在的键不报错
	assert.NoError(t, s.Delete(ctx, "missing"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_Closed(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Close())

	_, _, err := s.Get(context.Background(), "darkMode")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Set(context.Background(), "darkMode", "true"), ErrClosed)
}

func TestGormStore(t *testing.T) {
	exerciseStore(t, NewGormStore(setupTestDB(t)))
}

func TestGormStore_KeepsRawValue(t *testing.T) {
	db := setupTestDB(t)
	s := NewGormStore(db)
	require.NoError(t, s.Set(context.Background(), "language", "es"))

	var entry Entry
	require.NoError(t, db.Where("pref_key = ?", "language").Take(&entry).Error)
	assert.Equal(t, "es", entry.Value)
}
