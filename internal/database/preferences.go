package database

import (
	"context"
	"fmt"
	"time"

	"rentdesk/pkg/config"
	"rentdesk/pkg/kvstore"
)

// OpenPreferenceStorage 根据配置选择偏好存储后端
// SQL后端需先调用 Initialize 和 Migrate
func OpenPreferenceStorage(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Preferences.Backend {
	case config.BackendSQLite, config.BackendPostgres:
		if DB == nil {
			return nil, fmt.Errorf("数据库未初始化")
		}
		return kvstore.NewGormStore(DB), nil
	case config.BackendRedis:
		redisStore := GetRedisStore()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisStore.Ping(pingCtx); err != nil {
			return nil, fmt.Errorf("连接Redis失败: %v", err)
		}
		return redisStore, nil
	case config.BackendMemory:
		return kvstore.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("不支持的偏好存储后端: %s", cfg.Preferences.Backend)
}
