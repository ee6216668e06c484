package database

import (
	"rentdesk/pkg/config"
	"rentdesk/pkg/kvstore"
	"sync"
)

var (
	redisStoreInstance *kvstore.RedisStore
	redisStoreOnce     sync.Once
)

// GetRedisStore 获取Redis偏好存储的单例实例
func GetRedisStore() *kvstore.RedisStore {
	redisStoreOnce.Do(func() {
		cfg := config.GetConfig()
		redisStoreInstance = kvstore.NewRedisStore(&kvstore.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	})
	return redisStoreInstance
}

// CloseRedisStore 关闭Redis连接
func CloseRedisStore() error {
	if redisStoreInstance != nil {
		return redisStoreInstance.Close()
	}
	return nil
}
