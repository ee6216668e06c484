package kvstore

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
}

// RedisStore 基于Redis的键值存储，每个键存为独立的字符串
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 创建Redis存储实例
func NewRedisStore(config *RedisConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	prefix := config.Prefix
	if prefix == "" {
		prefix = "rentdesk:prefs"
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

// NewRedisStoreWithClient 使用已有客户端创建存储
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "rentdesk:prefs"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Ping 测试Redis连接
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("读取偏好 %s 失败: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	// 偏好不过期
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("写入偏好 %s 失败: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// Close 关闭Redis连接
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// GetClient 获取Redis客户端
func (s *RedisStore) GetClient() *redis.Client {
	return s.client
}

func (s *RedisStore) key(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}
