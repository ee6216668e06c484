// Package kvstore 提供偏好设置使用的持久化键值存储（"本地设备存储"）。
package kvstore

import (
	"context"
	"errors"
)

// ErrClosed 存储已关闭
var ErrClosed = errors.New("kvstore: store is closed")

// Store 键值存储。值按原样保存为字符串，不做任何编码。
type Store interface {
	// Get 读取键值，键不存在时 ok 为 false
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set 写入键值，覆盖已有值
	Set(ctx context.Context, key, value string) error
	// Delete 删除键，键不存在不算错误
	Delete(ctx context.Context, key string) error
	Close() error
}
