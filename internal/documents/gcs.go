package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStorage Google Cloud Storage 存储
type GCSStorage struct {
	client *storage.Client
	bucket string
}

// NewGCSStorage 创建 GCS 存储。credentialsJSON 为空时使用默认凭据（ADC）
func NewGCSStorage(ctx context.Context, bucket, credentialsJSON string) (*GCSStorage, error) {
	if bucket == "" {
		return nil, errors.New("GCS_BUCKET is required")
	}

	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("创建GCS客户端失败: %w", err)
	}

	if _, err := client.Bucket(bucket).Attrs(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("gcs bucket %q not found or not accessible: %w", bucket, err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

// Put 上传对象
func (s *GCSStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	wc := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return fmt.Errorf("上传到GCS失败: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("关闭GCS写入失败: %w", err)
	}
	return nil
}

// Open 读取对象
func (s *GCSStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ErrObjectNotFound
	}
	return r, err
}

// Delete 删除对象，对象不存在时忽略
func (s *GCSStorage) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return err
	}
	return nil
}

// Close 关闭客户端
func (s *GCSStorage) Close() error {
	return s.client.Close()
}
