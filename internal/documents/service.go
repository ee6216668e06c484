// Package documents 租客身份证明文件：类型和大小校验、缩略图、存储
package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"rentdesk/internal/models"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// 缩略图尺寸，与上传预览一致
const (
	ThumbnailWidth  = 100
	ThumbnailHeight = 70
)

// DefaultMaxSize 默认文件大小上限
const DefaultMaxSize int64 = 5 * 1024 * 1024

var (
	ErrUnsupportedType = errors.New("only images and PDF files are accepted")
	ErrTooLarge        = errors.New("file exceeds the size limit")
	ErrEmptyFile       = errors.New("file is empty")
	ErrNotFound        = errors.New("document not found")
)

// Service 文件服务，文件索引只保存在内存中
type Service struct {
	storage Storage
	maxSize int64
	log     *logrus.Logger
	now     func() time.Time

	mu   sync.RWMutex
	docs map[string]models.Document
}

// NewService 创建文件服务
func NewService(storage Storage, maxSize int64, log *logrus.Logger) *Service {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		storage: storage,
		maxSize: maxSize,
		log:     log,
		now:     time.Now,
		docs:    make(map[string]models.Document),
	}
}

// MaxSize 文件大小上限
func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// Upload 保存租客的证明文件。内容类型按文件内容判断，图片额外生成缩略图
func (s *Service) Upload(ctx context.Context, tenantID, filename string, r io.Reader) (models.Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return models.Document{}, fmt.Errorf("读取上传文件失败: %w", err)
	}
	if len(data) == 0 {
		return models.Document{}, ErrEmptyFile
	}
	if int64(len(data)) > s.maxSize {
		return models.Document{}, ErrTooLarge
	}

	contentType := http.DetectContentType(data)
	if !IsAccepted(contentType) {
		return models.Document{}, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	id := uuid.NewString()
	doc := models.Document{
		ID:          id,
		TenantID:    tenantID,
		Name:        path.Base(filename),
		ContentType: contentType,
		Size:        int64(len(data)),
		Key:         path.Join("tenants", tenantID, id+extension(filename, contentType)),
		UploadedAt:  s.now(),
	}

	if err := s.storage.Put(ctx, doc.Key, data, contentType); err != nil {
		return models.Document{}, fmt.Errorf("保存文件失败: %w", err)
	}

	if strings.HasPrefix(contentType, "image/") {
		thumb, err := Thumbnail(data)
		if err != nil {
			// 浏览器认为是图片但无法解码时只保存原文件
			s.log.WithError(err).WithField("document_id", id).Warn("生成缩略图失败")
		} else {
			key := path.Join("tenants", tenantID, id+"_thumb.jpg")
			if err := s.storage.Put(ctx, key, thumb, "image/jpeg"); err != nil {
				s.log.WithError(err).WithField("document_id", id).Warn("保存缩略图失败")
			} else {
				doc.ThumbnailKey = key
			}
		}
	}

	s.mu.Lock()
	s.docs[id] = doc
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"tenant_id":    tenantID,
		"document_id":  id,
		"content_type": contentType,
		"size":         doc.Size,
	}).Info("证明文件已上传")
	return doc, nil
}

// List 租客的全部文件，按上传时间排序
func (s *Service) List(tenantID string) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Document, 0)
	for _, d := range s.docs {
		if d.TenantID == tenantID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UploadedAt.Before(out[j].UploadedAt)
	})
	return out
}

// Get 按ID获取文件信息
func (s *Service) Get(id string) (models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[id]
	if !ok {
		return models.Document{}, ErrNotFound
	}
	return d, nil
}

// Open 打开文件内容；thumbnail 为 true 时打开缩略图
func (s *Service) Open(ctx context.Context, id string, thumbnail bool) (models.Document, io.ReadCloser, error) {
	d, err := s.Get(id)
	if err != nil {
		return models.Document{}, nil, err
	}
	key := d.Key
	if thumbnail {
		if d.ThumbnailKey == "" {
			return models.Document{}, nil, ErrNotFound
		}
		key = d.ThumbnailKey
	}
	rc, err := s.storage.Open(ctx, key)
	if errors.Is(err, ErrObjectNotFound) {
		return models.Document{}, nil, ErrNotFound
	}
	if err != nil {
		return models.Document{}, nil, err
	}
	return d, rc, nil
}

// Delete 删除文件及其缩略图
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	d, ok := s.docs[id]
	if ok {
		delete(s.docs, id)
	}
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	if err := s.storage.Delete(ctx, d.Key); err != nil {
		return err
	}
	if d.ThumbnailKey != "" {
		if err := s.storage.Delete(ctx, d.ThumbnailKey); err != nil {
			return err
		}
	}
	return nil
}

// IsAccepted 是否为允许上传的类型
func IsAccepted(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}

// Thumbnail 生成 100x70 的裁剪缩略图（JPEG）
func Thumbnail(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Fill(img, ThumbnailWidth, ThumbnailHeight, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func extension(filename, contentType string) string {
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return ext
	}
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	default:
		return ""
	}
}
