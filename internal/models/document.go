package models

import "time"

// Document 租客身份证明文件
type Document struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenantId"`
	Name         string    `json:"name"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	Key          string    `json:"key"`
	ThumbnailKey string    `json:"thumbnailKey,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
