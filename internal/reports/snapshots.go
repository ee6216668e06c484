package reports

import (
	"context"
	"sync"

	"rentdesk/internal/models"

	"gorm.io/gorm"
)

// Repository 报表快照仓库
type Repository interface {
	Save(ctx context.Context, snap *models.ReportSnapshot) error
	// Recent 最近 limit 条快照，按时间升序
	Recent(ctx context.Context, limit int) ([]models.ReportSnapshot, error)
}

// MemoryRepository 内存快照仓库
type MemoryRepository struct {
	mu    sync.RWMutex
	snaps []models.ReportSnapshot
	next  uint
}

// NewMemoryRepository 创建内存仓库
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Save(_ context.Context, snap *models.ReportSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	snap.ID = r.next
	r.snaps = append(r.snaps, *snap)
	return nil
}

func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]models.ReportSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	start := 0
	if limit > 0 && len(r.snaps) > limit {
		start = len(r.snaps) - limit
	}
	out := make([]models.ReportSnapshot, len(r.snaps)-start)
	copy(out, r.snaps[start:])
	return out, nil
}

// GormRepository 数据库快照仓库
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository 创建数据库仓库
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Save(ctx context.Context, snap *models.ReportSnapshot) error {
	return r.db.WithContext(ctx).Create(snap).Error
}

func (r *GormRepository) Recent(ctx context.Context, limit int) ([]models.ReportSnapshot, error) {
	var snaps []models.ReportSnapshot
	q := r.db.WithContext(ctx).Order("taken_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&snaps).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(snaps)-1; i < j; i, j = i+1, j-1 {
		snaps[i], snaps[j] = snaps[j], snaps[i]
	}
	return snaps, nil
}
