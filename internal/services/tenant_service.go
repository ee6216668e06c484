package services

import (
	"time"

	"rentdesk/internal/documents"
	"rentdesk/internal/models"
	"rentdesk/internal/store"
	"rentdesk/internal/views"
)

// TenantService 租客业务
type TenantService struct {
	store *store.Store
	docs  *documents.Service
	opts  views.Options
	clock func() time.Time
}

// NewTenantService 创建租客服务，docs 可为空
func NewTenantService(s *store.Store, docs *documents.Service, opts views.Options) *TenantService {
	return &TenantService{store: s, docs: docs, opts: opts, clock: time.Now}
}

// List 租客列表页
func (s *TenantService) List(filterTab, query string) (views.TenantList, error) {
	return views.BuildTenantList(s.store.Snapshot(), filterTab, query)
}

// Details 租客详情页
func (s *TenantService) Details(id, tab string) (views.TenantDetails, error) {
	var docs []models.Document
	if s.docs != nil {
		docs = s.docs.List(id)
	}
	return views.BuildTenantDetails(s.store.Snapshot(), id, tab, docs, s.opts)
}

// Open 选中租客并进入详情页
func (s *TenantService) Open(id string) (views.TenantDetails, error) {
	st := s.store.OpenTenant(id)
	var docs []models.Document
	if s.docs != nil {
		docs = s.docs.List(id)
	}
	return views.BuildTenantDetails(st, id, "", docs, s.opts)
}

// Create 新增租客
func (s *TenantService) Create(d store.TenantDraft) models.Tenant {
	t, _ := s.store.AddTenant(d)
	return t
}

// Update 编辑租客
func (s *TenantService) Update(id string, d store.TenantDraft) (models.Tenant, error) {
	return s.store.UpdateTenant(id, d)
}

// MarkLeft 标记退租
func (s *TenantService) MarkLeft(id, date string) (models.Tenant, error) {
	return s.store.MarkTenantLeft(id, date)
}

// Left 已退租租客页，"今年"按当前日期计算
func (s *TenantService) Left(query, year string) (views.LeftTenants, error) {
	return views.BuildLeftTenants(s.store.Snapshot(), query, year, s.clock().Format("2006"))
}

// Exists 租客是否存在
func (s *TenantService) Exists(id string) bool {
	_, ok := s.store.Snapshot().FindTenant(id)
	return ok
}
