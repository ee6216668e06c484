package services

import (
	"rentdesk/internal/models"
	"rentdesk/internal/store"
	"rentdesk/internal/views"
)

// BillService 电费账单业务
type BillService struct {
	store *store.Store
	opts  views.Options
}

// NewBillService 创建电费账单服务
func NewBillService(s *store.Store, opts views.Options) *BillService {
	return &BillService{store: s, opts: opts}
}

// List 电费账单页
func (s *BillService) List(tab string) (views.Bills, error) {
	return views.BuildBills(s.store.Snapshot(), tab, s.opts)
}

// Create 新增电费账单
func (s *BillService) Create(d store.LightBillDraft) (models.LightBill, error) {
	return s.store.AddLightBill(d)
}

// SetStatus 修改账单状态
func (s *BillService) SetStatus(id, status string) (models.LightBill, error) {
	return s.store.SetBillStatus(id, status)
}
