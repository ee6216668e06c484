package services

import (
	"rentdesk/internal/models"
	"rentdesk/internal/store"
	"rentdesk/internal/views"
)

// PaymentService 付款业务
type PaymentService struct {
	store *store.Store
	opts  views.Options
}

// NewPaymentService 创建付款服务
func NewPaymentService(s *store.Store, opts views.Options) *PaymentService {
	return &PaymentService{store: s, opts: opts}
}

// List 付款页
func (s *PaymentService) List(tab string) (views.Payments, error) {
	return views.BuildPayments(s.store.Snapshot(), tab, s.opts)
}

// Create 记录付款
func (s *PaymentService) Create(d store.PaymentDraft) (models.Payment, error) {
	return s.store.AddPayment(d)
}

// SetStatus 修改付款状态
func (s *PaymentService) SetStatus(id, status string) (models.Payment, error) {
	return s.store.SetPaymentStatus(id, status)
}
