package views

import (
	"fmt"

	"rentdesk/internal/models"
	"rentdesk/internal/store"
)

// 租客详情页标签
const (
	DetailTabPayments  = "payments"
	DetailTabPending   = "pending"
	DetailTabBills     = "bills"
	DetailTabDocuments = "documents"
)

// TenantDetails 租客详情页
type TenantDetails struct {
	Tenant      models.Tenant      `json:"tenant"`
	Initials    string             `json:"initials"`
	Tab         string             `json:"tab"`
	Payments    []models.Payment   `json:"payments,omitempty"`
	Bills       []models.LightBill `json:"bills,omitempty"`
	Documents   []models.Document  `json:"documents,omitempty"`
	PendingBill *models.LightBill  `json:"pendingBill,omitempty"`
}

// BuildTenantDetails 计算租客详情页；租客不存在时返回 store.ErrNotFound
func BuildTenantDetails(st store.State, tenantID, tab string, docs []models.Document, opts Options) (TenantDetails, error) {
	tenant, ok := st.FindTenant(tenantID)
	if !ok {
		return TenantDetails{}, fmt.Errorf("tenant %q: %w", tenantID, store.ErrNotFound)
	}
	if tab == "" {
		tab = DetailTabPayments
	}

	payments := filter(st.Payments, func(p models.Payment) bool { return p.TenantID == tenant.ID })
	bills := filter(st.LightBills, func(b models.LightBill) bool { return b.TenantID == tenant.ID })

	d := TenantDetails{Tenant: tenant, Initials: Initials(tenant.Name), Tab: tab}
	for _, b := range opts.bills(st, bills) {
		if isPendingBill(b) {
			b := b
			d.PendingBill = &b
			break
		}
	}

	switch tab {
	case DetailTabPayments:
		d.Payments = opts.payments(st, filter(payments, models.Payment.IsPaid))
	case DetailTabPending:
		d.Payments = opts.payments(st, filter(payments, isPendingPayment))
	case DetailTabBills:
		d.Bills = opts.bills(st, bills)
	case DetailTabDocuments:
		d.Documents = docs
	default:
		return TenantDetails{}, fmt.Errorf("%w: detail tab %q", ErrUnknownTab, tab)
	}
	return d, nil
}
