package views

import (
	"fmt"

	"rentdesk/internal/models"
	"rentdesk/internal/store"

	"github.com/shopspring/decimal"
)

// Payments 付款页
type Payments struct {
	Tab          string           `json:"tab"`
	Items        []models.Payment `json:"items"`
	PaidTotal    decimal.Decimal  `json:"paidTotal"`
	PaidCount    int              `json:"paidCount"`
	PendingTotal decimal.Decimal  `json:"pendingTotal"`
	PendingCount int              `json:"pendingCount"`
}

// BuildPayments 按状态标签计算付款页，标签为空时为 paid
func BuildPayments(st store.State, tab string, opts Options) (Payments, error) {
	if tab == "" {
		tab = models.StatusPaid
	}
	if !models.IsValidPaymentStatus(tab) {
		return Payments{}, fmt.Errorf("%w: payment tab %q", ErrUnknownTab, tab)
	}
	paid := filter(st.Payments, models.Payment.IsPaid)
	pending := filter(st.Payments, isPendingPayment)

	items := paid
	if tab == models.StatusPending {
		items = pending
	}
	return Payments{
		Tab:          tab,
		Items:        opts.payments(st, items),
		PaidTotal:    sum(paid, paymentAmount),
		PaidCount:    len(paid),
		PendingTotal: sum(pending, paymentAmount),
		PendingCount: len(pending),
	}, nil
}

// AllPayments 全部付款记录，租客姓名按 opts 读取
func AllPayments(st store.State, opts Options) []models.Payment {
	return opts.payments(st, st.Payments)
}
