package views

import (
	"fmt"

	"rentdesk/internal/models"
	"rentdesk/internal/store"

	"github.com/shopspring/decimal"
)

// 电费账单标签
const (
	BillTabThisMonth = "thisMonth"
	BillTabPending   = "pending"
	BillTabPaid      = "paid"
	BillTabAll       = "all"
)

// Bills 电费账单页，合计只针对当前标签下的账单
type Bills struct {
	Tab          string             `json:"tab"`
	Month        string             `json:"month"`
	Items        []models.LightBill `json:"items"`
	TotalUnits   decimal.Decimal    `json:"totalUnits"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
	ThisMonth    int                `json:"thisMonth"`
	PendingCount int                `json:"pendingCount"`
	PaidCount    int                `json:"paidCount"`
}

// BuildBills 计算电费账单页，标签为空时为 thisMonth
func BuildBills(st store.State, tab string, opts Options) (Bills, error) {
	month := opts.currentMonth()
	thisMonth := filter(st.LightBills, func(b models.LightBill) bool { return b.Month == month })
	pending := filter(st.LightBills, isPendingBill)
	paid := filter(st.LightBills, models.LightBill.IsPaid)

	var items []models.LightBill
	switch tab {
	case BillTabThisMonth, "":
		tab = BillTabThisMonth
		items = thisMonth
	case BillTabPending:
		items = pending
	case BillTabPaid:
		items = paid
	case BillTabAll:
		items = st.LightBills
	default:
		return Bills{}, fmt.Errorf("%w: bill tab %q", ErrUnknownTab, tab)
	}

	return Bills{
		Tab:          tab,
		Month:        month,
		Items:        opts.bills(st, items),
		TotalUnits:   sum(items, billUnits),
		TotalAmount:  sum(items, billAmount),
		ThisMonth:    len(thisMonth),
		PendingCount: len(pending),
		PaidCount:    len(paid),
	}, nil
}
