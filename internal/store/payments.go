package store

import (
	"rentdesk/internal/models"

	"github.com/shopspring/decimal"
)

// PaymentDraft 新增付款记录
type PaymentDraft struct {
	TenantID string
	Amount   decimal.Decimal
	Month    string
	Date     string // 为空时取今天
	Status   string // 为空时为 paid
	Mode     string // 为空时为 cash
}

// AddPayment 追加付款记录，租客姓名在此时复制
func (s *Store) AddPayment(d PaymentDraft) (models.Payment, error) {
	var created models.Payment
	_, err := s.update(CollectionPayments, "create", func(cur State) (State, string, error) {
		tenant, ok := cur.FindTenant(d.TenantID)
		if !ok {
			return cur, "", notFound("tenant", d.TenantID)
		}
		created = models.Payment{
			ID: uniqueID(s.ids, func(id string) bool {
				for _, p := range cur.Payments {
					if p.ID == id {
						return true
					}
				}
				return false
			}),
			TenantID:   tenant.ID,
			TenantName: tenant.Name,
			Amount:     d.Amount,
			Month:      d.Month,
			Date:       d.Date,
			Status:     d.Status,
			Mode:       d.Mode,
		}
		if created.Date == "" {
			created.Date = s.today()
		}
		if created.Status == "" {
			created.Status = models.StatusPaid
		}
		if created.Mode == "" {
			created.Mode = models.PaymentModeCash
		}
		cur.Payments = appendCopy(cur.Payments, created)
		return cur, created.ID, nil
	})
	return created, err
}

// SetPaymentStatus 修改单条付款记录的状态
func (s *Store) SetPaymentStatus(id, status string) (models.Payment, error) {
	var updated models.Payment
	_, err := s.update(CollectionPayments, "status", func(cur State) (State, string, error) {
		for i, p := range cur.Payments {
			if p.ID != id {
				continue
			}
			p.Status = status
			updated = p
			cur.Payments = replaceAt(cur.Payments, i, p)
			return cur, id, nil
		}
		return cur, id, notFound("payment", id)
	})
	return updated, err
}

// SetPayments 整体替换付款集合
func (s *Store) SetPayments(payments []models.Payment) State {
	next, _ := s.update(CollectionPayments, "replace", func(cur State) (State, string, error) {
		cur.Payments = cloneSlice(payments)
		return cur, "", nil
	})
	return next
}
