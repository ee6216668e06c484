package store

import (
	"rentdesk/internal/models"

	"github.com/shopspring/decimal"
)

// LightBillDraft 新增电费账单
type LightBillDraft struct {
	TenantID string
	Units    decimal.Decimal
	Amount   decimal.Decimal
	Month    string
	Date     string // 为空时取今天
	Status   string // 为空时为 pending
}

// AddLightBill 追加电费账单，租客姓名在此时复制
func (s *Store) AddLightBill(d LightBillDraft) (models.LightBill, error) {
	var created models.LightBill
	_, err := s.update(CollectionLightBills, "create", func(cur State) (State, string, error) {
		tenant, ok := cur.FindTenant(d.TenantID)
		if !ok {
			return cur, "", notFound("tenant", d.TenantID)
		}
		created = models.LightBill{
			ID: uniqueID(s.ids, func(id string) bool {
				for _, b := range cur.LightBills {
					if b.ID == id {
						return true
					}
				}
				return false
			}),
			TenantID:   tenant.ID,
			TenantName: tenant.Name,
			Units:      d.Units,
			Amount:     d.Amount,
			Month:      d.Month,
			Date:       d.Date,
			Status:     d.Status,
		}
		if created.Date == "" {
			created.Date = s.today()
		}
		if created.Status == "" {
			created.Status = models.StatusPending
		}
		cur.LightBills = appendCopy(cur.LightBills, created)
		return cur, created.ID, nil
	})
	return created, err
}

// SetBillStatus 修改单张账单的状态
func (s *Store) SetBillStatus(id, status string) (models.LightBill, error) {
	var updated models.LightBill
	_, err := s.update(CollectionLightBills, "status", func(cur State) (State, string, error) {
		for i, b := range cur.LightBills {
			if b.ID != id {
				continue
			}
			b.Status = status
			updated = b
			cur.LightBills = replaceAt(cur.LightBills, i, b)
			return cur, id, nil
		}
		return cur, id, notFound("light bill", id)
	})
	return updated, err
}

// SetLightBills 整体替换电费账单集合
func (s *Store) SetLightBills(bills []models.LightBill) State {
	next, _ := s.update(CollectionLightBills, "replace", func(cur State) (State, string, error) {
		cur.LightBills = cloneSlice(bills)
		return cur, "", nil
	})
	return next
}
