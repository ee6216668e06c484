package store

import (
	"rentdesk/internal/models"

	"github.com/shopspring/decimal"
)

// TenantDraft 新增/编辑租客的表单数据
type TenantDraft struct {
	Name       string
	Phone      string
	RoomNumber string
	RentAmount decimal.Decimal
	Deposit    decimal.Decimal
	StartDate  string
	EndDate    string
	Status     string
}

// AddTenant 追加新租客，租金和电费状态初始为 pending
func (s *Store) AddTenant(d TenantDraft) (models.Tenant, State) {
	var created models.Tenant
	next, _ := s.update(CollectionTenants, "create", func(cur State) (State, string, error) {
		created = models.Tenant{
			ID: uniqueID(s.ids, func(id string) bool {
				_, ok := cur.FindTenant(id)
				return ok
			}),
			Name:       d.Name,
			Phone:      d.Phone,
			RoomNumber: d.RoomNumber,
			RentAmount: d.RentAmount,
			Deposit:    d.Deposit,
			StartDate:  d.StartDate,
			EndDate:    d.EndDate,
			Status:     d.Status,
			RentStatus: models.StatusPending,
			BillStatus: models.StatusPending,
		}
		if created.Status == "" {
			created.Status = models.TenantStatusActive
		}
		if created.HasLeft() && created.EndDate == "" {
			created.EndDate = s.today()
		}
		cur.Tenants = appendCopy(cur.Tenants, created)
		return cur, created.ID, nil
	})
	return created, next
}

// UpdateTenant 编辑租客资料，保留租金和电费状态
func (s *Store) UpdateTenant(id string, d TenantDraft) (models.Tenant, error) {
	var updated models.Tenant
	_, err := s.update(CollectionTenants, "update", func(cur State) (State, string, error) {
		for i, t := range cur.Tenants {
			if t.ID != id {
				continue
			}
			t.Name = d.Name
			t.Phone = d.Phone
			t.RoomNumber = d.RoomNumber
			t.RentAmount = d.RentAmount
			t.Deposit = d.Deposit
			t.StartDate = d.StartDate
			wasLeft := t.HasLeft()
			if d.Status != "" {
				t.Status = d.Status
			}
			switch {
			case d.EndDate != "":
				t.EndDate = d.EndDate
			case !t.HasLeft():
				t.EndDate = ""
			case !wasLeft:
				// 本次编辑才改为退租
				t.EndDate = s.today()
			}
			updated = t
			cur.Tenants = replaceAt(cur.Tenants, i, t)
			return cur, id, nil
		}
		return cur, id, notFound("tenant", id)
	})
	return updated, err
}

// MarkTenantLeft 标记租客退租，date 为空时结束日期取今天
func (s *Store) MarkTenantLeft(id, date string) (models.Tenant, error) {
	var updated models.Tenant
	_, err := s.update(CollectionTenants, "left", func(cur State) (State, string, error) {
		for i, t := range cur.Tenants {
			if t.ID != id {
				continue
			}
			t.Status = models.TenantStatusLeft
			t.EndDate = date
			if t.EndDate == "" {
				t.EndDate = s.today()
			}
			updated = t
			cur.Tenants = replaceAt(cur.Tenants, i, t)
			return cur, id, nil
		}
		return cur, id, notFound("tenant", id)
	})
	return updated, err
}

// SetTenants 整体替换租客集合
func (s *Store) SetTenants(tenants []models.Tenant) State {
	next, _ := s.update(CollectionTenants, "replace", func(cur State) (State, string, error) {
		cur.Tenants = cloneSlice(tenants)
		return cur, "", nil
	})
	return next
}
