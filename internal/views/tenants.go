package views

import (
	"fmt"

	"rentdesk/internal/models"
	"rentdesk/internal/store"
)

// 租客列表筛选标签
const (
	TenantFilterAll     = "all"
	TenantFilterPaid    = "paid"
	TenantFilterPending = "pending"
	TenantFilterLeft    = "left"
)

// IsValidTenantFilter 检查筛选标签
func IsValidTenantFilter(f string) bool {
	switch f {
	case TenantFilterAll, TenantFilterPaid, TenantFilterPending, TenantFilterLeft:
		return true
	default:
		return false
	}
}

// TenantListItem 列表中的一行
type TenantListItem struct {
	models.Tenant
	Initials string `json:"initials"`
}

// TenantList 租客列表页
type TenantList struct {
	Filter  string           `json:"filter"`
	Query   string           `json:"query"`
	Items   []TenantListItem `json:"items"`
	Active  int              `json:"active"`
	Paid    int              `json:"paid"`
	Pending int              `json:"pending"`
}

// FilterTenants 按标签和搜索词过滤租客。all 只包含在租租客
func FilterTenants(tenants []models.Tenant, filterTab, query string) ([]models.Tenant, error) {
	var keep func(models.Tenant) bool
	switch filterTab {
	case TenantFilterAll, "":
		keep = models.Tenant.IsActive
	case TenantFilterPaid:
		keep = func(t models.Tenant) bool { return t.IsActive() && t.RentStatus == models.StatusPaid }
	case TenantFilterPending:
		keep = func(t models.Tenant) bool { return t.IsActive() && t.RentStatus == models.StatusPending }
	case TenantFilterLeft:
		keep = models.Tenant.HasLeft
	default:
		return nil, fmt.Errorf("%w: tenant filter %q", ErrUnknownTab, filterTab)
	}
	return filter(tenants, func(t models.Tenant) bool {
		return keep(t) && MatchesSearch(t, query)
	}), nil
}

// BuildTenantList 计算租客列表页
func BuildTenantList(st store.State, filterTab, query string) (TenantList, error) {
	if filterTab == "" {
		filterTab = TenantFilterAll
	}
	matched, err := FilterTenants(st.Tenants, filterTab, query)
	if err != nil {
		return TenantList{}, err
	}
	items := make([]TenantListItem, len(matched))
	for i, t := range matched {
		items[i] = TenantListItem{Tenant: t, Initials: Initials(t.Name)}
	}
	active := filter(st.Tenants, models.Tenant.IsActive)
	return TenantList{
		Filter:  filterTab,
		Query:   query,
		Items:   items,
		Active:  len(active),
		Paid:    count(active, func(t models.Tenant) bool { return t.RentStatus == models.StatusPaid }),
		Pending: count(active, func(t models.Tenant) bool { return t.RentStatus == models.StatusPending }),
	}, nil
}
