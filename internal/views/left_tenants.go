package views

import (
	"fmt"
	"sort"
	"strings"

	"rentdesk/internal/models"
	"rentdesk/internal/store"

	"github.com/shopspring/decimal"
)

// YearAll 不按退租年份过滤
const YearAll = "all"

// LeftTenantYears 年份筛选项：all、今年以及数据中出现过的退租年份，年份降序
func LeftTenantYears(tenants []models.Tenant, currentYear string) []string {
	seen := map[string]bool{}
	var years []string
	add := func(y string) {
		if isYear(y) && !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	add(currentYear)
	for _, t := range tenants {
		if t.HasLeft() && len(t.EndDate) >= 4 {
			add(t.EndDate[:4])
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return append([]string{YearAll}, years...)
}

// TenantHistory 租客历史汇总，包括所有状态的付款
type TenantHistory struct {
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalPayments int             `json:"totalPayments"`
	TotalBills    int             `json:"totalBills"`
}

// LeftTenantItem 已退租租客及其历史
type LeftTenantItem struct {
	models.Tenant
	Initials string        `json:"initials"`
	History  TenantHistory `json:"history"`
}

// LeftTenants 已退租租客页
type LeftTenants struct {
	Year      string           `json:"year"`
	Query     string           `json:"query"`
	TotalLeft int              `json:"totalLeft"`
	ThisYear  int              `json:"thisYear"`
	Years     []string         `json:"years"`
	Items     []LeftTenantItem `json:"items"`
}

// HistoryFor 汇总某个租客的全部付款和电费账单
func HistoryFor(st store.State, tenantID string) TenantHistory {
	payments := filter(st.Payments, func(p models.Payment) bool { return p.TenantID == tenantID })
	return TenantHistory{
		TotalPaid:     sum(payments, paymentAmount),
		TotalPayments: len(payments),
		TotalBills:    count(st.LightBills, func(b models.LightBill) bool { return b.TenantID == tenantID }),
	}
}

// BuildLeftTenants 计算已退租租客页。currentYear 用于"今年"统计
func BuildLeftTenants(st store.State, query, year, currentYear string) (LeftTenants, error) {
	if year == "" {
		year = YearAll
	}
	if year != YearAll && !isYear(year) {
		return LeftTenants{}, fmt.Errorf("%w: year %q", ErrUnknownTab, year)
	}

	left := filter(st.Tenants, models.Tenant.HasLeft)
	matched := filter(left, func(t models.Tenant) bool {
		if !MatchesSearch(t, query) {
			return false
		}
		return year == YearAll || strings.HasPrefix(t.EndDate, year)
	})

	items := make([]LeftTenantItem, len(matched))
	for i, t := range matched {
		items[i] = LeftTenantItem{Tenant: t, Initials: Initials(t.Name), History: HistoryFor(st, t.ID)}
	}
	thisYear := count(left, func(t models.Tenant) bool {
		return t.EndDate != "" && strings.HasPrefix(t.EndDate, currentYear)
	})
	return LeftTenants{
		Year:      year,
		Query:     query,
		TotalLeft: len(left),
		ThisYear:  thisYear,
		Years:     LeftTenantYears(st.Tenants, currentYear),
		Items:     items,
	}, nil
}

// isYear 四位数字年份
func isYear(y string) bool {
	if len(y) != 4 {
		return false
	}
	for _, r := range y {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
