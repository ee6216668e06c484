// Package views 根据状态快照计算各页面的筛选结果和汇总数据。
// 每次读取都重新计算，不缓存任何派生索引。
package views

import (
	"errors"
	"strings"
	"unicode"

	"rentdesk/internal/models"
	"rentdesk/internal/store"

	"github.com/shopspring/decimal"
)

// 租客姓名的读取方式
const (
	NameModeSnapshot = "snapshot" // 使用记录创建时复制的姓名
	NameModeResolve  = "resolve"  // 按 tenantId 重新解析，租客不存在时退回副本
)

// ErrUnknownTab 未知的筛选标签
var ErrUnknownTab = errors.New("unknown filter")

// DefaultCurrentMonth 电费账单"本月"标签
const DefaultCurrentMonth = "November 2025"

// Options 视图计算选项
type Options struct {
	NameMode     string
	CurrentMonth string
}

func (o Options) currentMonth() string {
	if o.CurrentMonth == "" {
		return DefaultCurrentMonth
	}
	return o.CurrentMonth
}

// names 返回 tenantId -> 显示姓名 的解析函数
func (o Options) names(st store.State) func(tenantID, stored string) string {
	if o.NameMode != NameModeResolve {
		return func(_, stored string) string { return stored }
	}
	byID := make(map[string]string, len(st.Tenants))
	for _, t := range st.Tenants {
		byID[t.ID] = t.Name
	}
	return func(tenantID, stored string) string {
		if name, ok := byID[tenantID]; ok {
			return name
		}
		return stored
	}
}

func (o Options) payments(st store.State, list []models.Payment) []models.Payment {
	name := o.names(st)
	out := make([]models.Payment, len(list))
	for i, p := range list {
		p.TenantName = name(p.TenantID, p.TenantName)
		out[i] = p
	}
	return out
}

func (o Options) bills(st store.State, list []models.LightBill) []models.LightBill {
	name := o.names(st)
	out := make([]models.LightBill, len(list))
	for i, b := range list {
		b.TenantName = name(b.TenantID, b.TenantName)
		out[i] = b
	}
	return out
}

func filter[T any](list []T, keep func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func count[T any](list []T, keep func(T) bool) int {
	n := 0
	for _, v := range list {
		if keep(v) {
			n++
		}
	}
	return n
}

func sum[T any](list []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range list {
		total = total.Add(amount(v))
	}
	return total
}

// MonthlyRevenue 已付款项的金额合计，不按日期过滤
func MonthlyRevenue(payments []models.Payment) decimal.Decimal {
	return sum(filter(payments, models.Payment.IsPaid), paymentAmount)
}

// OccupancyRate 入住率百分比，四舍五入为整数；没有房间时为 0
func OccupancyRate(rooms []models.Room) int {
	if len(rooms) == 0 {
		return 0
	}
	occupied := count(rooms, models.Room.IsOccupied)
	return int(decimal.NewFromInt(int64(occupied)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(rooms)))).
		Round(0).IntPart())
}

// Initials 姓名首字母，姓名为空时返回 "TN"
func Initials(name string) string {
	if strings.TrimSpace(name) == "" {
		return "TN"
	}
	var b strings.Builder
	for _, part := range strings.Split(name, " ") {
		for _, r := range part {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// MatchesSearch 姓名不区分大小写包含，或房间号区分大小写包含
func MatchesSearch(t models.Tenant, query string) bool {
	return strings.Contains(strings.ToLower(t.Name), strings.ToLower(query)) ||
		strings.Contains(t.RoomNumber, query)
}

func paymentAmount(p models.Payment) decimal.Decimal { return p.Amount }
func billAmount(b models.LightBill) decimal.Decimal  { return b.Amount }
func billUnits(b models.LightBill) decimal.Decimal   { return b.Units }

func isPendingPayment(p models.Payment) bool { return p.Status == models.StatusPending }
func isPendingBill(b models.LightBill) bool  { return b.Status == models.StatusPending }
