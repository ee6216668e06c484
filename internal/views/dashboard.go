package views

import (
	"rentdesk/internal/models"
	"rentdesk/internal/store"

	"github.com/shopspring/decimal"
)

// Dashboard 仪表盘数据
type Dashboard struct {
	ActiveTenants  int             `json:"activeTenants"`
	OccupiedRooms  int             `json:"occupiedRooms"`
	TotalRooms     int             `json:"totalRooms"`
	PendingRents   int             `json:"pendingRents"`
	PendingBills   int             `json:"pendingBills"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
}

// BuildDashboard 计算仪表盘
func BuildDashboard(st store.State) Dashboard {
	return Dashboard{
		ActiveTenants:  count(st.Tenants, models.Tenant.IsActive),
		OccupiedRooms:  count(st.Rooms, models.Room.IsOccupied),
		TotalRooms:     len(st.Rooms),
		PendingRents:   count(st.Payments, isPendingPayment),
		PendingBills:   count(st.LightBills, isPendingBill),
		MonthlyRevenue: MonthlyRevenue(st.Payments),
	}
}
