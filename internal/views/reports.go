package views

import (
	"rentdesk/internal/models"
	"rentdesk/internal/store"

	"github.com/shopspring/decimal"
)

// TrendPoint 月度趋势中的一个点
type TrendPoint struct {
	Period   string          `json:"period"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Occupied int             `json:"occupied"`
	Vacant   int             `json:"vacant"`
}

// Reports 报表页
type Reports struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalBills    decimal.Decimal `json:"totalBills"`
	OccupancyRate int             `json:"occupancyRate"`
	OccupiedRooms int             `json:"occupiedRooms"`
	TotalRooms    int             `json:"totalRooms"`
	PaidCount     int             `json:"paidCount"`
	PendingCount  int             `json:"pendingCount"`
	Trend         []TrendPoint    `json:"trend"`
}

// Figures 当前快照的报表数据，用于定时记录
func Figures(st store.State) models.ReportFigures {
	occupied := count(st.Rooms, models.Room.IsOccupied)
	return models.ReportFigures{
		Revenue:        MonthlyRevenue(st.Payments),
		PendingRevenue: sum(filter(st.Payments, isPendingPayment), paymentAmount),
		BillsTotal:     sum(st.LightBills, billAmount),
		Occupied:       occupied,
		Vacant:         len(st.Rooms) - occupied,
		ActiveTenants:  count(st.Tenants, models.Tenant.IsActive),
	}
}

// BuildReports 计算报表页，趋势来自已记录的快照（按时间升序）
func BuildReports(st store.State, snapshots []models.ReportSnapshot) Reports {
	trend := make([]TrendPoint, len(snapshots))
	for i, s := range snapshots {
		f := s.Figures.Data()
		trend[i] = TrendPoint{
			Period:   s.Period,
			Revenue:  f.Revenue,
			Expenses: f.BillsTotal,
			Occupied: f.Occupied,
			Vacant:   f.Vacant,
		}
	}
	return Reports{
		TotalRevenue:  MonthlyRevenue(st.Payments),
		TotalBills:    sum(st.LightBills, billAmount),
		OccupancyRate: OccupancyRate(st.Rooms),
		OccupiedRooms: count(st.Rooms, models.Room.IsOccupied),
		TotalRooms:    len(st.Rooms),
		PaidCount:     count(st.Payments, models.Payment.IsPaid),
		PendingCount:  count(st.Payments, isPendingPayment),
		Trend:         trend,
	}
}
