package store

import (
	"rentdesk/internal/models"

	"github.com/shopspring/decimal"
)

func rent(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// SampleState 启动时的示例数据
func SampleState() State {
	return State{
		Tenants: []models.Tenant{
			{ID: "1", Name: "John Smith", Phone: "+1 234 567 8901", RoomNumber: "101", RentAmount: decimal.NewFromInt(1200), Deposit: decimal.NewFromInt(2400), StartDate: "2024-01-01", Status: models.TenantStatusActive, RentStatus: models.StatusPaid, BillStatus: models.StatusPaid},
			{ID: "2", Name: "Sarah Johnson", Phone: "+1 234 567 8902", RoomNumber: "102", RentAmount: decimal.NewFromInt(1500), Deposit: decimal.NewFromInt(3000), StartDate: "2024-02-15", Status: models.TenantStatusActive, RentStatus: models.StatusPending, BillStatus: models.StatusPending},
			{ID: "3", Name: "Michael Brown", Phone: "+1 234 567 8903", RoomNumber: "103", RentAmount: decimal.NewFromInt(1300), Deposit: decimal.NewFromInt(2600), StartDate: "2024-03-01", Status: models.TenantStatusActive, RentStatus: models.StatusPaid, BillStatus: models.StatusPending},
			{ID: "4", Name: "Emily Davis", Phone: "+1 234 567 8904", RoomNumber: "104", RentAmount: decimal.NewFromInt(1400), Deposit: decimal.NewFromInt(2800), StartDate: "2023-12-01", EndDate: "2024-11-15", Status: models.TenantStatusLeft, RentStatus: models.StatusPaid, BillStatus: models.StatusPaid},
		},
		Payments: []models.Payment{
			{ID: "1", TenantID: "1", TenantName: "John Smith", Amount: decimal.NewFromInt(1200), Month: "November 2025", Date: "2025-11-01", Status: models.StatusPaid, Mode: models.PaymentModeOnline},
			{ID: "2", TenantID: "2", TenantName: "Sarah Johnson", Amount: decimal.NewFromInt(1500), Month: "November 2025", Date: "2025-11-01", Status: models.StatusPending, Mode: models.PaymentModeCash},
			{ID: "3", TenantID: "3", TenantName: "Michael Brown", Amount: decimal.NewFromInt(1300), Month: "November 2025", Date: "2025-11-05", Status: models.StatusPaid, Mode: models.PaymentModeOnline},
		},
		LightBills: []models.LightBill{
			{ID: "1", TenantID: "1", TenantName: "John Smith", Units: decimal.NewFromInt(150), Amount: decimal.NewFromInt(180), Month: "November 2025", Status: models.StatusPaid, Date: "2025-11-10"},
			{ID: "2", TenantID: "2", TenantName: "Sarah Johnson", Units: decimal.NewFromInt(200), Amount: decimal.NewFromInt(240), Month: "November 2025", Status: models.StatusPending, Date: "2025-11-10"},
			{ID: "3", TenantID: "3", TenantName: "Michael Brown", Units: decimal.NewFromInt(175), Amount: decimal.NewFromInt(210), Month: "November 2025", Status: models.StatusPending, Date: "2025-11-10"},
		},
		Rooms: []models.Room{
			{ID: "1", RoomNumber: "101", Status: models.RoomStatusOccupied, TenantID: "1", TenantName: "John Smith", RentAmount: rent(1200)},
			{ID: "2", RoomNumber: "102", Status: models.RoomStatusOccupied, TenantID: "2", TenantName: "Sarah Johnson", RentAmount: rent(1500)},
			{ID: "3", RoomNumber: "103", Status: models.RoomStatusOccupied, TenantID: "3", TenantName: "Michael Brown", RentAmount: rent(1300)},
			{ID: "4", RoomNumber: "104", Status: models.RoomStatusVacant},
			{ID: "5", RoomNumber: "105", Status: models.RoomStatusVacant},
			{ID: "6", RoomNumber: "106", Status: models.RoomStatusVacant},
		},
		Navigation: Navigation{CurrentScreen: ScreenLogin},
	}
}
