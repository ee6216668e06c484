package models

import "github.com/shopspring/decimal"

// Tenant 租客
type Tenant struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	RoomNumber string          `json:"roomNumber"`
	RentAmount decimal.Decimal `json:"rentAmount"`
	Deposit    decimal.Decimal `json:"deposit"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate,omitempty"` // 仅在状态变为 left 时设置
	Status     string          `json:"status"`
	RentStatus string          `json:"rentStatus"`
	BillStatus string          `json:"billStatus"`
}

// 租客状态常量
const (
	TenantStatusActive = "active"
	TenantStatusLeft   = "left"
)

// 付款状态常量，租金、电费、付款记录共用
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// IsActive 是否在租
func (t Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

// HasLeft 是否已退租
func (t Tenant) HasLeft() bool {
	return t.Status == TenantStatusLeft
}

// IsValidTenantStatus 检查租客状态是否有效
func IsValidTenantStatus(status string) bool {
	return status == TenantStatusActive || status == TenantStatusLeft
}

// IsValidPaymentStatus 检查付款状态是否有效
func IsValidPaymentStatus(status string) bool {
	return status == StatusPaid || status == StatusPending
}
