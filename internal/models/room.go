package models

import "github.com/shopspring/decimal"

// Room 房间。已入住房间冗余保存租客姓名和租金，不与 Tenant 做引用校验
type Room struct {
	ID         string           `json:"id"`
	RoomNumber string           `json:"roomNumber"`
	Status     string           `json:"status"`
	TenantID   string           `json:"tenantId,omitempty"`
	TenantName string           `json:"tenantName,omitempty"`
	RentAmount *decimal.Decimal `json:"rentAmount,omitempty"`
}

// 房间状态常量
const (
	RoomStatusOccupied = "occupied"
	RoomStatusVacant   = "vacant"
)

// IsOccupied 是否已入住
func (r Room) IsOccupied() bool {
	return r.Status == RoomStatusOccupied
}
