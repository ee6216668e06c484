package models

import "github.com/shopspring/decimal"

// LightBill 电费账单
type LightBill struct {
	ID         string          `json:"id"`
	TenantID   string          `json:"tenantId"`
	TenantName string          `json:"tenantName"`
	Units      decimal.Decimal `json:"units"`
	Amount     decimal.Decimal `json:"amount"`
	Month      string          `json:"month"`
	Status     string          `json:"status"`
	Date       string          `json:"date"`
}

// IsPaid 是否已缴
func (b LightBill) IsPaid() bool {
	return b.Status == StatusPaid
}
