package models

import "github.com/shopspring/decimal"

// Payment 租金付款记录，TenantName 在创建时复制
type Payment struct {
	ID         string          `json:"id"`
	TenantID   string          `json:"tenantId"`
	TenantName string          `json:"tenantName"`
	Amount     decimal.Decimal `json:"amount"`
	Month      string          `json:"month"` // 自由文本，如 "November 2025"
	Date       string          `json:"date"`
	Status     string          `json:"status"`
	Mode       string          `json:"mode"`
}

// 付款方式常量
const (
	PaymentModeCash   = "cash"
	PaymentModeOnline = "online"
	PaymentModeCheque = "cheque"
)

// IsPaid 是否已付
func (p Payment) IsPaid() bool {
	return p.Status == StatusPaid
}

// IsValidPaymentMode 检查付款方式是否有效
func IsValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentModeCash, PaymentModeOnline, PaymentModeCheque:
		return true
	default:
		return false
	}
}
