package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ReportFigures 快照时刻的报表数据
type ReportFigures struct {
	Revenue        decimal.Decimal `json:"revenue"`
	PendingRevenue decimal.Decimal `json:"pendingRevenue"`
	BillsTotal     decimal.Decimal `json:"billsTotal"`
	Occupied       int             `json:"occupied"`
	Vacant         int             `json:"vacant"`
	ActiveTenants  int             `json:"activeTenants"`
}

// ReportSnapshot 报表快照，用于月度趋势
type ReportSnapshot struct {
	ID      uint                              `json:"id" gorm:"primarykey"`
	TakenAt time.Time                         `json:"takenAt" gorm:"index"`
	Period  string                            `json:"period" gorm:"size:20;index"` // 如 "Nov"
	Figures datatypes.JSONType[ReportFigures] `json:"figures"`
}

// TableName 表名
func (ReportSnapshot) TableName() string {
	return "report_snapshots"
}
