// Package reports 报表导出和定时快照
package reports

import (
	"fmt"
	"io"

	"rentdesk/internal/store"
	"rentdesk/internal/views"

	"github.com/xuri/excelize/v2"
)

// 工作表名称
const (
	SheetSummary  = "Summary"
	SheetPayments = "Payments"
	SheetBills    = "Bills"
)

// ContentType xlsx 文件类型
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export 将报表写为 xlsx 工作簿：汇总、付款明细、电费明细
func Export(w io.Writer, st store.State, opts views.Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	for _, name := range []string{SheetPayments, SheetBills} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	r := views.BuildReports(st, nil)
	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Total Revenue", r.TotalRevenue.InexactFloat64()},
		{"Total Bills", r.TotalBills.InexactFloat64()},
		{"Occupancy Rate (%)", r.OccupancyRate},
		{"Occupied Rooms", fmt.Sprintf("%d/%d", r.OccupiedRooms, r.TotalRooms)},
		{"Paid Payments", r.PaidCount},
		{"Pending Payments", r.PendingCount},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	payments := [][]interface{}{{"Tenant", "Amount", "Month", "Date", "Status", "Mode"}}
	for _, p := range views.AllPayments(st, opts) {
		payments = append(payments, []interface{}{p.TenantName, p.Amount.InexactFloat64(), p.Month, p.Date, p.Status, p.Mode})
	}
	if err := writeRows(f, SheetPayments, payments); err != nil {
		return err
	}

	bills, err := views.BuildBills(st, views.BillTabAll, opts)
	if err != nil {
		return err
	}
	billRows := [][]interface{}{{"Tenant", "Units", "Amount", "Month", "Date", "Status"}}
	for _, b := range bills.Items {
		billRows = append(billRows, []interface{}{b.TenantName, b.Units.InexactFloat64(), b.Amount.InexactFloat64(), b.Month, b.Date, b.Status})
	}
	billRows = append(billRows, []interface{}{"Total", bills.TotalUnits.InexactFloat64(), bills.TotalAmount.InexactFloat64()})
	if err := writeRows(f, SheetBills, billRows); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
