package services

import (
	"context"
	"io"

	"rentdesk/internal/models"
	"rentdesk/internal/reports"
	"rentdesk/internal/store"
	"rentdesk/internal/views"
)

// DefaultTrendLength 报表趋势显示的快照数量
const DefaultTrendLength = 6

// ReportService 仪表盘和报表
type ReportService struct {
	store    *store.Store
	recorder *reports.Recorder
	opts     views.Options
}

// NewReportService 创建报表服务
func NewReportService(s *store.Store, recorder *reports.Recorder, opts views.Options) *ReportService {
	return &ReportService{store: s, recorder: recorder, opts: opts}
}

// Dashboard 仪表盘
func (s *ReportService) Dashboard() views.Dashboard {
	return views.BuildDashboard(s.store.Snapshot())
}

// Reports 报表页
func (s *ReportService) Reports(ctx context.Context) (views.Reports, error) {
	trend, err := s.recorder.Trend(ctx, DefaultTrendLength)
	if err != nil {
		return views.Reports{}, err
	}
	return views.BuildReports(s.store.Snapshot(), trend), nil
}

// Export 导出 xlsx 报表
func (s *ReportService) Export(w io.Writer) error {
	return reports.Export(w, s.store.Snapshot(), s.opts)
}

// RecordSnapshot 立即记录一次快照
func (s *ReportService) RecordSnapshot(ctx context.Context) (models.ReportSnapshot, error) {
	return s.recorder.Record(ctx)
}
