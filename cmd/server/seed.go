package main

import (
	"context"

	"rentdesk/internal/reports"
	"rentdesk/internal/store"
	"rentdesk/pkg/logger"
)

// seedState 初始领域数据，进程重启后恢复为样例数据
func seedState() store.State {
	st := store.SampleState()
	logger.GetLogger().Infof("Seeded %d tenants, %d rooms, %d payments, %d light bills",
		len(st.Tenants), len(st.Rooms), len(st.Payments), len(st.LightBills))
	return st
}

// seedSnapshot 快照表为空时记录一次，保证报表趋势至少有一个点
func seedSnapshot(ctx context.Context, recorder *reports.Recorder) error {
	existing, err := recorder.Trend(ctx, 1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	snap, err := recorder.Record(ctx)
	if err != nil {
		return err
	}
	logger.GetLogger().Infof("Recorded initial report snapshot for %s", snap.Period)
	return nil
}
