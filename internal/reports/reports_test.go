package reports

import (
	"bytes"
	"context"
	"testing"
	"time"

	"rentdesk/internal/models"
	"rentdesk/internal/store"
	"rentdesk/internal/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.ReportSnapshot{}))
	return db
}

func TestExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, store.SampleState(), views.Options{}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetPayments, SheetBills}, f.GetSheetList())

	revenue, err := f.GetCellValue(SheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2500", revenue)
	occupancy, err := f.GetCellValue(SheetSummary, "B4")
	require.NoError(t, err)
	assert.Equal(t, "50", occupancy)

	rows, err := f.GetRows(SheetPayments)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Sarah Johnson", rows[2][0])

	bills, err := f.GetRows(SheetBills)
	require.NoError(t, err)
	require.Len(t, bills, 5)
	assert.Equal(t, []string{"Total", "525", "630"}, bills[4])
}

func testRepository(t *testing.T, repo Repository) {
	ctx := context.Background()
	base := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	for i, period := range []string{"Jul", "Aug", "Sep"} {
		snap := &models.ReportSnapshot{TakenAt: base.AddDate(0, i, 0), Period: period}
		require.NoError(t, repo.Save(ctx, snap))
		assert.NotZero(t, snap.ID)
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Aug", recent[0].Period)
	assert.Equal(t, "Sep", recent[1].Period)

	all, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, NewMemoryRepository())
}

func TestGormRepository(t *testing.T) {
	testRepository(t, NewGormRepository(setupTestDB(t)))
}

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.SampleState())
	repo := NewGormRepository(setupTestDB(t))
	rec := NewRecorder(s, repo)
	rec.clock = func() time.Time { return time.Date(2025, 11, 30, 23, 0, 0, 0, time.UTC) }

	snap, err := rec.Record(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nov", snap.Period)

	trend, err := rec.Trend(ctx, 12)
	require.NoError(t, err)
	require.Len(t, trend, 1)
	figures := trend[0].Figures.Data()
	assert.Equal(t, "2500", figures.Revenue.String())
	assert.Equal(t, 3, figures.Occupied)

	r := views.BuildReports(s.Snapshot(), trend)
	require.Len(t, r.Trend, 1)
	assert.Equal(t, "630", r.Trend[0].Expenses.String())
}

func TestScheduler(t *testing.T) {
	rec := NewRecorder(store.New(store.SampleState()), NewMemoryRepository())
	sched := NewScheduler(rec, nil)

	require.NoError(t, sched.Start(""))
	assert.False(t, sched.Running())

	assert.Error(t, sched.Start("not a cron spec"))
	assert.False(t, sched.Running())

	require.NoError(t, sched.Start("@daily"))
	assert.True(t, sched.Running())
	require.NoError(t, sched.Start("@daily"))

	sched.Stop()
	assert.False(t, sched.Running())
	sched.Stop()

	sched.run()
	trend, err := rec.Trend(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, trend, 1)
}
