package views

import (
	"testing"
	"time"

	"rentdesk/internal/models"
	"rentdesk/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func names(ts []models.Tenant) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Name
	}
	return out
}

func TestMonthlyRevenue_SampleData(t *testing.T) {
	st := store.SampleState()
	assert.True(t, MonthlyRevenue(st.Payments).Equal(dec(2500)))
}

func TestOccupancyRate(t *testing.T) {
	rooms := func(occupied, total int) []models.Room {
		out := make([]models.Room, total)
		for i := range out {
			out[i].Status = models.RoomStatusVacant
			if i < occupied {
				out[i].Status = models.RoomStatusOccupied
			}
		}
		return out
	}
	assert.Equal(t, 50, OccupancyRate(rooms(3, 6)))
	assert.Equal(t, 33, OccupancyRate(rooms(2, 6)))
	assert.Equal(t, 67, OccupancyRate(rooms(4, 6)))
	assert.Equal(t, 0, OccupancyRate(nil))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JS", Initials("John Smith"))
	assert.Equal(t, "MB", Initials("michael brown"))
	assert.Equal(t, "TN", Initials("   "))
	assert.Equal(t, "TN", Initials(""))
	assert.Equal(t, "AB", Initials("A  B"))
}

func TestDashboard(t *testing.T) {
	d := BuildDashboard(store.SampleState())
	assert.Equal(t, 3, d.ActiveTenants)
	assert.Equal(t, 3, d.OccupiedRooms)
	assert.Equal(t, 6, d.TotalRooms)
	assert.Equal(t, 1, d.PendingRents)
	assert.Equal(t, 2, d.PendingBills)
	assert.True(t, d.MonthlyRevenue.Equal(dec(2500)))
}

func TestFilterTenants(t *testing.T) {
	tenants := store.SampleState().Tenants

	all, err := FilterTenants(tenants, TenantFilterAll, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"John Smith", "Sarah Johnson", "Michael Brown"}, names(all))

	paid, err := FilterTenants(tenants, TenantFilterPaid, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"John Smith", "Michael Brown"}, names(paid))

	pending, err := FilterTenants(tenants, TenantFilterPending, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sarah Johnson"}, names(pending))

	left, err := FilterTenants(tenants, TenantFilterLeft, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Emily Davis"}, names(left))

	_, err = FilterTenants(tenants, "archived", "")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestFilterTenants_Search(t *testing.T) {
	tenants := store.SampleState().Tenants

	byName, _ := FilterTenants(tenants, TenantFilterAll, "SARAH")
	assert.Equal(t, []string{"Sarah Johnson"}, names(byName))

	byRoom, _ := FilterTenants(tenants, TenantFilterAll, "103")
	assert.Equal(t, []string{"Michael Brown"}, names(byRoom))

	leftByRoom, _ := FilterTenants(tenants, TenantFilterLeft, "104")
	assert.Equal(t, []string{"Emily Davis"}, names(leftByRoom))

	// 房间号区分大小写
	tenants = append(tenants, models.Tenant{ID: "5", Name: "Zed", RoomNumber: "A1", Status: models.TenantStatusActive})
	none, _ := FilterTenants(tenants, TenantFilterAll, "a1")
	assert.Empty(t, none)
}

func TestBuildTenantList(t *testing.T) {
	list, err := BuildTenantList(store.SampleState(), "", "")
	require.NoError(t, err)
	assert.Equal(t, TenantFilterAll, list.Filter)
	assert.Len(t, list.Items, 3)
	assert.Equal(t, "JS", list.Items[0].Initials)
	assert.Equal(t, 3, list.Active)
	assert.Equal(t, 2, list.Paid)
	assert.Equal(t, 1, list.Pending)
}

func TestBuildRooms(t *testing.T) {
	r := BuildRooms(store.SampleState(), Options{})
	assert.Equal(t, 6, r.Total)
	assert.Equal(t, 3, r.Occupied)
	assert.Equal(t, 3, r.Vacant)
}

func TestBuildPayments(t *testing.T) {
	st := store.SampleState()

	p, err := BuildPayments(st, "", Options{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, p.Tab)
	assert.Len(t, p.Items, 2)
	assert.True(t, p.PaidTotal.Equal(dec(2500)))
	assert.True(t, p.PendingTotal.Equal(dec(1500)))
	assert.Equal(t, 2, p.PaidCount)
	assert.Equal(t, 1, p.PendingCount)

	p, err = BuildPayments(st, models.StatusPending, Options{})
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	assert.Equal(t, "Sarah Johnson", p.Items[0].TenantName)

	_, err = BuildPayments(st, "overdue", Options{})
	assert.Error(t, err)
}

func TestBuildBills(t *testing.T) {
	st := store.SampleState()

	b, err := BuildBills(st, "", Options{})
	require.NoError(t, err)
	assert.Equal(t, BillTabThisMonth, b.Tab)
	assert.Len(t, b.Items, 3)
	assert.True(t, b.TotalUnits.Equal(dec(525)))
	assert.True(t, b.TotalAmount.Equal(dec(630)))

	b, err = BuildBills(st, BillTabPending, Options{})
	require.NoError(t, err)
	assert.Len(t, b.Items, 2)
	assert.True(t, b.TotalUnits.Equal(dec(375)))
	assert.True(t, b.TotalAmount.Equal(dec(450)))

	b, err = BuildBills(st, BillTabPaid, Options{})
	require.NoError(t, err)
	assert.True(t, b.TotalAmount.Equal(dec(180)))

	b, err = BuildBills(st, BillTabThisMonth, Options{CurrentMonth: "December 2025"})
	require.NoError(t, err)
	assert.Empty(t, b.Items)
	assert.True(t, b.TotalAmount.IsZero())

	_, err = BuildBills(st, "lastMonth", Options{})
	assert.Error(t, err)
}

func TestNameModes(t *testing.T) {
	s := store.New(store.SampleState())
	_, err := s.UpdateTenant("1", store.TenantDraft{Name: "Johnny Smith", RoomNumber: "101"})
	require.NoError(t, err)
	st := s.Snapshot()

	p, err := BuildPayments(st, models.StatusPaid, Options{NameMode: NameModeSnapshot})
	require.NoError(t, err)
	assert.Equal(t, "John Smith", p.Items[0].TenantName)

	p, err = BuildPayments(st, models.StatusPaid, Options{NameMode: NameModeResolve})
	require.NoError(t, err)
	assert.Equal(t, "Johnny Smith", p.Items[0].TenantName)
	// 原快照不受影响
	assert.Equal(t, "John Smith", st.Payments[0].TenantName)

	r := BuildRooms(st, Options{NameMode: NameModeResolve})
	assert.Equal(t, "Johnny Smith", r.Items[0].TenantName)

	// 租客被移除时退回副本
	s.SetTenants(nil)
	b, err := BuildBills(s.Snapshot(), BillTabAll, Options{NameMode: NameModeResolve})
	require.NoError(t, err)
	assert.Equal(t, "John Smith", b.Items[0].TenantName)
}

func TestBuildLeftTenants(t *testing.T) {
	st := store.SampleState()
	st.Payments = append(st.Payments,
		models.Payment{ID: "9", TenantID: "4", Amount: dec(1400), Status: models.StatusPaid},
		models.Payment{ID: "10", TenantID: "4", Amount: dec(700), Status: models.StatusPending},
	)

	l, err := BuildLeftTenants(st, "", "", "2025")
	require.NoError(t, err)
	assert.Equal(t, 1, l.TotalLeft)
	assert.Equal(t, 0, l.ThisYear)
	require.Len(t, l.Items, 1)
	assert.Equal(t, "ED", l.Items[0].Initials)
	assert.True(t, l.Items[0].History.TotalPaid.Equal(dec(2100)))
	assert.Equal(t, 2, l.Items[0].History.TotalPayments)
	assert.Equal(t, 0, l.Items[0].History.TotalBills)

	l, err = BuildLeftTenants(st, "", "2025", "2025")
	require.NoError(t, err)
	assert.Empty(t, l.Items)

	l, err = BuildLeftTenants(st, "emily", "2024", "2024")
	require.NoError(t, err)
	assert.Len(t, l.Items, 1)
	assert.Equal(t, 1, l.ThisYear)

	l, err = BuildLeftTenants(st, "", "1999", "2025")
	require.NoError(t, err)
	assert.Empty(t, l.Items)

	_, err = BuildLeftTenants(st, "", "last-year", "2025")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestBuildLeftTenants_CurrentYearDeparture(t *testing.T) {
	s := store.New(store.SampleState(), store.WithClock(func() time.Time {
		return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	}))
	_, err := s.MarkTenantLeft("1", "")
	require.NoError(t, err)

	l, err := BuildLeftTenants(s.Snapshot(), "", "", "2026")
	require.NoError(t, err)
	assert.Equal(t, 2, l.TotalLeft)
	assert.Equal(t, 1, l.ThisYear)
	assert.Equal(t, []string{YearAll, "2026", "2024"}, l.Years)

	l, err = BuildLeftTenants(s.Snapshot(), "", "2026", "2026")
	require.NoError(t, err)
	require.Len(t, l.Items, 1)
	assert.Equal(t, "John Smith", l.Items[0].Name)
	assert.Equal(t, "2026-10-15", l.Items[0].EndDate)
}

func TestLeftTenantYears(t *testing.T) {
	assert.Equal(t, []string{YearAll, "2025", "2024"}, LeftTenantYears(store.SampleState().Tenants, "2025"))
	assert.Equal(t, []string{YearAll}, LeftTenantYears(nil, ""))
}

func TestHistoryFor(t *testing.T) {
	h := HistoryFor(store.SampleState(), "2")
	assert.True(t, h.TotalPaid.Equal(dec(1500)))
	assert.Equal(t, 1, h.TotalPayments)
	assert.Equal(t, 1, h.TotalBills)
}

func TestBuildTenantDetails(t *testing.T) {
	st := store.SampleState()

	d, err := BuildTenantDetails(st, "3", "", nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, DetailTabPayments, d.Tab)
	assert.Equal(t, "MB", d.Initials)
	require.Len(t, d.Payments, 1)
	require.NotNil(t, d.PendingBill)
	assert.Equal(t, "3", d.PendingBill.ID)

	d, err = BuildTenantDetails(st, "2", DetailTabPending, nil, Options{})
	require.NoError(t, err)
	require.Len(t, d.Payments, 1)
	assert.Equal(t, models.StatusPending, d.Payments[0].Status)

	d, err = BuildTenantDetails(st, "1", DetailTabBills, nil, Options{})
	require.NoError(t, err)
	assert.Len(t, d.Bills, 1)
	assert.Nil(t, d.PendingBill)

	docs := []models.Document{{ID: "d1", TenantID: "1", Name: "passport.pdf"}}
	d, err = BuildTenantDetails(st, "1", DetailTabDocuments, docs, Options{})
	require.NoError(t, err)
	assert.Equal(t, docs, d.Documents)

	_, err = BuildTenantDetails(st, "missing", "", nil, Options{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = BuildTenantDetails(st, "1", "photos", nil, Options{})
	assert.Error(t, err)
}

func TestBuildReports(t *testing.T) {
	st := store.SampleState()
	snaps := []models.ReportSnapshot{
		{TakenAt: time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC), Period: "Oct", Figures: datatypes.NewJSONType(models.ReportFigures{Revenue: dec(3900), BillsTotal: dec(1000), Occupied: 3, Vacant: 3})},
		{TakenAt: time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC), Period: "Nov", Figures: datatypes.NewJSONType(Figures(st))},
	}

	r := BuildReports(st, snaps)
	assert.True(t, r.TotalRevenue.Equal(dec(2500)))
	assert.True(t, r.TotalBills.Equal(dec(630)))
	assert.Equal(t, 50, r.OccupancyRate)
	assert.Equal(t, 2, r.PaidCount)
	assert.Equal(t, 1, r.PendingCount)
	require.Len(t, r.Trend, 2)
	assert.Equal(t, "Oct", r.Trend[0].Period)
	assert.True(t, r.Trend[1].Revenue.Equal(dec(2500)))
	assert.True(t, r.Trend[1].Expenses.Equal(dec(630)))
	assert.Equal(t, 3, r.Trend[1].Vacant)
}

func TestFigures(t *testing.T) {
	f := Figures(store.SampleState())
	assert.True(t, f.Revenue.Equal(dec(2500)))
	assert.True(t, f.PendingRevenue.Equal(dec(1500)))
	assert.True(t, f.BillsTotal.Equal(dec(630)))
	assert.Equal(t, 3, f.Occupied)
	assert.Equal(t, 3, f.Vacant)
	assert.Equal(t, 3, f.ActiveTenants)
}
