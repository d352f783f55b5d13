package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CountMembers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) CountMembershipsStarted(ctx context.Context, start, end time.Time) (int, error) {
	args := m.Called(ctx, start, end)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) CountActiveMemberships(ctx context.Context, today time.Time) (int, error) {
	args := m.Called(ctx, today)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) CountMembershipsEnding(ctx context.Context, start, end time.Time) (int, error) {
	args := m.Called(ctx, start, end)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RevenueStats(ctx context.Context, start, end time.Time) (models.RevenueStats, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(models.RevenueStats), args.Error(1)
}
func (m *RepoMock) DailyStats(ctx context.Context, start, end time.Time) ([]models.DailyStat, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyStat), args.Error(1)
}
func (m *RepoMock) TypeStats(ctx context.Context, start, end time.Time) ([]models.TypeStat, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TypeStat), args.Error(1)
}
func (m *RepoMock) RecentMembershipDetails(ctx context.Context, limit int) ([]*models.MembershipDetails, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MembershipDetails), args.Error(1)
}
func (m *RepoMock) ExpiringMembershipDetails(ctx context.Context, from, to time.Time) ([]*models.MembershipDetails, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MembershipDetails), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeFilter(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       models.DummyReportFilter
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "обе даты отсутствуют - последние 30 дней",
			req:       models.DummyReportFilter{},
			wantStart: date(2024, 5, 16),
			wantEnd:   date(2024, 6, 15),
		},
		{
			name:      "корректный период",
			req:       models.DummyReportFilter{StartDate: "2024-01-01", EndDate: "2024-01-31"},
			wantStart: date(2024, 1, 1),
			wantEnd:   date(2024, 1, 31),
		},
		{
			name:      "некорректная дата начала - откат на сегодня",
			req:       models.DummyReportFilter{StartDate: "garbage", EndDate: "2024-07-01"},
			wantStart: date(2024, 6, 15),
			wantEnd:   date(2024, 7, 1),
		},
		{
			name:      "перепутанные границы молча переставляются",
			req:       models.DummyReportFilter{StartDate: "2024-03-10", EndDate: "2024-03-01"},
			wantStart: date(2024, 3, 1),
			wantEnd:   date(2024, 3, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFilter(tt.req, now)
			assert.Equal(t, tt.wantStart, got.StartDate)
			assert.Equal(t, tt.wantEnd, got.EndDate)
		})
	}
}

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     float64
	}{
		{"нет предыдущего периода, есть текущий - 100%", 5, 0, 100},
		{"нет ни предыдущего, ни текущего - 0%", 0, 0, 0},
		{"рост", 15, 10, 50},
		{"падение", 5, 10, -50},
		{"без изменений", 10, 10, 0},
		{"округление до двух знаков", 1, 3, -66.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GrowthRate(tt.current, tt.previous))
		})
	}
}

func TestExpirationStatus(t *testing.T) {
	tests := []struct {
		daysLeft int
		want     string
	}{
		{-2, StatusExpired},
		{0, StatusExpired},
		{1, StatusCritical},
		{3, StatusCritical},
		{4, StatusUrgent},
		{7, StatusUrgent},
		{8, StatusWarning},
		{14, StatusWarning},
		{15, StatusNormal},
		{30, StatusNormal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpirationStatus(tt.daysLeft), "daysLeft=%d", tt.daysLeft)
	}
}

func TestFillDailySeries(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 1, 3)
	stats := []models.DailyStat{
		{Date: date(2024, 1, 1), Count: 1, Revenue: 100},
		{Date: date(2024, 1, 2), Count: 1, Revenue: 200},
	}

	got := FillDailySeries(start, end, stats)

	require.Len(t, got, 3)
	assert.Equal(t, models.ChartPoint{Date: "2024-01-01", NewMemberships: 1, DailyRevenue: 100}, got[0])
	assert.Equal(t, models.ChartPoint{Date: "2024-01-02", NewMemberships: 1, DailyRevenue: 200}, got[1])
	assert.Equal(t, models.ChartPoint{Date: "2024-01-03", NewMemberships: 0, DailyRevenue: 0}, got[2])
}

func TestFillDailySeries_LengthAndOrder(t *testing.T) {
	start := date(2024, 2, 1)
	end := date(2024, 3, 1)

	got := FillDailySeries(start, end, nil)

	// Длина равна количеству дней периода включительно, даты строго возрастают.
	require.Len(t, got, 30)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Date, got[i].Date)
	}
	assert.Equal(t, "2024-02-01", got[0].Date)
	assert.Equal(t, "2024-03-01", got[len(got)-1].Date)
}

func TestTypeBreakdownRows(t *testing.T) {
	stats := []models.TypeStat{
		{ID: 1, Name: "Standard", Price: 50, DurationMonths: 6, Count: 2, Revenue: 100},
		{ID: 2, Name: "Premium", Price: 300, DurationMonths: 12, Count: 1, Revenue: 300},
		{ID: 3, Name: "Student", Price: 20, DurationMonths: 3, Count: 0, Revenue: 0},
	}

	got := TypeBreakdownRows(stats)

	require.Len(t, got, 3)
	// Сортировка по убыванию выручки, тарифы без членств остаются в конце.
	assert.Equal(t, "Premium", got[0].Name)
	assert.Equal(t, "Standard", got[1].Name)
	assert.Equal(t, "Student", got[2].Name)
	assert.Equal(t, 75.0, got[0].Percentage)
	assert.Equal(t, 25.0, got[1].Percentage)
	assert.Equal(t, 0.0, got[2].Percentage)

	var sum float64
	for _, row := range got {
		sum += row.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.02)
}

func TestTypeBreakdownRows_ZeroRevenue(t *testing.T) {
	stats := []models.TypeStat{
		{ID: 1, Name: "Standard", Price: 50, DurationMonths: 6},
		{ID: 2, Name: "Premium", Price: 300, DurationMonths: 12},
	}

	got := TypeBreakdownRows(stats)

	for _, row := range got {
		assert.Equal(t, 0.0, row.Percentage)
		assert.Equal(t, 0.0, row.TotalRevenue)
	}
}

func TestBuildReportAt_Scenario(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	today := date(2024, 1, 10)
	start := date(2024, 1, 1)
	end := date(2024, 1, 3)

	repo := new(RepoMock)
	repo.On("CountMembers", mock.Anything).Return(7, nil)
	repo.On("CountMembershipsStarted", mock.Anything, start, end).Return(2, nil)
	repo.On("CountActiveMemberships", mock.Anything, today).Return(4, nil)
	repo.On("RevenueStats", mock.Anything, start, end).
		Return(models.RevenueStats{Total: 300, Count: 2, Average: 150}, nil)
	repo.On("CountMembershipsEnding", mock.Anything, date(2024, 1, 1), date(2024, 1, 31)).Return(1, nil)
	// Предыдущий период той же длины: 2 дня до начала текущего.
	repo.On("CountMembershipsStarted", mock.Anything, date(2023, 12, 30), start).Return(0, nil)
	repo.On("DailyStats", mock.Anything, start, end).Return([]models.DailyStat{
		{Date: date(2024, 1, 1), Count: 1, Revenue: 100},
		{Date: date(2024, 1, 2), Count: 1, Revenue: 200},
	}, nil)
	repo.On("TypeStats", mock.Anything, start, end).Return([]models.TypeStat{
		{ID: 1, Name: "Standard", Price: 100, DurationMonths: 6, Count: 1, Revenue: 100},
		{ID: 2, Name: "Premium", Price: 200, DurationMonths: 12, Count: 1, Revenue: 200},
	}, nil)
	repo.On("RecentMembershipDetails", mock.Anything, RecentLimit).Return([]*models.MembershipDetails{}, nil)
	repo.On("ExpiringMembershipDetails", mock.Anything, today, date(2024, 2, 9)).
		Return([]*models.MembershipDetails{}, nil)

	svc := NewReportService(repo, newTestLogger())
	req := models.DummyReportFilter{StartDate: "2024-01-01", EndDate: "2024-01-03"}

	got, err := svc.BuildReportAt(context.Background(), req, now)
	require.NoError(t, err)

	assert.Equal(t, 7, got.Summary.TotalMembers)
	assert.Equal(t, 2, got.Summary.NewMemberships)
	assert.Equal(t, 4, got.Summary.ActiveMemberships)
	assert.Equal(t, 300.0, got.Summary.TotalRevenue)
	assert.Equal(t, 150.0, got.Summary.AveragePrice)
	assert.Equal(t, 1, got.Summary.ExpiringThisMonth)
	// Предыдущий период пуст, текущий нет - рост 100%.
	assert.Equal(t, 100.0, got.Summary.GrowthRate)

	require.Len(t, got.ChartData, 3)
	assert.Equal(t, models.ChartPoint{Date: "2024-01-01", NewMemberships: 1, DailyRevenue: 100}, got.ChartData[0])
	assert.Equal(t, models.ChartPoint{Date: "2024-01-02", NewMemberships: 1, DailyRevenue: 200}, got.ChartData[1])
	assert.Equal(t, models.ChartPoint{Date: "2024-01-03", NewMemberships: 0, DailyRevenue: 0}, got.ChartData[2])

	// Сумма дневной выручки совпадает со сводной выручкой периода.
	var daily float64
	for _, p := range got.ChartData {
		daily += p.DailyRevenue
	}
	assert.Equal(t, got.Summary.TotalRevenue, daily)

	assert.Equal(t, models.ReportFilters{StartDate: "2024-01-01", EndDate: "2024-01-03"}, got.Filters)

	// Повторный вызов с теми же входами и данными даёт идентичный результат.
	again, err := svc.BuildReportAt(context.Background(), req, now)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestBuildReportAt_ExpirationClassification(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	today := date(2024, 5, 1)

	member := models.Member{ID: 3, LastName: "Benali", FirstName: "Amine", Email: "amine@example.com", Phone: "0601020304"}
	mtype := models.MembershipType{ID: 2, Name: "Standard", Price: 50, DurationMonths: 6}

	details := []*models.MembershipDetails{
		{ID: 1, EndDate: today, Member: member, Type: mtype},
		{ID: 2, EndDate: today.AddDate(0, 0, 7), Member: member, Type: mtype},
		{ID: 3, EndDate: today.AddDate(0, 0, 15), Member: member, Type: mtype},
	}

	repo := new(RepoMock)
	repo.On("CountMembers", mock.Anything).Return(0, nil)
	repo.On("CountMembershipsStarted", mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
	repo.On("CountActiveMemberships", mock.Anything, mock.Anything).Return(0, nil)
	repo.On("RevenueStats", mock.Anything, mock.Anything, mock.Anything).Return(models.RevenueStats{}, nil)
	repo.On("CountMembershipsEnding", mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
	repo.On("DailyStats", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("TypeStats", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("RecentMembershipDetails", mock.Anything, RecentLimit).Return([]*models.MembershipDetails{}, nil)
	repo.On("ExpiringMembershipDetails", mock.Anything, today, today.AddDate(0, 0, 30)).Return(details, nil)

	svc := NewReportService(repo, newTestLogger())

	got, err := svc.BuildReportAt(context.Background(), models.DummyReportFilter{}, now)
	require.NoError(t, err)
	require.Len(t, got.ExpiringMemberships, 3)

	expiresToday := got.ExpiringMemberships[0]
	assert.Equal(t, StatusExpired, expiresToday.Status)
	assert.Equal(t, 0, expiresToday.DaysLeft)
	assert.True(t, expiresToday.IsCritical)
	assert.True(t, expiresToday.IsUrgent)

	inWeek := got.ExpiringMemberships[1]
	assert.Equal(t, StatusUrgent, inWeek.Status)
	assert.Equal(t, 7, inWeek.DaysLeft)
	assert.True(t, inWeek.IsUrgent)
	assert.False(t, inWeek.IsCritical)

	inTwoWeeks := got.ExpiringMemberships[2]
	assert.Equal(t, StatusNormal, inTwoWeeks.Status)
	assert.Equal(t, 15, inTwoWeeks.DaysLeft)

	assert.Equal(t, "Amine Benali", expiresToday.Member.FullName)
	assert.Equal(t, "01/05/2024", expiresToday.FormattedEndDate)
}

func TestBuildReportAt_UnresolvableReferencesExcludedFromLists(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	today := date(2024, 1, 10)

	member := models.Member{ID: 1, LastName: "Haddad", FirstName: "Sara", Email: "sara@example.com"}
	mtype := models.MembershipType{ID: 1, Name: "Standard", Price: 100, DurationMonths: 6}

	recent := []*models.MembershipDetails{
		{ID: 1, StartDate: date(2024, 1, 2), EndDate: date(2024, 7, 2),
			CreatedAt: time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC), Member: member, Type: mtype},
		// Ссылка на удалённого члена: из списка исключается, но в счётчике периода остаётся.
		{ID: 2, StartDate: date(2024, 1, 3), EndDate: date(2024, 7, 3),
			CreatedAt: time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC), Type: mtype},
	}

	repo := new(RepoMock)
	repo.On("CountMembers", mock.Anything).Return(1, nil)
	repo.On("CountMembershipsStarted", mock.Anything, mock.Anything, mock.Anything).Return(2, nil)
	repo.On("CountActiveMemberships", mock.Anything, mock.Anything).Return(2, nil)
	repo.On("RevenueStats", mock.Anything, mock.Anything, mock.Anything).Return(models.RevenueStats{Total: 100, Count: 1, Average: 100}, nil)
	repo.On("CountMembershipsEnding", mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
	repo.On("DailyStats", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("TypeStats", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("RecentMembershipDetails", mock.Anything, RecentLimit).Return(recent, nil)
	repo.On("ExpiringMembershipDetails", mock.Anything, today, mock.Anything).Return([]*models.MembershipDetails{}, nil)

	svc := NewReportService(repo, newTestLogger())

	got, err := svc.BuildReportAt(context.Background(), models.DummyReportFilter{}, now)
	require.NoError(t, err)

	require.Len(t, got.RecentAdhesions, 1)
	assert.Equal(t, 1, got.RecentAdhesions[0].ID)
	assert.Equal(t, "02/01/2024 à 14:30", got.RecentAdhesions[0].FormattedCreatedAt)
	// Известное расхождение: счётчик по таблице членств остаётся равным двум.
	assert.Equal(t, 2, got.Summary.NewMemberships)
}

func TestBuildExportAt(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 45, 30, 0, time.UTC)
	today := date(2024, 3, 15)

	repo := new(RepoMock)
	repo.On("CountMembers", mock.Anything).Return(0, nil)
	repo.On("CountMembershipsStarted", mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
	repo.On("CountActiveMemberships", mock.Anything, mock.Anything).Return(0, nil)
	repo.On("RevenueStats", mock.Anything, mock.Anything, mock.Anything).Return(models.RevenueStats{}, nil)
	repo.On("CountMembershipsEnding", mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
	repo.On("DailyStats", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("TypeStats", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("RecentMembershipDetails", mock.Anything, RecentLimit).Return([]*models.MembershipDetails{}, nil)
	repo.On("ExpiringMembershipDetails", mock.Anything, today, mock.Anything).Return([]*models.MembershipDetails{}, nil)

	svc := NewReportService(repo, newTestLogger())

	got, err := svc.BuildExportAt(context.Background(), models.DummyReportFilter{}, now)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15 18:45:30", got.GeneratedAt)
	assert.Equal(t, models.ReportFilters{StartDate: "2024-02-14", EndDate: "2024-03-15"}, got.Period)
}

func TestBuildReportAt_RepositoryError(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CountMembers", mock.Anything).Return(0, assert.AnError)

	svc := NewReportService(repo, newTestLogger())

	_, err := svc.BuildReportAt(context.Background(), models.DummyReportFilter{}, time.Now())
	require.Error(t, err)
}
