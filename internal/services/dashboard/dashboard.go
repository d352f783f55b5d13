// Package services содержит бизнес-логику дашборда: общие счётчики,
// помесячные графики, распределение по тарифам, показатели роста
// к предыдущему месяцу и лёгкий срез метрик с кешированием.
package services

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/ayoubmdl/membership-backoffice/internal/lib/dateutil"
	"github.com/ayoubmdl/membership-backoffice/internal/lib/sl"
	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

// Статусы членства на дашборде. Шкала отличается от отчётной классификации
// срочности: это статус записи, а не степень срочности продления.
const (
	StatusExpired  = "expired"
	StatusExpiring = "expiring"
	StatusPending  = "pending"
	StatusApproved = "approved"
)

const metricsCacheKey = "dashboard:metrics"
const metricsCacheTTL = time.Minute

// DashboardRepository определяет запросы дашборда к хранилищу.
type DashboardRepository interface {
	CountMembers(ctx context.Context) (int, error)
	CountMemberships(ctx context.Context) (int, error)
	CountActiveMemberships(ctx context.Context, today time.Time) (int, error)
	CountMembershipsStarted(ctx context.Context, start, end time.Time) (int, error)
	CountMembershipsEnding(ctx context.Context, start, end time.Time) (int, error)
	CountMembersCreatedBefore(ctx context.Context, before time.Time) (int, error)
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueStats(ctx context.Context, start, end time.Time) (models.RevenueStats, error)
	MonthlyStats(ctx context.Context, start, end time.Time) ([]models.MonthStat, error)
	TypeDistribution(ctx context.Context) ([]models.TypeStat, error)
	RecentMembershipDetails(ctx context.Context, limit int) ([]*models.MembershipDetails, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// DashboardService реализует сборку данных дашборда.
type DashboardService struct {
	repo  DashboardRepository
	cache Cache
	log   *slog.Logger
}

// NewDashboardService создает новый экземпляр DashboardService.
func NewDashboardService(repo DashboardRepository, cache Cache, log *slog.Logger) *DashboardService {
	return &DashboardService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Build собирает полные данные дашборда.
func (s *DashboardService) Build(ctx context.Context) (*models.Dashboard, error) {
	return s.BuildAt(ctx, time.Now())
}

// BuildAt собирает данные дашборда относительно явно заданного "сейчас".
func (s *DashboardService) BuildAt(ctx context.Context, now time.Time) (*models.Dashboard, error) {
	today := dateutil.Day(now)

	totalMembers, err := s.repo.CountMembers(ctx)
	if err != nil {
		return nil, err
	}
	totalMemberships, err := s.repo.CountMemberships(ctx)
	if err != nil {
		return nil, err
	}
	activeMemberships, err := s.repo.CountActiveMemberships(ctx, today)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	// Один помесячный запрос покрывает и годовую статистику, и график
	// за последние полгода.
	yearStart, _ := dateutil.MonthBounds(today.AddDate(0, -11, 0))
	monthly, err := s.repo.MonthlyStats(ctx, yearStart, today)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[string]models.MonthStat, len(monthly))
	for _, stat := range monthly {
		byMonth[stat.Month] = stat
	}

	var chartData []models.MonthPoint
	for i := 5; i >= 0; i-- {
		month := today.AddDate(0, -i, 0)
		stat := byMonth[month.Format("2006-01")]
		chartData = append(chartData, models.MonthPoint{
			Month:   month.Format("Jan"),
			Value:   stat.Revenue,
			Members: stat.Count,
		})
	}

	var monthlyStats []models.MonthlyStat
	for i := 11; i >= 0; i-- {
		month := today.AddDate(0, -i, 0)
		stat := byMonth[month.Format("2006-01")]
		monthlyStats = append(monthlyStats, models.MonthlyStat{
			Month:   month.Format("Jan"),
			Year:    month.Format("2006"),
			Revenue: stat.Revenue,
			Members: stat.Count,
			Date:    month.Format("2006-01"),
		})
	}

	distribution, err := s.repo.TypeDistribution(ctx)
	if err != nil {
		return nil, err
	}
	membershipTypes := TypeDistributionRows(distribution)
	topTypes := append([]models.TypeDistribution(nil), membershipTypes...)
	sort.SliceStable(topTypes, func(i, j int) bool {
		return topTypes[i].Revenue > topTypes[j].Revenue
	})

	recentDetails, err := s.repo.RecentMembershipDetails(ctx, 10)
	if err != nil {
		return nil, err
	}
	recent := make([]models.DashboardMembership, 0, len(recentDetails))
	for _, d := range recentDetails {
		if d == nil || d.Member.ID == 0 || d.Type.ID == 0 {
			continue
		}
		daysUntil := dateutil.DaysBetween(today, d.EndDate)
		recent = append(recent, models.DashboardMembership{
			ID:                  d.ID,
			Member:              d.Member.FullName(),
			Type:                d.Type.Name,
			StartDate:           d.StartDate.Format(dateutil.ISO),
			EndDate:             d.EndDate.Format(dateutil.ISO),
			Status:              MembershipStatus(today, d.StartDate, d.EndDate),
			Amount:              d.Type.Price,
			DaysUntilExpiration: max(0, daysUntil),
		})
	}

	growth, currentCount, currentRevenue, err := s.buildGrowth(ctx, today, totalMembers)
	if err != nil {
		return nil, err
	}

	expiringCount, err := s.repo.CountMembershipsEnding(ctx, today, today.AddDate(0, 0, 30))
	if err != nil {
		return nil, err
	}

	averagePerMember := 0.0
	if totalMemberships > 0 {
		averagePerMember = round2(totalRevenue / float64(totalMemberships))
	}

	return &models.Dashboard{
		TotalMembers:            totalMembers,
		TotalMemberships:        totalMemberships,
		TotalRevenue:            totalRevenue,
		ActiveMemberships:       activeMemberships,
		RecentAdhesions:         recent,
		ChartData:               chartData,
		MonthlyStats:            monthlyStats,
		MembershipTypes:         membershipTypes,
		TopMembershipTypes:      topTypes,
		Growth:                  growth,
		ExpiringCount:           expiringCount,
		CurrentMonthRevenue:     currentRevenue,
		CurrentMonthMemberships: currentCount,
		AverageRevenuePerMember: averagePerMember,
		LastUpdated:             now.UTC().Format(time.RFC3339),
	}, nil
}

func (s *DashboardService) buildGrowth(ctx context.Context, today time.Time, totalMembers int) (models.GrowthData, int, float64, error) {
	monthStart, monthEnd := dateutil.MonthBounds(today)
	prevStart, prevEnd := dateutil.MonthBounds(today.AddDate(0, -1, 0))

	currentCount, err := s.repo.CountMembershipsStarted(ctx, monthStart, monthEnd)
	if err != nil {
		return models.GrowthData{}, 0, 0, err
	}
	previousCount, err := s.repo.CountMembershipsStarted(ctx, prevStart, prevEnd)
	if err != nil {
		return models.GrowthData{}, 0, 0, err
	}
	currentRevenue, err := s.repo.RevenueStats(ctx, monthStart, monthEnd)
	if err != nil {
		return models.GrowthData{}, 0, 0, err
	}
	previousRevenue, err := s.repo.RevenueStats(ctx, prevStart, prevEnd)
	if err != nil {
		return models.GrowthData{}, 0, 0, err
	}
	previousTotal, err := s.repo.CountMembersCreatedBefore(ctx, monthStart)
	if err != nil {
		return models.GrowthData{}, 0, 0, err
	}

	totalGrowth := 0.0
	if previousTotal > 0 {
		totalGrowth = round1(float64(totalMembers-previousTotal) / float64(previousTotal) * 100)
	}

	growth := models.GrowthData{
		TotalGrowth:      totalGrowth,
		NewMembersGrowth: MonthGrowth(float64(currentCount), float64(previousCount)),
		RevenueGrowth:    MonthGrowth(currentRevenue.Total, previousRevenue.Total),
	}
	return growth, currentCount, currentRevenue.Total, nil
}

// Metrics возвращает лёгкий срез показателей для периодического опроса.
// Результат кешируется на короткое время.
func (s *DashboardService) Metrics(ctx context.Context) (*models.DashboardMetrics, error) {
	return s.MetricsAt(ctx, time.Now())
}

// MetricsAt возвращает срез показателей относительно явно заданного "сейчас".
func (s *DashboardService) MetricsAt(ctx context.Context, now time.Time) (*models.DashboardMetrics, error) {
	var cached models.DashboardMetrics
	found, err := s.cache.Get(metricsCacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read metrics from cache", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	today := dateutil.Day(now)

	totalMembers, err := s.repo.CountMembers(ctx)
	if err != nil {
		return nil, err
	}
	activeMemberships, err := s.repo.CountActiveMemberships(ctx, today)
	if err != nil {
		return nil, err
	}
	expiringThisWeek, err := s.repo.CountMembershipsEnding(ctx, today, today.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	metrics := &models.DashboardMetrics{
		TotalMembers:      totalMembers,
		ActiveMemberships: activeMemberships,
		ExpiringThisWeek:  expiringThisWeek,
		Timestamp:         now.UTC().Format(time.RFC3339),
	}

	if err := s.cache.Set(metricsCacheKey, metrics, metricsCacheTTL); err != nil {
		s.log.Warn("failed to cache metrics", sl.Err(err))
	}
	return metrics, nil
}

// MembershipStatus определяет статус записи членства на дашборде.
func MembershipStatus(today, startDate, endDate time.Time) string {
	daysUntil := dateutil.DaysBetween(today, endDate)
	switch {
	case daysUntil < 0:
		return StatusExpired
	case daysUntil <= 7:
		return StatusExpiring
	case startDate.After(today):
		return StatusPending
	default:
		return StatusApproved
	}
}

// MonthGrowth возвращает процент изменения к предыдущему месяцу,
// округлённый до одного знака. При пустом предыдущем месяце возвращает 100,
// если текущий не пуст, и 0 в противном случае.
func MonthGrowth(current, previous float64) float64 {
	if previous > 0 {
		return round1((current - previous) / previous * 100)
	}
	if current > 0 {
		return 100
	}
	return 0
}

// TypeDistributionRows считает долю каждого тарифа в общем количестве членств.
func TypeDistributionRows(stats []models.TypeStat) []models.TypeDistribution {
	var totalCount int
	for _, stat := range stats {
		totalCount += stat.Count
	}

	result := make([]models.TypeDistribution, 0, len(stats))
	for _, stat := range stats {
		value := 0.0
		if totalCount > 0 {
			value = round1(float64(stat.Count) / float64(totalCount) * 100)
		}
		result = append(result, models.TypeDistribution{
			Name:    stat.Name,
			Value:   value,
			Count:   stat.Count,
			Revenue: stat.Revenue,
		})
	}
	return result
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
