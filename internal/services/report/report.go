// Package services содержит бизнес-логику построения отчётов по членствам:
// сводные показатели за период, дневной график, разбивку по тарифам,
// список последних оформлений и классификацию истекающих членств.
//
// Все вычисления детерминированы для фиксированных "сейчас" и данных:
// текущее время снимается один раз на вызов и передаётся во все
// подвычисления, чтобы граничные сравнения дат не расходились внутри
// одного отчёта.
package services

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/ayoubmdl/membership-backoffice/internal/lib/dateutil"
	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

const (
	// DefaultPeriodDays - длина периода по умолчанию (последние 30 дней).
	DefaultPeriodDays = 30
	// RecentLimit - размер списка последних оформленных членств.
	RecentLimit = 10
	// ExpiringWindowDays - горизонт списка истекающих членств.
	ExpiringWindowDays = 30
)

// Статусы срочности истекающего членства. Пороги проверяются по порядку,
// первый подходящий выигрывает.
const (
	StatusExpired  = "expired"
	StatusCritical = "critical"
	StatusUrgent   = "urgent"
	StatusWarning  = "warning"
	StatusNormal   = "normal"
)

// ReportRepository определяет отчётные запросы к хранилищу. Все методы
// только читают данные.
type ReportRepository interface {
	// CountMembers возвращает общее количество членов организации.
	CountMembers(ctx context.Context) (int, error)
	// CountMembershipsStarted возвращает количество членств, начавшихся в периоде.
	CountMembershipsStarted(ctx context.Context, start, end time.Time) (int, error)
	// CountActiveMemberships возвращает количество членств, действующих на дату.
	CountActiveMemberships(ctx context.Context, today time.Time) (int, error)
	// CountMembershipsEnding возвращает количество членств, истекающих в периоде.
	CountMembershipsEnding(ctx context.Context, start, end time.Time) (int, error)
	// RevenueStats возвращает сумму, количество и среднюю цену членств периода.
	RevenueStats(ctx context.Context, start, end time.Time) (models.RevenueStats, error)
	// DailyStats возвращает агрегаты по дням периода (только непустые дни).
	DailyStats(ctx context.Context, start, end time.Time) ([]models.DailyStat, error)
	// TypeStats возвращает агрегаты по каждому тарифу за период.
	TypeStats(ctx context.Context, start, end time.Time) ([]models.TypeStat, error)
	// RecentMembershipDetails возвращает последние оформленные членства.
	RecentMembershipDetails(ctx context.Context, limit int) ([]*models.MembershipDetails, error)
	// ExpiringMembershipDetails возвращает членства, истекающие в периоде.
	ExpiringMembershipDetails(ctx context.Context, from, to time.Time) ([]*models.MembershipDetails, error)
}

// ReportService реализует построение отчётов поверх ReportRepository.
type ReportService struct {
	repo ReportRepository
	log  *slog.Logger
}

// NewReportService создает новый экземпляр ReportService.
func NewReportService(repo ReportRepository, log *slog.Logger) *ReportService {
	return &ReportService{
		repo: repo,
		log:  log,
	}
}

// BuildReport строит полный отчёт за период из запроса. Некорректные даты
// молча заменяются значениями по умолчанию, перепутанные границы
// переставляются; ошибкой завершаются только отказы хранилища.
func (s *ReportService) BuildReport(ctx context.Context, req models.DummyReportFilter) (*models.Report, error) {
	return s.BuildReportAt(ctx, req, time.Now())
}

// BuildReportAt строит отчёт относительно явно заданного "сейчас".
// Используется в BuildReport и напрямую в тестах.
func (s *ReportService) BuildReportAt(ctx context.Context, req models.DummyReportFilter, now time.Time) (*models.Report, error) {
	filter := NormalizeFilter(req, now)

	summary, err := s.buildSummary(ctx, filter, now)
	if err != nil {
		return nil, err
	}
	chart, err := s.buildChartData(ctx, filter)
	if err != nil {
		return nil, err
	}
	types, err := s.buildTypeBreakdown(ctx, filter)
	if err != nil {
		return nil, err
	}
	recent, err := s.buildRecent(ctx)
	if err != nil {
		return nil, err
	}
	expiring, err := s.buildExpiring(ctx, now)
	if err != nil {
		return nil, err
	}

	return &models.Report{
		Summary:             summary,
		ChartData:           chart,
		MembershipTypes:     types,
		RecentAdhesions:     recent,
		ExpiringMemberships: expiring,
		Filters: models.ReportFilters{
			StartDate: filter.StartDate.Format(dateutil.ISO),
			EndDate:   filter.EndDate.Format(dateutil.ISO),
		},
	}, nil
}

// BuildExport строит плоский документ отчёта для выгрузки.
func (s *ReportService) BuildExport(ctx context.Context, req models.DummyReportFilter) (*models.ReportExport, error) {
	return s.BuildExportAt(ctx, req, time.Now())
}

// BuildExportAt строит документ выгрузки относительно явно заданного "сейчас".
func (s *ReportService) BuildExportAt(ctx context.Context, req models.DummyReportFilter, now time.Time) (*models.ReportExport, error) {
	report, err := s.BuildReportAt(ctx, req, now)
	if err != nil {
		return nil, err
	}

	return &models.ReportExport{
		Summary:             report.Summary,
		MembershipTypes:     report.MembershipTypes,
		RecentAdhesions:     report.RecentAdhesions,
		ExpiringMemberships: report.ExpiringMemberships,
		GeneratedAt:         now.Format("2006-01-02 15:04:05"),
		Period:              report.Filters,
	}, nil
}

// NormalizeFilter превращает сырые параметры запроса в период отчёта.
// Отсутствующие даты подставляются из периода по умолчанию, некорректные
// заменяются на сегодня, перепутанные границы переставляются.
func NormalizeFilter(req models.DummyReportFilter, now time.Time) models.ReportFilter {
	today := dateutil.Day(now)

	start := today.AddDate(0, 0, -DefaultPeriodDays)
	if req.StartDate != "" {
		start = dateutil.ParseOrFallback(req.StartDate, today)
	}
	end := today
	if req.EndDate != "" {
		end = dateutil.ParseOrFallback(req.EndDate, today)
	}

	start, end = dateutil.NormalizeRange(start, end)
	return models.ReportFilter{StartDate: start, EndDate: end}
}

func (s *ReportService) buildSummary(ctx context.Context, filter models.ReportFilter, now time.Time) (models.ReportSummary, error) {
	today := dateutil.Day(now)

	totalMembers, err := s.repo.CountMembers(ctx)
	if err != nil {
		return models.ReportSummary{}, err
	}
	newMemberships, err := s.repo.CountMembershipsStarted(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return models.ReportSummary{}, err
	}
	activeMemberships, err := s.repo.CountActiveMemberships(ctx, today)
	if err != nil {
		return models.ReportSummary{}, err
	}
	revenue, err := s.repo.RevenueStats(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return models.ReportSummary{}, err
	}

	monthStart, monthEnd := dateutil.MonthBounds(today)
	expiringThisMonth, err := s.repo.CountMembershipsEnding(ctx, monthStart, monthEnd)
	if err != nil {
		return models.ReportSummary{}, err
	}

	// Предыдущий период той же длины, примыкающий к началу текущего.
	days := dateutil.DaysBetween(filter.StartDate, filter.EndDate)
	previousStart := filter.StartDate.AddDate(0, 0, -days)
	previousCount, err := s.repo.CountMembershipsStarted(ctx, previousStart, filter.StartDate)
	if err != nil {
		return models.ReportSummary{}, err
	}

	return models.ReportSummary{
		TotalMembers:      totalMembers,
		NewMemberships:    newMemberships,
		ActiveMemberships: activeMemberships,
		TotalRevenue:      revenue.Total,
		AveragePrice:      revenue.Average,
		ExpiringThisMonth: expiringThisMonth,
		GrowthRate:        GrowthRate(newMemberships, previousCount),
	}, nil
}

func (s *ReportService) buildChartData(ctx context.Context, filter models.ReportFilter) ([]models.ChartPoint, error) {
	stats, err := s.repo.DailyStats(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	return FillDailySeries(filter.StartDate, filter.EndDate, stats), nil
}

func (s *ReportService) buildTypeBreakdown(ctx context.Context, filter models.ReportFilter) ([]models.TypeBreakdown, error) {
	stats, err := s.repo.TypeStats(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	return TypeBreakdownRows(stats), nil
}

func (s *ReportService) buildRecent(ctx context.Context) ([]models.RecentMembership, error) {
	details, err := s.repo.RecentMembershipDetails(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}

	result := make([]models.RecentMembership, 0, len(details))
	for _, d := range details {
		// Записи с неразрешимой ссылкой молча пропускаются.
		if d == nil || d.Member.ID == 0 || d.Type.ID == 0 {
			continue
		}
		result = append(result, models.RecentMembership{
			ID:                 d.ID,
			Member:             memberInfo(d.Member),
			Type:               typeInfo(d.Type),
			StartDate:          d.StartDate.Format(dateutil.ISO),
			EndDate:            d.EndDate.Format(dateutil.ISO),
			CreatedAt:          d.CreatedAt.Format("2006-01-02 15:04:05"),
			FormattedCreatedAt: d.CreatedAt.Format("02/01/2006 à 15:04"),
		})
	}
	return result, nil
}

func (s *ReportService) buildExpiring(ctx context.Context, now time.Time) ([]models.ExpiringMembership, error) {
	today := dateutil.Day(now)
	details, err := s.repo.ExpiringMembershipDetails(ctx, today, today.AddDate(0, 0, ExpiringWindowDays))
	if err != nil {
		return nil, err
	}

	result := make([]models.ExpiringMembership, 0, len(details))
	for _, d := range details {
		if d == nil || d.Member.ID == 0 || d.Type.ID == 0 {
			continue
		}

		daysLeft := dateutil.DaysBetween(today, d.EndDate)
		if daysLeft < 0 {
			daysLeft = 0
		}

		result = append(result, models.ExpiringMembership{
			ID:               d.ID,
			Member:           memberInfo(d.Member),
			Type:             models.TypeInfo{Name: d.Type.Name, Price: d.Type.Price},
			EndDate:          d.EndDate.Format(dateutil.ISO),
			FormattedEndDate: d.EndDate.Format("02/01/2006"),
			DaysLeft:         daysLeft,
			IsUrgent:         daysLeft <= 7,
			IsCritical:       daysLeft <= 3,
			Status:           ExpirationStatus(daysLeft),
		})
	}
	return result, nil
}

// GrowthRate возвращает процент изменения current относительно previous,
// округлённый до двух знаков. При previous == 0 возвращает 100, если
// current > 0, и 0 в противном случае.
func GrowthRate(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round2(float64(current-previous) / float64(previous) * 100)
}

// FillDailySeries раскладывает агрегаты по всем календарным дням периода
// включительно, подставляя нули для дней без активности. Результат строго
// возрастает по дате, длина равна количеству дней периода.
func FillDailySeries(start, end time.Time, stats []models.DailyStat) []models.ChartPoint {
	byDate := make(map[string]models.DailyStat, len(stats))
	for _, stat := range stats {
		byDate[stat.Date.Format(dateutil.ISO)] = stat
	}

	var result []models.ChartPoint
	for d := dateutil.Day(start); !d.After(dateutil.Day(end)); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateutil.ISO)
		point := models.ChartPoint{Date: key}
		if stat, ok := byDate[key]; ok {
			point.NewMemberships = stat.Count
			point.DailyRevenue = stat.Revenue
		}
		result = append(result, point)
	}
	return result
}

// TypeBreakdownRows считает процентные доли тарифов в общей выручке периода
// и сортирует строки по убыванию выручки. Тарифы без членств остаются
// в результате с нулевыми значениями.
func TypeBreakdownRows(stats []models.TypeStat) []models.TypeBreakdown {
	var totalRevenue float64
	for _, stat := range stats {
		totalRevenue += stat.Revenue
	}

	result := make([]models.TypeBreakdown, 0, len(stats))
	for _, stat := range stats {
		percentage := 0.0
		if totalRevenue > 0 {
			percentage = round2(stat.Revenue / totalRevenue * 100)
		}
		result = append(result, models.TypeBreakdown{
			ID:             stat.ID,
			Name:           stat.Name,
			Price:          stat.Price,
			DurationMonths: stat.DurationMonths,
			TotalCount:     stat.Count,
			TotalRevenue:   stat.Revenue,
			Percentage:     percentage,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalRevenue > result[j].TotalRevenue
	})
	return result
}

// ExpirationStatus классифицирует срочность по количеству оставшихся дней.
func ExpirationStatus(daysLeft int) string {
	switch {
	case daysLeft <= 0:
		return StatusExpired
	case daysLeft <= 3:
		return StatusCritical
	case daysLeft <= 7:
		return StatusUrgent
	case daysLeft <= 14:
		return StatusWarning
	default:
		return StatusNormal
	}
}

func memberInfo(m models.Member) models.MemberInfo {
	return models.MemberInfo{
		ID:        m.ID,
		LastName:  m.LastName,
		FirstName: m.FirstName,
		Email:     m.Email,
		Phone:     m.Phone,
		FullName:  m.FullName(),
	}
}

func typeInfo(t models.MembershipType) models.TypeInfo {
	return models.TypeInfo{
		ID:             t.ID,
		Name:           t.Name,
		Price:          t.Price,
		DurationMonths: t.DurationMonths,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
