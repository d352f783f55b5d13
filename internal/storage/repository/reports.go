package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

// Отчётные запросы только читают данные. Выручка везде разрешается по текущей
// цене тарифа (цена не фиксируется при оформлении членства), поэтому изменение
// тарифа задним числом меняет исторические отчёты. Списки строятся через
// внутренние соединения и не содержат записей с отсутствующими ссылками;
// счётчики по таблице memberships такие записи учитывают.

// CountMembers возвращает общее количество членов организации.
func (s *Storage) CountMembers(ctx context.Context) (int, error) {
	const op = "storage.CountMembers"

	var count int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountMemberships возвращает общее количество членств.
func (s *Storage) CountMemberships(ctx context.Context) (int, error) {
	const op = "storage.CountMemberships"

	var count int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM memberships`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountMembersCreatedBefore возвращает количество членов, зарегистрированных
// до указанной даты.
func (s *Storage) CountMembersCreatedBefore(ctx context.Context, before time.Time) (int, error) {
	const op = "storage.CountMembersCreatedBefore"

	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM members WHERE created_at < $1`, before).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountMembershipsStarted возвращает количество членств, начавшихся в периоде
// (обе границы включительно).
func (s *Storage) CountMembershipsStarted(ctx context.Context, start, end time.Time) (int, error) {
	const op = "storage.CountMembershipsStarted"

	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE start_date BETWEEN $1 AND $2`,
		start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountActiveMemberships возвращает количество членств, действующих на дату today.
func (s *Storage) CountActiveMemberships(ctx context.Context, today time.Time) (int, error) {
	const op = "storage.CountActiveMemberships"

	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE end_date >= $1`, today).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountMembershipsEnding возвращает количество членств, истекающих в периоде
// (обе границы включительно).
func (s *Storage) CountMembershipsEnding(ctx context.Context, start, end time.Time) (int, error) {
	const op = "storage.CountMembershipsEnding"

	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE end_date BETWEEN $1 AND $2`,
		start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// RevenueStats возвращает сумму, количество и среднюю цену членств,
// начавшихся в периоде.
func (s *Storage) RevenueStats(ctx context.Context, start, end time.Time) (models.RevenueStats, error) {
	const op = "storage.RevenueStats"

	query := `SELECT COALESCE(SUM(t.price), 0), COUNT(*), COALESCE(AVG(t.price), 0)
			  FROM memberships m
			  JOIN membership_types t ON t.id = m.type_id
			  WHERE m.start_date BETWEEN $1 AND $2`
	var result models.RevenueStats
	err := s.DB.QueryRowContext(ctx, query, start, end).Scan(
		&result.Total, &result.Count, &result.Average)
	if err != nil {
		return models.RevenueStats{}, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// TotalRevenue возвращает выручку за всё время.
func (s *Storage) TotalRevenue(ctx context.Context) (float64, error) {
	const op = "storage.TotalRevenue"

	query := `SELECT COALESCE(SUM(t.price), 0)
			  FROM memberships m
			  JOIN membership_types t ON t.id = m.type_id`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// DailyStats возвращает количество новых членств и выручку по дням периода.
// Дни без активности в выборку не попадают, нулевое заполнение выполняет
// бизнес-логика.
func (s *Storage) DailyStats(ctx context.Context, start, end time.Time) ([]models.DailyStat, error) {
	const op = "storage.DailyStats"

	query := `SELECT m.start_date, COUNT(*), COALESCE(SUM(t.price), 0)
			  FROM memberships m
			  JOIN membership_types t ON t.id = m.type_id
			  WHERE m.start_date BETWEEN $1 AND $2
			  GROUP BY m.start_date
			  ORDER BY m.start_date`
	rows, err := s.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.DailyStat
	for rows.Next() {
		var item models.DailyStat
		if err := rows.Scan(&item.Date, &item.Count, &item.Revenue); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// TypeStats возвращает количество членств и выручку по каждому тарифу за период.
// Тарифы без членств в периоде присутствуют с нулевыми значениями.
func (s *Storage) TypeStats(ctx context.Context, start, end time.Time) ([]models.TypeStat, error) {
	const op = "storage.TypeStats"

	query := `SELECT t.id, t.name, t.price, t.duration_months,
			      COUNT(m.id),
			      COALESCE(SUM(CASE WHEN m.id IS NULL THEN 0 ELSE t.price END), 0)
			  FROM membership_types t
			  LEFT JOIN memberships m
			      ON m.type_id = t.id AND m.start_date BETWEEN $1 AND $2
			  GROUP BY t.id, t.name, t.price, t.duration_months`
	rows, err := s.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.TypeStat
	for rows.Next() {
		var item models.TypeStat
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.DurationMonths,
			&item.Count, &item.Revenue); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// TypeDistribution возвращает количество членств и выручку по каждому тарифу
// за всё время (для дашборда).
func (s *Storage) TypeDistribution(ctx context.Context) ([]models.TypeStat, error) {
	const op = "storage.TypeDistribution"

	query := `SELECT t.id, t.name, t.price, t.duration_months,
			      COUNT(m.id),
			      COALESCE(SUM(CASE WHEN m.id IS NULL THEN 0 ELSE t.price END), 0)
			  FROM membership_types t
			  LEFT JOIN memberships m ON m.type_id = t.id
			  GROUP BY t.id, t.name, t.price, t.duration_months`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.TypeStat
	for rows.Next() {
		var item models.TypeStat
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.DurationMonths,
			&item.Count, &item.Revenue); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// MonthlyStats возвращает количество новых членств и выручку по календарным
// месяцам периода (ключ месяца в формате 2006-01).
func (s *Storage) MonthlyStats(ctx context.Context, start, end time.Time) ([]models.MonthStat, error) {
	const op = "storage.MonthlyStats"

	query := `SELECT to_char(m.start_date, 'YYYY-MM'), COUNT(*), COALESCE(SUM(t.price), 0)
			  FROM memberships m
			  JOIN membership_types t ON t.id = m.type_id
			  WHERE m.start_date BETWEEN $1 AND $2
			  GROUP BY to_char(m.start_date, 'YYYY-MM')
			  ORDER BY to_char(m.start_date, 'YYYY-MM')`
	rows, err := s.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.MonthStat
	for rows.Next() {
		var item models.MonthStat
		if err := rows.Scan(&item.Month, &item.Count, &item.Revenue); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RecentMembershipDetails возвращает limit последних оформленных членств
// с разрешёнными ссылками.
func (s *Storage) RecentMembershipDetails(ctx context.Context, limit int) ([]*models.MembershipDetails, error) {
	const op = "storage.RecentMembershipDetails"

	query := `SELECT m.id, m.start_date, m.end_date, m.created_at,
			      a.id, a.last_name, a.first_name, a.email, a.phone,
			      t.id, t.name, t.price, t.duration_months
			  FROM memberships m
			  JOIN members a ON a.id = m.member_id
			  JOIN membership_types t ON t.id = m.type_id
			  ORDER BY m.created_at DESC
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanMembershipDetails(rows, op)
}

// ExpiringMembershipDetails возвращает членства, истекающие в периоде,
// упорядоченные по дате окончания.
func (s *Storage) ExpiringMembershipDetails(ctx context.Context, from, to time.Time) ([]*models.MembershipDetails, error) {
	const op = "storage.ExpiringMembershipDetails"

	query := `SELECT m.id, m.start_date, m.end_date, m.created_at,
			      a.id, a.last_name, a.first_name, a.email, a.phone,
			      t.id, t.name, t.price, t.duration_months
			  FROM memberships m
			  JOIN members a ON a.id = m.member_id
			  JOIN membership_types t ON t.id = m.type_id
			  WHERE m.end_date BETWEEN $1 AND $2
			  ORDER BY m.end_date`
	rows, err := s.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanMembershipDetails(rows, op)
}

// FindMembershipsExpiringTomorrow находит членства, истекающие завтра,
// с контактами членов для рассылки уведомлений.
func (s *Storage) FindMembershipsExpiringTomorrow(ctx context.Context) ([]*models.ExpiringInfo, error) {
	const op = "storage.FindMembershipsExpiringTomorrow"

	query := `SELECT a.email, a.first_name || ' ' || a.last_name, t.name, m.end_date, t.price
			  FROM memberships m
			  JOIN members a ON a.id = m.member_id
			  JOIN membership_types t ON t.id = m.type_id
			  WHERE m.end_date = CURRENT_DATE + INTERVAL '1 day'`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ExpiringInfo
	for rows.Next() {
		var item models.ExpiringInfo
		if err := rows.Scan(&item.Email, &item.FullName, &item.TypeName,
			&item.EndDate, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
