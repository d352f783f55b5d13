package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

func scanMembershipDetails(rows *sql.Rows, op string) ([]*models.MembershipDetails, error) {
	var result []*models.MembershipDetails
	for rows.Next() {
		var item models.MembershipDetails
		if err := rows.Scan(&item.ID, &item.StartDate, &item.EndDate, &item.CreatedAt,
			&item.Member.ID, &item.Member.LastName, &item.Member.FirstName,
			&item.Member.Email, &item.Member.Phone,
			&item.Type.ID, &item.Type.Name, &item.Type.Price, &item.Type.DurationMonths); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateMembership вставляет новое членство и возвращает его ID.
func (s *Storage) CreateMembership(ctx context.Context, m models.Membership) (int, error) {
	const op = "storage.CreateMembership"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO memberships (member_id, type_id, start_date, end_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		m.MemberID, m.TypeID, m.StartDate, m.EndDate).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadMembership возвращает членство по его ID. Обнулённая ссылка на тариф
// (после удаления тарифа) читается как 0.
func (s *Storage) ReadMembership(ctx context.Context, id int) (*models.Membership, error) {
	const op = "storage.ReadMembership"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, member_id, COALESCE(type_id, 0), start_date, end_date, created_at
			  FROM memberships WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Membership
	if err := row.Scan(&result.ID, &result.MemberID, &result.TypeID,
		&result.StartDate, &result.EndDate, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateMembership обновляет членство и возвращает количество изменённых строк.
func (s *Storage) UpdateMembership(ctx context.Context, m models.Membership, id int) (int, error) {
	const op = "storage.UpdateMembership"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE memberships
			  SET member_id = $1, type_id = $2, start_date = $3, end_date = $4
			  WHERE id = $5`
	result, err := s.DB.ExecContext(ctx, query,
		m.MemberID, m.TypeID, m.StartDate, m.EndDate, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveMembership удаляет членство по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveMembership(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveMembership"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM memberships WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListMembershipDetails возвращает список членств с разрешёнными ссылками
// на члена и тариф, с пагинацией. Записи с отсутствующей ссылкой исключаются
// внутренним соединением.
func (s *Storage) ListMembershipDetails(ctx context.Context, limit, offset int) ([]*models.MembershipDetails, error) {
	const op = "storage.ListMembershipDetails"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT m.id, m.start_date, m.end_date, m.created_at,
			      a.id, a.last_name, a.first_name, a.email, a.phone,
			      t.id, t.name, t.price, t.duration_months
			  FROM memberships m
			  JOIN members a ON a.id = m.member_id
			  JOIN membership_types t ON t.id = m.type_id
			  ORDER BY m.id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanMembershipDetails(rows, op)
}
