package repository

import (
	"context"
	"fmt"

	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

// CreateMembershipType вставляет новый тариф и возвращает его ID.
func (s *Storage) CreateMembershipType(ctx context.Context, mt models.MembershipType) (int, error) {
	const op = "storage.CreateMembershipType"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO membership_types (name, duration_months, price)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query, mt.Name, mt.DurationMonths, mt.Price).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadMembershipType возвращает тариф по его ID.
func (s *Storage) ReadMembershipType(ctx context.Context, id int) (*models.MembershipType, error) {
	const op = "storage.ReadMembershipType"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, duration_months, price
			  FROM membership_types WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.MembershipType
	if err := row.Scan(&result.ID, &result.Name, &result.DurationMonths, &result.Price); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateMembershipType обновляет тариф и возвращает количество изменённых строк.
// Изменение цены задним числом меняет и исторические отчёты: выручка
// разрешается по ссылке на тариф при чтении.
func (s *Storage) UpdateMembershipType(ctx context.Context, mt models.MembershipType, id int) (int, error) {
	const op = "storage.UpdateMembershipType"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE membership_types
			  SET name = $1, duration_months = $2, price = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query, mt.Name, mt.DurationMonths, mt.Price, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveMembershipType удаляет тариф по ID и возвращает количество удалённых строк.
// У существующих членств ссылка на тариф обнуляется на уровне схемы.
func (s *Storage) RemoveMembershipType(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveMembershipType"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM membership_types WHERE id = $1`
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

// ListMembershipTypes возвращает список всех тарифов.
func (s *Storage) ListMembershipTypes(ctx context.Context) ([]*models.MembershipType, error) {
	const op = "storage.ListMembershipTypes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, duration_months, price
			  FROM membership_types
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.MembershipType
	for rows.Next() {
		var item models.MembershipType
		if err := rows.Scan(&item.ID, &item.Name, &item.DurationMonths, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
