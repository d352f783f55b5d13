package repository

import (
	"context"
	"fmt"

	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

// CreateMember вставляет нового члена организации и возвращает его ID.
func (s *Storage) CreateMember(ctx context.Context, member models.Member) (int, error) {
	const op = "storage.CreateMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO members (uid, last_name, first_name, email, national_id, phone)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		member.UID, member.LastName, member.FirstName, member.Email,
		member.NationalID, member.Phone).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadMember возвращает данные члена организации по его ID.
func (s *Storage) ReadMember(ctx context.Context, id int) (*models.Member, error) {
	const op = "storage.ReadMember"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, uid, last_name, first_name, email, national_id, phone, created_at
			  FROM members WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Member
	if err := row.Scan(&result.ID, &result.UID, &result.LastName, &result.FirstName,
		&result.Email, &result.NationalID, &result.Phone, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateMember обновляет данные члена организации и возвращает количество изменённых строк.
func (s *Storage) UpdateMember(ctx context.Context, member models.Member, id int) (int, error) {
	const op = "storage.UpdateMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE members
			  SET last_name = $1, first_name = $2, email = $3, national_id = $4, phone = $5
			  WHERE id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		member.LastName, member.FirstName, member.Email, member.NationalID, member.Phone, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveMember удаляет члена организации по ID и возвращает количество удалённых строк.
// Связанные членства удаляются каскадно на уровне схемы.
func (s *Storage) RemoveMember(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM members WHERE id = $1`
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

// ListMembers возвращает список всех членов организации с пагинацией.
func (s *Storage) ListMembers(ctx context.Context, limit, offset int) ([]*models.Member, error) {
	const op = "storage.ListMembers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, uid, last_name, first_name, email, national_id, phone, created_at
			  FROM members
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Member
	for rows.Next() {
		var item models.Member
		if err := rows.Scan(&item.ID, &item.UID, &item.LastName, &item.FirstName,
			&item.Email, &item.NationalID, &item.Phone, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
