// Package services содержит бизнес-логику для управления тарифами членства.
package services

import (
	"context"
	"log/slog"

	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

// MembershipTypeRepository определяет методы для работы с тарифами в хранилище.
type MembershipTypeRepository interface {
	// CreateMembershipType добавляет новый тариф и возвращает его ID.
	CreateMembershipType(ctx context.Context, mt models.MembershipType) (int, error)
	// ReadMembershipType возвращает тариф по ID.
	ReadMembershipType(ctx context.Context, id int) (*models.MembershipType, error)
	// UpdateMembershipType обновляет тариф по ID.
	UpdateMembershipType(ctx context.Context, mt models.MembershipType, id int) (int, error)
	// RemoveMembershipType удаляет тариф по ID.
	RemoveMembershipType(ctx context.Context, id int) (int, error)
	// ListMembershipTypes возвращает все тарифы.
	ListMembershipTypes(ctx context.Context) ([]*models.MembershipType, error)
}

// MembershipTypeService реализует бизнес-логику работы с тарифами.
// Тарифов немного и их список нужен почти каждому экрану, поэтому
// кеширование здесь не применяется.
type MembershipTypeService struct {
	repo MembershipTypeRepository
	log  *slog.Logger
}

// NewMembershipTypeService создает новый экземпляр MembershipTypeService.
func NewMembershipTypeService(repo MembershipTypeRepository, log *slog.Logger) *MembershipTypeService {
	return &MembershipTypeService{
		repo: repo,
		log:  log,
	}
}

// Create создает новый тариф и возвращает его ID.
func (s *MembershipTypeService) Create(ctx context.Context, req models.DummyMembershipType) (int, error) {
	mt := models.MembershipType{
		Name:           req.Name,
		DurationMonths: req.DurationMonths,
		Price:          req.Price,
	}

	id, err := s.repo.CreateMembershipType(ctx, mt)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new membership type", slog.Int("id", id))
	return id, nil
}

// Read возвращает тариф по ID.
func (s *MembershipTypeService) Read(ctx context.Context, id int) (*models.MembershipType, error) {
	return s.repo.ReadMembershipType(ctx, id)
}

// Update обновляет тариф. Изменение цены сразу отражается на всех
// членствах этого тарифа: цена разрешается по ссылке при чтении.
func (s *MembershipTypeService) Update(ctx context.Context, req models.DummyMembershipType, id int) (int, error) {
	mt := models.MembershipType{
		Name:           req.Name,
		DurationMonths: req.DurationMonths,
		Price:          req.Price,
	}

	res, err := s.repo.UpdateMembershipType(ctx, mt, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated membership type in storage", slog.Int("id", id))
	return res, nil
}

// Remove удаляет тариф по ID. Ссылки членств на удалённый тариф
// обнуляются на уровне базы данных.
func (s *MembershipTypeService) Remove(ctx context.Context, id int) (int, error) {
	count, err := s.repo.RemoveMembershipType(ctx, id)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// List возвращает все тарифы.
func (s *MembershipTypeService) List(ctx context.Context) ([]*models.MembershipType, error) {
	return s.repo.ListMembershipTypes(ctx)
}
