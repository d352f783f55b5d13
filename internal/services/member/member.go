// Package services содержит бизнес-логику для управления членами организации.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

// MemberRepository определяет методы для работы с членами в хранилище.
type MemberRepository interface {
	// CreateMember добавляет нового члена и возвращает его ID.
	CreateMember(ctx context.Context, member models.Member) (int, error)
	// ReadMember возвращает члена по ID.
	ReadMember(ctx context.Context, id int) (*models.Member, error)
	// UpdateMember обновляет данные члена по ID.
	UpdateMember(ctx context.Context, member models.Member, id int) (int, error)
	// RemoveMember удаляет члена по ID и возвращает количество удалённых записей.
	RemoveMember(ctx context.Context, id int) (int, error)
	// ListMembers возвращает список членов с пагинацией.
	ListMembers(ctx context.Context, limit, offset int) ([]*models.Member, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// MemberService реализует бизнес-логику работы с членами, включая кеширование.
type MemberService struct {
	repo  MemberRepository
	cache Cache
	log   *slog.Logger
}

// NewMemberService создает новый экземпляр MemberService.
func NewMemberService(repo MemberRepository, cache Cache, log *slog.Logger) *MemberService {
	return &MemberService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create регистрирует нового члена, присваивает ему UUID и возвращает ID.
func (s *MemberService) Create(ctx context.Context, req models.DummyMember) (int, error) {
	member := models.Member{
		UID:        uuid.NewString(),
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		Email:      req.Email,
		NationalID: req.NationalID,
		Phone:      req.Phone,
	}

	id, err := s.repo.CreateMember(ctx, member)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new member", slog.Int("id", id))

	cacheKey := fmt.Sprintf("member:%d", id)
	if err := s.cache.Set(cacheKey, member, time.Hour); err != nil {
		s.log.Warn("failed to cache member", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Read возвращает члена по ID, используя кеш или репозиторий.
func (s *MemberService) Read(ctx context.Context, id int) (*models.Member, error) {
	var result *models.Member
	cacheKey := fmt.Sprintf("member:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadMember(ctx, id)
	if err != nil {
		return nil, err
	}

	if result != nil {
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey),
				slog.Any("err", err))
		}
	}
	return result, nil
}

// Update обновляет данные члена и обновляет кеш. UUID члена не меняется.
func (s *MemberService) Update(ctx context.Context, req models.DummyMember, id int) (int, error) {
	member := models.Member{
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		Email:      req.Email,
		NationalID: req.NationalID,
		Phone:      req.Phone,
	}

	res, err := s.repo.UpdateMember(ctx, member, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated member in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("member:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return res, nil
}

// Remove удаляет члена по ID и инвалидирует кеш. Членства члена
// удаляются каскадно на уровне базы данных.
func (s *MemberService) Remove(ctx context.Context, id int) (int, error) {
	cacheKey := fmt.Sprintf("member:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemoveMember(ctx, id)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// List возвращает список членов с пагинацией.
func (s *MemberService) List(ctx context.Context, limit, offset int) ([]*models.Member, error) {
	members, err := s.repo.ListMembers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return members, nil
}
