// Package services содержит бизнес-логику для управления членствами и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ayoubmdl/membership-backoffice/internal/lib/dateutil"
	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

// MembershipRepository определяет методы для работы с членствами в хранилище.
type MembershipRepository interface {
	// CreateMembership добавляет новое членство и возвращает его ID.
	CreateMembership(ctx context.Context, m models.Membership) (int, error)
	// ReadMembership возвращает членство по ID.
	ReadMembership(ctx context.Context, id int) (*models.Membership, error)
	// UpdateMembership обновляет членство по ID.
	UpdateMembership(ctx context.Context, m models.Membership, id int) (int, error)
	// RemoveMembership удаляет членство по ID.
	RemoveMembership(ctx context.Context, id int) (int, error)
	// ListMembershipDetails возвращает членства с данными члена и тарифа.
	ListMembershipDetails(ctx context.Context, limit, offset int) ([]*models.MembershipDetails, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// MembershipService реализует бизнес-логику работы с членствами, включая кеширование.
type MembershipService struct {
	repo  MembershipRepository
	cache Cache
	log   *slog.Logger
}

// NewMembershipService создает новый экземпляр MembershipService.
func NewMembershipService(repo MembershipRepository, cache Cache, log *slog.Logger) *MembershipService {
	return &MembershipService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateutil.ISO, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}
	endDate, err := time.Parse(dateutil.ISO, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("membership end date must not be earlier than start date")
	}
	return startDate, endDate, nil
}

// Create создает новое членство, кеширует его и возвращает ID.
func (s *MembershipService) Create(ctx context.Context, req models.DummyMembership) (int, error) {
	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return 0, err
	}

	membership := models.Membership{
		MemberID:  req.MemberID,
		TypeID:    req.TypeID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	id, err := s.repo.CreateMembership(ctx, membership)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new membership", slog.Int("id", id))

	cacheKey := fmt.Sprintf("membership:%d", id)
	if err := s.cache.Set(cacheKey, membership, time.Hour); err != nil {
		s.log.Warn("failed to cache membership", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Read возвращает членство по ID, используя кеш или репозиторий.
func (s *MembershipService) Read(ctx context.Context, id int) (*models.Membership, error) {
	var result *models.Membership
	cacheKey := fmt.Sprintf("membership:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadMembership(ctx, id)
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

// Update обновляет членство и инвалидирует кеш.
func (s *MembershipService) Update(ctx context.Context, req models.DummyMembership, id int) (int, error) {
	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return 0, err
	}

	membership := models.Membership{
		MemberID:  req.MemberID,
		TypeID:    req.TypeID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	res, err := s.repo.UpdateMembership(ctx, membership, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated membership in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("membership:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return res, nil
}

// Remove удаляет членство по ID и инвалидирует кеш.
func (s *MembershipService) Remove(ctx context.Context, id int) (int, error) {
	cacheKey := fmt.Sprintf("membership:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemoveMembership(ctx, id)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// List возвращает членства с данными члена и тарифа с пагинацией.
func (s *MembershipService) List(ctx context.Context, limit, offset int) ([]*models.MembershipDetails, error) {
	details, err := s.repo.ListMembershipDetails(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return details, nil
}
