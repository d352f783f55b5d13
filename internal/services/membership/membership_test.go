package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateMembership(ctx context.Context, ms models.Membership) (int, error) {
	args := m.Called(ctx, ms)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ReadMembership(ctx context.Context, id int) (*models.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Membership), args.Error(1)
}
func (m *RepoMock) UpdateMembership(ctx context.Context, ms models.Membership, id int) (int, error) {
	args := m.Called(ctx, ms, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveMembership(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListMembershipDetails(ctx context.Context, limit, offset int) ([]*models.MembershipDetails, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MembershipDetails), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestMembershipService_Create(t *testing.T) {
	req := models.DummyMembership{
		MemberID:  3,
		TypeID:    1,
		StartDate: "2024-01-15",
		EndDate:   "2025-01-15",
	}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, c *CacheMock)
		req        models.DummyMembership
		wantID     int
		wantErr    bool
	}{
		{
			name: "успешное создание",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("CreateMembership", mock.Anything, mock.MatchedBy(func(ms models.Membership) bool {
					return ms.MemberID == req.MemberID &&
						ms.TypeID == req.TypeID &&
						ms.StartDate.Format("2006-01-02") == req.StartDate &&
						ms.EndDate.Format("2006-01-02") == req.EndDate
				})).Return(42, nil).Once()

				c.On("Set", "membership:42", mock.Anything, time.Hour).Return(nil).Once()
			},
			req:     req,
			wantID:  42,
			wantErr: false,
		},
		{
			name:       "некорректная дата начала",
			setupMocks: func(_ *RepoMock, _ *CacheMock) {},
			req: models.DummyMembership{
				MemberID:  3,
				TypeID:    1,
				StartDate: "15/01/2024",
				EndDate:   "2025-01-15",
			},
			wantErr: true,
		},
		{
			name:       "дата окончания раньше даты начала",
			setupMocks: func(_ *RepoMock, _ *CacheMock) {},
			req: models.DummyMembership{
				MemberID:  3,
				TypeID:    1,
				StartDate: "2024-01-15",
				EndDate:   "2024-01-14",
			},
			wantErr: true,
		},
		{
			name: "ошибка хранилища",
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("CreateMembership", mock.Anything, mock.Anything).
					Return(0, errors.New("db down")).Once()
			},
			req:     req,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			tt.setupMocks(repo, cache)

			svc := NewMembershipService(repo, cache, newNoopLogger())
			id, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestMembershipService_Read(t *testing.T) {
	stored := &models.Membership{
		ID:       7,
		MemberID: 3,
		TypeID:   1,
	}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, c *CacheMock)
		wantErr    bool
	}{
		{
			name: "попадание в кеш",
			setupMocks: func(_ *RepoMock, c *CacheMock) {
				c.On("Get", "membership:7", mock.Anything).Return(true, nil).Once()
			},
		},
		{
			name: "промах кеша, чтение из хранилища",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				c.On("Get", "membership:7", mock.Anything).Return(false, nil).Once()
				r.On("ReadMembership", mock.Anything, 7).Return(stored, nil).Once()
				c.On("Set", "membership:7", stored, time.Hour).Return(nil).Once()
			},
		},
		{
			name: "ошибка хранилища",
			setupMocks: func(r *RepoMock, c *CacheMock) {
				c.On("Get", "membership:7", mock.Anything).Return(false, nil).Once()
				r.On("ReadMembership", mock.Anything, 7).
					Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			tt.setupMocks(repo, cache)

			svc := NewMembershipService(repo, cache, newNoopLogger())
			_, err := svc.Read(context.Background(), 7)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestMembershipService_Update_InvalidPeriod(t *testing.T) {
	svc := NewMembershipService(new(RepoMock), new(CacheMock), newNoopLogger())

	_, err := svc.Update(context.Background(), models.DummyMembership{
		MemberID:  3,
		TypeID:    1,
		StartDate: "2024-06-01",
		EndDate:   "2024-05-01",
	}, 7)

	assert.Error(t, err)
}

func TestMembershipService_Remove(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	cache.On("Invalidate", "membership:7").Return(nil).Once()
	repo.On("RemoveMembership", mock.Anything, 7).Return(1, nil).Once()

	svc := NewMembershipService(repo, cache, newNoopLogger())
	count, err := svc.Remove(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
