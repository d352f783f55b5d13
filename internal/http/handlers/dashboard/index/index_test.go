package index

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

// MockService реализует интерфейс index.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Build(ctx context.Context) (*models.Dashboard, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*models.Dashboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestDashboardIndexHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная сборка дашборда",
			setupMock: func(m *MockService) {
				m.On("Build", mock.Anything).Return(&models.Dashboard{
					TotalMembers:      40,
					TotalMemberships:  50,
					ActiveMemberships: 30,
					TotalRevenue:      5000,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"totalMembers":40`,
		},
		{
			name: "ошибка сервиса дашборда",
			setupMock: func(m *MockService) {
				m.On("Build", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not build dashboard"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
