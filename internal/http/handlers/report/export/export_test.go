package export

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

// MockService реализует интерфейс export.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) BuildExport(ctx context.Context, req models.DummyReportFilter) (*models.ReportExport, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.ReportExport), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReportExportHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	export := &models.ReportExport{
		GeneratedAt: "2024-03-15 18:45:30",
		Period: models.ReportFilters{
			StartDate: "2024-02-14",
			EndDate:   "2024-03-15",
		},
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная выгрузка отчёта",
			url:  "/reports/export?start_date=2024-02-14&end_date=2024-03-15",
			setupMock: func(m *MockService) {
				m.On("BuildExport", mock.Anything, models.DummyReportFilter{
					StartDate: "2024-02-14",
					EndDate:   "2024-03-15",
				}).Return(export, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"generated_at":"2024-03-15 18:45:30"`,
		},
		{
			name: "ошибка сервиса выгрузки",
			url:  "/reports/export",
			setupMock: func(m *MockService) {
				m.On("BuildExport", mock.Anything, models.DummyReportFilter{}).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not export report"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
