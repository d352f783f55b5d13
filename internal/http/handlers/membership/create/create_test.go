package create

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

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyMembership) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func TestMembershipCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := `{
		"member_id": 3,
		"type_id": 1,
		"start_date": "2024-01-15",
		"end_date": "2025-01-15"
	}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное оформление членства",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, models.DummyMembership{
					MemberID:  3,
					TypeID:    1,
					StartDate: "2024-01-15",
					EndDate:   "2025-01-15",
				}).Return(7, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"last_added_id":7`,
		},
		{
			name:           "некорректный JSON",
			body:           `{broken`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "дата в неверном формате",
			body:           strings.Replace(validBody, "2024-01-15", "15/01/2024", 1),
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field StartDate can contain only date in format 2006-01-02`,
		},
		{
			name: "ошибка сервиса оформления",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(0, errors.New("member not found"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not create membership"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/memberships", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
