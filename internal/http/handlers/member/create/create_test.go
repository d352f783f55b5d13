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

func (m *MockService) Create(ctx context.Context, req models.DummyMember) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func TestMemberCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := `{
		"last_name": "Durand",
		"first_name": "Marie",
		"email": "marie.durand@example.com",
		"national_id": "AB123456",
		"phone": "0601020304"
	}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация члена",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, models.DummyMember{
					LastName:   "Durand",
					FirstName:  "Marie",
					Email:      "marie.durand@example.com",
					NationalID: "AB123456",
					Phone:      "0601020304",
				}).Return(42, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"last_added_id":42`,
		},
		{
			name:           "некорректный JSON",
			body:           `{broken`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "отсутствует обязательное поле",
			body:           `{"first_name": "Marie"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field LastName is a required field`,
		},
		{
			name:           "некорректный email",
			body:           strings.Replace(validBody, "marie.durand@example.com", "not-an-email", 1),
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email address`,
		},
		{
			name: "ошибка сервиса регистрации",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not create member"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/members", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
