package services

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ayoubmdl/membership-backoffice/internal/lib/smtp"
	"github.com/ayoubmdl/membership-backoffice/internal/models"
)

type MockClient struct {
	mock.Mock
	data bytes.Buffer
}

func (m *MockClient) Mail(from string) error {
	return m.Called(from).Error(0)
}

func (m *MockClient) Rcpt(to string) error {
	return m.Called(to).Error(0)
}

func (m *MockClient) Data() (io.WriteCloser, error) {
	args := m.Called()
	return &nopWriteCloser{&m.data}, args.Error(0)
}

func (m *MockClient) Quit() error {
	return m.Called().Error(0)
}

func (m *MockClient) Close() error {
	return m.Called().Error(0)
}

type nopWriteCloser struct {
	w io.Writer
}

func (n *nopWriteCloser) Write(p []byte) (int, error) { return n.w.Write(p) }
func (n *nopWriteCloser) Close() error                { return nil }

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Connect() (smtp.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(smtp.Client), args.Error(1)
}

func (m *MockTransport) GetSMTPUser() string {
	return m.Called().String(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSenderService_SendInfoExpiringMembership(t *testing.T) {
	info := models.ExpiringInfo{
		Email:    "marie.durand@example.com",
		FullName: "Marie Durand",
		TypeName: "Annuel",
		EndDate:  time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		Price:    100,
	}
	body, err := json.Marshal(info)
	require.NoError(t, err)

	client := new(MockClient)
	client.On("Mail", "noreply@example.com").Return(nil).Once()
	client.On("Rcpt", "marie.durand@example.com").Return(nil).Once()
	client.On("Data").Return(nil).Once()
	client.On("Quit").Return(nil).Once()
	client.On("Close").Return(nil).Once()

	transport := new(MockTransport)
	transport.On("Connect").Return(client, nil).Once()
	transport.On("GetSMTPUser").Return("noreply@example.com")

	service := NewSenderService(transport, newNoopLogger())

	err = service.SendInfoExpiringMembership(body)

	require.NoError(t, err)
	sent := client.data.String()
	assert.Contains(t, sent, "To: marie.durand@example.com")
	assert.Contains(t, sent, "Votre adhésion expire bientôt")
	assert.Contains(t, sent, "Marie Durand")
	assert.Contains(t, sent, "16/03/2024")
	client.AssertExpectations(t)
	transport.AssertExpectations(t)
}

func TestSenderService_SendInfoExpiringMembership_BadPayload(t *testing.T) {
	service := NewSenderService(new(MockTransport), newNoopLogger())

	err := service.SendInfoExpiringMembership([]byte("not json"))

	assert.Error(t, err)
}
