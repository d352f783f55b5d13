package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateMember создает тестового члена организации и возвращает его ID
func (f *TestDataFactory) CreateMember(t *testing.T, lastName, firstName, email string) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO members (uid, last_name, first_name, email, national_id, phone)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		uuid.NewString(), lastName, firstName, email, uuid.NewString()[:18], "0600000000").Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateMembershipType создает тестовый тариф и возвращает его ID
func (f *TestDataFactory) CreateMembershipType(t *testing.T, name string, durationMonths int, price float64) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO membership_types (name, duration_months, price)
		VALUES ($1, $2, $3) RETURNING id`,
		name, durationMonths, price).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateMembership создает тестовое членство и возвращает его ID
func (f *TestDataFactory) CreateMembership(t *testing.T, memberID, typeID int, startDate, endDate time.Time) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO memberships (member_id, type_id, start_date, end_date)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		memberID, typeID, startDate, endDate).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateMembershipAt создает членство с заданным временем создания записи
func (f *TestDataFactory) CreateMembershipAt(t *testing.T, memberID, typeID int, startDate, endDate, createdAt time.Time) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO memberships (member_id, type_id, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		memberID, typeID, startDate, endDate, createdAt).Scan(&id)
	require.NoError(t, err)
	return id
}
