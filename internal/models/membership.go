package models

import "time"

// Membership представляет членство: запись, связывающую члена организации
// с тарифом на ограниченный период. Цена и длительность не фиксируются при
// создании, а разрешаются по ссылке на тариф при чтении.
type Membership struct {
	ID        int       // Идентификатор в базе данных
	MemberID  int       // Ссылка на члена организации
	TypeID    int       // Ссылка на тариф
	StartDate time.Time // Дата начала
	EndDate   time.Time // Дата окончания (>= даты начала)
	CreatedAt time.Time // Время создания записи
}

// DummyMembership используется для приёма данных членства из JSON-запроса.
// Даты приходят строками в формате 2006-01-02 и парсятся в бизнес-логике.
type DummyMembership struct {
	MemberID  int    `json:"member_id" validate:"required"`                      // ID члена
	TypeID    int    `json:"type_id" validate:"required"`                        // ID тарифа
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"` // Дата начала
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`   // Дата окончания
}

// MembershipDetails - членство с разрешёнными ссылками на члена и тариф.
// Используется в списках, где нужны имя, контакты и цена.
type MembershipDetails struct {
	ID        int
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	Member    Member
	Type      MembershipType
}
