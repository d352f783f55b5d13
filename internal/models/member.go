// Package models содержит доменные структуры приложения: адхерентов (членов
// организации), типы членства и сами членства, а также вспомогательные типы
// для приёма данных из JSON-запросов до их валидации и парсинга.
package models

import "time"

// Member представляет зарегистрированного члена организации.
type Member struct {
	ID         int       // Идентификатор в базе данных
	UID        string    // Уникальный UUID, генерируется при регистрации
	LastName   string    // Фамилия
	FirstName  string    // Имя
	Email      string    // Электронная почта (уникальная)
	NationalID string    // Номер национального удостоверения (уникальный)
	Phone      string    // Телефон
	CreatedAt  time.Time // Дата регистрации
}

// FullName возвращает полное имя члена в формате "Имя Фамилия".
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// DummyMember используется для приёма данных члена из JSON-запроса
// до их валидации и преобразования в Member.
type DummyMember struct {
	LastName   string `json:"last_name" validate:"required,max=255"`   // Фамилия
	FirstName  string `json:"first_name" validate:"required,max=255"`  // Имя
	Email      string `json:"email" validate:"required,email,max=255"` // Электронная почта
	NationalID string `json:"national_id" validate:"required,max=20"`  // Номер удостоверения
	Phone      string `json:"phone" validate:"required,max=15"`        // Телефон
}
