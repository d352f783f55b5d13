package models

// MembershipType представляет тарифный план членства: название,
// длительность в месяцах и цену.
type MembershipType struct {
	ID             int     // Идентификатор в базе данных
	Name           string  // Отображаемое название
	DurationMonths int     // Длительность в месяцах
	Price          float64 // Цена (неотрицательная)
}

// DummyMembershipType используется для приёма данных тарифа из JSON-запроса
// до их валидации и преобразования в MembershipType.
type DummyMembershipType struct {
	Name           string  `json:"name" validate:"required,max=255"`          // Название
	DurationMonths int     `json:"duration_months" validate:"required,min=1"` // Длительность (>=1)
	Price          float64 `json:"price" validate:"min=0"`                    // Цена (>=0)
}
