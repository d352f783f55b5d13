package models

import "time"

// ReportFilter представляет нормализованный период отчёта, который передаётся
// в слой доступа к данным. Обе даты включительны, с точностью до календарного дня.
type ReportFilter struct {
	StartDate time.Time // Начало периода
	EndDate   time.Time // Конец периода
}

// DummyReportFilter используется для приёма параметров отчёта из query-строки.
// Обе даты опциональны; некорректные значения молча заменяются на значения
// по умолчанию, ошибка наружу не возвращается.
type DummyReportFilter struct {
	StartDate string `json:"start_date,omitempty"` // Дата начала в формате 2006-01-02
	EndDate   string `json:"end_date,omitempty"`   // Дата окончания в формате 2006-01-02
}

// DailyStat - агрегат по одному дню из хранилища: количество новых членств
// и выручка. Присутствуют только дни, в которые была хотя бы одна запись.
type DailyStat struct {
	Date    time.Time
	Count   int
	Revenue float64
}

// RevenueStats - суммарная выручка, количество и средняя цена членств,
// начавшихся в периоде. Цены разрешаются по ссылке на тариф при чтении.
type RevenueStats struct {
	Total   float64
	Count   int
	Average float64
}

// TypeStat - агрегат по одному тарифу за период.
type TypeStat struct {
	ID             int
	Name           string
	Price          float64
	DurationMonths int
	Count          int
	Revenue        float64
}

// MonthStat - агрегат по одному календарному месяцу (ключ в формате 2006-01).
type MonthStat struct {
	Month   string
	Count   int
	Revenue float64
}

// ReportSummary - сводные показатели отчёта за период.
type ReportSummary struct {
	TotalMembers      int     `json:"totalMembers"`      // Все члены, без фильтра по периоду
	NewMemberships    int     `json:"newMemberships"`    // Членства, начавшиеся в периоде
	ActiveMemberships int     `json:"activeMemberships"` // Действующие на сегодня, без фильтра
	TotalRevenue      float64 `json:"totalRevenue"`      // Выручка за период
	AveragePrice      float64 `json:"averagePrice"`      // Средняя цена за период (0 при пустом периоде)
	ExpiringThisMonth int     `json:"expiringThisMonth"` // Истекающие в текущем календарном месяце
	GrowthRate        float64 `json:"growthRate"`        // Прирост к предыдущему периоду, %
}

// ChartPoint - одна точка дневного графика. Дни без активности включаются
// с нулевыми значениями.
type ChartPoint struct {
	Date           string  `json:"date"`
	NewMemberships int     `json:"new_memberships"`
	DailyRevenue   float64 `json:"daily_revenue"`
}

// TypeBreakdown - строка разбивки выручки по тарифам.
type TypeBreakdown struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	DurationMonths int     `json:"duration_months"`
	TotalCount     int     `json:"total_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	Percentage     float64 `json:"percentage"`
}

// MemberInfo - данные члена, вложенные в строки отчётных списков.
type MemberInfo struct {
	ID        int    `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	FullName  string `json:"full_name"`
}

// TypeInfo - данные тарифа, вложенные в строки отчётных списков.
type TypeInfo struct {
	ID             int     `json:"id,omitempty"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	DurationMonths int     `json:"duration_months,omitempty"`
}

// RecentMembership - строка списка последних оформленных членств.
type RecentMembership struct {
	ID                 int        `json:"id"`
	Member             MemberInfo `json:"member"`
	Type               TypeInfo   `json:"type"`
	StartDate          string     `json:"start_date"`
	EndDate            string     `json:"end_date"`
	CreatedAt          string     `json:"created_at"`
	FormattedCreatedAt string     `json:"formatted_created_at"`
}

// ExpiringMembership - строка списка истекающих членств с классификацией
// срочности по количеству оставшихся дней.
type ExpiringMembership struct {
	ID               int        `json:"id"`
	Member           MemberInfo `json:"member"`
	Type             TypeInfo   `json:"type"`
	EndDate          string     `json:"end_date"`
	FormattedEndDate string     `json:"formatted_end_date"`
	DaysLeft         int        `json:"days_left"`
	IsUrgent         bool       `json:"is_urgent"`
	IsCritical       bool       `json:"is_critical"`
	Status           string     `json:"status"`
}

// ReportFilters - применённые границы периода, возвращаемые вместе с отчётом
// (после подстановки значений по умолчанию и возможной перестановки дат).
type ReportFilters struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Report - полный отчёт, отдаваемый слою представления.
type Report struct {
	Summary             ReportSummary        `json:"summary"`
	ChartData           []ChartPoint         `json:"chartData"`
	MembershipTypes     []TypeBreakdown      `json:"membershipTypes"`
	RecentAdhesions     []RecentMembership   `json:"recentAdhesions"`
	ExpiringMemberships []ExpiringMembership `json:"expiringMemberships"`
	Filters             ReportFilters        `json:"filters"`
}

// ReportExport - плоский документ отчёта для выгрузки, с меткой времени
// генерации и периодом.
type ReportExport struct {
	Summary             ReportSummary        `json:"summary"`
	MembershipTypes     []TypeBreakdown      `json:"membershipTypes"`
	RecentAdhesions     []RecentMembership   `json:"recentAdhesions"`
	ExpiringMemberships []ExpiringMembership `json:"expiringMemberships"`
	GeneratedAt         string               `json:"generated_at"`
	Period              ReportFilters        `json:"period"`
}

// ExpiringInfo - данные об истекающем членстве для очереди уведомлений.
type ExpiringInfo struct {
	Email    string
	FullName string
	TypeName string
	EndDate  time.Time
	Price    float64
}
