package models

// MonthPoint - точка месячного графика дашборда.
type MonthPoint struct {
	Month   string  `json:"month"`
	Value   float64 `json:"value"`
	Members int     `json:"members"`
}

// MonthlyStat - строка помесячной статистики за последний год.
type MonthlyStat struct {
	Month   string  `json:"month"`
	Year    string  `json:"year"`
	Revenue float64 `json:"revenue"`
	Members int     `json:"members"`
	Date    string  `json:"date"`
}

// TypeDistribution - доля тарифа в общем количестве членств.
type TypeDistribution struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DashboardMembership - строка списка последних членств на дашборде
// со статусом (expired, expiring, pending, approved).
type DashboardMembership struct {
	ID                  int     `json:"id"`
	Member              string  `json:"member"`
	Type                string  `json:"type"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	Status              string  `json:"status"`
	Amount              float64 `json:"amount"`
	DaysUntilExpiration int     `json:"days_until_expiration"`
}

// GrowthData - показатели роста к предыдущему месяцу.
type GrowthData struct {
	TotalGrowth      float64 `json:"totalGrowth"`
	NewMembersGrowth float64 `json:"newMembersGrowth"`
	RevenueGrowth    float64 `json:"revenueGrowth"`
}

// Dashboard - полные данные дашборда.
type Dashboard struct {
	TotalMembers            int                   `json:"totalMembers"`
	TotalMemberships        int                   `json:"totalMemberships"`
	TotalRevenue            float64               `json:"totalRevenue"`
	ActiveMemberships       int                   `json:"activeMemberships"`
	RecentAdhesions         []DashboardMembership `json:"recentAdhesions"`
	ChartData               []MonthPoint          `json:"chartData"`
	MonthlyStats            []MonthlyStat         `json:"monthlyStats"`
	MembershipTypes         []TypeDistribution    `json:"membershipTypes"`
	TopMembershipTypes      []TypeDistribution    `json:"topMembershipTypes"`
	Growth                  GrowthData            `json:"growthData"`
	ExpiringCount           int                   `json:"expiringCount"`
	CurrentMonthRevenue     float64               `json:"currentMonthRevenue"`
	CurrentMonthMemberships int                   `json:"currentMonthAdhesions"`
	AverageRevenuePerMember float64               `json:"averageRevenuePerMember"`
	LastUpdated             string                `json:"lastUpdated"`
}

// DashboardMetrics - лёгкий срез показателей для периодического опроса.
type DashboardMetrics struct {
	TotalMembers      int    `json:"totalMembers"`
	ActiveMemberships int    `json:"activeMemberships"`
	ExpiringThisWeek  int    `json:"expiringThisWeek"`
	Timestamp         string `json:"timestamp"`
}
