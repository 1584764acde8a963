package dto

// DashboardSummary số liệu tổng hợp cho màn hình dashboard
type DashboardSummary struct {
	TotalProperties  int                `json:"totalProperties"`
	StatusCounts     map[string]int     `json:"statusCounts"`
	ExpiringSoon     []PropertyResponse `json:"expiringSoon"`
	PendingRepairs   int                `json:"pendingRepairs"`
	OverduePayments  int                `json:"overduePayments"`
	RevenuePotential float64            `json:"revenuePotential"`
}
