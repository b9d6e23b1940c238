package models

// DashboardStats backs the landing page summary cards.
type DashboardStats struct {
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	PendingOrders  int     `json:"pendingOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	RecentOrders   []Order `json:"recentOrders"`
}

// SalesReportRow is one day of aggregated sales.
type SalesReportRow struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
	Refunds float64 `json:"refunds"`
}

// SalesReport is the server-aggregated sales report for a date range.
type SalesReport struct {
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	TotalOrders int              `json:"totalOrders"`
	TotalSales  float64          `json:"totalSales"`
	Refunds     float64          `json:"refunds"`
	NetRevenue  float64          `json:"netRevenue"`
	Rows        []SalesReportRow `json:"rows"`
}
