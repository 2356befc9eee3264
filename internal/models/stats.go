package models

// Stats is the aggregate snapshot shown on admin and manager dashboards.
type Stats struct {
	OrdersToday     int     `json:"orders_today"`
	RevenueToday    float64 `json:"revenue_today"`
	ActiveOrders    int     `json:"active_orders"`
	OccupiedTables  int     `json:"occupied_tables"`
	LowStockItems   int     `json:"low_stock_items"`
	PendingRequests int     `json:"pending_requests"`
	ActiveStaff     int     `json:"active_staff"`
}
