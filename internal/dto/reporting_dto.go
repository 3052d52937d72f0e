package dto

// RevenueByPayment is the day's revenue broken down by payment method.
// Every method is always present, zero-filled — callers never receive a
// partial map.
type RevenueByPayment struct {
	Cash        int64 `json:"cash"`
	Wave        int64 `json:"wave"`
	OrangeMoney int64 `json:"orange_money"`
}

// Total sums the three methods.
func (r RevenueByPayment) Total() int64 { return r.Cash + r.Wave + r.OrangeMoney }

// CategoryRevenue is one row of the per-category breakdown, sorted descending
// by amount.
type CategoryRevenue struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"name"`
	Amount     int64   `json:"amount"`
	Color      *string `json:"color,omitempty"`
}

// DashboardStats is the aggregate view served to the dashboard.
type DashboardStats struct {
	TotalRevenue      int64               `json:"total_revenue"`
	TotalExpenses     int64               `json:"total_expenses"`
	NetResult         int64               `json:"net_result"`
	RevenueByPayment  RevenueByPayment    `json:"revenue_by_payment"`
	RevenueByCategory []CategoryRevenue   `json:"revenue_by_category"`
	ActivityCount     int                 `json:"activity_count"`
	ExpenseCount      int                 `json:"expense_count"`
	LowStockAlerts    []StockItemResponse `json:"low_stock_alerts"`
}
