package models

// DailyOrdersRow aggregates one calendar day of approved orders
type DailyOrdersRow struct {
	Date       string  `json:"date"`        // Calendar date (YYYY-MM-DD) of order_approved_at
	OrderCount int     `json:"order_count"` // Distinct orders approved that day
	Revenue    float64 `json:"revenue"`     // Sum of item prices that day
}

// SpendRow aggregates customer spend for one calendar day
type SpendRow struct {
	Date       string  `json:"date"`
	TotalSpend float64 `json:"total_spend"`
}

// CategorySalesRow counts order lines per product category
type CategorySalesRow struct {
	Category     string `json:"product_category_name_english"`
	ProductCount int    `json:"product_count"`
}

// ReviewScoreCount is the number of orders that received a given score
type ReviewScoreCount struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// ReviewScoreSummary is the review distribution plus its headline numbers
type ReviewScoreSummary struct {
	Counts          []ReviewScoreCount `json:"counts"`
	MostCommonScore int                `json:"most_common_score"`
	AverageScore    int                `json:"average_score"` // Mean rounded up to the next integer
}

// RFMRow scores one customer by recency, frequency and monetary value
type RFMRow struct {
	CustomerID string  `json:"customer_id"`
	Recency    int     `json:"recency"`   // Whole days since the customer's last approved order, anchored on the dataset maximum
	Frequency  int     `json:"frequency"` // Distinct orders for this customer
	Monetary   float64 `json:"monetary"`  // Sum of item prices for this customer
}

// RFMSummary wraps the per-customer rows with fleet-wide averages and the
// top customers on each axis, as the dashboard charts them.
type RFMSummary struct {
	AvgRecencyDays float64  `json:"avg_recency_days"`
	AvgFrequency   float64  `json:"avg_frequency"`
	AvgMonetary    float64  `json:"avg_monetary"`
	TopByRecency   []RFMRow `json:"top_by_recency"`
	TopByFrequency []RFMRow `json:"top_by_frequency"`
	TopByMonetary  []RFMRow `json:"top_by_monetary"`
}

// StateCustomersRow counts distinct customers per state
type StateCustomersRow struct {
	State         string `json:"customer_state"`
	CustomerCount int    `json:"customer_count"`
}

// StateDensityRow is a state customer count with a geographic centroid for
// the customer-density scatter.
type StateDensityRow struct {
	State         string  `json:"state"`
	CustomerCount int     `json:"customer_count"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// CategorySales is the category ranking plus the top/bottom slices the
// dashboard renders side by side.
type CategorySales struct {
	Categories       []CategorySalesRow `json:"categories"`
	TotalItems       int                `json:"total_items"`
	TopCategories    []CategorySalesRow `json:"top_categories"`
	BottomCategories []CategorySalesRow `json:"bottom_categories"`
}

// DashboardOverview is the composed headline-metrics block
type DashboardOverview struct {
	TotalOrders     int     `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalSpend      float64 `json:"total_spend"`
	AvgDailySpend   float64 `json:"avg_daily_spend"`
	TotalItems      int     `json:"total_items"`
	AvgItemsPerCat  int     `json:"avg_items_per_category"` // Rounded up
	AvgReviewScore  int     `json:"avg_review_score"`       // Rounded up
	MostCommonScore int     `json:"most_common_review_score"`
	AvgRecencyDays  float64 `json:"avg_recency_days"`
	AvgFrequency    float64 `json:"avg_frequency"`
	AvgMonetary     float64 `json:"avg_monetary"`
	TopState        string  `json:"top_state"`
}

// DatasetRange reports the approved-at bounds of the loaded dataset, used by
// the dashboard date picker.
type DatasetRange struct {
	MinDate  string `json:"min_date"`
	MaxDate  string `json:"max_date"`
	RowCount int    `json:"row_count"`
}
