package analytics

import (
	"sort"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

// SpendByDate sums customer spend per calendar date of order_approved_at,
// ascending by date. Rows with no approved timestamp are excluded, matching
// DailyOrders, so the two views always cover the same rows.
func SpendByDate(rows []models.OrderLine) []models.SpendRow {
	totals := make(map[string]float64)
	for _, r := range rows {
		if r.OrderApprovedAt == nil {
			continue
		}
		totals[r.OrderApprovedAt.Format(dateLayout)] += r.Price
	}

	out := make([]models.SpendRow, 0, len(totals))
	for day, total := range totals {
		out = append(out, models.SpendRow{Date: day, TotalSpend: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
