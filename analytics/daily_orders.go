// Package analytics derives the dashboard views from an in-memory slice of
// order lines. Every function is a pure transform: it takes an immutable
// input, groups and aggregates in a single pass, and returns fresh output.
// Rows lacking the field a view groups on (a nil order_approved_at, a missing
// category) are excluded from that view; the tests pin this down.
package analytics

import (
	"sort"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

const dateLayout = "2006-01-02"

// DailyOrders groups order lines by the calendar date of order_approved_at
// and emits the distinct order count and revenue per day, ascending by date.
// Rows with no approved timestamp are excluded.
func DailyOrders(rows []models.OrderLine) []models.DailyOrdersRow {
	type bucket struct {
		orders  map[string]struct{}
		revenue float64
	}

	buckets := make(map[string]*bucket)
	for _, r := range rows {
		if r.OrderApprovedAt == nil {
			continue
		}
		day := r.OrderApprovedAt.Format(dateLayout)
		b := buckets[day]
		if b == nil {
			b = &bucket{orders: make(map[string]struct{})}
			buckets[day] = b
		}
		b.orders[r.OrderID] = struct{}{}
		b.revenue += r.Price
	}

	out := make([]models.DailyOrdersRow, 0, len(buckets))
	for day, b := range buckets {
		out = append(out, models.DailyOrdersRow{
			Date:       day,
			OrderCount: len(b.orders),
			Revenue:    b.revenue,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
