package analytics

import (
	"sort"
	"time"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

// RFM scores each customer by recency, frequency and monetary value.
// Recency is the whole-day gap between the dataset's maximum
// order_approved_at and the customer's own most recent approved order, so it
// is never negative. Frequency counts distinct orders, monetary sums item
// prices. Rows with no approved timestamp are excluded. Output is ordered by
// customer id for determinism.
func RFM(rows []models.OrderLine) []models.RFMRow {
	var maxApproved time.Time
	for _, r := range rows {
		if r.OrderApprovedAt != nil && r.OrderApprovedAt.After(maxApproved) {
			maxApproved = *r.OrderApprovedAt
		}
	}

	type agg struct {
		last     time.Time
		orders   map[string]struct{}
		monetary float64
	}
	perCustomer := make(map[string]*agg)
	for _, r := range rows {
		if r.OrderApprovedAt == nil {
			continue
		}
		a := perCustomer[r.CustomerID]
		if a == nil {
			a = &agg{orders: make(map[string]struct{})}
			perCustomer[r.CustomerID] = a
		}
		if r.OrderApprovedAt.After(a.last) {
			a.last = *r.OrderApprovedAt
		}
		a.orders[r.OrderID] = struct{}{}
		a.monetary += r.Price
	}

	out := make([]models.RFMRow, 0, len(perCustomer))
	for id, a := range perCustomer {
		out = append(out, models.RFMRow{
			CustomerID: id,
			Recency:    int(maxApproved.Sub(a.last).Hours() / 24),
			Frequency:  len(a.orders),
			Monetary:   a.monetary,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out
}

// RFMAverages returns the fleet-wide mean recency, frequency and monetary
// value. Returns ErrNoData when there are no customers, so callers never
// divide by zero.
func RFMAverages(rows []models.RFMRow) (recency, frequency, monetary float64, err error) {
	if len(rows) == 0 {
		return 0, 0, 0, ErrNoData
	}
	for _, r := range rows {
		recency += float64(r.Recency)
		frequency += float64(r.Frequency)
		monetary += r.Monetary
	}
	n := float64(len(rows))
	return recency / n, frequency / n, monetary / n, nil
}

// TopByRecency returns the n most recent customers (lowest recency first)
// without mutating the input.
func TopByRecency(rows []models.RFMRow, n int) []models.RFMRow {
	return topRFM(rows, n, func(a, b models.RFMRow) bool { return a.Recency < b.Recency })
}

// TopByFrequency returns the n most frequent customers, highest first.
func TopByFrequency(rows []models.RFMRow, n int) []models.RFMRow {
	return topRFM(rows, n, func(a, b models.RFMRow) bool { return a.Frequency > b.Frequency })
}

// TopByMonetary returns the n biggest spenders, highest first.
func TopByMonetary(rows []models.RFMRow, n int) []models.RFMRow {
	return topRFM(rows, n, func(a, b models.RFMRow) bool { return a.Monetary > b.Monetary })
}

func topRFM(rows []models.RFMRow, n int, less func(a, b models.RFMRow) bool) []models.RFMRow {
	sorted := make([]models.RFMRow, len(rows))
	copy(sorted, rows)
	// RFM output is ordered by customer id, so the stable sort breaks ties
	// on the lower id.
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
