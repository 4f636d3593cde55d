package analytics

import (
	"errors"
	"math"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

// ErrNoData is returned by every mean and mode helper when the underlying
// view is empty, so callers surface "no data in range" instead of a division
// by zero.
var ErrNoData = errors.New("no data in the selected date range")

// TotalOrders sums the distinct order counts of a daily view.
func TotalOrders(daily []models.DailyOrdersRow) int {
	total := 0
	for _, d := range daily {
		total += d.OrderCount
	}
	return total
}

// TotalRevenue sums the revenue of a daily view.
func TotalRevenue(daily []models.DailyOrdersRow) float64 {
	var total float64
	for _, d := range daily {
		total += d.Revenue
	}
	return total
}

// TotalSpend sums a spend view.
func TotalSpend(spend []models.SpendRow) float64 {
	var total float64
	for _, s := range spend {
		total += s.TotalSpend
	}
	return total
}

// AverageSpend returns the mean daily spend, or ErrNoData when the view is
// empty.
func AverageSpend(spend []models.SpendRow) (float64, error) {
	if len(spend) == 0 {
		return 0, ErrNoData
	}
	return TotalSpend(spend) / float64(len(spend)), nil
}

// TotalItems sums the line counts of a category view.
func TotalItems(categories []models.CategorySalesRow) int {
	total := 0
	for _, c := range categories {
		total += c.ProductCount
	}
	return total
}

// AverageItems returns the mean line count per category rounded up, as the
// dashboard displays it, or ErrNoData when the view is empty.
func AverageItems(categories []models.CategorySalesRow) (int, error) {
	if len(categories) == 0 {
		return 0, ErrNoData
	}
	mean := float64(TotalItems(categories)) / float64(len(categories))
	return int(math.Ceil(mean)), nil
}
