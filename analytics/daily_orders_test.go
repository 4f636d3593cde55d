package analytics_test

import (
	"testing"
	"time"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return &parsed
}

func line(order, customer string, approved *time.Time, price float64) models.OrderLine {
	return models.OrderLine{
		OrderID:         order,
		CustomerID:      customer,
		OrderApprovedAt: approved,
		Price:           price,
	}
}

func TestDailyOrders_SingleDay(t *testing.T) {
	day := ts(t, "2018-01-01 10:00")
	rows := []models.OrderLine{
		line("o1", "c1", day, 10),
		line("o2", "c2", day, 20),
		line("o3", "c3", day, 30),
	}

	daily := analytics.DailyOrders(rows)
	if len(daily) != 1 {
		t.Fatalf("expected 1 day, got %d", len(daily))
	}
	if daily[0].Date != "2018-01-01" {
		t.Errorf("expected date 2018-01-01, got %s", daily[0].Date)
	}
	if daily[0].OrderCount != 3 {
		t.Errorf("expected 3 distinct orders, got %d", daily[0].OrderCount)
	}
	if daily[0].Revenue != 60 {
		t.Errorf("expected revenue 60, got %f", daily[0].Revenue)
	}
}

func TestDailyOrders_DistinctOrdersPerDay(t *testing.T) {
	day := ts(t, "2018-01-01 10:00")
	rows := []models.OrderLine{
		line("o1", "c1", day, 10),
		line("o1", "c1", day, 15), // second line of the same order
		line("o2", "c2", day, 20),
	}

	daily := analytics.DailyOrders(rows)
	if len(daily) != 1 {
		t.Fatalf("expected 1 day, got %d", len(daily))
	}
	if daily[0].OrderCount != 2 {
		t.Errorf("multi-line order must count once, got %d", daily[0].OrderCount)
	}
	if daily[0].Revenue != 45 {
		t.Errorf("revenue must sum all lines, got %f", daily[0].Revenue)
	}
}

func TestDailyOrders_ExcludesUnapprovedRows(t *testing.T) {
	rows := []models.OrderLine{
		line("o1", "c1", ts(t, "2018-01-01 10:00"), 10),
		line("o2", "c2", nil, 99),
	}

	daily := analytics.DailyOrders(rows)
	if len(daily) != 1 {
		t.Fatalf("expected 1 day, got %d", len(daily))
	}
	if daily[0].Revenue != 10 {
		t.Errorf("unapproved row must be excluded, got revenue %f", daily[0].Revenue)
	}
}

func TestDailyOrders_AscendingByDate(t *testing.T) {
	rows := []models.OrderLine{
		line("o3", "c3", ts(t, "2018-03-01 08:00"), 1),
		line("o1", "c1", ts(t, "2018-01-01 08:00"), 1),
		line("o2", "c2", ts(t, "2018-02-01 08:00"), 1),
	}

	daily := analytics.DailyOrders(rows)
	if len(daily) != 3 {
		t.Fatalf("expected 3 days, got %d", len(daily))
	}
	for i := 1; i < len(daily); i++ {
		if daily[i-1].Date >= daily[i].Date {
			t.Fatalf("dates out of order: %s before %s", daily[i-1].Date, daily[i].Date)
		}
	}
}

func TestDailyOrders_EmptyInput(t *testing.T) {
	daily := analytics.DailyOrders(nil)
	if daily == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(daily) != 0 {
		t.Fatalf("expected no rows, got %d", len(daily))
	}
}

func TestRevenueMatchesSpendAcrossViews(t *testing.T) {
	rows := []models.OrderLine{
		line("o1", "c1", ts(t, "2018-01-01 09:00"), 10.5),
		line("o1", "c1", ts(t, "2018-01-01 09:00"), 4.5),
		line("o2", "c2", ts(t, "2018-01-02 12:00"), 20),
		line("o3", "c3", nil, 50), // excluded from both views
	}

	daily := analytics.DailyOrders(rows)
	spend := analytics.SpendByDate(rows)

	if got, want := analytics.TotalRevenue(daily), 35.0; got != want {
		t.Errorf("daily revenue = %f, want %f", got, want)
	}
	if got, want := analytics.TotalSpend(spend), 35.0; got != want {
		t.Errorf("total spend = %f, want %f", got, want)
	}
	if analytics.TotalRevenue(daily) != analytics.TotalSpend(spend) {
		t.Error("revenue and spend must agree: both sum price over the same rows")
	}
}

func TestDailyOrders_Idempotent(t *testing.T) {
	rows := []models.OrderLine{
		line("o1", "c1", ts(t, "2018-01-01 09:00"), 10),
		line("o2", "c2", ts(t, "2018-01-02 12:00"), 20),
	}

	first := analytics.DailyOrders(rows)
	second := analytics.DailyOrders(rows)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSpendByDate_GroupsAndSorts(t *testing.T) {
	rows := []models.OrderLine{
		line("o2", "c2", ts(t, "2018-01-02 12:00"), 20),
		line("o1", "c1", ts(t, "2018-01-01 09:00"), 10),
		line("o1b", "c1", ts(t, "2018-01-01 15:00"), 5),
	}

	spend := analytics.SpendByDate(rows)
	if len(spend) != 2 {
		t.Fatalf("expected 2 days, got %d", len(spend))
	}
	if spend[0].Date != "2018-01-01" || spend[0].TotalSpend != 15 {
		t.Errorf("day 1 = %+v, want 2018-01-01/15", spend[0])
	}
	if spend[1].Date != "2018-01-02" || spend[1].TotalSpend != 20 {
		t.Errorf("day 2 = %+v, want 2018-01-02/20", spend[1])
	}
}

func TestAverageSpend_EmptyIsGuarded(t *testing.T) {
	if _, err := analytics.AverageSpend(nil); err != analytics.ErrNoData {
		t.Fatalf("expected ErrNoData, got %v", err)
	}

	avg, err := analytics.AverageSpend([]models.SpendRow{
		{Date: "2018-01-01", TotalSpend: 10},
		{Date: "2018-01-02", TotalSpend: 20},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 15 {
		t.Errorf("average spend = %f, want 15", avg)
	}
}
