package analytics_test

import (
	"testing"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

func TestRFM_TwoCustomers(t *testing.T) {
	// Customer A orders on day 1 and day 5, customer B on day 3; the dataset
	// maximum is day 5.
	rows := []models.OrderLine{
		line("a1", "A", ts(t, "2018-01-01 10:00"), 10),
		line("a2", "A", ts(t, "2018-01-05 10:00"), 20),
		line("b1", "B", ts(t, "2018-01-03 10:00"), 15),
	}

	rfm := analytics.RFM(rows)
	if len(rfm) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(rfm))
	}

	a, b := rfm[0], rfm[1]
	if a.CustomerID != "A" || b.CustomerID != "B" {
		t.Fatalf("output must be ordered by customer id, got %s, %s", a.CustomerID, b.CustomerID)
	}

	if a.Recency != 0 || a.Frequency != 2 || a.Monetary != 30 {
		t.Errorf("A = %+v, want recency=0 frequency=2 monetary=30", a)
	}
	if b.Recency != 2 || b.Frequency != 1 || b.Monetary != 15 {
		t.Errorf("B = %+v, want recency=2 frequency=1 monetary=15", b)
	}
}

func TestRFM_RecencyNeverNegative(t *testing.T) {
	rows := []models.OrderLine{
		line("o1", "c1", ts(t, "2018-01-01 10:00"), 1),
		line("o2", "c2", ts(t, "2018-06-01 10:00"), 1),
		line("o3", "c3", ts(t, "2017-03-15 10:00"), 1),
	}

	for _, r := range analytics.RFM(rows) {
		if r.Recency < 0 {
			t.Errorf("customer %s has negative recency %d", r.CustomerID, r.Recency)
		}
	}
}

func TestRFM_FrequencyCountsDistinctOrders(t *testing.T) {
	day := ts(t, "2018-01-01 10:00")
	rows := []models.OrderLine{
		line("o1", "c1", day, 10),
		line("o1", "c1", day, 12), // same order, second line
		line("o2", "c1", day, 5),
	}

	rfm := analytics.RFM(rows)
	if len(rfm) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(rfm))
	}
	if rfm[0].Frequency != 2 {
		t.Errorf("frequency = %d, want 2 distinct orders", rfm[0].Frequency)
	}
	if rfm[0].Monetary != 27 {
		t.Errorf("monetary = %f, must sum every line", rfm[0].Monetary)
	}
}

func TestRFM_ExcludesUnapprovedRows(t *testing.T) {
	rows := []models.OrderLine{
		line("o1", "c1", ts(t, "2018-01-01 10:00"), 10),
		line("o2", "c2", nil, 99),
	}

	rfm := analytics.RFM(rows)
	if len(rfm) != 1 || rfm[0].CustomerID != "c1" {
		t.Fatalf("rows without an approved timestamp carry no recency, got %+v", rfm)
	}
}

func TestRFM_EmptyInput(t *testing.T) {
	rfm := analytics.RFM(nil)
	if rfm == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(rfm) != 0 {
		t.Fatalf("expected no rows, got %d", len(rfm))
	}

	if _, _, _, err := analytics.RFMAverages(rfm); err != analytics.ErrNoData {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestRFMAverages(t *testing.T) {
	rows := []models.RFMRow{
		{CustomerID: "A", Recency: 0, Frequency: 2, Monetary: 30},
		{CustomerID: "B", Recency: 2, Frequency: 1, Monetary: 15},
	}

	recency, frequency, monetary, err := analytics.RFMAverages(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recency != 1 || frequency != 1.5 || monetary != 22.5 {
		t.Errorf("averages = %f/%f/%f, want 1/1.5/22.5", recency, frequency, monetary)
	}
}

func TestRFMTopHelpers(t *testing.T) {
	rows := []models.RFMRow{
		{CustomerID: "A", Recency: 5, Frequency: 1, Monetary: 10},
		{CustomerID: "B", Recency: 0, Frequency: 3, Monetary: 50},
		{CustomerID: "C", Recency: 2, Frequency: 2, Monetary: 30},
	}

	if top := analytics.TopByRecency(rows, 1); top[0].CustomerID != "B" {
		t.Errorf("top by recency = %s, want B (most recent first)", top[0].CustomerID)
	}
	if top := analytics.TopByFrequency(rows, 1); top[0].CustomerID != "B" {
		t.Errorf("top by frequency = %s, want B", top[0].CustomerID)
	}
	if top := analytics.TopByMonetary(rows, 2); top[0].CustomerID != "B" || top[1].CustomerID != "C" {
		t.Errorf("top by monetary = %+v", top)
	}

	// Input order must survive the helpers
	if rows[0].CustomerID != "A" || rows[2].CustomerID != "C" {
		t.Error("helpers must not mutate their input")
	}
}
