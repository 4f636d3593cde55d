package analytics_test

import (
	"testing"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

func catLine(category string) models.OrderLine {
	return models.OrderLine{OrderID: "o", CustomerID: "c", ProductCategory: &category}
}

func TestItemsByCategory_CountsAndRanks(t *testing.T) {
	rows := []models.OrderLine{
		catLine("toys"),
		catLine("auto"),
		catLine("toys"),
		catLine("toys"),
		catLine("auto"),
		catLine("baby"),
	}

	ranked := analytics.ItemsByCategory(rows)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(ranked))
	}
	want := []models.CategorySalesRow{
		{Category: "toys", ProductCount: 3},
		{Category: "auto", ProductCount: 2},
		{Category: "baby", ProductCount: 1},
	}
	for i, w := range want {
		if ranked[i] != w {
			t.Errorf("rank %d = %+v, want %+v", i, ranked[i], w)
		}
	}
}

func TestItemsByCategory_TiesKeepEncounterOrder(t *testing.T) {
	rows := []models.OrderLine{
		catLine("zeta"),
		catLine("alpha"),
		catLine("zeta"),
		catLine("alpha"),
	}

	ranked := analytics.ItemsByCategory(rows)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(ranked))
	}
	// zeta appears first in the input, so it wins the tie
	if ranked[0].Category != "zeta" || ranked[1].Category != "alpha" {
		t.Errorf("tie must keep encounter order, got %s then %s",
			ranked[0].Category, ranked[1].Category)
	}
}

func TestItemsByCategory_DropsMissingCategory(t *testing.T) {
	empty := ""
	rows := []models.OrderLine{
		catLine("toys"),
		{OrderID: "o2", CustomerID: "c2"},                          // nil category
		{OrderID: "o3", CustomerID: "c3", ProductCategory: &empty}, // blank category
	}

	ranked := analytics.ItemsByCategory(rows)
	if len(ranked) != 1 {
		t.Fatalf("expected 1 category, got %d", len(ranked))
	}
	if got := analytics.TotalItems(ranked); got != 1 {
		t.Errorf("total items = %d, want 1 (only rows with a category count)", got)
	}
}

func TestItemsByCategory_EmptyInput(t *testing.T) {
	ranked := analytics.ItemsByCategory(nil)
	if ranked == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(ranked) != 0 {
		t.Fatalf("expected no rows, got %d", len(ranked))
	}
}

func TestTopAndBottomCategories(t *testing.T) {
	ranked := []models.CategorySalesRow{
		{Category: "a", ProductCount: 5},
		{Category: "b", ProductCount: 3},
		{Category: "c", ProductCount: 1},
	}

	top := analytics.TopCategories(ranked, 2)
	if len(top) != 2 || top[0].Category != "a" || top[1].Category != "b" {
		t.Errorf("top 2 = %+v", top)
	}

	bottom := analytics.BottomCategories(ranked, 2)
	if len(bottom) != 2 || bottom[0].Category != "c" || bottom[1].Category != "b" {
		t.Errorf("bottom 2 = %+v, want ascending from least sold", bottom)
	}

	// Oversized n clamps instead of panicking
	if got := analytics.TopCategories(ranked, 10); len(got) != 3 {
		t.Errorf("top 10 of 3 = %d rows", len(got))
	}

	// The source ranking must not be mutated
	if ranked[0].Category != "a" || ranked[2].Category != "c" {
		t.Error("helpers must not mutate their input")
	}
}

func TestAverageItems(t *testing.T) {
	if _, err := analytics.AverageItems(nil); err != analytics.ErrNoData {
		t.Fatalf("expected ErrNoData, got %v", err)
	}

	avg, err := analytics.AverageItems([]models.CategorySalesRow{
		{Category: "a", ProductCount: 3},
		{Category: "b", ProductCount: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// mean 2.5 rounds up to 3
	if avg != 3 {
		t.Errorf("average items = %d, want 3", avg)
	}
}
