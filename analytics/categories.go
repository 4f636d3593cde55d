package analytics

import (
	"sort"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

// ItemsByCategory counts order lines per product category, descending by
// count. Ties keep the order in which the categories were first encountered
// in the input (stable sort over encounter order). Rows without a category
// are dropped.
func ItemsByCategory(rows []models.OrderLine) []models.CategorySalesRow {
	index := make(map[string]int)
	out := []models.CategorySalesRow{}
	for _, r := range rows {
		if r.ProductCategory == nil || *r.ProductCategory == "" {
			continue
		}
		i, ok := index[*r.ProductCategory]
		if !ok {
			i = len(out)
			index[*r.ProductCategory] = i
			out = append(out, models.CategorySalesRow{Category: *r.ProductCategory})
		}
		out[i].ProductCount++
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ProductCount > out[j].ProductCount })
	return out
}

// TopCategories returns the first n rows of an already-ranked category list
// without mutating it.
func TopCategories(ranked []models.CategorySalesRow, n int) []models.CategorySalesRow {
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]models.CategorySalesRow, n)
	copy(out, ranked[:n])
	return out
}

// BottomCategories returns the n least-sold categories, ascending by count,
// as the dashboard's "least sold" chart expects.
func BottomCategories(ranked []models.CategorySalesRow, n int) []models.CategorySalesRow {
	reversed := make([]models.CategorySalesRow, len(ranked))
	for i, row := range ranked {
		reversed[len(ranked)-1-i] = row
	}
	if n > len(reversed) {
		n = len(reversed)
	}
	return reversed[:n]
}
