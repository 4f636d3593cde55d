package analytics

import (
	"sort"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

// ByState counts distinct customers per state, descending by count with
// ascending state code on ties, so the first row is always the most common
// state.
func ByState(rows []models.OrderLine) []models.StateCustomersRow {
	customers := make(map[string]map[string]struct{})
	for _, r := range rows {
		if r.CustomerState == "" {
			continue
		}
		set := customers[r.CustomerState]
		if set == nil {
			set = make(map[string]struct{})
			customers[r.CustomerState] = set
		}
		set[r.CustomerID] = struct{}{}
	}

	out := make([]models.StateCustomersRow, 0, len(customers))
	for state, set := range customers {
		out = append(out, models.StateCustomersRow{State: state, CustomerCount: len(set)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CustomerCount != out[j].CustomerCount {
			return out[i].CustomerCount > out[j].CustomerCount
		}
		return out[i].State < out[j].State
	})
	return out
}

// TopState returns the state with the most customers. Returns ErrNoData when
// the view is empty.
func TopState(rows []models.StateCustomersRow) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoData
	}
	return rows[0].State, nil
}
