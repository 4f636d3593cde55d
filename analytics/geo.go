package analytics

import (
	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

// StateDensity joins the per-state customer counts with a geographic centroid
// averaged over that state's geolocation points, for the customer-density
// scatter. States without any geolocation rows keep zero coordinates; the
// count is still reported.
func StateDensity(rows []models.OrderLine, points []models.GeoPoint) []models.StateDensityRow {
	type centroid struct {
		lat, lng float64
		n        int
	}
	centroids := make(map[string]*centroid)
	for _, p := range points {
		c := centroids[p.State]
		if c == nil {
			c = &centroid{}
			centroids[p.State] = c
		}
		c.lat += p.Latitude
		c.lng += p.Longitude
		c.n++
	}

	byState := ByState(rows)
	out := make([]models.StateDensityRow, 0, len(byState))
	for _, s := range byState {
		row := models.StateDensityRow{State: s.State, CustomerCount: s.CustomerCount}
		if c := centroids[s.State]; c != nil && c.n > 0 {
			row.Latitude = c.lat / float64(c.n)
			row.Longitude = c.lng / float64(c.n)
		}
		out = append(out, row)
	}
	return out
}
