package analytics_controller

import (
	"net/http"
	"time"

	"github.com/Cartlytics/cartlytics-insights-backend/dataset"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/Cartlytics/cartlytics-insights-backend/utils"
	"github.com/gin-gonic/gin"
)

// currentSnapshot fetches the serving snapshot or answers 503 when the
// dataset has not finished loading. Returns nil after writing the response.
func currentSnapshot(c *gin.Context) *dataset.Snapshot {
	snap := dataset.Current()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Dataset not loaded yet"))
		return nil
	}
	return snap
}

// parseDateRange reads the inclusive start_date/end_date query parameters.
// Missing values default to the dataset bounds, mirroring the dashboard's
// date picker. Responds 400 for malformed dates or an inverted range and
// returns ok=false; the aggregations never see a bad range.
func parseDateRange(c *gin.Context, snap *dataset.Snapshot) (start, end time.Time, ok bool) {
	min, max, hasDates := snap.Bounds()

	startParam := c.Query("start_date")
	endParam := c.Query("end_date")

	if startParam == "" && endParam == "" && !hasDates {
		// No dated rows and no explicit range: nothing to clamp against,
		// serve the (empty) full dataset.
		return time.Time{}, time.Time{}, true
	}

	start = min
	end = max

	var err error
	if startParam != "" {
		if start, err = utils.ParseDate(startParam); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return time.Time{}, time.Time{}, false
		}
	}
	if endParam != "" {
		if end, err = utils.ParseDate(endParam); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return time.Time{}, time.Time{}, false
		}
	}

	if start.After(end) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "start_date must not be after end_date"))
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

// filteredRows combines both helpers: snapshot, validated range, rows.
func filteredRows(c *gin.Context) (rows []models.OrderLine, start, end time.Time, ok bool) {
	snap := currentSnapshot(c)
	if snap == nil {
		return nil, time.Time{}, time.Time{}, false
	}
	start, end, ok = parseDateRange(c, snap)
	if !ok {
		return nil, time.Time{}, time.Time{}, false
	}
	if start.IsZero() && end.IsZero() {
		return snap.Lines(), start, end, true
	}
	return snap.FilterRange(start, end), start, end, true
}
