package analytics_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/gin-gonic/gin"
)

// GetRFM godoc
// @Summary Get RFM customer segmentation
// @Description Returns fleet-wide recency/frequency/monetary averages and the top customers per axis; the full per-customer table is paginated
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive range start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive range end (YYYY-MM-DD)"
// @Param page query int false "Page of the per-customer table (default 1)"
// @Param limit query int false "Page size (default 50, max 500)"
// @Success 200 {object} models.ApiResponse{data=models.RFMSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "No customers in the selected range"
// @Failure 503 {object} models.ApiResponse
// @Router /admin/dashboard/rfm [get]
func GetRFM(c *gin.Context) {
	log.Printf("[admin.dashboard-rfm] start")

	rows, _, _, ok := filteredRows(c)
	if !ok {
		return
	}

	rfm := analytics.RFM(rows)

	avgRecency, avgFrequency, avgMonetary, err := analytics.RFMAverages(rfm)
	if err != nil {
		if errors.Is(err, analytics.ErrNoData) {
			log.Printf("[admin.dashboard-rfm] respond 404 no customers in range")
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No customers in the selected date range"))
			return
		}
		log.Printf("[admin.dashboard-rfm] ERROR averages err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute RFM"))
		return
	}

	summary := models.RFMSummary{
		AvgRecencyDays: avgRecency,
		AvgFrequency:   avgFrequency,
		AvgMonetary:    avgMonetary,
		TopByRecency:   analytics.TopByRecency(rfm, 5),
		TopByFrequency: analytics.TopByFrequency(rfm, 5),
		TopByMonetary:  analytics.TopByMonetary(rfm, 5),
	}

	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	total := len(rfm)
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	endIdx := offset + limit
	if endIdx > total {
		endIdx = total
	}

	payload := struct {
		models.RFMSummary
		Customers []models.RFMRow `json:"customers"`
	}{summary, rfm[offset:endIdx]}

	log.Printf("[admin.dashboard-rfm] respond 200 customers=%d page=%d avg_recency=%.1f",
		total, page, avgRecency)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "RFM segmentation retrieved successfully", payload, meta))
}

func parsePagination(c *gin.Context) (page, limit int, ok bool) {
	page, limit = 1, 50
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "page must be a positive integer"))
			return 0, 0, false
		}
		page = parsed
	}
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "limit must be between 1 and 500"))
			return 0, 0, false
		}
		limit = parsed
	}
	return page, limit, true
}
