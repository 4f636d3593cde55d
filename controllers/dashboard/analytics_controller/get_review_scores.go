package analytics_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/gin-gonic/gin"
)

// GetReviewScores godoc
// @Summary Get the review score distribution
// @Description Returns per-score counts (one score per order), the most common score and the average rounded up
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive range start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.ReviewScoreSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "No reviews in the selected range"
// @Failure 503 {object} models.ApiResponse
// @Router /admin/dashboard/review-scores [get]
func GetReviewScores(c *gin.Context) {
	log.Printf("[admin.dashboard-review-scores] start")

	rows, _, _, ok := filteredRows(c)
	if !ok {
		return
	}

	counts := analytics.ReviewScores(rows)

	mode, err := analytics.MostCommonScore(counts)
	if err != nil {
		if errors.Is(err, analytics.ErrNoData) {
			log.Printf("[admin.dashboard-review-scores] respond 404 no reviews in range")
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No reviews in the selected date range"))
			return
		}
		log.Printf("[admin.dashboard-review-scores] ERROR mode err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute review scores"))
		return
	}

	// MostCommonScore already rejected the empty case, so the average cannot
	// fail here.
	avg, _ := analytics.AverageScore(counts)

	summary := models.ReviewScoreSummary{
		Counts:          counts,
		MostCommonScore: mode,
		AverageScore:    avg,
	}

	log.Printf("[admin.dashboard-review-scores] respond 200 scores=%d mode=%d avg=%d",
		len(counts), mode, avg)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review scores retrieved successfully", summary))
}
