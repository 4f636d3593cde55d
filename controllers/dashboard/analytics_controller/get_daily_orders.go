package analytics_controller

import (
	"log"
	"net/http"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/gin-gonic/gin"
)

// GetDailyOrders godoc
// @Summary Get daily order volume and revenue
// @Description Returns the distinct order count and revenue per calendar day inside the date range, ascending by date
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive range start (YYYY-MM-DD), defaults to dataset minimum"
// @Param end_date query string false "Inclusive range end (YYYY-MM-DD), defaults to dataset maximum"
// @Success 200 {object} models.ApiResponse{data=[]models.DailyOrdersRow}
// @Failure 400 {object} models.ApiResponse "Malformed or inverted date range"
// @Failure 503 {object} models.ApiResponse "Dataset not loaded"
// @Router /admin/dashboard/daily-orders [get]
func GetDailyOrders(c *gin.Context) {
	log.Printf("[admin.dashboard-daily-orders] start")

	rows, start, end, ok := filteredRows(c)
	if !ok {
		return
	}

	daily := analytics.DailyOrders(rows)

	log.Printf("[admin.dashboard-daily-orders] respond 200 days=%d range=%s..%s",
		len(daily), start.Format("2006-01-02"), end.Format("2006-01-02"))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Daily orders retrieved successfully", daily))
}
