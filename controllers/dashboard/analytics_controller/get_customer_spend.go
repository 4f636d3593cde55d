package analytics_controller

import (
	"log"
	"net/http"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCustomerSpend godoc
// @Summary Get customer spend per day
// @Description Returns total customer spend per calendar day inside the date range, ascending by date
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive range start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.SpendRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/dashboard/customer-spend [get]
func GetCustomerSpend(c *gin.Context) {
	log.Printf("[admin.dashboard-customer-spend] start")

	rows, _, _, ok := filteredRows(c)
	if !ok {
		return
	}

	spend := analytics.SpendByDate(rows)

	log.Printf("[admin.dashboard-customer-spend] respond 200 days=%d", len(spend))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer spend retrieved successfully", spend))
}
