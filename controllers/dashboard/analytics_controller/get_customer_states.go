package analytics_controller

import (
	"log"
	"net/http"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCustomerStates godoc
// @Summary Get customer counts per state
// @Description Returns distinct customer counts per state, descending, plus the most common state
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive range start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=object}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/dashboard/customer-states [get]
func GetCustomerStates(c *gin.Context) {
	log.Printf("[admin.dashboard-customer-states] start")

	rows, _, _, ok := filteredRows(c)
	if !ok {
		return
	}

	states := analytics.ByState(rows)

	// An empty range is a valid, empty chart; only the headline "most
	// common" is undefined and stays blank.
	topState := ""
	if top, err := analytics.TopState(states); err == nil {
		topState = top
	}

	payload := struct {
		States   []models.StateCustomersRow `json:"states"`
		TopState string                     `json:"top_state"`
	}{states, topState}

	log.Printf("[admin.dashboard-customer-states] respond 200 states=%d top=%q",
		len(states), topState)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer states retrieved successfully", payload))
}
