package analytics_controller

import (
	"log"
	"net/http"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/gin-gonic/gin"
)

// GetGeolocation godoc
// @Summary Get customer density per state with map centroids
// @Description Returns distinct customer counts per state joined with the average latitude/longitude of that state's geolocation points. The geolocation table is not date-filtered
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.StateDensityRow}
// @Failure 503 {object} models.ApiResponse
// @Router /admin/dashboard/geolocation [get]
func GetGeolocation(c *gin.Context) {
	log.Printf("[admin.dashboard-geolocation] start")

	snap := currentSnapshot(c)
	if snap == nil {
		return
	}

	density := analytics.StateDensity(snap.Lines(), snap.Geo())

	log.Printf("[admin.dashboard-geolocation] respond 200 states=%d points=%d",
		len(density), len(snap.Geo()))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer density retrieved successfully", density))
}
