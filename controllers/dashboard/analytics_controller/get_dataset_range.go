package analytics_controller

import (
	"log"
	"net/http"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/Cartlytics/cartlytics-insights-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetDatasetRange godoc
// @Summary Get the dataset's date bounds
// @Description Returns the minimum and maximum order_approved_at in the loaded dataset, which the dashboard uses to bound its date picker
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DatasetRange}
// @Failure 404 {object} models.ApiResponse "Dataset holds no dated rows"
// @Failure 503 {object} models.ApiResponse
// @Router /admin/dashboard/range [get]
func GetDatasetRange(c *gin.Context) {
	log.Printf("[admin.dashboard-range] start")

	snap := currentSnapshot(c)
	if snap == nil {
		return
	}

	min, max, ok := snap.Bounds()
	if !ok {
		log.Printf("[admin.dashboard-range] respond 404 no dated rows")
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Dataset holds no dated rows"))
		return
	}

	result := models.DatasetRange{
		MinDate:  utils.FormatDate(min),
		MaxDate:  utils.FormatDate(max),
		RowCount: len(snap.Lines()),
	}

	log.Printf("[admin.dashboard-range] respond 200 min=%s max=%s rows=%d",
		result.MinDate, result.MaxDate, result.RowCount)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dataset range retrieved successfully", result))
}
