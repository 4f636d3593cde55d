package analytics_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	dashboard_cache "github.com/Cartlytics/cartlytics-insights-backend/cache"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/Cartlytics/cartlytics-insights-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetOverview godoc
// @Summary Get the composed dashboard overview
// @Description Returns the headline metrics for every dashboard section in one call, served through an in-process cache
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive range start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.DashboardOverview}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "No data in the selected range"
// @Failure 503 {object} models.ApiResponse
// @Router /admin/dashboard/overview [get]
func GetOverview(c *gin.Context) {
	log.Printf("[admin.dashboard-overview] start")

	rows, start, end, ok := filteredRows(c)
	if !ok {
		return
	}

	key := dashboard_cache.Key(utils.FormatDate(start), utils.FormatDate(end))
	if cached, ok := dashboard_cache.GetOverview(key); ok {
		log.Printf("[admin.dashboard-overview] respond 200 (cached) key=%s", key)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard overview retrieved successfully", cached))
		return
	}

	overview, err := buildOverview(rows)
	if err != nil {
		if errors.Is(err, analytics.ErrNoData) {
			log.Printf("[admin.dashboard-overview] respond 404 no data in range")
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No data in the selected date range"))
			return
		}
		log.Printf("[admin.dashboard-overview] ERROR build overview err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build dashboard overview"))
		return
	}

	dashboard_cache.SetOverview(key, overview)

	log.Printf("[admin.dashboard-overview] respond 200 orders=%d revenue=%.2f top_state=%q",
		overview.TotalOrders, overview.TotalRevenue, overview.TopState)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard overview retrieved successfully", overview))
}

// buildOverview composes every aggregation into the headline block. The
// means and the mode are the guarded operations: any of them failing with
// ErrNoData means the range holds no usable data at all, which the handler
// turns into a 404.
func buildOverview(rows []models.OrderLine) (models.DashboardOverview, error) {
	daily := analytics.DailyOrders(rows)
	spend := analytics.SpendByDate(rows)
	categories := analytics.ItemsByCategory(rows)
	reviews := analytics.ReviewScores(rows)
	rfm := analytics.RFM(rows)
	states := analytics.ByState(rows)

	avgSpend, err := analytics.AverageSpend(spend)
	if err != nil {
		return models.DashboardOverview{}, err
	}
	avgItems, err := analytics.AverageItems(categories)
	if err != nil {
		return models.DashboardOverview{}, err
	}
	mode, err := analytics.MostCommonScore(reviews)
	if err != nil {
		return models.DashboardOverview{}, err
	}
	avgScore, err := analytics.AverageScore(reviews)
	if err != nil {
		return models.DashboardOverview{}, err
	}
	avgRecency, avgFrequency, avgMonetary, err := analytics.RFMAverages(rfm)
	if err != nil {
		return models.DashboardOverview{}, err
	}
	topState, err := analytics.TopState(states)
	if err != nil {
		return models.DashboardOverview{}, err
	}

	return models.DashboardOverview{
		TotalOrders:     analytics.TotalOrders(daily),
		TotalRevenue:    analytics.TotalRevenue(daily),
		TotalSpend:      analytics.TotalSpend(spend),
		AvgDailySpend:   avgSpend,
		TotalItems:      analytics.TotalItems(categories),
		AvgItemsPerCat:  avgItems,
		AvgReviewScore:  avgScore,
		MostCommonScore: mode,
		AvgRecencyDays:  avgRecency,
		AvgFrequency:    avgFrequency,
		AvgMonetary:     avgMonetary,
		TopState:        topState,
	}, nil
}
