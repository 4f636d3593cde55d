package analytics_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Cartlytics/cartlytics-insights-backend/analytics"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategorySales godoc
// @Summary Get item counts per product category
// @Description Returns line counts per category, descending, plus the top and bottom N slices the bar charts use
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive range start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive range end (YYYY-MM-DD)"
// @Param limit query int false "Size of the top/bottom slices (default 5)"
// @Success 200 {object} models.ApiResponse{data=models.CategorySales}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/dashboard/category-sales [get]
func GetCategorySales(c *gin.Context) {
	log.Printf("[admin.dashboard-category-sales] start")

	rows, _, _, ok := filteredRows(c)
	if !ok {
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	ranked := analytics.ItemsByCategory(rows)
	result := models.CategorySales{
		Categories:       ranked,
		TotalItems:       analytics.TotalItems(ranked),
		TopCategories:    analytics.TopCategories(ranked, limit),
		BottomCategories: analytics.BottomCategories(ranked, limit),
	}

	log.Printf("[admin.dashboard-category-sales] respond 200 categories=%d total_items=%d",
		len(ranked), result.TotalItems)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category sales retrieved successfully", result))
}
