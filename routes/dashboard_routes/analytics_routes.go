package dashboard_routes

import (
	"github.com/Cartlytics/cartlytics-insights-backend/controllers/dashboard/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")

	dashboard.GET("/overview", analytics_controller.GetOverview)
	dashboard.GET("/range", analytics_controller.GetDatasetRange)
	dashboard.GET("/daily-orders", analytics_controller.GetDailyOrders)
	dashboard.GET("/customer-spend", analytics_controller.GetCustomerSpend)
	dashboard.GET("/category-sales", analytics_controller.GetCategorySales)
	dashboard.GET("/review-scores", analytics_controller.GetReviewScores)
	dashboard.GET("/rfm", analytics_controller.GetRFM)
	dashboard.GET("/customer-states", analytics_controller.GetCustomerStates)
	dashboard.GET("/geolocation", analytics_controller.GetGeolocation)
}
