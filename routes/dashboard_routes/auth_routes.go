package dashboard_routes

import (
	"github.com/Cartlytics/cartlytics-insights-backend/controllers/dashboard/auth_controller"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	admin.POST("/login", auth_controller.AdminLogin)
	admin.POST("/logout", auth_controller.AdminLogout)
}
