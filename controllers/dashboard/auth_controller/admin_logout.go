package auth_controller

import (
	"log"
	"net/http"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/gin-gonic/gin"
)

// AdminLogout godoc
// @Summary Logout the dashboard admin
// @Description Clears the admin token cookie
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	log.Printf("[admin.logout] cookie cleared")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
