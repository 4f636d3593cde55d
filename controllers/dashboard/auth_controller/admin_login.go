package auth_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/Cartlytics/cartlytics-insights-backend/services"
	"github.com/gin-gonic/gin"
)

// AdminLogin godoc
// @Summary Login as dashboard admin
// @Description Authenticate against the environment-configured admin account. Returns a JWT and sets it as a cookie
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	log.Printf("[admin.login] attempt")

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	authService := services.GetAdminAuthService()
	admin, err := authService.LoadEnvAdmin()
	if err != nil {
		log.Printf("[admin.login] ERROR admin account not configured err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if req.Email != admin.Email || !authService.VerifyPassword(admin.PasswordHash, req.Password) {
		log.Printf("[admin.login] invalid credentials: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := services.GenerateAdminJWT(admin.Email, admin.Name)
	if err != nil {
		log.Printf("[admin.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		token,
		int(services.TokenTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)

	response := models.AdminLoginResponse{
		Token:     token,
		Email:     admin.Email,
		Name:      admin.Name,
		ExpiresAt: time.Now().Add(services.TokenTTL),
	}

	log.Printf("[admin.login] success: %s", admin.Email)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", response))
}
