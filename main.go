// @title Cartlytics Insights API
// @version 1.0
// @description Exploratory analytics backend over the Cartlytics e-commerce transaction dataset
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Cartlytics/cartlytics-insights-backend/config"
	"github.com/Cartlytics/cartlytics-insights-backend/dataset"
	_ "github.com/Cartlytics/cartlytics-insights-backend/docs"
	"github.com/Cartlytics/cartlytics-insights-backend/middleware"
	"github.com/Cartlytics/cartlytics-insights-backend/routes/dashboard_routes"
	"github.com/Cartlytics/cartlytics-insights-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Load the dataset snapshot (full table scan, generous timeout)
	ctx, cancel := config.WithCustomTimeout(2 * time.Minute)
	snap, err := dataset.LoadFromPostgres(ctx, config.WarehouseDB, config.WarehouseGorm)
	cancel()
	if err != nil {
		log.Fatalf("❌ Failed to load dataset: %v", err)
	}
	dataset.Set(snap)
	if min, max, ok := snap.Bounds(); ok {
		log.Printf("✅ Dataset loaded: %d rows, %d geo points, %s..%s",
			len(snap.Lines()), len(snap.Geo()), min.Format("2006-01-02"), max.Format("2006-01-02"))
	} else {
		log.Printf("⚠️ Dataset loaded with no dated rows: %d rows", len(snap.Lines()))
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Login/logout (no auth, no limiter)
	dashboard_routes.SetupAuthRoutes(api)
	log.Println("✅ Auth routes registered")

	// Dashboard routes behind auth + rate limiter
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	adminGroup.Use(middleware.AdminAuthMiddleware())
	dashboard_routes.SetupDashboardRoutes(adminGroup)
	log.Println("✅ Dashboard routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
