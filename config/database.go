package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	WarehouseDB *pgxpool.Pool

	WarehouseGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	// Warehouse - use managed URL if provided
	warehouseURL := os.Getenv("WAREHOUSE_DB_URL")
	if warehouseURL == "" {
		// fallback to local
		warehouseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/cartlytics_warehouse?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ WAREHOUSE_DB_URL not set, using local default")
	}

	var err error
	WarehouseDB, err = pgxpool.New(context.Background(), warehouseURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to warehouse database: %v", err)
	}

	if err = WarehouseDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Warehouse database ping failed: %v", err)
	}

	log.Println("✅ Warehouse database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var warehouseDSN string
	if os.Getenv("WAREHOUSE_DB_URL") != "" {
		warehouseDSN = os.Getenv("WAREHOUSE_DB_URL")
	} else {
		warehouseDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=cartlytics_warehouse port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ WAREHOUSE_DB_URL not set, using local GORM default")
	}

	var err error
	WarehouseGorm, err = gorm.Open(postgres.Open(warehouseDSN), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to warehouse database with GORM: %v", err)
	}
	if sqlDB, err := WarehouseGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Warehouse database connected (GORM)")
}

func CloseDB() {
	if WarehouseDB != nil {
		WarehouseDB.Close()
		log.Println("✅ Warehouse database connection closed (pgx)")
	}

	if WarehouseGorm != nil {
		sqlDB, _ := WarehouseGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Warehouse database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout for per-request work
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithCustomTimeout is for the startup dataset load, which scans whole tables
func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
