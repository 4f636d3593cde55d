package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Cartlytics/cartlytics-insights-backend/config"
	"github.com/Cartlytics/cartlytics-insights-backend/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

var categories = []string{
	"bed_bath_table", "health_beauty", "sports_leisure", "furniture_decor",
	"computers_accessories", "housewares", "watches_gifts", "telephony",
	"garden_tools", "auto", "toys", "cool_stuff", "perfumery", "baby",
	"electronics", "stationery", "fashion_bags_accessories", "pet_shop",
}

var states = []string{
	"SP", "RJ", "MG", "RS", "PR", "SC", "BA", "DF", "ES", "GO",
	"PE", "CE", "PA", "MT", "MA", "MS", "PB", "PI", "RN", "AL",
}

// main seeds the warehouse with a synthetic transaction dataset
// Usage: go run cmd/seed/main.go [-orders N] [-seed N]
// This is a standalone CLI tool, not part of the main application
func main() {
	orderCount := flag.Int("orders", 10000, "number of orders to generate")
	seed := flag.Int64("seed", 42, "random seed, fixed for reproducible datasets")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CARTLYTICS INSIGHTS - Warehouse Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to warehouse database")

	db := config.WarehouseGorm
	if err := db.AutoMigrate(&models.OrderLine{}, &models.GeoPoint{}, &models.DatasetLoadAudit{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
	log.Println("✓ Tables migrated")

	rng := rand.New(rand.NewSource(*seed))
	start := time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)
	span := int(time.Date(2018, time.September, 1, 0, 0, 0, 0, time.UTC).Sub(start).Hours())

	// Customers order 1-4 times; a skewed category draw keeps the top-N
	// charts interesting.
	poolSize := *orderCount / 2
	if poolSize < 1 {
		poolSize = 1
	}
	customerPool := make([]string, 0, poolSize)
	for i := 0; i < poolSize; i++ {
		customerPool = append(customerPool, uuid.Must(uuid.NewV7()).String())
	}

	var lines []models.OrderLine
	for i := 0; i < *orderCount; i++ {
		orderID := uuid.Must(uuid.NewV7()).String()
		customerID := customerPool[rng.Intn(len(customerPool))]
		state := states[rng.Intn(len(states))]

		purchase := start.Add(time.Duration(rng.Intn(span)) * time.Hour)
		approved := purchase.Add(time.Duration(1+rng.Intn(48)) * time.Hour)
		carrier := approved.Add(time.Duration(12+rng.Intn(96)) * time.Hour)
		delivered := carrier.Add(time.Duration(24+rng.Intn(240)) * time.Hour)
		estimated := approved.AddDate(0, 0, 14+rng.Intn(14))
		shipLimit := approved.AddDate(0, 0, 3+rng.Intn(4))

		var score *int
		if rng.Float64() < 0.8 {
			// Skew toward 5, the shape of real review data
			s := 1 + rng.Intn(5)
			if rng.Float64() < 0.5 {
				s = 5
			}
			score = &s
		}

		// A small share of orders never got approved
		approvedAt := &approved
		if rng.Float64() < 0.02 {
			approvedAt = nil
		}

		itemCount := 1 + rng.Intn(3)
		for j := 0; j < itemCount; j++ {
			category := categories[rng.Intn(rng.Intn(len(categories))+1)]
			var categoryPtr *string
			if rng.Float64() >= 0.01 {
				categoryPtr = &category
			}
			lines = append(lines, models.OrderLine{
				OrderID:                    orderID,
				CustomerID:                 customerID,
				CustomerState:              state,
				OrderPurchaseTimestamp:     &purchase,
				OrderApprovedAt:            approvedAt,
				OrderDeliveredCarrierDate:  &carrier,
				OrderDeliveredCustomerDate: &delivered,
				OrderEstimatedDeliveryDate: &estimated,
				ShippingLimitDate:          &shipLimit,
				Price:                      10 + rng.Float64()*290,
				FreightValue:               5 + rng.Float64()*45,
				ProductCategory:            categoryPtr,
				ReviewScore:                score,
			})
		}
	}

	if err := db.CreateInBatches(&lines, 1000).Error; err != nil {
		log.Fatalf("Failed to insert order lines: %v", err)
	}
	log.Printf("✓ Inserted %d order lines (%d orders)", len(lines), *orderCount)

	var points []models.GeoPoint
	for _, state := range states {
		baseLat := -30 + rng.Float64()*25
		baseLng := -65 + rng.Float64()*20
		for i := 0; i < 50; i++ {
			points = append(points, models.GeoPoint{
				ZipCodePrefix: fmt.Sprintf("%05d", rng.Intn(99999)),
				Latitude:      baseLat + rng.Float64()*2 - 1,
				Longitude:     baseLng + rng.Float64()*2 - 1,
				City:          fmt.Sprintf("%s_city_%d", state, i%5),
				State:         state,
			})
		}
	}
	if err := db.CreateInBatches(&points, 1000).Error; err != nil {
		log.Fatalf("Failed to insert geolocation points: %v", err)
	}
	log.Printf("✓ Inserted %d geolocation points", len(points))

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Warehouse Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Order lines: %d\n", len(lines))
	fmt.Printf("Geo points:  %d\n", len(points))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login")
	fmt.Println("3. Explore /api/v1/admin/dashboard/* with the returned token")
	fmt.Println()
}
