package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

// LoadFromPostgres bulk-reads the order_lines and geolocation tables into a
// fresh snapshot. pgx is used for the hot scan; GORM only writes the load
// audit row afterwards. The audit is best effort and never fails the load.
func LoadFromPostgres(ctx context.Context, pool *pgxpool.Pool, db *gorm.DB) (*Snapshot, error) {
	lines, err := loadOrderLines(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}

	geo, err := loadGeolocation(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("load geolocation: %w", err)
	}

	snap := NewSnapshot(lines, geo)
	writeAudit(ctx, db, snap, "postgres")
	return snap, nil
}

func loadOrderLines(ctx context.Context, pool *pgxpool.Pool) ([]models.OrderLine, error) {
	rows, err := pool.Query(ctx, `
		SELECT
			order_id,
			customer_id,
			customer_state,
			order_purchase_timestamp,
			order_approved_at,
			order_delivered_carrier_date,
			order_delivered_customer_date,
			order_estimated_delivery_date,
			shipping_limit_date,
			price,
			freight_value,
			product_category_name_english,
			review_score
		FROM order_lines
		ORDER BY order_approved_at ASC NULLS LAST
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.OrderLine
	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(
			&l.OrderID,
			&l.CustomerID,
			&l.CustomerState,
			&l.OrderPurchaseTimestamp,
			&l.OrderApprovedAt,
			&l.OrderDeliveredCarrierDate,
			&l.OrderDeliveredCustomerDate,
			&l.OrderEstimatedDeliveryDate,
			&l.ShippingLimitDate,
			&l.Price,
			&l.FreightValue,
			&l.ProductCategory,
			&l.ReviewScore,
		); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func loadGeolocation(ctx context.Context, pool *pgxpool.Pool) ([]models.GeoPoint, error) {
	rows, err := pool.Query(ctx, `
		SELECT
			geolocation_zip_code_prefix,
			geolocation_lat,
			geolocation_lng,
			geolocation_city,
			geolocation_state
		FROM geolocation
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []models.GeoPoint
	for rows.Next() {
		var p models.GeoPoint
		if err := rows.Scan(&p.ZipCodePrefix, &p.Latitude, &p.Longitude, &p.City, &p.State); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func writeAudit(ctx context.Context, db *gorm.DB, snap *Snapshot, source string) {
	if db == nil {
		return
	}

	orders := make(map[string]struct{})
	customers := make(map[string]struct{})
	for _, l := range snap.Lines() {
		orders[l.OrderID] = struct{}{}
		customers[l.CustomerID] = struct{}{}
	}

	stats := map[string]any{
		"distinct_orders":    len(orders),
		"distinct_customers": len(customers),
	}
	if min, max, ok := snap.Bounds(); ok {
		stats["min_approved_at"] = min.Format(time.RFC3339)
		stats["max_approved_at"] = max.Format(time.RFC3339)
	}
	blob, err := json.Marshal(stats)
	if err != nil {
		log.Printf("[dataset] ERROR marshal audit stats err=%v", err)
		return
	}

	audit := models.DatasetLoadAudit{
		ID:       uuid.Must(uuid.NewV7()),
		Source:   source,
		RowCount: len(snap.Lines()),
		GeoCount: len(snap.Geo()),
		Stats:    datatypes.JSON(blob),
	}
	if err := db.WithContext(ctx).Create(&audit).Error; err != nil {
		log.Printf("[dataset] ERROR write load audit err=%v", err)
	}
}
