package models

import "time"

// OrderLine is one row of the joined orders/items/payments/reviews/customers
// dataset, the atomic unit the aggregator consumes. Timestamps are pointers
// because the source data leaves some of them blank.
type OrderLine struct {
	OrderID       string `json:"order_id" gorm:"column:order_id;index"`
	CustomerID    string `json:"customer_id" gorm:"column:customer_id;index"`
	CustomerState string `json:"customer_state" gorm:"column:customer_state"`

	OrderPurchaseTimestamp     *time.Time `json:"order_purchase_timestamp,omitempty" gorm:"column:order_purchase_timestamp"`
	OrderApprovedAt            *time.Time `json:"order_approved_at,omitempty" gorm:"column:order_approved_at;index"`
	OrderDeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date,omitempty" gorm:"column:order_delivered_carrier_date"`
	OrderDeliveredCustomerDate *time.Time `json:"order_delivered_customer_date,omitempty" gorm:"column:order_delivered_customer_date"`
	OrderEstimatedDeliveryDate *time.Time `json:"order_estimated_delivery_date,omitempty" gorm:"column:order_estimated_delivery_date"`
	ShippingLimitDate          *time.Time `json:"shipping_limit_date,omitempty" gorm:"column:shipping_limit_date"`

	Price        float64 `json:"price" gorm:"column:price"`
	FreightValue float64 `json:"freight_value" gorm:"column:freight_value"`

	ProductCategory *string `json:"product_category_name_english,omitempty" gorm:"column:product_category_name_english"`
	ReviewScore     *int    `json:"review_score,omitempty" gorm:"column:review_score"`
}

func (OrderLine) TableName() string {
	return "order_lines"
}

// GeoPoint is one row of the customer geolocation dataset.
type GeoPoint struct {
	ZipCodePrefix string  `json:"geolocation_zip_code_prefix" gorm:"column:geolocation_zip_code_prefix"`
	Latitude      float64 `json:"geolocation_lat" gorm:"column:geolocation_lat"`
	Longitude     float64 `json:"geolocation_lng" gorm:"column:geolocation_lng"`
	City          string  `json:"geolocation_city" gorm:"column:geolocation_city"`
	State         string  `json:"geolocation_state" gorm:"column:geolocation_state;index"`
}

func (GeoPoint) TableName() string {
	return "geolocation"
}
