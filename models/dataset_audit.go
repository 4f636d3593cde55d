package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DatasetLoadAudit records one snapshot load so operators can see when the
// serving dataset was last refreshed and from where.
type DatasetLoadAudit struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Source    string         `json:"source" gorm:"column:source"` // "postgres" or "seed"
	RowCount  int            `json:"row_count" gorm:"column:row_count"`
	GeoCount  int            `json:"geo_count" gorm:"column:geo_count"`
	Stats     datatypes.JSON `json:"stats" gorm:"column:stats"` // min/max approved-at, distinct orders and customers
	CreatedAt time.Time      `json:"created_at"`
}

func (DatasetLoadAudit) TableName() string {
	return "dataset_load_audits"
}
