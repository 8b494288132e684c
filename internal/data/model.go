package data

import (
	"time"

	"shipcatalog/internal/biz"
)

// Ship represents the ship table
type Ship struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Name     string    `gorm:"not null;size:50"`
	Planet   string    `gorm:"not null;size:50;index:idx_ship_planet"`
	ShipType string    `gorm:"column:ship_type;not null;size:16;index:idx_ship_type"`
	ProdDate time.Time `gorm:"column:prod_date;not null;type:date;index:idx_ship_prod_date"`
	IsUsed   bool      `gorm:"column:is_used;not null;default:false"`
	Speed    float64   `gorm:"not null;type:double precision;check:speed >= 0.01 AND speed <= 0.99"`
	CrewSize int       `gorm:"column:crew_size;not null;check:crew_size >= 1 AND crew_size <= 9999"`
	Rating   float64   `gorm:"not null;type:double precision;index:idx_ship_rating"`
}

// TableName overrides the table name
func (Ship) TableName() string {
	return "ship"
}

// shipColumns maps biz field names to ship table columns.
var shipColumns = map[string]string{
	biz.FieldID:       "id",
	biz.FieldName:     "name",
	biz.FieldPlanet:   "planet",
	biz.FieldShipType: "ship_type",
	biz.FieldProdDate: "prod_date",
	biz.FieldIsUsed:   "is_used",
	biz.FieldSpeed:    "speed",
	biz.FieldCrewSize: "crew_size",
	biz.FieldRating:   "rating",
}
