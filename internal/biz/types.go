package biz

import (
	"context"
	"math"
	"time"
)

// ShipType is the closed set of ship classes.
type ShipType string

const (
	ShipTypeTransport ShipType = "TRANSPORT"
	ShipTypeMilitary  ShipType = "MILITARY"
	ShipTypeMerchant  ShipType = "MERCHANT"
)

// Valid reports whether t is a member of the closed set.
func (t ShipType) Valid() bool {
	switch t {
	case ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant:
		return true
	}
	return false
}

// ShipOrder selects the ordering key of a listing.
type ShipOrder string

const (
	OrderByID     ShipOrder = "ID"
	OrderBySpeed  ShipOrder = "SPEED"
	OrderByDate   ShipOrder = "DATE"
	OrderByRating ShipOrder = "RATING"
)

// Field returns the ship field the order sorts on. The zero value orders by id.
func (o ShipOrder) Field() string {
	switch o {
	case OrderBySpeed:
		return FieldSpeed
	case OrderByDate:
		return FieldProdDate
	case OrderByRating:
		return FieldRating
	}
	return FieldID
}

// Valid reports whether o is a known order or unset.
func (o ShipOrder) Valid() bool {
	switch o {
	case "", OrderByID, OrderBySpeed, OrderByDate, OrderByRating:
		return true
	}
	return false
}

// Ship field names shared by criteria, ordering and storage mapping.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldPlanet   = "planet"
	FieldShipType = "shipType"
	FieldProdDate = "prodDate"
	FieldIsUsed   = "isUsed"
	FieldSpeed    = "speed"
	FieldCrewSize = "crewSize"
	FieldRating   = "rating"
)

// Ship domain model
type Ship struct {
	ID       int64
	Name     string
	Planet   string
	ShipType ShipType
	ProdDate time.Time
	IsUsed   bool
	Speed    float64
	CrewSize int
	Rating   float64
}

// ShipInput is a candidate ship as supplied by a client. A nil field was omitted.
// It is the payload of both create and partial update.
type ShipInput struct {
	Name     *string
	Planet   *string
	ShipType *ShipType
	ProdDate *time.Time
	IsUsed   *bool
	Speed    *float64
	CrewSize *int
	Rating   *float64
}

// IsEmpty reports whether no field was supplied.
func (in *ShipInput) IsEmpty() bool {
	return in == nil || (in.Name == nil && in.Planet == nil && in.ShipType == nil &&
		in.ProdDate == nil && in.IsUsed == nil && in.Speed == nil &&
		in.CrewSize == nil && in.Rating == nil)
}

// Input returns s as a fully populated candidate.
func (s *Ship) Input() *ShipInput {
	return &ShipInput{
		Name:     &s.Name,
		Planet:   &s.Planet,
		ShipType: &s.ShipType,
		ProdDate: &s.ProdDate,
		IsUsed:   &s.IsUsed,
		Speed:    &s.Speed,
		CrewSize: &s.CrewSize,
		Rating:   &s.Rating,
	}
}

// ShipFilter is the optional-criteria bundle of list and count.
// Bounds are inclusive; Name and Planet match by case-sensitive containment.
type ShipFilter struct {
	Name        *string
	Planet      *string
	ShipType    *ShipType
	After       *time.Time
	Before      *time.Time
	IsUsed      *bool
	MinSpeed    *float64
	MaxSpeed    *float64
	MinCrewSize *int
	MaxCrewSize *int
	MinRating   *float64
	MaxRating   *float64
}

// DefaultPageSize is used when a listing does not set a page size.
const DefaultPageSize = 3

// ShipQuery is a filtered, ordered page request.
type ShipQuery struct {
	Filter     ShipFilter
	Order      ShipOrder
	PageNumber int
	PageSize   int
}

// Offset is the index of the first record of the page window.
// It is only meaningful when IsEmpty reports false.
func (q *ShipQuery) Offset() int {
	return q.PageNumber * q.PageSize
}

// IsEmpty reports whether the page window can hold no records: a zero page
// size, or an offset past anything an int can index.
func (q *ShipQuery) IsEmpty() bool {
	return q.PageSize <= 0 || q.PageNumber > math.MaxInt/q.PageSize
}

// ShipRepo defines the storage abstraction for ships
type ShipRepo interface {
	// Save inserts s when s.ID is zero, assigning the id, and replaces it otherwise.
	// Replacing an unknown id returns ErrShipNotFound.
	Save(ctx context.Context, s *Ship) (*Ship, error)
	// FindByID returns ErrShipNotFound when no ship has the id.
	FindByID(ctx context.Context, id int64) (*Ship, error)
	Delete(ctx context.Context, s *Ship) error
	Query(ctx context.Context, q *ShipQuery) ([]*Ship, error)
	Count(ctx context.Context, f *ShipFilter) (int64, error)
}
