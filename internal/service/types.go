package service

import (
	"time"

	"shipcatalog/internal/biz"
)

// ShipCriteria are the optional filter parameters shared by list and count.
// Dates are milliseconds since the Unix epoch.
type ShipCriteria struct {
	Name        *string  `json:"name"`
	Planet      *string  `json:"planet"`
	ShipType    *string  `json:"shipType"`
	After       *int64   `json:"after"`
	Before      *int64   `json:"before"`
	IsUsed      *bool    `json:"isUsed"`
	MinSpeed    *float64 `json:"minSpeed"`
	MaxSpeed    *float64 `json:"maxSpeed"`
	MinCrewSize *int     `json:"minCrewSize"`
	MaxCrewSize *int     `json:"maxCrewSize"`
	MinRating   *float64 `json:"minRating"`
	MaxRating   *float64 `json:"maxRating"`
}

// ListShipsRequest carries the criteria plus ordering and page window.
type ListShipsRequest struct {
	ShipCriteria
	Order      *string `json:"order"`
	PageNumber *int    `json:"pageNumber"`
	PageSize   *int    `json:"pageSize"`
}

// ShipIDRequest addresses a single ship.
type ShipIDRequest struct {
	ID int64 `json:"id"`
}

// UpdateShipRequest is a partial update of ship ID.
type UpdateShipRequest struct {
	ID   int64
	Ship ShipPayload
}

// ShipPayload is a ship as written by clients. Omitted fields are nil.
// Id is accepted and ignored; rating is accepted and recomputed.
type ShipPayload struct {
	ID       *int64   `json:"id,omitempty"`
	Name     *string  `json:"name"`
	Planet   *string  `json:"planet"`
	ShipType *string  `json:"shipType"`
	ProdDate *int64   `json:"prodDate"`
	IsUsed   *bool    `json:"isUsed"`
	Speed    *float64 `json:"speed"`
	CrewSize *int     `json:"crewSize"`
	Rating   *float64 `json:"rating"`
}

// ShipReply is a stored ship as returned to clients.
type ShipReply struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Planet   string  `json:"planet"`
	ShipType string  `json:"shipType"`
	ProdDate int64   `json:"prodDate"`
	IsUsed   bool    `json:"isUsed"`
	Speed    float64 `json:"speed"`
	CrewSize int     `json:"crewSize"`
	Rating   float64 `json:"rating"`
}

func (c *ShipCriteria) toFilter() biz.ShipFilter {
	f := biz.ShipFilter{
		Name:        c.Name,
		Planet:      c.Planet,
		IsUsed:      c.IsUsed,
		MinSpeed:    c.MinSpeed,
		MaxSpeed:    c.MaxSpeed,
		MinCrewSize: c.MinCrewSize,
		MaxCrewSize: c.MaxCrewSize,
		MinRating:   c.MinRating,
		MaxRating:   c.MaxRating,
		After:       millisToTime(c.After),
		Before:      millisToTime(c.Before),
	}
	if c.ShipType != nil {
		t := biz.ShipType(*c.ShipType)
		f.ShipType = &t
	}
	return f
}

func (p *ShipPayload) toInput() *biz.ShipInput {
	in := &biz.ShipInput{
		Name:     p.Name,
		Planet:   p.Planet,
		ProdDate: millisToTime(p.ProdDate),
		IsUsed:   p.IsUsed,
		Speed:    p.Speed,
		CrewSize: p.CrewSize,
		Rating:   p.Rating,
	}
	if p.ShipType != nil {
		t := biz.ShipType(*p.ShipType)
		in.ShipType = &t
	}
	return in
}

func shipToReply(s *biz.Ship) *ShipReply {
	return &ShipReply{
		ID:       s.ID,
		Name:     s.Name,
		Planet:   s.Planet,
		ShipType: string(s.ShipType),
		ProdDate: s.ProdDate.UnixMilli(),
		IsUsed:   s.IsUsed,
		Speed:    s.Speed,
		CrewSize: s.CrewSize,
		Rating:   s.Rating,
	}
}

func millisToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}
