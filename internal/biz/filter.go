package biz

import (
	"cmp"
	"strings"
	"time"
)

// Operator is the comparison a Criterion applies to its field.
type Operator int

const (
	OpContains Operator = iota
	OpEqual
	OpAtLeast
	OpAtMost
)

// Criterion is one present constraint of a ShipFilter. Value holds the
// operand in a storage-friendly form: string, bool, int, float64 or time.Time.
type Criterion struct {
	Field string
	Op    Operator
	Value any

	match func(*Ship) bool
}

// Match reports whether s satisfies the criterion. A Criterion not built by
// ShipFilter.Criteria constrains nothing.
func (c Criterion) Match(s *Ship) bool {
	if c.match == nil {
		return true
	}
	return c.match(s)
}

// Criteria returns the present criteria of f in a fixed field order.
// Absent criteria contribute nothing, so an empty filter yields none.
func (f *ShipFilter) Criteria() []Criterion {
	if f == nil {
		return nil
	}
	var cs []Criterion
	add := func(c *Criterion) {
		if c != nil {
			cs = append(cs, *c)
		}
	}

	add(contains(FieldName, f.Name, func(s *Ship) string { return s.Name }))
	add(contains(FieldPlanet, f.Planet, func(s *Ship) string { return s.Planet }))
	if f.ShipType != nil {
		t := *f.ShipType
		add(&Criterion{Field: FieldShipType, Op: OpEqual, Value: string(t),
			match: func(s *Ship) bool { return s.ShipType == t }})
	}
	add(timeBound(FieldProdDate, OpAtLeast, f.After, func(s *Ship) time.Time { return s.ProdDate }))
	add(timeBound(FieldProdDate, OpAtMost, f.Before, func(s *Ship) time.Time { return s.ProdDate }))
	if f.IsUsed != nil {
		used := *f.IsUsed
		add(&Criterion{Field: FieldIsUsed, Op: OpEqual, Value: used,
			match: func(s *Ship) bool { return s.IsUsed == used }})
	}
	add(bound(FieldSpeed, OpAtLeast, f.MinSpeed, func(s *Ship) float64 { return s.Speed }))
	add(bound(FieldSpeed, OpAtMost, f.MaxSpeed, func(s *Ship) float64 { return s.Speed }))
	add(bound(FieldCrewSize, OpAtLeast, f.MinCrewSize, func(s *Ship) int { return s.CrewSize }))
	add(bound(FieldCrewSize, OpAtMost, f.MaxCrewSize, func(s *Ship) int { return s.CrewSize }))
	add(bound(FieldRating, OpAtLeast, f.MinRating, func(s *Ship) float64 { return s.Rating }))
	add(bound(FieldRating, OpAtMost, f.MaxRating, func(s *Ship) float64 { return s.Rating }))
	return cs
}

// Match reports whether s satisfies every present criterion of f.
func (f *ShipFilter) Match(s *Ship) bool {
	return matchAll(f.Criteria(), s)
}

func contains(field string, v *string, get func(*Ship) string) *Criterion {
	if v == nil {
		return nil
	}
	sub := *v
	return &Criterion{Field: field, Op: OpContains, Value: sub,
		match: func(s *Ship) bool { return strings.Contains(get(s), sub) }}
}

func bound[T cmp.Ordered](field string, op Operator, v *T, get func(*Ship) T) *Criterion {
	if v == nil {
		return nil
	}
	limit := *v
	return &Criterion{Field: field, Op: op, Value: limit,
		match: func(s *Ship) bool {
			c := cmp.Compare(get(s), limit)
			if op == OpAtLeast {
				return c >= 0
			}
			return c <= 0
		}}
}

func timeBound(field string, op Operator, v *time.Time, get func(*Ship) time.Time) *Criterion {
	if v == nil {
		return nil
	}
	limit := *v
	return &Criterion{Field: field, Op: op, Value: limit,
		match: func(s *Ship) bool {
			c := get(s).Compare(limit)
			if op == OpAtLeast {
				return c >= 0
			}
			return c <= 0
		}}
}
