package biz

import (
	"cmp"
	"slices"
)

// ApplyQuery runs q over ships in memory: it keeps the ships matching the
// filter, sorts them ascending by the order key with id as tie-breaker and
// returns the page window. A window past the end yields an empty slice.
func ApplyQuery(ships []*Ship, q *ShipQuery) []*Ship {
	matched := make([]*Ship, 0, len(ships))
	criteria := q.Filter.Criteria()
	for _, s := range ships {
		if matchAll(criteria, s) {
			matched = append(matched, s)
		}
	}

	field := q.Order.Field()
	slices.SortStableFunc(matched, func(a, b *Ship) int {
		if c := compareField(field, a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if q.IsEmpty() {
		return []*Ship{}
	}
	offset := q.Offset()
	if offset < 0 || offset >= len(matched) {
		return []*Ship{}
	}
	end := min(offset+q.PageSize, len(matched))
	return matched[offset:end]
}

// CountMatching returns how many ships satisfy f.
func CountMatching(ships []*Ship, f *ShipFilter) int64 {
	criteria := f.Criteria()
	var n int64
	for _, s := range ships {
		if matchAll(criteria, s) {
			n++
		}
	}
	return n
}

func matchAll(criteria []Criterion, s *Ship) bool {
	for _, c := range criteria {
		if !c.Match(s) {
			return false
		}
	}
	return true
}

func compareField(field string, a, b *Ship) int {
	switch field {
	case FieldSpeed:
		return cmp.Compare(a.Speed, b.Speed)
	case FieldProdDate:
		return a.ProdDate.Compare(b.ProdDate)
	case FieldRating:
		return cmp.Compare(a.Rating, b.Rating)
	}
	return cmp.Compare(a.ID, b.ID)
}
