package biz

import "time"

// Production years accepted for a ship.
const (
	MinProdYear = 2800
	MaxProdYear = 3019
)

// ComputeRating derives the rating of a ship from its speed, usage flag and
// production year. The result is rounded half-down to two digits. Years past
// MaxProdYear leave no positive denominator and rate 0.
func ComputeRating(speed float64, isUsed bool, prodYear int) float64 {
	coef := 1.0
	if isUsed {
		coef = 0.5
	}
	denom := MaxProdYear - prodYear + 1
	if denom < 1 {
		return 0
	}
	return RoundHalfDown(80*speed*coef/float64(denom), 2)
}

// ProdYear extracts the production year in the calendar used for validation and rating.
func ProdYear(t time.Time) int {
	return t.UTC().Year()
}

// derive normalizes the stored fields of s and recomputes its rating.
// It runs after every merge of client data and is the only writer of Rating.
func (s *Ship) derive() {
	s.Speed = RoundHalfUp(s.Speed, 2)
	s.ProdDate = truncateDay(s.ProdDate)
	s.Rating = ComputeRating(s.Speed, s.IsUsed, ProdYear(s.ProdDate))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
