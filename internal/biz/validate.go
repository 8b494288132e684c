package biz

import (
	"strings"
	"unicode/utf8"
)

// Field limits enforced by Validate.
const (
	MaxTextLength = 50
	MinSpeed      = 0.01
	MaxSpeed      = 0.99
	MinCrewSize   = 1
	MaxCrewSize   = 9999
)

// IsValid reports whether the candidate passes every rule.
func IsValid(in *ShipInput) bool {
	return Validate(in) == nil
}

// Validate checks a candidate ship and returns a *ValidationError for the
// first rule it breaks. Every field except IsUsed and Rating is required.
func Validate(in *ShipInput) error {
	if in == nil {
		return &ValidationError{Field: "ship", Reason: "missing"}
	}
	if err := validateText(FieldName, in.Name); err != nil {
		return err
	}
	if err := validateText(FieldPlanet, in.Planet); err != nil {
		return err
	}
	if in.ShipType == nil || !in.ShipType.Valid() {
		return &ValidationError{Field: FieldShipType, Reason: "must be one of TRANSPORT, MILITARY, MERCHANT"}
	}
	if in.ProdDate == nil || in.ProdDate.UnixMilli() < 0 {
		return &ValidationError{Field: FieldProdDate, Reason: "required"}
	}
	if y := ProdYear(*in.ProdDate); y < MinProdYear || y > MaxProdYear {
		return &ValidationError{Field: FieldProdDate, Reason: "year out of range [2800, 3019]"}
	}
	// A missing speed is checked as 0 and therefore rejected.
	speed := 0.0
	if in.Speed != nil {
		speed = RoundHalfUp(*in.Speed, 2)
	}
	if !(speed >= MinSpeed && speed <= MaxSpeed) {
		return &ValidationError{Field: FieldSpeed, Reason: "out of range [0.01, 0.99]"}
	}
	if in.CrewSize == nil || *in.CrewSize < MinCrewSize || *in.CrewSize > MaxCrewSize {
		return &ValidationError{Field: FieldCrewSize, Reason: "out of range [1, 9999]"}
	}
	return nil
}

func validateText(field string, v *string) error {
	switch {
	case v == nil || strings.TrimSpace(*v) == "":
		return &ValidationError{Field: field, Reason: "required"}
	case utf8.RuneCountInString(*v) > MaxTextLength:
		return &ValidationError{Field: field, Reason: "longer than 50 characters"}
	}
	return nil
}
