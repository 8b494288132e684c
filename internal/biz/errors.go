package biz

import (
	"errors"
	"fmt"
)

// Error kinds reported by ShipUseCase.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrShipNotFound    = errors.New("ship not found")
)

// ValidationError names the first rule a candidate ship failed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap makes every validation failure an ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
