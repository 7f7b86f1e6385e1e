package classify

import (
	"errors"
	"fmt"

	"github.com/ppiankov/typechart/internal/model"
)

var (
	// ErrOutOfDomain means a multiplier falls outside every classification interval
	ErrOutOfDomain = errors.New("multiplier out of domain")

	// ErrDimensionMismatch means the matrix is not square or does not match the type list
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidSymbol means a symbolic matrix holds a value outside the four symbols
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// OutOfDomainError reports a multiplier that cannot be classified.
// Attacker and Defender are -1 when the value was classified on its own.
type OutOfDomainError struct {
	Value    float64
	Attacker model.Type
	Defender model.Type
}

func (e *OutOfDomainError) Error() string {
	if e.Attacker < 0 || e.Defender < 0 {
		return fmt.Sprintf("%s: %v", ErrOutOfDomain, e.Value)
	}
	return fmt.Sprintf("%s: %s -> %s = %v", ErrOutOfDomain, e.Attacker, e.Defender, e.Value)
}

func (e *OutOfDomainError) Unwrap() error {
	return ErrOutOfDomain
}

// DimensionError reports a structural mismatch between the matrix and the type list
type DimensionError struct {
	What string // e.g. "rows", "row FIRE"
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s has %d entries, want %d", ErrDimensionMismatch, e.What, e.Got, e.Want)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}
