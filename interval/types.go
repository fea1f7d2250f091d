package interval

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors reported by Validate.
var (
	// ErrInverted indicates Start > End.
	ErrInverted = errors.New("interval: start is greater than end")

	// ErrNaNEndpoint indicates that Start or End is NaN (floating-point T only).
	ErrNaNEndpoint = errors.New("interval: endpoint is NaN")
)

// Number is the set of endpoint types an Interval may carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// Interval is the half-open range [Start, End).
//
// The zero value is the empty range [0, 0). An Interval is a plain value;
// functions in this module never modify one in place behind a caller's back.
type Interval[T Number] struct {
	Start T
	End   T
}

// New returns the interval [start, end). No validation is performed;
// call Validate when the endpoints come from untrusted input.
func New[T Number](start, end T) Interval[T] {
	return Interval[T]{Start: start, End: end}
}
