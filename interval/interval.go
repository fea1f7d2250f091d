package interval

import "fmt"

// Len returns End - Start. The result is only meaningful for a valid interval.
func (iv Interval[T]) Len() T {
	return iv.End - iv.Start
}

// IsEmpty reports whether the interval covers no points (Start == End).
func (iv Interval[T]) IsEmpty() bool {
	return iv.Start == iv.End
}

// Inverted reports whether Start > End.
func (iv Interval[T]) Inverted() bool {
	return iv.Start > iv.End
}

// HasNaN reports whether either endpoint is NaN. Always false for integer T.
func (iv Interval[T]) HasNaN() bool {
	return IsNaN(iv.Start) || IsNaN(iv.End)
}

// Validate checks the endpoints of iv.
//
// Checks (in order):
//  1. No endpoint is NaN (ErrNaNEndpoint).
//  2. Start <= End (ErrInverted).
//
// The returned error wraps the sentinel and names the offending interval.
// Zero-length intervals are valid.
func (iv Interval[T]) Validate() error {
	if iv.HasNaN() {
		return fmt.Errorf("%w: %v", ErrNaNEndpoint, iv)
	}
	if iv.Inverted() {
		return fmt.Errorf("%w: %v", ErrInverted, iv)
	}

	return nil
}

// Normalize returns iv with its endpoints swapped if it is inverted,
// otherwise iv unchanged.
func (iv Interval[T]) Normalize() Interval[T] {
	if iv.Inverted() {
		return Interval[T]{Start: iv.End, End: iv.Start}
	}

	return iv
}

// Contains reports whether x lies in [Start, End).
func (iv Interval[T]) Contains(x T) bool {
	return iv.Start <= x && x < iv.End
}

// Encloses reports whether o lies entirely within iv, i.e.
// iv.Start <= o.Start and o.End <= iv.End. An empty o is enclosed
// as long as its position is within iv's bounds.
func (iv Interval[T]) Encloses(o Interval[T]) bool {
	return iv.Start <= o.Start && o.End <= iv.End
}

// String renders the interval as "[start, end)".
func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v)", iv.Start, iv.End)
}

// IsNaN reports whether v is a floating-point NaN. Always false for integer T.
// NaN is the only value that compares unequal to itself.
func IsNaN[T Number](v T) bool {
	return v != v
}
