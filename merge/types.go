// Package merge defines options, policies and error definitions
// for threshold-based range merging.
package merge

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Merge and MergePairs.
var (
	// ErrInvalidInterval is returned when an input element fails validation.
	// It always wraps the interval sentinel (interval.ErrInverted or
	// interval.ErrNaNEndpoint) and names the element index.
	ErrInvalidInterval = errors.New("merge: invalid interval")

	// ErrNaNThreshold is returned for a floating-point NaN threshold.
	ErrNaNThreshold = errors.New("merge: threshold is NaN")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("merge: invalid option supplied")
)

// InvertedPolicy decides what Merge does with an element whose Start > End.
//
//   - RejectInverted — fail with ErrInvalidInterval (default).
//   - SwapInverted   — swap the endpoints before sorting.
//   - KeepInverted   — sweep the element as given. The result is
//     deterministic but the Result invariants are no longer guaranteed.
type InvertedPolicy int

const (
	// RejectInverted fails the whole call on the first inverted element.
	RejectInverted InvertedPolicy = iota

	// SwapInverted repairs inverted elements via interval.Normalize.
	SwapInverted

	// KeepInverted passes inverted elements through unchanged.
	KeepInverted
)

// String returns the policy name.
func (p InvertedPolicy) String() string {
	switch p {
	case RejectInverted:
		return "RejectInverted"
	case SwapInverted:
		return "SwapInverted"
	case KeepInverted:
		return "KeepInverted"
	default:
		return fmt.Sprintf("InvertedPolicy(%d)", int(p))
	}
}

// Options configures Merge.
//
// Inverted – how to treat elements with Start > End (default RejectInverted).
type Options struct {
	Inverted InvertedPolicy

	// internal error recorded during option parsing
	err error
}

// Option configures Merge via functional arguments.
// If an Option is invalid it is recorded internally and surfaced
// as ErrOptionViolation when Merge is invoked.
type Option func(*Options)

// DefaultOptions returns Options with defaults:
//   - Inverted: RejectInverted
func DefaultOptions() Options {
	return Options{
		Inverted: RejectInverted,
	}
}

// WithInvertedPolicy selects how inverted elements are handled.
// An unknown policy value makes Merge return ErrOptionViolation.
func WithInvertedPolicy(p InvertedPolicy) Option {
	return func(o *Options) {
		switch p {
		case RejectInverted, SwapInverted, KeepInverted:
			o.Inverted = p
		default:
			o.err = fmt.Errorf("%w: unknown %v", ErrOptionViolation, p)
		}
	}
}
