package merge

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/rangemerge/interval"
)

// Merge returns ranges merged under threshold.
//
// Algorithm Outline:
//  1. Copy ranges into a private working slice, validating each element.
//  2. Sort the copy by Start ascending; equal starts by End descending.
//  3. current = first element.
//  4. For each next element (s, e):
//     if s <= current.End + threshold: current.End = max(current.End, e)
//     else: emit current, current = (s, e)
//  5. Emit current.
//
// Result invariants (valid input, threshold ≥ 0):
//   - sorted ascending by Start
//   - adjacent results a, b satisfy b.Start > a.End + threshold
//   - every input interval is enclosed by exactly one result interval
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrOptionViolation).
//  2. Empty or nil ranges → empty, non-nil result, nil error.
//  3. threshold is not NaN (ErrNaNThreshold).
//  4. No element has a NaN endpoint (ErrInvalidInterval).
//  5. No element is inverted, unless the InvertedPolicy allows it (ErrInvalidInterval).
//
// Complexity:
//
//   - Time:  O(n log n)
//   - Space: O(n)
func Merge[T interval.Number](ranges []interval.Interval[T], threshold T, opts ...Option) ([]interval.Interval[T], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if len(ranges) == 0 {
		return []interval.Interval[T]{}, nil
	}
	if interval.IsNaN(threshold) {
		return nil, ErrNaNThreshold
	}

	work, err := prepare(ranges, cfg.Inverted)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(work, byStartThenLongest[T])

	return sweep(work, threshold), nil
}

// MergePairs is Merge over [start, end] pairs.
// The result is a fresh slice of pairs; pairs itself is never modified.
func MergePairs[T interval.Number](pairs [][2]T, threshold T, opts ...Option) ([][2]T, error) {
	merged, err := Merge(interval.FromPairs(pairs), threshold, opts...)
	if err != nil {
		return nil, err
	}

	return interval.ToPairs(merged), nil
}

// prepare copies ranges, applying policy to inverted elements.
func prepare[T interval.Number](ranges []interval.Interval[T], policy InvertedPolicy) ([]interval.Interval[T], error) {
	work := make([]interval.Interval[T], len(ranges))
	for i, iv := range ranges {
		if iv.HasNaN() {
			return nil, fmt.Errorf("%w: index %d: %w", ErrInvalidInterval, i, iv.Validate())
		}
		if iv.Inverted() {
			switch policy {
			case SwapInverted:
				iv = iv.Normalize()
			case KeepInverted:
				// swept as given
			default:
				return nil, fmt.Errorf("%w: index %d: %w", ErrInvalidInterval, i, iv.Validate())
			}
		}
		work[i] = iv
	}

	return work, nil
}

// byStartThenLongest orders by Start ascending and, for equal starts,
// by End descending. It is a total order on NaN-free intervals.
func byStartThenLongest[T interval.Number](a, b interval.Interval[T]) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}

	return cmp.Compare(b.End, a.End)
}

// sweep merges sorted (non-empty) in place and returns the compacted prefix.
// Writes never overtake reads: after reading sorted[i], at most i results exist.
func sweep[T interval.Number](sorted []interval.Interval[T], threshold T) []interval.Interval[T] {
	out := sorted[:0]
	current := sorted[0]
	for _, next := range sorted[1:] {
		if reaches(current.End, next.Start, threshold) {
			current.End = max(current.End, next.End)
			continue
		}
		out = append(out, current)
		current = next
	}
	out = append(out, current)

	return slices.Clip(out)
}

// reaches reports start <= end + threshold. For integer T the sum
// saturates instead of wrapping; for float T an undefined sum
// (+Inf plus -Inf) follows the sign of threshold.
func reaches[T interval.Number](end, start, threshold T) bool {
	limit := end + threshold
	switch {
	case interval.IsNaN(limit):
		return threshold > 0
	case threshold > 0 && limit < end:
		return true
	case threshold < 0 && limit > end:
		return false
	}

	return start <= limit
}
