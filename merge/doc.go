// Package merge collapses an unordered collection of half-open intervals
// into a sorted, non-overlapping sequence, closing every gap that is not
// wider than a threshold.
//
// 🚀 What does Merge do?
//
//	Given ranges such as recorded activity windows, Merge returns the
//	minimal timeline in which two neighbours are joined whenever the
//	next one starts no later than current.End + threshold:
//	  • overlapping and touching ranges always join (threshold ≥ 0)
//	  • a gap of exactly threshold joins; a wider gap splits
//	  • a negative threshold only joins ranges overlapping by ≥ |threshold|
//
// ✨ Key features:
//   - generic over every integer and float type (interval.Number)
//   - caller data is never modified; the result never aliases the input
//   - deterministic tie-break: equal starts are ordered by End descending,
//     so the result does not depend on input order
//   - integer overflow of End+threshold saturates instead of wrapping
//   - malformed input is rejected at the boundary (see InvertedPolicy)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/rangemerge/interval"
//	  "github.com/katalvlaran/rangemerge/merge"
//	)
//
//	ranges := []interval.Interval[int64]{{Start: 0, End: 10}, {Start: 15, End: 20}}
//	out, err := merge.Merge(ranges, 5)           // [[0, 20)]
//	pairs, err := merge.MergePairs([][2]int64{{0, 10}, {16, 20}}, 5)
//	                                             // [[0 10] [16 20]]
//
// Errors:
//   - ErrInvalidInterval — NaN endpoint, or Start > End under RejectInverted.
//   - ErrNaNThreshold    — threshold is NaN.
//   - ErrOptionViolation — unknown InvertedPolicy.
//
// Empty or nil input is not an error: the result is an empty, non-nil slice.
//
// Performance:
//
//   - Time:   O(n log n) sort + O(n) sweep
//   - Memory: O(n), a single working copy compacted in place
package merge
