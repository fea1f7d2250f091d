// Package rangemerge collapses unordered collections of half-open numeric
// ranges into a sorted, non-overlapping timeline, closing every gap that
// is not wider than a caller-supplied threshold.
//
// 🚀 What is rangemerge?
//
//	A small, allocation-conscious, pure-Go library that brings together:
//		• Generic half-open intervals [Start, End) over any integer or float type
//		• Sort-and-sweep merging with a gap threshold (O(n log n))
//		• Boundary validation: NaN endpoints, inverted ranges, NaN thresholds
//		• Pair helpers for the plain [start, end] wire shape
//
// ✨ Why choose rangemerge?
//
//   - Pure – never mutates caller data, no shared state, safe from any goroutine
//   - Deterministic – stable sort, documented behavior for malformed input
//   - Typed – Interval[int64] for millisecond timestamps, Interval[float64] for seconds
//
// Under the hood, everything is organized under two subpackages:
//
//	interval/ — the Interval[T] value type, validation and pair conversion
//	merge/    — Merge / MergePairs, options and sentinel errors
//
// Quick ASCII example (threshold = 5):
//
//	[0,10)      [15,20)        [40,45)
//	|=========|....|=====|.........|====|
//	            gap 5 ≤ 5      gap 20 > 5
//
//	→ [0,20) [40,45)
//
//	go get github.com/katalvlaran/rangemerge
package rangemerge
