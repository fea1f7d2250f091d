// Package interval defines the half-open numeric range used across
// rangemerge, together with its validation rules and conversions to the
// plain [2]T pair shape.
//
// 🚀 What is an Interval?
//
//	Interval[T] is the pair (Start, End) read as [Start, End): Start is
//	included, End is excluded. T is any integer or floating-point type,
//	so the same code serves millisecond timestamps (int64), byte offsets
//	(uint64) and fractional seconds (float64).
//
// ✨ Key features:
//   - value semantics: copying an Interval never aliases caller data
//   - Validate reports NaN endpoints and inverted ranges as sentinel errors
//   - Normalize repairs an inverted range by swapping its endpoints
//   - FromPairs / ToPairs bridge to [][2]T input and output
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rangemerge/interval"
//
//	iv := interval.New[int64](1000, 2500)
//	if err := iv.Validate(); err != nil {
//	  // errors.Is(err, interval.ErrInverted) / interval.ErrNaNEndpoint
//	}
//	fmt.Println(iv, iv.Len(), iv.Contains(2499)) // [1000, 2500) 1500 true
//
// No timezone or calendar semantics are attached: endpoints are plain
// numbers in whatever unit the caller chose.
package interval
