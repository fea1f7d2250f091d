// Package merge_test provides runnable examples for the merge package.
package merge_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rangemerge/interval"
	"github.com/katalvlaran/rangemerge/merge"
)

// ExampleMerge joins two activity windows separated by exactly the threshold.
func ExampleMerge() {
	ranges := []interval.Interval[int64]{
		{Start: 15, End: 20},
		{Start: 0, End: 10},
		{Start: 40, End: 45},
	}

	out, err := merge.Merge(ranges, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [[0, 20) [40, 45)]
}

// ExampleMergePairs works on the plain [start, end] pair shape.
func ExampleMergePairs() {
	out, err := merge.MergePairs([][2]int64{{0, 10}, {16, 20}}, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [[0 10] [16 20]]
}

// ExampleWithInvertedPolicy contrasts rejecting and repairing an inverted range.
func ExampleWithInvertedPolicy() {
	ranges := []interval.Interval[float64]{{Start: 0, End: 1.5}, {Start: 3, End: 2}}

	_, err := merge.Merge(ranges, 0.5)
	fmt.Println(errors.Is(err, interval.ErrInverted))

	out, err := merge.Merge(ranges, 0.5, merge.WithInvertedPolicy(merge.SwapInverted))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// true
	// [[0, 3)]
}
