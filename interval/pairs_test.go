package interval_test

import (
	"testing"

	"github.com/katalvlaran/rangemerge/interval"
	"github.com/stretchr/testify/assert"
)

// TestFromPairs_ToPairs checks both directions and nil handling.
func TestFromPairs_ToPairs(t *testing.T) {
	pairs := [][2]int64{{0, 10}, {15, 20}}

	ivs := interval.FromPairs(pairs)
	assert.Equal(t, []interval.Interval[int64]{{Start: 0, End: 10}, {Start: 15, End: 20}}, ivs)
	assert.Equal(t, pairs, interval.ToPairs(ivs))

	assert.Nil(t, interval.FromPairs[int64](nil))
	assert.Nil(t, interval.ToPairs[int64](nil))
	assert.Empty(t, interval.FromPairs([][2]float64{}))
	assert.NotNil(t, interval.ToPairs([]interval.Interval[float64]{}))
}

// TestFromPairs_NoAliasing ensures the result does not share memory with its input.
func TestFromPairs_NoAliasing(t *testing.T) {
	pairs := [][2]int{{1, 2}}
	ivs := interval.FromPairs(pairs)
	ivs[0].End = 99
	assert.Equal(t, 2, pairs[0][1], "caller pairs must stay untouched")

	back := interval.ToPairs(ivs)
	back[0][0] = -1
	assert.Equal(t, 1, ivs[0].Start, "intervals must stay untouched")
}
