package interval

// FromPairs converts [start, end] pairs into intervals.
// A nil input yields a nil result.
func FromPairs[T Number](pairs [][2]T) []Interval[T] {
	if pairs == nil {
		return nil
	}
	out := make([]Interval[T], len(pairs))
	for i, p := range pairs {
		out[i] = Interval[T]{Start: p[0], End: p[1]}
	}

	return out
}

// ToPairs converts intervals into [start, end] pairs.
// A nil input yields a nil result.
func ToPairs[T Number](ivs []Interval[T]) [][2]T {
	if ivs == nil {
		return nil
	}
	out := make([][2]T, len(ivs))
	for i, iv := range ivs {
		out[i] = [2]T{iv.Start, iv.End}
	}

	return out
}
