package bed

// Expand re-anchors every interval to exactly windowSize bases without
// subdividing it. Left keeps chromStart fixed, right keeps chromEnd
// fixed, center keeps the midpoint fixed (floor(w/2) before it,
// ceil(w/2) after, so the width is exact for odd sizes too).
//
// Boundaries are not clipped to the chromosome: an expanded interval
// may start below zero or end past the chromosome length, and it is the
// caller's job to filter those out.
func Expand(t Table, windowSize int, alignment Alignment) (Table, error) {
	if err := validateWindow(windowSize, alignment); err != nil {
		return nil, err
	}

	out := make(Table, len(t))
	for i, iv := range t {
		out[i] = expandRow(iv, windowSize, alignment)
	}
	return out, nil
}

func expandRow(iv Interval, windowSize int, alignment Alignment) Interval {
	switch alignment {
	case AlignLeft:
		iv.ChromEnd = iv.ChromStart + windowSize
	case AlignRight:
		iv.ChromStart = iv.ChromEnd - windowSize
	case AlignCenter:
		// Arithmetic shift, not division: the midpoint must floor even
		// when an unclipped interval makes the sum negative.
		mid := (iv.ChromStart + iv.ChromEnd) >> 1
		iv.ChromStart = mid - windowSize/2
		iv.ChromEnd = mid + (windowSize - windowSize/2)
	}
	return iv
}
