package bed

// Tessellate splits every interval of the table into consecutive
// windows of exactly windowSize bases. The remainder of each row
// (span % windowSize) is dropped according to the alignment: left drops
// the trailing partial window, right the leading one, center trims
// remainder/2 from the start and the rest from the end. Partial windows
// are never emitted; a row narrower than windowSize contributes nothing.
//
// Rows are independent and the output preserves input row order.
func Tessellate(t Table, windowSize int, alignment Alignment) (Table, error) {
	if err := validateWindow(windowSize, alignment); err != nil {
		return nil, err
	}

	parts, err := mapRows(t, func(iv Interval) (Table, error) {
		return tessellateRow(iv, windowSize, alignment), nil
	})
	if err != nil {
		return nil, err
	}

	var out Table
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}

func tessellateRow(iv Interval, windowSize int, alignment Alignment) Table {
	remainder := iv.Width() % windowSize
	start, end := iv.ChromStart, iv.ChromEnd
	switch alignment {
	case AlignLeft:
		end -= remainder
	case AlignRight:
		start += remainder
	case AlignCenter:
		start += remainder / 2
		end -= remainder - remainder/2
	}

	windows := make(Table, 0, (end-start)/windowSize)
	for s := start; s+windowSize <= end; s += windowSize {
		windows = append(windows, Interval{
			Chrom:      iv.Chrom,
			ChromStart: s,
			ChromEnd:   s + windowSize,
			Strand:     iv.Strand,
		})
	}
	return windows
}

func validateWindow(windowSize int, alignment Alignment) error {
	if windowSize < 1 {
		return ErrWindowSize
	}
	if _, err := ParseAlignment(string(alignment)); err != nil {
		return err
	}
	return nil
}
