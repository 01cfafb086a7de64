package bed

import "math/rand"

// Wiggle generates wiggles randomly shifted copies of every row for
// data augmentation. The output holds wiggles consecutive blocks of the
// input table; each output row is shifted by its own offset drawn from
// [-maxWiggle, maxWiggle), applied to both chromStart and chromEnd so
// the width is preserved. A chromStart pushed below zero is clamped
// back to 0.
//
// The generator is seeded, so identical inputs always reproduce
// identical output.
func Wiggle(t Table, maxWiggle, wiggles int, seed int64) (Table, error) {
	if maxWiggle < 1 {
		return nil, ErrWiggleSize
	}
	if wiggles < 1 {
		return nil, ErrWiggleCount
	}

	rng := rand.New(rand.NewSource(seed))
	out := make(Table, 0, len(t)*wiggles)
	for rep := 0; rep < wiggles; rep++ {
		out = append(out, t...)
	}
	for i := range out {
		offset := rng.Intn(2*maxWiggle) - maxWiggle
		out[i].ChromStart += offset
		out[i].ChromEnd += offset
		if out[i].ChromStart < 0 {
			out[i].ChromStart = 0
		}
	}
	return out, nil
}
