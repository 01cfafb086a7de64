package bed

import (
	"fmt"
	"sort"
)

// Complement derives the filled regions of each chromosome from its gap
// intervals and total length. Every chromosome listed in lengths is
// covered: a chromosome with no gaps yields exactly one filled interval
// [0, length), a chromosome fully spanned by a single gap yields none.
// Zero-length intervals are never emitted.
//
// Gaps may arrive in any order; they are grouped by chromosome and
// sorted by chromStart before derivation. The result is sorted by
// chromosome name, then chromStart.
func Complement(gaps Table, lengths map[string]int) (Table, error) {
	byChrom := make(map[string]Table)
	for _, g := range gaps {
		length, ok := lengths[g.Chrom]
		if !ok {
			return nil, fmt.Errorf("gap %s references a chromosome with no known length", g)
		}
		if g.ChromEnd > length {
			return nil, fmt.Errorf("gap %s overruns chromosome length %d", g, length)
		}
		byChrom[g.Chrom] = append(byChrom[g.Chrom], g)
	}

	chroms := make([]string, 0, len(lengths))
	for chrom := range lengths {
		chroms = append(chroms, chrom)
	}
	sort.Strings(chroms)

	var filled Table
	for _, chrom := range chroms {
		filled = append(filled, complementChrom(chrom, byChrom[chrom], lengths[chrom])...)
	}
	return filled, nil
}

// complementChrom derives the filled regions of a single chromosome.
func complementChrom(chrom string, gaps Table, length int) Table {
	if len(gaps) == 0 {
		if length == 0 {
			return nil
		}
		return Table{{Chrom: chrom, ChromStart: 0, ChromEnd: length}}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].ChromStart < gaps[j].ChromStart
	})

	var filled Table
	if first := gaps[0]; first.ChromStart > 0 {
		filled = append(filled, Interval{Chrom: chrom, ChromStart: 0, ChromEnd: first.ChromStart})
	}
	for i := 0; i < len(gaps)-1; i++ {
		start, end := gaps[i].ChromEnd, gaps[i+1].ChromStart
		if start < end {
			filled = append(filled, Interval{Chrom: chrom, ChromStart: start, ChromEnd: end})
		}
	}
	if last := gaps[len(gaps)-1]; last.ChromEnd < length {
		filled = append(filled, Interval{Chrom: chrom, ChromStart: last.ChromEnd, ChromEnd: length})
	}

	filled.Sort()
	return filled
}
