package bed

import "strings"

// Gaps scans a chromosome sequence and returns one interval per maximal
// run of unknown bases. A base is unknown iff it is 'n' or 'N'. The scan
// is a single left-to-right pass; an empty or fully-known sequence
// yields an empty table, a fully-unknown sequence yields one gap
// spanning the whole length.
func Gaps(chrom, sequence string) Table {
	var gaps Table
	n := len(sequence)
	for i := 0; i < n; {
		off := strings.IndexAny(sequence[i:], "nN")
		if off < 0 {
			break
		}
		start := i + off
		end := start + 1
		for end < n && isUnknown(sequence[end]) {
			end++
		}
		gaps = append(gaps, Interval{Chrom: chrom, ChromStart: start, ChromEnd: end})
		i = end
	}
	return gaps
}

func isUnknown(b byte) bool {
	return b == 'n' || b == 'N'
}
