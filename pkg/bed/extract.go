package bed

import "fmt"

var complement [256]byte

func init() {
	for _, pair := range []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'}, {'a', 't'}, {'c', 'g'},
		{'N', 'N'}, {'n', 'n'},
	} {
		complement[pair.a] = pair.b
		complement[pair.b] = pair.a
	}
}

// ReverseComplement returns the reverse complement of a nucleotide
// sequence. Only A/C/G/T/N in either case are defined; case is
// preserved, so soft-masked lowercase stays lowercase. Any other
// symbol, ambiguity codes included, is an ErrUnknownBase error rather
// than being passed through.
func ReverseComplement(sequence string) (string, error) {
	n := len(sequence)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[sequence[n-1-i]]
		if c == 0 {
			return "", fmt.Errorf("%w %q at position %d", ErrUnknownBase, sequence[n-1-i], n-1-i)
		}
		out[i] = c
	}
	return string(out), nil
}

// Extract returns a copy of the table with the Sequence column
// populated from the per-chromosome sequences. Each row receives
// sequence[chromStart:chromEnd]; rows on the reverse strand receive the
// reverse complement instead. Rows are independent and processed in
// parallel, output order matches input order.
func Extract(t Table, chromosomes map[string]string) (Table, error) {
	parts, err := mapRows(t, func(iv Interval) (Table, error) {
		sequence, ok := chromosomes[iv.Chrom]
		if !ok {
			return nil, fmt.Errorf("no sequence for chromosome %q", iv.Chrom)
		}
		if iv.ChromStart < 0 || iv.ChromEnd > len(sequence) || iv.ChromStart > iv.ChromEnd {
			return nil, fmt.Errorf("interval %s out of range for chromosome of length %d", iv, len(sequence))
		}
		iv.Sequence = sequence[iv.ChromStart:iv.ChromEnd]
		if iv.Strand == StrandReverse {
			rc, err := ReverseComplement(iv.Sequence)
			if err != nil {
				return nil, fmt.Errorf("interval %s: %w", iv, err)
			}
			iv.Sequence = rc
		}
		return Table{iv}, nil
	})
	if err != nil {
		return nil, err
	}

	out := make(Table, 0, len(t))
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}
