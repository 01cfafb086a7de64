package bed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTable serializes the table as tab-separated text with a header
// row. The column layout is always chrom, chromStart, chromEnd; a
// strand column is added when any row carries one, and a sequence
// column when any row has been extracted. This column contract is what
// downstream consumers parse, so it never changes.
func WriteTable(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)

	cols := []string{"chrom", "chromStart", "chromEnd"}
	withStrand := t.HasStrand()
	withSequence := t.HasSequence()
	if withStrand {
		cols = append(cols, "strand")
	}
	if withSequence {
		cols = append(cols, "sequence")
	}
	if _, err := bw.WriteString(strings.Join(cols, "\t") + "\n"); err != nil {
		return err
	}

	for _, iv := range t {
		fields := []string{iv.Chrom, strconv.Itoa(iv.ChromStart), strconv.Itoa(iv.ChromEnd)}
		if withStrand {
			strand := iv.Strand
			if strand == "" {
				strand = StrandNone
			}
			fields = append(fields, strand)
		}
		if withSequence {
			fields = append(fields, iv.Sequence)
		}
		if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadTable parses tab-separated interval rows. A header row (the
// first non-blank line when its first field is "chrom") names the
// columns, so the optional strand and sequence columns load into the
// right fields whichever subset is present. Headerless input falls
// back to the positional chrom, chromStart, chromEnd, strand, sequence
// layout of plain BED files.
func ReadTable(r io.Reader) (Table, error) {
	var (
		t      Table
		header []string
		first  = true
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if first {
			first = false
			if fields[0] == "chrom" {
				header = fields
				continue
			}
		}

		iv, err := parseRow(fields, header)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		t = append(t, iv)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

var positionalColumns = []string{"chrom", "chromStart", "chromEnd", "strand", "sequence"}

func parseRow(fields, header []string) (Interval, error) {
	if len(fields) < 3 {
		return Interval{}, fmt.Errorf("expected at least 3 tab-separated fields, got %d", len(fields))
	}
	cols := header
	if len(cols) == 0 {
		cols = positionalColumns
	}
	if len(fields) > len(cols) {
		return Interval{}, fmt.Errorf("expected at most %d fields, got %d", len(cols), len(fields))
	}

	var iv Interval
	for i, field := range fields {
		switch cols[i] {
		case "chrom":
			iv.Chrom = field
		case "chromStart":
			start, err := strconv.Atoi(field)
			if err != nil {
				return Interval{}, fmt.Errorf("bad chromStart: %w", err)
			}
			iv.ChromStart = start
		case "chromEnd":
			end, err := strconv.Atoi(field)
			if err != nil {
				return Interval{}, fmt.Errorf("bad chromEnd: %w", err)
			}
			iv.ChromEnd = end
		case "strand":
			iv.Strand = field
		case "sequence":
			iv.Sequence = field
		default:
			return Interval{}, fmt.Errorf("unknown column %q", cols[i])
		}
	}
	return iv, nil
}
