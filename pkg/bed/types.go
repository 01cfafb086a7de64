// Package bed derives and transforms BED-like interval tables from raw
// chromosome sequences: gap scanning, filled-region complement, window
// tessellation, window expansion, wiggled replicates and sequence
// extraction.
package bed

import (
	"errors"
	"fmt"
	"sort"
)

// Strand values recognized on an interval.
const (
	StrandForward = "+"
	StrandReverse = "-"
	StrandNone    = "."
)

// Validation errors reported before any computation happens.
var (
	ErrWindowSize  = errors.New("window size must be a positive integer")
	ErrAlignment   = errors.New("alignment must be one of: left, right, center")
	ErrWiggleSize  = errors.New("max wiggle size must be a positive integer")
	ErrWiggleCount = errors.New("wiggles must be a positive integer")
)

// ErrUnknownBase is returned when a sequence contains a symbol outside
// A/C/G/T/N (either case).
var ErrUnknownBase = errors.New("unknown nucleotide")

// Interval is one row of a BED-like table. ChromStart is inclusive,
// ChromEnd exclusive. Strand and Sequence are optional columns.
type Interval struct {
	Chrom      string `json:"chrom"`
	ChromStart int    `json:"chromStart"`
	ChromEnd   int    `json:"chromEnd"`
	Strand     string `json:"strand,omitempty"`
	Sequence   string `json:"sequence,omitempty"`
}

// Width returns the number of bases the interval spans.
func (iv Interval) Width() int {
	return iv.ChromEnd - iv.ChromStart
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s:%d-%d", iv.Chrom, iv.ChromStart, iv.ChromEnd)
}

// Table is an ordered collection of intervals.
type Table []Interval

// Sort orders the table by chromosome name, then by chromStart.
func (t Table) Sort() {
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].Chrom != t[j].Chrom {
			return t[i].Chrom < t[j].Chrom
		}
		return t[i].ChromStart < t[j].ChromStart
	})
}

// Chromosomes returns the distinct chromosome names in the table, in
// first-appearance order.
func (t Table) Chromosomes() []string {
	seen := make(map[string]bool)
	var chroms []string
	for _, iv := range t {
		if !seen[iv.Chrom] {
			seen[iv.Chrom] = true
			chroms = append(chroms, iv.Chrom)
		}
	}
	return chroms
}

// HasStrand reports whether any row carries a strand value.
func (t Table) HasStrand() bool {
	for _, iv := range t {
		if iv.Strand != "" {
			return true
		}
	}
	return false
}

// HasSequence reports whether any row carries an extracted sequence.
func (t Table) HasSequence() bool {
	for _, iv := range t {
		if iv.Sequence != "" {
			return true
		}
	}
	return false
}

// Alignment selects how a fixed-size window is anchored against a
// variable-size source interval.
type Alignment string

// Recognized alignments.
const (
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
	AlignCenter Alignment = "center"
)

// ParseAlignment validates a user-supplied alignment string.
func ParseAlignment(s string) (Alignment, error) {
	switch Alignment(s) {
	case AlignLeft, AlignRight, AlignCenter:
		return Alignment(s), nil
	}
	return "", fmt.Errorf("%w (got %q)", ErrAlignment, s)
}
