package bed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplementNoGaps(t *testing.T) {
	filled, err := Complement(nil, map[string]int{"chr1": 500})
	require.NoError(t, err)
	require.Len(t, filled, 1)
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 0, ChromEnd: 500}, filled[0])
}

func TestComplementSingleGapSpanningChromosome(t *testing.T) {
	gaps := Table{{Chrom: "chr1", ChromStart: 0, ChromEnd: 100}}
	filled, err := Complement(gaps, map[string]int{"chr1": 100})
	require.NoError(t, err)
	assert.Empty(t, filled)
}

func TestComplementLeadingAndTrailing(t *testing.T) {
	gaps := Table{{Chrom: "chr1", ChromStart: 10, ChromEnd: 20}}
	filled, err := Complement(gaps, map[string]int{"chr1": 50})
	require.NoError(t, err)
	require.Len(t, filled, 2)
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 0, ChromEnd: 10}, filled[0])
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 20, ChromEnd: 50}, filled[1])
}

func TestComplementGapTouchingBothEnds(t *testing.T) {
	gaps := Table{
		{Chrom: "chr1", ChromStart: 0, ChromEnd: 5},
		{Chrom: "chr1", ChromStart: 8, ChromEnd: 12},
	}
	filled, err := Complement(gaps, map[string]int{"chr1": 12})
	require.NoError(t, err)
	require.Len(t, filled, 1)
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 5, ChromEnd: 8}, filled[0])
}

func TestComplementUnsortedGaps(t *testing.T) {
	gaps := Table{
		{Chrom: "chr1", ChromStart: 30, ChromEnd: 40},
		{Chrom: "chr1", ChromStart: 5, ChromEnd: 10},
	}
	filled, err := Complement(gaps, map[string]int{"chr1": 45})
	require.NoError(t, err)
	require.Len(t, filled, 3)
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 0, ChromEnd: 5}, filled[0])
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 10, ChromEnd: 30}, filled[1])
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 40, ChromEnd: 45}, filled[2])
}

func TestComplementMultipleChromosomes(t *testing.T) {
	gaps := Table{{Chrom: "chr2", ChromStart: 0, ChromEnd: 3}}
	filled, err := Complement(gaps, map[string]int{"chr1": 10, "chr2": 8})
	require.NoError(t, err)
	require.Len(t, filled, 2)
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 0, ChromEnd: 10}, filled[0])
	assert.Equal(t, Interval{Chrom: "chr2", ChromStart: 3, ChromEnd: 8}, filled[1])
}

func TestComplementUnknownChromosome(t *testing.T) {
	gaps := Table{{Chrom: "chrX", ChromStart: 0, ChromEnd: 3}}
	_, err := Complement(gaps, map[string]int{"chr1": 10})
	assert.Error(t, err)
}

func TestComplementGapPastChromosomeEnd(t *testing.T) {
	gaps := Table{{Chrom: "chr1", ChromStart: 5, ChromEnd: 20}}
	_, err := Complement(gaps, map[string]int{"chr1": 10})
	assert.Error(t, err)
}

// Gaps plus their complement must tile [0, length) exactly.
func TestGapFilledTiling(t *testing.T) {
	sequences := map[string]string{
		"chr1": "NNNacgtNN",
		"chr2": strings.Repeat("n", 40),
		"chr3": "acgtACGT",
		"chr4": "aNaNNaNNNa",
	}

	var gaps Table
	lengths := make(map[string]int)
	for chrom, seq := range sequences {
		gaps = append(gaps, Gaps(chrom, seq)...)
		lengths[chrom] = len(seq)
	}

	filled, err := Complement(gaps, lengths)
	require.NoError(t, err)

	tiles := append(Table{}, gaps...)
	tiles = append(tiles, filled...)
	tiles.Sort()

	covered := make(map[string]int)
	for _, iv := range tiles {
		assert.Greater(t, iv.Width(), 0)
		assert.Equal(t, covered[iv.Chrom], iv.ChromStart, "tile %s leaves a hole or overlaps", iv)
		covered[iv.Chrom] = iv.ChromEnd
	}
	for chrom, length := range lengths {
		assert.Equal(t, length, covered[chrom], "chromosome %s not fully tiled", chrom)
	}
}
