package bed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTessellateLeft(t *testing.T) {
	in := Table{{Chrom: "chr1", ChromStart: 10, ChromEnd: 35}}
	out, err := Tessellate(in, 10, AlignLeft)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 10, ChromEnd: 20}, out[0])
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 20, ChromEnd: 30}, out[1])
}

func TestTessellateRight(t *testing.T) {
	in := Table{{Chrom: "chr1", ChromStart: 10, ChromEnd: 35}}
	out, err := Tessellate(in, 10, AlignRight)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 15, ChromEnd: 25}, out[0])
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 25, ChromEnd: 35}, out[1])
}

func TestTessellateCenter(t *testing.T) {
	// span 27, remainder 7: trim 3 from the start, 4 from the end.
	in := Table{{Chrom: "chr1", ChromStart: 0, ChromEnd: 27}}
	out, err := Tessellate(in, 10, AlignCenter)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 3, ChromEnd: 13}, out[0])
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 13, ChromEnd: 23}, out[1])
}

func TestTessellateExactFit(t *testing.T) {
	in := Table{{Chrom: "chr1", ChromStart: 0, ChromEnd: 30}}
	for _, alignment := range []Alignment{AlignLeft, AlignRight, AlignCenter} {
		out, err := Tessellate(in, 10, alignment)
		require.NoError(t, err)
		assert.Len(t, out, 3, "alignment %s", alignment)
		assert.Equal(t, 0, out[0].ChromStart)
		assert.Equal(t, 30, out[2].ChromEnd)
	}
}

func TestTessellateNarrowerThanWindow(t *testing.T) {
	in := Table{{Chrom: "chr1", ChromStart: 0, ChromEnd: 7}}
	out, err := Tessellate(in, 10, AlignLeft)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTessellateWidthAndCountInvariant(t *testing.T) {
	in := Table{
		{Chrom: "chr1", ChromStart: 3, ChromEnd: 211},
		{Chrom: "chr1", ChromStart: 500, ChromEnd: 501},
		{Chrom: "chr2", ChromStart: 0, ChromEnd: 4096},
	}
	for _, windowSize := range []int{1, 7, 64, 200} {
		for _, alignment := range []Alignment{AlignLeft, AlignRight, AlignCenter} {
			out, err := Tessellate(in, windowSize, alignment)
			require.NoError(t, err)

			want := 0
			for _, iv := range in {
				want += iv.Width() / windowSize
			}
			assert.Len(t, out, want)
			for _, iv := range out {
				assert.Equal(t, windowSize, iv.Width())
			}
		}
	}
}

func TestTessellatePreservesRowOrder(t *testing.T) {
	in := Table{
		{Chrom: "chrB", ChromStart: 0, ChromEnd: 20},
		{Chrom: "chrA", ChromStart: 0, ChromEnd: 20},
	}
	out, err := Tessellate(in, 10, AlignLeft)
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, "chrB", out[0].Chrom)
	assert.Equal(t, "chrB", out[1].Chrom)
	assert.Equal(t, "chrA", out[2].Chrom)
}

func TestTessellateValidation(t *testing.T) {
	in := Table{{Chrom: "chr1", ChromStart: 0, ChromEnd: 100}}

	_, err := Tessellate(in, 0, AlignLeft)
	assert.ErrorIs(t, err, ErrWindowSize)

	_, err = Tessellate(in, -5, AlignLeft)
	assert.ErrorIs(t, err, ErrWindowSize)

	_, err = Tessellate(in, 10, Alignment("kebab"))
	assert.ErrorIs(t, err, ErrAlignment)
}
