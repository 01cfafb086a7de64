package bed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTableMinimalColumns(t *testing.T) {
	table := Table{
		{Chrom: "chr1", ChromStart: 0, ChromEnd: 10},
		{Chrom: "chr2", ChromStart: 5, ChromEnd: 25},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, table))

	want := "chrom\tchromStart\tchromEnd\n" +
		"chr1\t0\t10\n" +
		"chr2\t5\t25\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableStrandAndSequenceColumns(t *testing.T) {
	table := Table{
		{Chrom: "chr1", ChromStart: 0, ChromEnd: 4, Strand: "-", Sequence: "acgt"},
		{Chrom: "chr1", ChromStart: 4, ChromEnd: 8},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, table))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "chrom\tchromStart\tchromEnd\tstrand\tsequence", lines[0])
	assert.Equal(t, "chr1\t0\t4\t-\tacgt", lines[1])
	// Missing strand serializes as ".".
	assert.Equal(t, "chr1\t4\t8\t.\t", lines[2])
}

func TestReadTableRoundTrip(t *testing.T) {
	table := Table{
		{Chrom: "chr1", ChromStart: 0, ChromEnd: 4, Strand: "+", Sequence: "acgt"},
		{Chrom: "chr2", ChromStart: 100, ChromEnd: 200, Strand: "-", Sequence: "NNNN"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, table))

	got, err := ReadTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestReadTableSequenceOnlyRoundTrip(t *testing.T) {
	// Strand and sequence are independently optional: a strand-less
	// extracted table serializes as chrom, chromStart, chromEnd,
	// sequence, and reading it back must not shift the sequence into
	// the strand column.
	table := Table{
		{Chrom: "chr1", ChromStart: 0, ChromEnd: 4, Sequence: "acgt"},
		{Chrom: "chr1", ChromStart: 7, ChromEnd: 9, Sequence: "NN"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, table))
	require.Equal(t, "chrom\tchromStart\tchromEnd\tsequence", strings.SplitN(buf.String(), "\n", 2)[0])

	got, err := ReadTable(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Empty(t, got[0].Strand)
	assert.Equal(t, "acgt", got[0].Sequence)
	assert.Equal(t, table, got)
}

func TestReadTableHeaderAfterBlankLine(t *testing.T) {
	in := "\nchrom\tchromStart\tchromEnd\nchr1\t0\t10\n"
	got, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 0, ChromEnd: 10}, got[0])
}

func TestReadTableRejectsExtraFields(t *testing.T) {
	in := "chrom\tchromStart\tchromEnd\nchr1\t0\t10\textra\n"
	_, err := ReadTable(strings.NewReader(in))
	assert.Error(t, err)
}

func TestReadTableWithoutHeader(t *testing.T) {
	in := "chr1\t0\t10\nchr1\t20\t30\n"
	got, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Interval{Chrom: "chr1", ChromStart: 20, ChromEnd: 30}, got[1])
}

func TestReadTableBadRow(t *testing.T) {
	_, err := ReadTable(strings.NewReader("chr1\tnot-a-number\t10\n"))
	assert.Error(t, err)

	_, err = ReadTable(strings.NewReader("chr1\t5\n"))
	assert.Error(t, err)
}

func TestTableSort(t *testing.T) {
	table := Table{
		{Chrom: "chr2", ChromStart: 0, ChromEnd: 1},
		{Chrom: "chr1", ChromStart: 50, ChromEnd: 60},
		{Chrom: "chr1", ChromStart: 10, ChromEnd: 20},
	}
	table.Sort()
	assert.Equal(t, "chr1", table[0].Chrom)
	assert.Equal(t, 10, table[0].ChromStart)
	assert.Equal(t, "chr2", table[2].Chrom)
}
