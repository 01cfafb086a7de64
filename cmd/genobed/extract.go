package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	extractInput  string
	extractOutput string
)

var extractCmd = &cobra.Command{
	Use:   "extract <assembly>",
	Short: "Populate the sequence column of a BED table",
	Long: `Slice the nucleotide sequence of every interval in a BED table out
of the cached assembly. Intervals on the '-' strand receive the
reverse complement of their slice.

Examples:
  genobed gaps sacCer3 | genobed extract sacCer3
  genobed extract hg38 -i peaks.bed -o peaks-with-seq.bed`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := readTable(extractInput)
		if err != nil {
			return err
		}
		g, err := openGenome(cmd.Context(), args[0], table.Chromosomes())
		if err != nil {
			return err
		}
		out, err := g.ToSequence(table)
		if err != nil {
			return fmt.Errorf("extracting sequences: %w", err)
		}
		return writeTable(extractOutput, out)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "-",
		"Input BED file (default: stdin)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "-",
		"Output file (default: stdout)")
}
