package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genobed/genobed/pkg/genome"
)

var (
	mergeChromosomes []string
	mergeFormat      string
	mergeOutput      string
)

var mergeCmd = &cobra.Command{
	Use:   "merge <assembly>",
	Short: "Merge cached chromosomes into a single FASTA file",
	Long: `Write every cached chromosome of an assembly into one FASTA file,
one record per chromosome, wrapped at 60 columns. --format selects
plain text, gzip, or bgzf (bgzip-compatible, indexable with samtools
faidx).

Examples:
  genobed merge sacCer3 -o sacCer3.fa
  genobed merge hg38 --format bgzf -o hg38.fa.gz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := openGenome(cmd.Context(), args[0], mergeChromosomes)
		if err != nil {
			return err
		}
		out := mergeOutput
		if out == "" {
			out = args[0] + ".fa"
		}
		if err := g.MergeFASTA(out, mergeFormat); err != nil {
			return fmt.Errorf("merging %s: %w", args[0], err)
		}
		fmt.Printf("Wrote %d chromosomes to %s\n", len(g.Chromosomes()), out)
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringSliceVar(&mergeChromosomes, "chromosomes", nil,
		"Chromosomes to include (default: all cached)")
	mergeCmd.Flags().StringVar(&mergeFormat, "format", genome.FormatPlain,
		"Output framing: plain, gzip or bgzf")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "",
		"Output path (default: <assembly>.fa)")
}
