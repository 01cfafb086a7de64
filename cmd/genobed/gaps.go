package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	gapsChromosomes []string
	gapsOutput      string
)

var gapsCmd = &cobra.Command{
	Use:   "gaps <assembly>",
	Short: "Scan an assembly for gap regions and emit them as BED",
	Long: `Scan the cached chromosomes of an assembly for gaps (runs of unknown
'N' bases) and write them as a BED table.

Examples:
  genobed gaps sacCer3
  genobed gaps hg38 --chromosomes chrM -o chrM-gaps.bed`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := openGenome(cmd.Context(), args[0], gapsChromosomes)
		if err != nil {
			return err
		}
		gaps, err := g.Gaps()
		if err != nil {
			return fmt.Errorf("scanning gaps: %w", err)
		}
		return writeTable(gapsOutput, gaps)
	},
}

var filledCmd = &cobra.Command{
	Use:   "filled <assembly>",
	Short: "Emit the filled (gap-free) regions of an assembly as BED",
	Long: `Derive the filled regions of an assembly: the complement of its gaps
within each chromosome. A chromosome without gaps yields one region
spanning its whole length.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := openGenome(cmd.Context(), args[0], gapsChromosomes)
		if err != nil {
			return err
		}
		filled, err := g.Filled()
		if err != nil {
			return fmt.Errorf("deriving filled regions: %w", err)
		}
		return writeTable(gapsOutput, filled)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{gapsCmd, filledCmd} {
		cmd.Flags().StringSliceVar(&gapsChromosomes, "chromosomes", nil,
			"Chromosomes to scan (default: all cached)")
		cmd.Flags().StringVarP(&gapsOutput, "output", "o", "-",
			"Output file (default: stdout)")
	}
}
