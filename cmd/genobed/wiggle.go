package main

import (
	"github.com/spf13/cobra"

	"github.com/genobed/genobed/pkg/bed"
)

var (
	wiggleMax    int
	wiggleCount  int
	wiggleSeed   int64
	wiggleInput  string
	wiggleOutput string
)

var wiggleCmd = &cobra.Command{
	Use:   "wiggle",
	Short: "Generate randomly shifted replicates of BED intervals",
	Long: `Create --wiggles randomly shifted copies of every interval for data
augmentation. Each copy is shifted by an offset drawn from
[-max-wiggle-size, max-wiggle-size), applied to both ends so widths
are preserved; a chromStart pushed below zero is clamped to 0.

The generator is seeded: the same input, sizes and --seed always
reproduce the same table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := readTable(wiggleInput)
		if err != nil {
			return err
		}
		out, err := bed.Wiggle(table, wiggleMax, wiggleCount, wiggleSeed)
		if err != nil {
			return err
		}
		return writeTable(wiggleOutput, out)
	},
}

func init() {
	wiggleCmd.Flags().IntVar(&wiggleMax, "max-wiggle-size", 100,
		"Maximum shift in bases (exclusive upper bound)")
	wiggleCmd.Flags().IntVar(&wiggleCount, "wiggles", 10,
		"Replicates to generate per input interval")
	wiggleCmd.Flags().Int64Var(&wiggleSeed, "seed", 42,
		"Random seed for reproducible output")
	wiggleCmd.Flags().StringVarP(&wiggleInput, "input", "i", "-",
		"Input BED file (default: stdin)")
	wiggleCmd.Flags().StringVarP(&wiggleOutput, "output", "o", "-",
		"Output file (default: stdout)")
}
