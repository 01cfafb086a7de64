package main

import (
	"github.com/spf13/cobra"

	"github.com/genobed/genobed/pkg/bed"
)

var (
	tessellateSize      int
	tessellateAlignment string
	tessellateInput     string
	tessellateOutput    string
)

var tessellateCmd = &cobra.Command{
	Use:   "tessellate",
	Short: "Split BED intervals into fixed-size windows",
	Long: `Split every interval of a BED table into consecutive windows of
exactly --window-size bases. The remainder of each interval is dropped
on the side chosen by --alignment (left drops the trailing partial
window, right the leading one, center splits the trim between both
sides). Partial windows are never emitted.

Examples:
  genobed filled sacCer3 | genobed tessellate --window-size 200
  genobed tessellate -i filled.bed --window-size 200 --alignment center`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := readTable(tessellateInput)
		if err != nil {
			return err
		}
		out, err := bed.Tessellate(table, tessellateSize, bed.Alignment(tessellateAlignment))
		if err != nil {
			return err
		}
		return writeTable(tessellateOutput, out)
	},
}

var (
	expandSize      int
	expandAlignment string
	expandInput     string
	expandOutput    string
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Re-anchor BED intervals to a fixed size",
	Long: `Set every interval of a BED table to exactly --window-size bases
without subdividing it: left keeps chromStart fixed, right keeps
chromEnd fixed, center keeps the midpoint fixed. Boundaries are not
clipped to the chromosome.

Center alignment suits enhancer peaks; promoter peaks usually want
left or right depending on the strand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := readTable(expandInput)
		if err != nil {
			return err
		}
		out, err := bed.Expand(table, expandSize, bed.Alignment(expandAlignment))
		if err != nil {
			return err
		}
		return writeTable(expandOutput, out)
	},
}

func init() {
	tessellateCmd.Flags().IntVar(&tessellateSize, "window-size", 200,
		"Target window size in bases")
	tessellateCmd.Flags().StringVar(&tessellateAlignment, "alignment", "left",
		"Window alignment: left, right or center")
	tessellateCmd.Flags().StringVarP(&tessellateInput, "input", "i", "-",
		"Input BED file (default: stdin)")
	tessellateCmd.Flags().StringVarP(&tessellateOutput, "output", "o", "-",
		"Output file (default: stdout)")

	expandCmd.Flags().IntVar(&expandSize, "window-size", 200,
		"Target window size in bases")
	expandCmd.Flags().StringVar(&expandAlignment, "alignment", "center",
		"Window alignment: left, right or center")
	expandCmd.Flags().StringVarP(&expandInput, "input", "i", "-",
		"Input BED file (default: stdin)")
	expandCmd.Flags().StringVarP(&expandOutput, "output", "o", "-",
		"Output file (default: stdout)")
}
