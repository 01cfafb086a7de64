package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/genobed/genobed/pkg/genome"
)

var (
	fetchChromosomes []string
	fetchFastaDir    string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <assembly>",
	Short: "Download and cache an assembly's chromosomes",
	Long: `Download the chromosome sequences of a UCSC assembly into the local
cache. Already-cached chromosomes are not fetched again.

By default unplaced scaffolds, haplotypes, alternate loci and patch
contigs are skipped; pass --chromosomes for an explicit list.

Examples:
  genobed fetch sacCer3
  genobed fetch hg38 --chromosomes chr1,chr2,chrX
  genobed fetch hg38 --cache-dir s3://my-bucket/genomes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := openGenome(cmd.Context(), args[0], fetchChromosomes)
		if err != nil {
			return fmt.Errorf("failed to fetch %s: %w", args[0], err)
		}
		fmt.Println(g)
		fmt.Printf("Cached at %s\n", g.Path())

		if fetchFastaDir != "" {
			err := genome.DownloadFASTA(cmd.Context(), args[0], g.Chromosomes(),
				fetchFastaDir, viper.GetInt("workers"))
			if err != nil {
				return fmt.Errorf("downloading FASTA archives: %w", err)
			}
			fmt.Printf("FASTA files in %s\n", fetchFastaDir)
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringSliceVar(&fetchChromosomes, "chromosomes", nil,
		"Explicit chromosomes to download (bypasses the default name filters)")
	fetchCmd.Flags().StringVar(&fetchFastaDir, "fasta-dir", "",
		"Also pull per-chromosome .fa.gz archives from goldenPath into this directory")
}
