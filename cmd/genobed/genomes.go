package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/genobed/genobed/pkg/ucsc"
)

var genomesOrganism string

var genomesCmd = &cobra.Command{
	Use:   "genomes",
	Short: "List the assemblies available from UCSC",
	Long: `Query the UCSC Genome Browser for every available assembly and print
them with their organism and description.

Examples:
  genobed genomes
  genobed genomes --organism Human`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := ucsc.NewClient()
		genomes, err := client.Genomes(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing genomes: %w", err)
		}

		assemblies := make([]string, 0, len(genomes))
		for assembly, info := range genomes {
			if genomesOrganism != "" && info.Organism != genomesOrganism {
				continue
			}
			assemblies = append(assemblies, assembly)
		}
		sort.Strings(assemblies)

		fmt.Printf("%-16s %-24s %s\n", "Assembly", "Organism", "Description")
		for _, assembly := range assemblies {
			info := genomes[assembly]
			fmt.Printf("%-16s %-24s %s\n", assembly, info.Organism, info.Description)
		}
		return nil
	},
}

func init() {
	genomesCmd.Flags().StringVar(&genomesOrganism, "organism", "",
		"Only list assemblies for this organism")
}
