package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "genobed",
	Short: "genobed - genome downloader and BED interval toolkit",
	Long: `genobed downloads chromosome sequences for UCSC genome assemblies,
caches them locally (or on S3), and derives BED-like interval tables
from the raw nucleotides: gap regions, filled regions, tessellated
windows, expanded windows, wiggled replicates and extracted sequences.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("cache-dir", "genomes",
		"Cache location for downloaded assemblies (local path or s3://bucket/prefix)")
	rootCmd.PersistentFlags().Int("workers", 0,
		"Parallel workers for downloads and scans (0 = one per CPU)")
	rootCmd.PersistentFlags().Bool("compress", false,
		"Compress cached chromosome payloads with zstd")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"Print progress while downloading")

	viper.BindPFlag("cache-dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("compress", rootCmd.PersistentFlags().Lookup("compress"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(filledCmd)
	rootCmd.AddCommand(tessellateCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(wiggleCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(genomesCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads optional defaults from $HOME/.genobed.yaml or a
// genobed.yaml in the working directory. Flags always win.
func initConfig() {
	viper.SetConfigName(".genobed")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("genobed")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // missing config file is fine
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("genobed version 0.1.0")
	},
}
