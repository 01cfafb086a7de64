package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/genobed/genobed/pkg/bed"
	"github.com/genobed/genobed/pkg/genome"
)

// openGenome loads an assembly with the persistent-flag settings
// applied.
func openGenome(ctx context.Context, assembly string, chromosomes []string) (*genome.Genome, error) {
	opts := []genome.Option{
		genome.WithCacheDir(viper.GetString("cache-dir")),
		genome.WithWorkers(viper.GetInt("workers")),
		genome.WithCompression(viper.GetBool("compress")),
		genome.WithVerbose(viper.GetBool("verbose")),
	}
	if len(chromosomes) > 0 {
		opts = append(opts, genome.WithChromosomes(chromosomes...))
	}
	return genome.New(ctx, assembly, opts...)
}

// readTable loads a BED table from a file, or from stdin when the path
// is "-" or empty.
func readTable(path string) (bed.Table, error) {
	if path == "" || path == "-" {
		return bed.ReadTable(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bed.ReadTable(f)
}

// writeTable writes a BED table to a file, or to stdout when the path
// is "-" or empty.
func writeTable(path string, t bed.Table) error {
	var w io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := bed.WriteTable(w, t); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
