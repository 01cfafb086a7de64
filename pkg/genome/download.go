package genome

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// GoldenPathURL is the UCSC bulk-download host serving per-chromosome
// FASTA archives. A variable so tests can point it at a local server.
var GoldenPathURL = "http://hgdownload.cse.ucsc.edu/goldenPath"

// download fetches every selected chromosome that is not yet cached.
// Chromosomes download in parallel on the genome's worker pool.
func (g *Genome) download(ctx context.Context) error {
	var missing []string
	for _, chrom := range g.selected {
		if !g.IsCached(chrom) {
			missing = append(missing, chrom)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if g.verbose {
		fmt.Printf("Downloading %d chromosomes for genome %s...\n", len(missing), g.assembly)
	}

	return forEach(g.workers, len(missing), func(i int) error {
		chrom := missing[i]
		dna, err := g.client.Sequence(ctx, g.assembly, chrom, 0, g.lengths[chrom])
		if err != nil {
			return fmt.Errorf("downloading chromosome %s: %w", chrom, err)
		}
		if err := g.writeChromosome(chrom, dna); err != nil {
			return fmt.Errorf("caching chromosome %s: %w", chrom, err)
		}
		if g.verbose {
			fmt.Printf("  %s (%d bases)\n", chrom, len(dna))
		}
		return nil
	})
}

// DownloadFASTA pulls per-chromosome FASTA archives from the UCSC
// goldenPath mirror into dir, decompressing each <chrom>.fa.gz to
// <chrom>.fa. Unlike the REST path used by New, this is the bulk route
// for whole-assembly downloads.
func DownloadFASTA(ctx context.Context, assembly string, chroms []string, dir string, workers int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	client := &http.Client{}
	return forEach(workers, len(chroms), func(i int) error {
		chrom := chroms[i]
		url := fmt.Sprintf("%s/%s/chromosomes/%s.fa.gz", GoldenPathURL, assembly, chrom)
		target := filepath.Join(dir, chrom+".fa")
		if _, err := os.Stat(target); err == nil {
			return nil
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("downloading %s: %w", url, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("downloading %s: %s", url, resp.Status)
		}

		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return fmt.Errorf("decompressing %s: %w", url, err)
		}
		defer zr.Close()

		out, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, zr); err != nil {
			out.Close()
			os.Remove(target)
			return fmt.Errorf("writing %s: %w", target, err)
		}
		return out.Close()
	})
}
