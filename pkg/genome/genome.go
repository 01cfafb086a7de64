// Package genome downloads chromosome sequences for UCSC genome
// assemblies, caches them on a storage backend (local filesystem or
// S3), and exposes the gap, filled-region and sequence-extraction
// operations of the bed package over the cached data.
package genome

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/genobed/genobed/pkg/bed"
	"github.com/genobed/genobed/pkg/ucsc"
)

// DefaultCacheDir is where assemblies are cached unless overridden.
const DefaultCacheDir = "genomes"

// DefaultFilters lists the chromosome-name substrings excluded by
// default: unplaced scaffolds, haplotypes, alternate loci and patch
// contigs. Matching is case-insensitive. The filters are ignored when
// an explicit chromosome list is given.
var DefaultFilters = []string{
	"chru", "chrmt", "scaffold", "contig", "super",
	"chrbin", "random", "hap", "alt", "fix",
}

// Cache file layout, relative to <cacheDir>/<assembly>.
const (
	infoFile        = "genome_informations.json"
	chromosomesFile = "chromosomes.json"
	chromosomeDir   = "chromosomes"
)

// chromosomePayload is the cached per-chromosome document.
type chromosomePayload struct {
	DNA string `json:"dna"`
}

// Genome holds one assembly's chromosome sequences, loaded from the
// cache or downloaded from the UCSC API on first use.
type Genome struct {
	assembly string
	info     ucsc.GenomeInfo
	lengths  map[string]int    // every chromosome of the assembly
	seqs     map[string]string // selected chromosomes only
	selected []string          // sorted selection

	client   *ucsc.Client
	storage  Storage
	comp     *Compressor
	workers  int
	compress bool
	verbose  bool
}

// Option configures a Genome before it loads.
type Option func(*options)

type options struct {
	chromosomes []string
	filters     []string
	cacheDir    string
	workers     int
	compress    bool
	verbose     bool
	client      *ucsc.Client
}

// WithChromosomes restricts the genome to an explicit chromosome list,
// bypassing the name filters.
func WithChromosomes(chromosomes ...string) Option {
	return func(o *options) { o.chromosomes = chromosomes }
}

// WithFilters replaces the default chromosome-name filters.
func WithFilters(filters ...string) Option {
	return func(o *options) { o.filters = filters }
}

// WithCacheDir sets the cache location. An s3://bucket/prefix location
// selects the S3 backend.
func WithCacheDir(dir string) Option {
	return func(o *options) { o.cacheDir = dir }
}

// WithWorkers sets the download/scan pool size. Non-positive means one
// worker per CPU.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithCompression enables zstd compression of cached chromosome
// payloads.
func WithCompression(on bool) Option {
	return func(o *options) { o.compress = on }
}

// WithVerbose enables progress output on stdout.
func WithVerbose(on bool) Option {
	return func(o *options) { o.verbose = on }
}

// WithClient substitutes the UCSC API client, mainly for tests.
func WithClient(c *ucsc.Client) Option {
	return func(o *options) { o.client = c }
}

// New opens an assembly: cached metadata and sequences are loaded from
// the cache directory, anything missing is fetched from the UCSC API
// and cached for the next run. It fails when the assembly is unknown to
// UCSC, when no chromosome survives filtering, or when a cached payload
// is corrupt (the corrupt file is deleted so the next run can re-fetch
// it).
func New(ctx context.Context, assembly string, opts ...Option) (*Genome, error) {
	o := options{
		filters:  DefaultFilters,
		cacheDir: DefaultCacheDir,
		client:   ucsc.NewClient(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	storage, err := NewStorage(joinCachePath(o.cacheDir, assembly))
	if err != nil {
		return nil, err
	}
	comp, err := NewCompressor()
	if err != nil {
		return nil, err
	}

	g := &Genome{
		assembly: assembly,
		client:   o.client,
		storage:  storage,
		comp:     comp,
		workers:  o.workers,
		compress: o.compress,
		verbose:  o.verbose,
	}

	if err := g.loadMetadata(ctx); err != nil {
		return nil, err
	}
	if err := g.selectChromosomes(o.chromosomes, o.filters); err != nil {
		return nil, err
	}
	if err := g.download(ctx); err != nil {
		return nil, err
	}
	if err := g.load(); err != nil {
		return nil, err
	}
	return g, nil
}

func joinCachePath(dir, assembly string) string {
	if strings.HasPrefix(dir, "s3://") {
		return strings.TrimSuffix(dir, "/") + "/" + assembly
	}
	return dir + "/" + assembly
}

// loadMetadata loads the assembly record and chromosome lengths from
// the cache, falling back to the UCSC API and caching the result.
func (g *Genome) loadMetadata(ctx context.Context) error {
	if data, err := g.storage.ReadFile(infoFile); err == nil {
		if err := json.Unmarshal(data, &g.info); err != nil {
			return fmt.Errorf("cached %s is corrupt: %w", infoFile, err)
		}
	} else {
		info, err := g.client.GenomeInfo(ctx, g.assembly)
		if err != nil {
			return err
		}
		g.info = info
		data, _ := json.MarshalIndent(info, "", "  ")
		if err := g.storage.WriteFile(infoFile, data); err != nil {
			return fmt.Errorf("caching %s: %w", infoFile, err)
		}
	}

	if data, err := g.storage.ReadFile(chromosomesFile); err == nil {
		if err := json.Unmarshal(data, &g.lengths); err != nil {
			return fmt.Errorf("cached %s is corrupt: %w", chromosomesFile, err)
		}
	} else {
		lengths, err := g.client.Chromosomes(ctx, g.assembly)
		if err != nil {
			return err
		}
		g.lengths = lengths
		data, _ := json.MarshalIndent(lengths, "", "  ")
		if err := g.storage.WriteFile(chromosomesFile, data); err != nil {
			return fmt.Errorf("caching %s: %w", chromosomesFile, err)
		}
	}
	return nil
}

// selectChromosomes resolves the working set: an explicit list must be
// a subset of the assembly; otherwise every chromosome whose lowercase
// name avoids all filter substrings is kept.
func (g *Genome) selectChromosomes(explicit, filters []string) error {
	if len(explicit) > 0 {
		for _, chrom := range explicit {
			if _, ok := g.lengths[chrom]; !ok {
				return fmt.Errorf("chromosome %q is not part of assembly %s", chrom, g.assembly)
			}
		}
		g.selected = append([]string(nil), explicit...)
	} else {
		for chrom := range g.lengths {
			lower := strings.ToLower(chrom)
			keep := true
			for _, f := range filters {
				if strings.Contains(lower, f) {
					keep = false
					break
				}
			}
			if keep {
				g.selected = append(g.selected, chrom)
			}
		}
	}
	sort.Strings(g.selected)

	if len(g.selected) == 0 {
		return fmt.Errorf("no chromosome remaining in assembly %s after applying filters", g.assembly)
	}
	return nil
}

func (g *Genome) chromosomePath(chrom string) string {
	return chromosomeDir + "/" + chrom + ".json"
}

// IsCached reports whether a chromosome's sequence is already on the
// cache backend.
func (g *Genome) IsCached(chrom string) bool {
	if ok, _ := g.storage.Exists(g.chromosomePath(chrom) + ".zst"); ok {
		return true
	}
	ok, _ := g.storage.Exists(g.chromosomePath(chrom))
	return ok
}

// load reads every selected chromosome into memory. A payload that
// fails to parse is deleted from the cache and reported as a data
// error; a payload whose length disagrees with the assembly's
// chromosome table is reported without repair.
func (g *Genome) load() error {
	g.seqs = make(map[string]string, len(g.selected))

	var mu sync.Mutex
	return forEach(g.workers, len(g.selected), func(i int) error {
		chrom := g.selected[i]
		dna, err := g.readChromosome(chrom)
		if err != nil {
			return err
		}
		if want := g.lengths[chrom]; len(dna) != want {
			return fmt.Errorf("chromosome %s: cached sequence length %d disagrees with assembly length %d",
				chrom, len(dna), want)
		}
		mu.Lock()
		g.seqs[chrom] = dna
		mu.Unlock()
		return nil
	})
}

// readChromosome loads one cached payload, preferring the compressed
// variant when both exist.
func (g *Genome) readChromosome(chrom string) (string, error) {
	path := g.chromosomePath(chrom)
	compressed := false
	data, err := g.storage.ReadFile(path + ".zst")
	if err == nil {
		compressed = true
	} else {
		data, err = g.storage.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("chromosome %s is not cached: %w", chrom, err)
		}
	}

	if compressed {
		data, err = g.comp.Decompress(data)
		if err != nil {
			g.storage.Remove(path + ".zst")
			return "", fmt.Errorf("chromosome %s cache is corrupt and has been deleted: %w", chrom, err)
		}
	}

	var payload chromosomePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		target := path
		if compressed {
			target = path + ".zst"
		}
		g.storage.Remove(target)
		return "", fmt.Errorf("chromosome %s cache is corrupt and has been deleted: %w", chrom, err)
	}
	return payload.DNA, nil
}

// writeChromosome caches one downloaded sequence.
func (g *Genome) writeChromosome(chrom, dna string) error {
	data, err := json.Marshal(chromosomePayload{DNA: dna})
	if err != nil {
		return err
	}
	path := g.chromosomePath(chrom)
	if g.compress {
		return g.storage.WriteFile(path+".zst", g.comp.Compress(data))
	}
	return g.storage.WriteFile(path, data)
}

// Assembly returns the UCSC assembly ID.
func (g *Genome) Assembly() string { return g.assembly }

// Organism returns the assembly's organism.
func (g *Genome) Organism() string { return g.info.Organism }

// ScientificName returns the organism's scientific name.
func (g *Genome) ScientificName() string { return g.info.ScientificName }

// Description returns the assembly description as provided by UCSC.
func (g *Genome) Description() string { return g.info.Description }

// Path returns the cache location of this assembly.
func (g *Genome) Path() string { return g.storage.BasePath() }

// Chromosomes returns the selected chromosome names, sorted.
func (g *Genome) Chromosomes() []string {
	return append([]string(nil), g.selected...)
}

// Has reports whether a chromosome is part of the selection.
func (g *Genome) Has(chrom string) bool {
	_, ok := g.seqs[chrom]
	return ok
}

// Length returns a chromosome's length in bases.
func (g *Genome) Length(chrom string) (int, error) {
	length, ok := g.lengths[chrom]
	if !ok {
		return 0, fmt.Errorf("chromosome %q is not part of assembly %s", chrom, g.assembly)
	}
	return length, nil
}

// Lengths returns the selected chromosomes mapped to their lengths.
func (g *Genome) Lengths() map[string]int {
	lengths := make(map[string]int, len(g.selected))
	for _, chrom := range g.selected {
		lengths[chrom] = g.lengths[chrom]
	}
	return lengths
}

// Sequence returns a chromosome's full nucleotide sequence.
func (g *Genome) Sequence(chrom string) (string, error) {
	seq, ok := g.seqs[chrom]
	if !ok {
		return "", fmt.Errorf("chromosome %q is not loaded for assembly %s", chrom, g.assembly)
	}
	return seq, nil
}

// Sequences returns the selected chromosomes mapped to their sequences.
// The map is shared and must be treated as read-only.
func (g *Genome) Sequences() map[string]string {
	return g.seqs
}

// resolve validates an optional chromosome subset, defaulting to the
// whole selection.
func (g *Genome) resolve(chroms []string) ([]string, error) {
	if len(chroms) == 0 {
		return g.selected, nil
	}
	for _, chrom := range chroms {
		if !g.Has(chrom) {
			return nil, fmt.Errorf("chromosome %q is not loaded for assembly %s", chrom, g.assembly)
		}
	}
	return chroms, nil
}

// Gaps scans the requested chromosomes (default: all selected) and
// returns their gap intervals. Chromosomes scan in parallel; the result
// is concatenated in the requested chromosome order.
func (g *Genome) Gaps(chroms ...string) (bed.Table, error) {
	targets, err := g.resolve(chroms)
	if err != nil {
		return nil, err
	}

	tables := make([]bed.Table, len(targets))
	err = forEach(g.workers, len(targets), func(i int) error {
		tables[i] = bed.Gaps(targets[i], g.seqs[targets[i]])
		return nil
	})
	if err != nil {
		return nil, err
	}

	var gaps bed.Table
	for _, t := range tables {
		gaps = append(gaps, t...)
	}
	return gaps, nil
}

// Filled returns the complement of Gaps over the requested chromosomes:
// the regions where the sequence is known. A chromosome without gaps
// yields a single interval spanning its whole length.
func (g *Genome) Filled(chroms ...string) (bed.Table, error) {
	targets, err := g.resolve(chroms)
	if err != nil {
		return nil, err
	}
	gaps, err := g.Gaps(targets...)
	if err != nil {
		return nil, err
	}

	lengths := make(map[string]int, len(targets))
	for _, chrom := range targets {
		lengths[chrom] = g.lengths[chrom]
	}
	return bed.Complement(gaps, lengths)
}

// ToSequence returns the table with its Sequence column populated from
// the loaded chromosomes.
func (g *Genome) ToSequence(t bed.Table) (bed.Table, error) {
	return bed.Extract(t, g.seqs)
}

// Delete removes the assembly's cache tree.
func (g *Genome) Delete() error {
	return g.storage.RemoveAll("")
}

func (g *Genome) String() string {
	return fmt.Sprintf("%s, %s, %s, %d chromosomes",
		g.info.Organism, g.info.ScientificName, g.assembly, len(g.selected))
}
