// Package ucsc is a minimal client for the UCSC Genome Browser REST API
// (https://api.genome.ucsc.edu).
package ucsc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public UCSC REST API endpoint.
const DefaultBaseURL = "https://api.genome.ucsc.edu"

// GenomeInfo is the assembly record returned by list/ucscGenomes.
type GenomeInfo struct {
	Organism       string `json:"organism"`
	ScientificName string `json:"scientificName"`
	Description    string `json:"description"`
	SourceName     string `json:"sourceName"`
	TaxID          int    `json:"taxId"`
	Active         int    `json:"active"`
	OrderKey       int    `json:"orderKey"`
}

// Client queries the UCSC REST API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the public UCSC API.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 5 * time.Minute, // chromosome payloads can be hundreds of MB
		},
	}
}

// Genomes returns every assembly the browser knows, keyed by assembly ID
// (hg19, sacCer3, ...).
func (c *Client) Genomes(ctx context.Context) (map[string]GenomeInfo, error) {
	var payload struct {
		UCSCGenomes map[string]GenomeInfo `json:"ucscGenomes"`
	}
	if err := c.get(ctx, "/list/ucscGenomes", nil, &payload); err != nil {
		return nil, err
	}
	return payload.UCSCGenomes, nil
}

// GenomeInfo returns the record for a single assembly, or an error when
// the assembly is unknown to the browser.
func (c *Client) GenomeInfo(ctx context.Context, assembly string) (GenomeInfo, error) {
	genomes, err := c.Genomes(ctx)
	if err != nil {
		return GenomeInfo{}, err
	}
	info, ok := genomes[assembly]
	if !ok {
		return GenomeInfo{}, fmt.Errorf("assembly %q is not among the available genomes", assembly)
	}
	return info, nil
}

// Chromosomes returns the chromosome names of an assembly mapped to
// their sequence lengths in bases.
func (c *Client) Chromosomes(ctx context.Context, assembly string) (map[string]int, error) {
	var payload struct {
		Chromosomes map[string]int `json:"chromosomes"`
	}
	query := url.Values{"genome": {assembly}}
	if err := c.get(ctx, "/list/chromosomes", query, &payload); err != nil {
		return nil, err
	}
	return payload.Chromosomes, nil
}

// Sequence fetches the nucleotides of [start, end) on one chromosome.
func (c *Client) Sequence(ctx context.Context, assembly, chrom string, start, end int) (string, error) {
	var payload struct {
		DNA string `json:"dna"`
	}
	query := url.Values{
		"genome": {assembly},
		"chrom":  {chrom},
		"start":  {fmt.Sprint(start)},
		"end":    {fmt.Sprint(end)},
	}
	if err := c.get(ctx, "/getData/sequence", query, &payload); err != nil {
		return "", err
	}
	return payload.DNA, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request %s failed: %s: %s", path, resp.Status, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
