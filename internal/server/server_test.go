package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genobed/genobed/pkg/bed"
	"github.com/genobed/genobed/pkg/genome"
	"github.com/genobed/genobed/pkg/ucsc"
)

const testSequence = "NNNacgtNN" // gaps [0,3) and [7,9)

func testGenome(t *testing.T) *genome.Genome {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/list/ucscGenomes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ucscGenomes":{"testCer1":{"organism":"Yeast","scientificName":"S. cerevisiae","description":"test"}}}`))
	})
	mux.HandleFunc("/list/chromosomes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chromosomes":{"chrI":9}}`))
	})
	mux.HandleFunc("/getData/sequence", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dna":"` + testSequence + `"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	g, err := genome.New(context.Background(), "testCer1",
		genome.WithClient(&ucsc.Client{BaseURL: srv.URL, HTTPClient: srv.Client()}),
		genome.WithCacheDir(t.TempDir()),
		genome.WithChromosomes("chrI"))
	require.NoError(t, err)
	return g
}

func testAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(testGenome(t)).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	api := testAPI(t)
	resp, err := http.Get(api.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGenomeInfo(t *testing.T) {
	api := testAPI(t)
	resp, err := http.Get(api.URL + "/api/genome")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got GenomeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "testCer1", got.Assembly)
	assert.Equal(t, "Yeast", got.Organism)
	assert.Equal(t, 1, got.Chromosomes)
}

func TestChromosomes(t *testing.T) {
	api := testAPI(t)
	resp, err := http.Get(api.URL + "/api/chromosomes")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, map[string]int{"chrI": 9}, got)
}

func TestGapsEndpoint(t *testing.T) {
	api := testAPI(t)
	resp, err := http.Get(api.URL + "/api/gaps?chromosomes=chrI")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	table, err := bed.ReadTable(resp.Body)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, bed.Interval{Chrom: "chrI", ChromStart: 0, ChromEnd: 3}, table[0])
	assert.Equal(t, bed.Interval{Chrom: "chrI", ChromStart: 7, ChromEnd: 9}, table[1])
}

func TestFilledEndpoint(t *testing.T) {
	api := testAPI(t)
	resp, err := http.Get(api.URL + "/api/filled")
	require.NoError(t, err)
	defer resp.Body.Close()

	table, err := bed.ReadTable(resp.Body)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, bed.Interval{Chrom: "chrI", ChromStart: 3, ChromEnd: 7}, table[0])
}

func TestGapsUnknownChromosome(t *testing.T) {
	api := testAPI(t)
	resp, err := http.Get(api.URL + "/api/gaps?chromosomes=chrZ")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTessellateEndpoint(t *testing.T) {
	api := testAPI(t)
	body := `{"intervals":[{"chrom":"chrI","chromStart":0,"chromEnd":9}],"window_size":3,"alignment":"left"}`
	resp, err := http.Post(api.URL+"/api/tessellate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got bed.Table
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got, 3)
}

func TestTessellateValidationError(t *testing.T) {
	api := testAPI(t)
	body := `{"intervals":[{"chrom":"chrI","chromStart":0,"chromEnd":9}],"window_size":-1,"alignment":"left"}`
	resp, err := http.Post(api.URL+"/api/tessellate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWiggleEndpointDeterministic(t *testing.T) {
	api := testAPI(t)
	body := `{"intervals":[{"chrom":"chrI","chromStart":100,"chromEnd":200}],"max_wiggle_size":10,"wiggles":5,"seed":42}`

	fetch := func() bed.Table {
		resp, err := http.Post(api.URL+"/api/wiggle", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var got bed.Table
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		return got
	}

	first := fetch()
	assert.Len(t, first, 5)
	assert.Equal(t, first, fetch())
}

func TestExtractEndpoint(t *testing.T) {
	api := testAPI(t)
	body := `{"intervals":[{"chrom":"chrI","chromStart":3,"chromEnd":7}]}`
	resp, err := http.Post(api.URL+"/api/extract", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got bed.Table
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "acgt", got[0].Sequence)
}
