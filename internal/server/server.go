// Package server exposes a cached genome's interval operations over
// HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/genobed/genobed/pkg/bed"
	"github.com/genobed/genobed/pkg/genome"
)

// Server serves one loaded genome.
type Server struct {
	g      *genome.Genome
	router chi.Router
}

// New builds the router around a loaded genome.
func New(g *genome.Genome) *Server {
	s := &Server{g: g}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/genome", s.genomeInfo)
		r.Get("/chromosomes", s.chromosomes)
		r.Get("/gaps", s.gaps)
		r.Get("/filled", s.filled)
		r.Post("/tessellate", s.tessellate)
		r.Post("/expand", s.expand)
		r.Post("/wiggle", s.wiggle)
		r.Post("/extract", s.extract)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// GenomeResponse describes the served assembly.
type GenomeResponse struct {
	Assembly       string `json:"assembly"`
	Organism       string `json:"organism"`
	ScientificName string `json:"scientific_name"`
	Description    string `json:"description"`
	Chromosomes    int    `json:"chromosomes"`
}

func (s *Server) genomeInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, GenomeResponse{
		Assembly:       s.g.Assembly(),
		Organism:       s.g.Organism(),
		ScientificName: s.g.ScientificName(),
		Description:    s.g.Description(),
		Chromosomes:    len(s.g.Chromosomes()),
	})
}

func (s *Server) chromosomes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.g.Lengths())
}

// chromosomesParam parses the optional ?chromosomes=chr1,chr2 filter.
func chromosomesParam(r *http.Request) []string {
	raw := r.URL.Query().Get("chromosomes")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func (s *Server) gaps(w http.ResponseWriter, r *http.Request) {
	table, err := s.g.Gaps(chromosomesParam(r)...)
	if err != nil {
		httpError(w, err, http.StatusBadRequest)
		return
	}
	writeBED(w, table)
}

func (s *Server) filled(w http.ResponseWriter, r *http.Request) {
	table, err := s.g.Filled(chromosomesParam(r)...)
	if err != nil {
		httpError(w, err, http.StatusBadRequest)
		return
	}
	writeBED(w, table)
}

// WindowRequest is the payload of the tessellate and expand endpoints.
type WindowRequest struct {
	Intervals  bed.Table `json:"intervals"`
	WindowSize int       `json:"window_size"`
	Alignment  string    `json:"alignment"`
}

func (s *Server) tessellate(w http.ResponseWriter, r *http.Request) {
	var req WindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, err, http.StatusBadRequest)
		return
	}
	out, err := bed.Tessellate(req.Intervals, req.WindowSize, bed.Alignment(req.Alignment))
	if err != nil {
		httpError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, out)
}

func (s *Server) expand(w http.ResponseWriter, r *http.Request) {
	var req WindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, err, http.StatusBadRequest)
		return
	}
	out, err := bed.Expand(req.Intervals, req.WindowSize, bed.Alignment(req.Alignment))
	if err != nil {
		httpError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, out)
}

// WiggleRequest is the payload of the wiggle endpoint.
type WiggleRequest struct {
	Intervals     bed.Table `json:"intervals"`
	MaxWiggleSize int       `json:"max_wiggle_size"`
	Wiggles       int       `json:"wiggles"`
	Seed          int64     `json:"seed"`
}

func (s *Server) wiggle(w http.ResponseWriter, r *http.Request) {
	var req WiggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, err, http.StatusBadRequest)
		return
	}
	out, err := bed.Wiggle(req.Intervals, req.MaxWiggleSize, req.Wiggles, req.Seed)
	if err != nil {
		httpError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, out)
}

// ExtractRequest is the payload of the extract endpoint.
type ExtractRequest struct {
	Intervals bed.Table `json:"intervals"`
}

func (s *Server) extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, err, http.StatusBadRequest)
		return
	}
	out, err := s.g.ToSequence(req.Intervals)
	if err != nil {
		httpError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeBED(w http.ResponseWriter, t bed.Table) {
	w.Header().Set("Content-Type", "text/tab-separated-values")
	bed.WriteTable(w, t)
}

func httpError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
