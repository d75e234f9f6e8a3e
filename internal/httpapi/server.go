// ABOUTME: HTTP API over the warehouse: candidate queries, filters, stats
// ABOUTME: Read endpoints are stateless; shortlist session state lives in this layer
package httpapi

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/harper/talent-warehouse/internal/models"
	"github.com/harper/talent-warehouse/internal/storage"
	"github.com/harper/talent-warehouse/internal/util"
)

// Server exposes warehouse reads and shortlist session state over HTTP.
type Server struct {
	warehouse       *storage.Warehouse
	shortlists      *shortlistRegistry
	suggestionLimit int
	requestTimeout  time.Duration
}

// NewServer creates a Server over the given warehouse. suggestionLimit is the
// default suggestion count when the request does not name one;
// requestTimeout bounds each request (zero disables the timeout middleware).
func NewServer(warehouse *storage.Warehouse, suggestionLimit int, requestTimeout time.Duration) *Server {
	return &Server{
		warehouse:       warehouse,
		shortlists:      newShortlistRegistry(),
		suggestionLimit: suggestionLimit,
		requestTimeout:  requestTimeout,
	}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if s.requestTimeout > 0 {
		r.Use(chimw.Timeout(s.requestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/candidates", s.handleQueryCandidates)
		r.Get("/candidates/{id}", s.handleGetCandidate)
		r.Get("/filters", s.handleFilterCategories)
		r.Get("/filters/{category}", s.handleFilterValues)
		r.Get("/suggestions", s.handleSuggestions)
		r.Get("/stats", s.handleStats)

		r.Route("/shortlists", func(r chi.Router) {
			r.Post("/", s.handleCreateShortlist)
			r.Get("/", s.handleListShortlists)
			r.Get("/{id}", s.handleGetShortlist)
			r.Delete("/{id}", s.handleDeleteShortlist)
			r.Put("/{id}/candidates/{candidateID}", s.handleAddToShortlist)
			r.Delete("/{id}/candidates/{candidateID}", s.handleRemoveFromShortlist)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// queryResponse is the result envelope for the candidates endpoint.
type queryResponse struct {
	Query      string                `json:"query,omitempty"`
	Searched   bool                  `json:"searched"`
	Count      int                   `json:"count"`
	Candidates []models.CandidateRow `json:"candidates"`
}

// handleQueryCandidates runs the search-or-browse pipeline with the filter
// predicates parsed from the query string. A query that the engine rejects
// still answers 200 with an empty searched result.
func (s *Server) handleQueryCandidates(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	result, err := s.warehouse.Query(r.URL.Query().Get("q"), filters)
	if err != nil {
		log.Printf("[API] Candidate query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "candidate query failed")
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{
		Query:      result.Query,
		Searched:   result.Searched,
		Count:      len(result.Candidates),
		Candidates: result.Candidates,
	})
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request", "candidate id must be a positive integer")
		return
	}

	detail, err := s.warehouse.GetCandidateDetail(id)
	if err != nil {
		log.Printf("[API] Candidate lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "candidate lookup failed")
		return
	}
	if detail == nil {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("candidate %d not found", id))
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleFilterCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": s.warehouse.FilterCategories()})
}

type filterValuesResponse struct {
	Category string   `json:"category"`
	Values   []string `json:"values"`
}

func (s *Server) handleFilterValues(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if !s.warehouse.ValidFilterCategory(category) {
		msg := fmt.Sprintf("unknown filter category %q, expected one of: %s",
			category, strings.Join(s.warehouse.FilterCategories(), ", "))
		writeError(w, http.StatusBadRequest, "bad_request", msg)
		return
	}

	writeJSON(w, http.StatusOK, filterValuesResponse{
		Category: category,
		Values:   s.warehouse.FilterValues(category),
	})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	limit := s.suggestionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid limit %q", raw))
			return
		}
		limit = n
	}

	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": s.warehouse.SearchSuggestions(limit)})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	stats, err := s.warehouse.Stats()
	if err != nil {
		log.Printf("[API] Stats read failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "stats unavailable")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// parseFilters reads the structured predicates from the query string. The
// skills param accepts both repetition and comma-joined lists.
func parseFilters(r *http.Request) (models.Filters, error) {
	q := r.URL.Query()
	f := models.Filters{
		Geography: q.Get("geography"),
		Approach:  q.Get("approach"),
		Sector:    q.Get("sector"),
		Degree:    q.Get("degree"),
		Company:   q.Get("company"),
		School:    q.Get("school"),
	}
	for _, raw := range q["skills"] {
		f.Skills = append(f.Skills, util.SplitList(raw)...)
	}

	var err error
	if f.MinYears, err = parseYears(q.Get("min_years"), "min_years"); err != nil {
		return models.Filters{}, err
	}
	if f.MaxYears, err = parseYears(q.Get("max_years"), "max_years"); err != nil {
		return models.Filters{}, err
	}
	return f, nil
}

func parseYears(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
