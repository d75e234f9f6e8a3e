// ABOUTME: In-memory shortlist registry: named candidate picks built during review
// ABOUTME: State lives and dies with the process; nothing is written to the warehouse
package httpapi

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Shortlist is a named working set of candidate ids assembled while
// reviewing query results.
type Shortlist struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CandidateIDs []int64   `json:"candidate_ids"`
	CreatedAt    time.Time `json:"created_at"`
}

// snapshot returns a copy safe to serialize outside the registry lock.
func (l *Shortlist) snapshot() Shortlist {
	ids := make([]int64, len(l.CandidateIDs))
	copy(ids, l.CandidateIDs)
	out := *l
	out.CandidateIDs = ids
	return out
}

// shortlistRegistry holds every shortlist for this server instance.
type shortlistRegistry struct {
	mu    sync.RWMutex
	lists map[string]*Shortlist
}

func newShortlistRegistry() *shortlistRegistry {
	return &shortlistRegistry{lists: make(map[string]*Shortlist)}
}

func (reg *shortlistRegistry) create(name string) Shortlist {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	list := &Shortlist{
		ID:           uuid.NewString(),
		Name:         name,
		CandidateIDs: []int64{},
		CreatedAt:    time.Now().UTC(),
	}
	reg.lists[list.ID] = list
	return list.snapshot()
}

func (reg *shortlistRegistry) all() []Shortlist {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	out := make([]Shortlist, 0, len(reg.lists))
	for _, l := range reg.lists {
		out = append(out, l.snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (reg *shortlistRegistry) get(id string) (Shortlist, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	list, ok := reg.lists[id]
	if !ok {
		return Shortlist{}, false
	}
	return list.snapshot(), true
}

func (reg *shortlistRegistry) remove(id string) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.lists[id]; !ok {
		return false
	}
	delete(reg.lists, id)
	return true
}

// addCandidate is a set-add: re-adding a present candidate leaves the list
// unchanged.
func (reg *shortlistRegistry) addCandidate(id string, candidateID int64) (Shortlist, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	list, ok := reg.lists[id]
	if !ok {
		return Shortlist{}, false
	}
	for _, existing := range list.CandidateIDs {
		if existing == candidateID {
			return list.snapshot(), true
		}
	}
	list.CandidateIDs = append(list.CandidateIDs, candidateID)
	return list.snapshot(), true
}

// removeCandidate drops the candidate if present; removing an absent
// candidate still succeeds when the shortlist exists.
func (reg *shortlistRegistry) removeCandidate(id string, candidateID int64) (Shortlist, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	list, ok := reg.lists[id]
	if !ok {
		return Shortlist{}, false
	}
	kept := list.CandidateIDs[:0]
	for _, existing := range list.CandidateIDs {
		if existing != candidateID {
			kept = append(kept, existing)
		}
	}
	list.CandidateIDs = kept
	return list.snapshot(), true
}

type createShortlistRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateShortlist(w http.ResponseWriter, r *http.Request) {
	var req createShortlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "shortlist name is required")
		return
	}

	writeJSON(w, http.StatusCreated, s.shortlists.create(name))
}

func (s *Server) handleListShortlists(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]Shortlist{"shortlists": s.shortlists.all()})
}

func (s *Server) handleGetShortlist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	list, ok := s.shortlists.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("shortlist %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleDeleteShortlist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.shortlists.remove(id) {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("shortlist %s not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAddToShortlist verifies the candidate exists in the warehouse before
// recording the pick.
func (s *Server) handleAddToShortlist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	candidateID, ok := parseCandidateID(w, r)
	if !ok {
		return
	}

	detail, err := s.warehouse.GetCandidateDetail(candidateID)
	if err != nil {
		log.Printf("[API] Candidate lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "candidate lookup failed")
		return
	}
	if detail == nil {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("candidate %d not found", candidateID))
		return
	}

	list, found := s.shortlists.addCandidate(id, candidateID)
	if !found {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("shortlist %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleRemoveFromShortlist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	candidateID, ok := parseCandidateID(w, r)
	if !ok {
		return
	}

	if _, found := s.shortlists.removeCandidate(id, candidateID); !found {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("shortlist %s not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseCandidateID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	candidateID, err := strconv.ParseInt(chi.URLParam(r, "candidateID"), 10, 64)
	if err != nil || candidateID <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request", "candidate id must be a positive integer")
		return 0, false
	}
	return candidateID, true
}
