// ABOUTME: Composer runs a search-or-browse query then a predicate chain
// ABOUTME: Stateless per call; candidate data comes from a CandidateSource
package core

import (
	"fmt"
	"strings"

	"github.com/harper/talent-warehouse/internal/models"
	"github.com/harper/talent-warehouse/internal/util"
)

// CandidateSource provides the two ways a result set starts: a ranked
// full-text search, or the complete candidate set.
type CandidateSource interface {
	// SearchCandidates returns nil when no search was performed (blank
	// query or degraded engine failure); see models.SearchResult.
	SearchCandidates(query string) *models.SearchResult
	ListCandidates() ([]models.CandidateRow, error)
}

// Composer produces final candidate result sets from a search string and a
// set of structured filter predicates.
type Composer struct {
	source CandidateSource
}

// NewComposer creates a Composer over the given candidate source.
func NewComposer(source CandidateSource) *Composer {
	return &Composer{source: source}
}

// Result is a composed candidate result set. Searched reports whether the
// full-text index was consulted; when true, row order follows search rank.
type Result struct {
	Query      string                `json:"query,omitempty"`
	Searched   bool                  `json:"searched"`
	Candidates []models.CandidateRow `json:"candidates"`
}

// Compose executes the query pipeline: start from the search result when a
// query is present (an empty or failed search yields an empty set), else
// from all candidates, then narrow through the predicate chain.
func (c *Composer) Compose(query string, filters models.Filters) (*Result, error) {
	if strings.TrimSpace(query) != "" {
		result := c.source.SearchCandidates(query)
		if result == nil || len(result.Candidates) == 0 {
			return &Result{Query: query, Searched: true, Candidates: []models.CandidateRow{}}, nil
		}
		return &Result{
			Query:      query,
			Searched:   true,
			Candidates: ApplyFilters(result.Candidates, filters),
		}, nil
	}

	rows, err := c.source.ListCandidates()
	if err != nil {
		return nil, fmt.Errorf("loading candidates: %w", err)
	}
	return &Result{Candidates: ApplyFilters(rows, filters)}, nil
}

// ApplyFilters narrows rows through the predicate chain in order: geography,
// approach, and sector equality; degree substring (case-sensitive); years
// range (inclusive both bounds; rows without a recorded value are excluded
// while a bound is active); company and school substring (case-insensitive);
// skills any-of substring (case-insensitive). Predicates at their "All" or
// empty sentinel are skipped.
func ApplyFilters(rows []models.CandidateRow, f models.Filters) []models.CandidateRow {
	out := rows

	if active(f.Geography) {
		out = keep(out, func(r *models.CandidateRow) bool {
			return r.PrimaryGeography == f.Geography
		})
	}
	if active(f.Approach) {
		out = keep(out, func(r *models.CandidateRow) bool {
			return r.InvestmentApproach == f.Approach
		})
	}
	if active(f.Sector) {
		out = keep(out, func(r *models.CandidateRow) bool {
			return r.PrimarySector == f.Sector
		})
	}
	if active(f.Degree) {
		out = keep(out, func(r *models.CandidateRow) bool {
			return strings.Contains(r.AllDegrees, f.Degree)
		})
	}
	if f.MinYears != nil {
		out = keep(out, func(r *models.CandidateRow) bool {
			return r.YearsExperience != nil && *r.YearsExperience >= *f.MinYears
		})
	}
	if f.MaxYears != nil {
		out = keep(out, func(r *models.CandidateRow) bool {
			return r.YearsExperience != nil && *r.YearsExperience <= *f.MaxYears
		})
	}
	if active(f.Company) {
		out = keep(out, func(r *models.CandidateRow) bool {
			return r.AllCompanies != "" && util.ContainsFold(r.AllCompanies, f.Company)
		})
	}
	if active(f.School) {
		out = keep(out, func(r *models.CandidateRow) bool {
			return r.AllSchools != "" && util.ContainsFold(r.AllSchools, f.School)
		})
	}
	if len(f.Skills) > 0 {
		out = keep(out, func(r *models.CandidateRow) bool {
			for _, skill := range f.Skills {
				if util.ContainsFold(r.AllSkills, skill) {
					return true
				}
			}
			return false
		})
	}

	return out
}

func active(value string) bool {
	return value != "" && value != models.FilterAll
}

func keep(rows []models.CandidateRow, pred func(*models.CandidateRow) bool) []models.CandidateRow {
	kept := rows[:0:0]
	for i := range rows {
		if pred(&rows[i]) {
			kept = append(kept, rows[i])
		}
	}
	return kept
}
