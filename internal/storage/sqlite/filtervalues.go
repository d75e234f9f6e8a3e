// ABOUTME: Pre-computed filter value cache operations for SQLite
// ABOUTME: Deduplicated category/value pairs backing the filter dropdowns
package sqlite

import (
	"strings"
	"time"

	"github.com/harper/talent-warehouse/internal/models"
)

// Filter value categories
const (
	FieldGeography = "geography"
	FieldSector    = "sector"
	FieldApproach  = "approach"
	FieldSkill     = "skill"
	FieldCompany   = "company"
	FieldSchool    = "school"
	FieldDegree    = "degree"
)

// FilterValueStore handles the pre-computed filter value cache
type FilterValueStore struct {
	db *DB
}

// NewFilterValueStore creates a new FilterValueStore
func NewFilterValueStore(db *DB) *FilterValueStore {
	return &FilterValueStore{db: db}
}

// Categories returns the known filter categories, sorted
func (s *FilterValueStore) Categories() []string {
	return []string{FieldApproach, FieldCompany, FieldDegree, FieldGeography, FieldSchool, FieldSector, FieldSkill}
}

// ValidCategory reports whether name is a known filter category
func (s *FilterValueStore) ValidCategory(name string) bool {
	for _, c := range s.Categories() {
		if c == name {
			return true
		}
	}
	return false
}

// Record indexes one filter value. Values are trimmed, blanks are skipped,
// and duplicates are ignored, so recording is idempotent.
func (s *FilterValueStore) Record(fieldName, fieldValue string) error {
	return s.record(s.db, fieldName, fieldValue)
}

func (s *FilterValueStore) record(ex execer, fieldName, fieldValue string) error {
	fieldValue = strings.TrimSpace(fieldValue)
	if fieldValue == "" {
		return nil
	}

	_, err := ex.Exec(`
		INSERT OR IGNORE INTO filter_values (field_name, field_value, created_at)
		VALUES (?, ?, ?)
	`, fieldName, fieldValue, time.Now().UTC().Format(time.RFC3339))

	return err
}

// RecordCandidate indexes every filterable value of one candidate:
// geography, primary sector, approach, top skills, experience employers,
// schools, and degrees.
func (s *FilterValueStore) RecordCandidate(summary *models.CandidateSummary, parsed *models.ParsedResume) error {
	return s.recordCandidate(s.db, summary, parsed)
}

func (s *FilterValueStore) recordCandidate(ex execer, summary *models.CandidateSummary, parsed *models.ParsedResume) error {
	if err := s.record(ex, FieldGeography, summary.PrimaryGeography); err != nil {
		return err
	}
	if err := s.record(ex, FieldSector, summary.PrimarySector()); err != nil {
		return err
	}
	if err := s.record(ex, FieldApproach, summary.InvestmentApproach); err != nil {
		return err
	}
	for _, skill := range summary.TopSkills {
		if err := s.record(ex, FieldSkill, skill); err != nil {
			return err
		}
	}
	for _, exp := range parsed.Experiences {
		if err := s.record(ex, FieldCompany, exp.Company); err != nil {
			return err
		}
	}
	for _, edu := range parsed.Education {
		if err := s.record(ex, FieldSchool, edu.School); err != nil {
			return err
		}
		if err := s.record(ex, FieldDegree, edu.Degree); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of cached filter value pairs
func (s *FilterValueStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM filter_values`).Scan(&count)
	return count, err
}

// List returns the sorted distinct values recorded for a category. It reads
// only the cache table; child tables are never consulted.
func (s *FilterValueStore) List(fieldName string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT field_value
		FROM filter_values
		WHERE field_name = ?
		ORDER BY field_value
	`, fieldName)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, rows.Err()
}
