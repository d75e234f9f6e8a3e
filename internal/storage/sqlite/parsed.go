// ABOUTME: Archival storage for raw extracted resume records
// ABOUTME: Stores the full parsed JSON for audit and reprocessing
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/talent-warehouse/internal/models"
)

// ParsedStore handles archival parsed-record persistence
type ParsedStore struct {
	db *DB
}

// NewParsedStore creates a new ParsedStore
func NewParsedStore(db *DB) *ParsedStore {
	return &ParsedStore{db: db}
}

// Insert archives a parsed record and returns its row ID
func (s *ParsedStore) Insert(parsed *models.ParsedResume, resumePath string) (int64, error) {
	return s.insert(s.db, parsed, resumePath)
}

func (s *ParsedStore) insert(ex execer, parsed *models.ParsedResume, resumePath string) (int64, error) {
	parsedJSON, err := json.Marshal(parsed)
	if err != nil {
		return 0, fmt.Errorf("failed to encode parsed record: %w", err)
	}

	result, err := ex.Exec(`
		INSERT INTO parsed_resumes (
			candidate_name, parsed_json, source_file, resume_path, created_at
		) VALUES (?, ?, ?, ?, ?)
	`, parsed.Name, string(parsedJSON), parsed.Name+".json",
		nullString(resumePath), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetByID retrieves an archived parsed record, nil when absent
func (s *ParsedStore) GetByID(id int64) (*models.ParsedResume, error) {
	var parsedJSON string

	err := s.db.QueryRow(`
		SELECT parsed_json FROM parsed_resumes WHERE id = ?
	`, id).Scan(&parsedJSON)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var parsed models.ParsedResume
	if err := json.Unmarshal([]byte(parsedJSON), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode parsed record %d: %w", id, err)
	}

	return &parsed, nil
}

// Count returns the number of archived parsed records
func (s *ParsedStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM parsed_resumes`).Scan(&count)
	return count, err
}

// nullString converts an empty string to sql.NullString
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
