// ABOUTME: Quality score storage operations for SQLite
// ABOUTME: Persists completeness scores, grades, and validation issue lists
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/talent-warehouse/internal/models"
)

// QualityStore handles quality score persistence
type QualityStore struct {
	db *DB
}

// NewQualityStore creates a new QualityStore
func NewQualityStore(db *DB) *QualityStore {
	return &QualityStore{db: db}
}

// Insert writes the quality annotation row for a candidate
func (s *QualityStore) Insert(candidateID int64, score *models.QualityScore) (int64, error) {
	return s.insert(s.db, candidateID, score)
}

func (s *QualityStore) insert(ex execer, candidateID int64, score *models.QualityScore) (int64, error) {
	issuesJSON, err := json.Marshal(score.Issues)
	if err != nil {
		return 0, fmt.Errorf("failed to encode issues: %w", err)
	}

	completeness := score.DataCompleteness
	if completeness == nil {
		completeness = &models.Completeness{}
	}
	completenessJSON, err := json.Marshal(completeness)
	if err != nil {
		return 0, fmt.Errorf("failed to encode completeness: %w", err)
	}

	result, err := ex.Exec(`
		INSERT INTO quality_scores (
			candidate_id, quality_score, grade, total_issues, issues, data_completeness, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, candidateID, score.Score, score.Grade, score.TotalIssues,
		string(issuesJSON), string(completenessJSON), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetByCandidate retrieves the most recent quality row for a candidate,
// nil when no score has been recorded
func (s *QualityStore) GetByCandidate(candidateID int64) (*models.QualityScore, error) {
	var (
		score            models.QualityScore
		grade            sql.NullString
		issuesJSON       sql.NullString
		completenessJSON sql.NullString
		createdAt        sql.NullString
	)

	err := s.db.QueryRow(`
		SELECT id, candidate_id, quality_score, grade, total_issues, issues, data_completeness, created_at
		FROM quality_scores
		WHERE candidate_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, candidateID).Scan(&score.ID, &score.CandidateID, &score.Score, &grade,
		&score.TotalIssues, &issuesJSON, &completenessJSON, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	score.Grade = grade.String
	score.CreatedAt = createdAt.String

	if issuesJSON.Valid && issuesJSON.String != "" {
		var issues models.QualityIssues
		if err := json.Unmarshal([]byte(issuesJSON.String), &issues); err == nil {
			score.Issues = &issues
		}
	}
	if completenessJSON.Valid && completenessJSON.String != "" {
		var completeness models.Completeness
		if err := json.Unmarshal([]byte(completenessJSON.String), &completeness); err == nil {
			score.DataCompleteness = &completeness
		}
	}

	return &score, nil
}
