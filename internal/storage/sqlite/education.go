// ABOUTME: Education storage operations for SQLite
// ABOUTME: Insert and per-candidate retrieval of degree rows
package sqlite

import (
	"database/sql"

	"github.com/harper/talent-warehouse/internal/models"
)

// EducationStore handles education persistence
type EducationStore struct {
	db *DB
}

// NewEducationStore creates a new EducationStore
func NewEducationStore(db *DB) *EducationStore {
	return &EducationStore{db: db}
}

// Insert writes one education row for a candidate
func (s *EducationStore) Insert(candidateID int64, rec *models.EducationRecord) error {
	return s.insert(s.db, candidateID, rec)
}

func (s *EducationStore) insert(ex execer, candidateID int64, rec *models.EducationRecord) error {
	_, err := ex.Exec(`
		INSERT INTO education (
			candidate_id, degree, major, school, start_date, end_date, honors
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, candidateID, nullString(rec.Degree), nullString(rec.Major),
		nullString(rec.School), nullString(rec.Start), nullString(rec.End),
		nullString(rec.Honors))

	return err
}

// GetByCandidate retrieves a candidate's education rows in insert order
func (s *EducationStore) GetByCandidate(candidateID int64) ([]models.Education, error) {
	rows, err := s.db.Query(`
		SELECT id, candidate_id, degree, major, school, start_date, end_date, honors
		FROM education
		WHERE candidate_id = ?
		ORDER BY id
	`, candidateID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var education []models.Education
	for rows.Next() {
		var (
			edu                        models.Education
			degree, major, school      sql.NullString
			start, end, honors         sql.NullString
		)

		err := rows.Scan(&edu.ID, &edu.CandidateID, &degree, &major, &school,
			&start, &end, &honors)
		if err != nil {
			return nil, err
		}

		edu.Degree = degree.String
		edu.Major = major.String
		edu.School = school.String
		edu.StartDate = start.String
		edu.EndDate = end.String
		edu.Honors = honors.String

		education = append(education, edu)
	}

	return education, rows.Err()
}

// Count returns the number of education rows
func (s *EducationStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM education`).Scan(&count)
	return count, err
}
