// ABOUTME: Skill storage operations for SQLite
// ABOUTME: Normalized one-skill-per-row inserts and per-candidate reads
package sqlite

// SkillStore handles normalized skill persistence
type SkillStore struct {
	db *DB
}

// NewSkillStore creates a new SkillStore
func NewSkillStore(db *DB) *SkillStore {
	return &SkillStore{db: db}
}

// Insert writes one skill row for a candidate
func (s *SkillStore) Insert(candidateID int64, skill string) error {
	return s.insert(s.db, candidateID, skill)
}

func (s *SkillStore) insert(ex execer, candidateID int64, skill string) error {
	_, err := ex.Exec(`
		INSERT INTO skills (candidate_id, skill)
		VALUES (?, ?)
	`, candidateID, skill)
	return err
}

// GetByCandidate retrieves a candidate's skills in insert order
func (s *SkillStore) GetByCandidate(candidateID int64) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT skill FROM skills WHERE candidate_id = ? ORDER BY id
	`, candidateID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var skills []string
	for rows.Next() {
		var skill string
		if err := rows.Scan(&skill); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	return skills, rows.Err()
}

// Count returns the number of skill rows
func (s *SkillStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM skills`).Scan(&count)
	return count, err
}
