// ABOUTME: Full-text search index operations backed by SQLite FTS5
// ABOUTME: Indexing, BM25-ranked search with join-back, and suggestion terms
package sqlite

import (
	"database/sql"

	"github.com/harper/talent-warehouse/internal/models"
	"github.com/harper/talent-warehouse/internal/util"
)

// SearchIndex handles the FTS5 virtual table
type SearchIndex struct {
	db *DB
}

// NewSearchIndex creates a new SearchIndex
func NewSearchIndex(db *DB) *SearchIndex {
	return &SearchIndex{db: db}
}

// Index inserts one search document for a candidate
func (s *SearchIndex) Index(candidateID int64, doc *models.SearchDocument) error {
	return s.index(s.db, candidateID, doc)
}

func (s *SearchIndex) index(ex execer, candidateID int64, doc *models.SearchDocument) error {
	_, err := ex.Exec(`
		INSERT INTO candidates_fts (
			candidate_id, name, current_title, current_company,
			skills, experience_text, education_text, all_companies, certifications
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, candidateID, doc.Name, doc.CurrentTitle, doc.CurrentCompany,
		doc.Skills, doc.ExperienceText, doc.EducationText,
		doc.AllCompanies, doc.Certifications)

	return err
}

// Search runs an FTS5 MATCH query and joins the hits back to the candidate
// rows with their quality scores and aggregated dimensions, ranked by BM25
// relevance (best first). The query uses FTS5 grammar: bare terms, AND/OR,
// quoted phrases, and trailing-* prefixes. A malformed query surfaces as an
// error; the caller decides how to degrade.
func (s *SearchIndex) Search(query string) ([]models.CandidateRow, error) {
	rows, err := s.db.Query(`
		SELECT `+candidateColumns+`,
			qs.quality_score, qs.grade, qs.total_issues,
			GROUP_CONCAT(DISTINCT s.skill) AS all_skills,
			GROUP_CONCAT(DISTINCT e.company) AS all_companies,
			GROUP_CONCAT(DISTINCT ed.school) AS all_schools,
			GROUP_CONCAT(DISTINCT ed.degree) AS all_degrees,
			fts.rank,
			fts.name, fts.current_title, fts.current_company, fts.skills,
			fts.experience_text, fts.education_text, fts.all_companies, fts.certifications
		FROM candidates_fts fts
		JOIN candidates c ON c.id = fts.candidate_id
		LEFT JOIN skills s ON s.candidate_id = c.id
		LEFT JOIN experiences e ON e.candidate_id = c.id
		LEFT JOIN education ed ON ed.candidate_id = c.id
		LEFT JOIN quality_scores qs ON qs.candidate_id = c.id
		WHERE candidates_fts MATCH ?
		GROUP BY c.id
		ORDER BY fts.rank
	`, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []models.CandidateRow
	for rows.Next() {
		var (
			row     models.CandidateRow
			fields  candidateFields
			quality qualityFields
			rank    float64
			doc     documentFields
		)

		dest := fields.targets(&row.Candidate)
		dest = append(dest, quality.targets()...)
		dest = append(dest, &rank)
		dest = append(dest, doc.targets()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		fields.apply(&row.Candidate)
		quality.apply(&row)
		row.Rank = &rank
		row.Document = doc.document()
		result = append(result, row)
	}

	return result, rows.Err()
}

// Suggestions returns autocomplete terms: distinct employers and skills (each
// capped at limit) plus every distinct degree, merged, deduplicated, sorted.
func (s *SearchIndex) Suggestions(limit int) ([]string, error) {
	var suggestions []string

	companies, err := s.distinctValues(`
		SELECT DISTINCT company FROM experiences
		WHERE company IS NOT NULL ORDER BY company LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	suggestions = append(suggestions, companies...)

	skills, err := s.distinctValues(`
		SELECT DISTINCT skill FROM skills
		WHERE skill IS NOT NULL ORDER BY skill LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	suggestions = append(suggestions, skills...)

	degrees, err := s.distinctValues(`
		SELECT DISTINCT degree FROM education
		WHERE degree IS NOT NULL ORDER BY degree
	`)
	if err != nil {
		return nil, err
	}
	suggestions = append(suggestions, degrees...)

	return util.UniqueSorted(suggestions), nil
}

// Count returns the number of indexed search documents
func (s *SearchIndex) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM candidates_fts`).Scan(&count)
	return count, err
}

func (s *SearchIndex) distinctValues(query string, args ...interface{}) ([]string, error) {
	rows, err := s.db.Query(query, args...)
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

// documentFields holds the scan slots for the stored FTS column texts that
// ride along with each search hit for match annotation.
type documentFields struct {
	name, currentTitle, currentCompany, skills        sql.NullString
	experienceText, educationText, allCompanies, certs sql.NullString
}

func (f *documentFields) targets() []interface{} {
	return []interface{}{
		&f.name, &f.currentTitle, &f.currentCompany, &f.skills,
		&f.experienceText, &f.educationText, &f.allCompanies, &f.certs,
	}
}

func (f *documentFields) document() *models.SearchDocument {
	return &models.SearchDocument{
		Name:           f.name.String,
		CurrentTitle:   f.currentTitle.String,
		CurrentCompany: f.currentCompany.String,
		Skills:         f.skills.String,
		ExperienceText: f.experienceText.String,
		EducationText:  f.educationText.String,
		AllCompanies:   f.allCompanies.String,
		Certifications: f.certs.String,
	}
}
