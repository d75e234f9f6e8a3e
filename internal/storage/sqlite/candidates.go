// ABOUTME: Candidate summary row storage operations for SQLite
// ABOUTME: Insert, lookup, and the aggregated browse query over the star schema
package sqlite

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/harper/talent-warehouse/internal/models"
)

// candidateColumns is the SELECT list for one candidates row, aliased c.
const candidateColumns = `c.id, c.name, c.current_title, c.current_company,
	c.years_experience, c.primary_sector, c.investment_approach,
	c.primary_geography, c.summary_blurb, c.top_skills, c.notable_experience,
	c.education_highlight, c.certifications, c.resume_path, c.parsed_id, c.created_at`

// CandidateStore handles candidate summary persistence
type CandidateStore struct {
	db *DB
}

// NewCandidateStore creates a new CandidateStore
func NewCandidateStore(db *DB) *CandidateStore {
	return &CandidateStore{db: db}
}

// Insert writes a candidate summary row and returns its ID. The primary
// sector column takes the first entry of the summary's sector-focus list.
func (s *CandidateStore) Insert(summary *models.CandidateSummary, parsedID int64, resumePath string) (int64, error) {
	return s.insert(s.db, summary, parsedID, resumePath)
}

func (s *CandidateStore) insert(ex execer, summary *models.CandidateSummary, parsedID int64, resumePath string) (int64, error) {
	topSkillsJSON, err := jsonColumn(summary.TopSkills)
	if err != nil {
		return 0, err
	}
	notableJSON, err := jsonColumn(summary.NotableExperience)
	if err != nil {
		return 0, err
	}
	certsJSON, err := jsonColumn(summary.Certifications)
	if err != nil {
		return 0, err
	}

	var parsedRef interface{}
	if parsedID > 0 {
		parsedRef = parsedID
	}

	result, err := ex.Exec(`
		INSERT INTO candidates (
			name, current_title, current_company, years_experience,
			primary_sector, investment_approach, primary_geography,
			summary_blurb, top_skills, notable_experience,
			education_highlight, certifications, resume_path, parsed_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, summary.Name, nullString(summary.CurrentTitle), nullString(summary.CurrentCompany),
		summary.YearsExperience, nullString(summary.PrimarySector()),
		nullString(summary.InvestmentApproach), nullString(summary.PrimaryGeography),
		nullString(summary.SummaryBlurb), topSkillsJSON, notableJSON,
		nullString(summary.EducationHighlight), certsJSON,
		nullString(resumePath), parsedRef, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetByID retrieves one candidate summary row, nil when absent
func (s *CandidateStore) GetByID(id int64) (*models.Candidate, error) {
	var (
		candidate models.Candidate
		fields    candidateFields
	)

	err := s.db.QueryRow(`
		SELECT `+candidateColumns+`
		FROM candidates c
		WHERE c.id = ?
	`, id).Scan(fields.targets(&candidate)...)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	fields.apply(&candidate)
	return &candidate, nil
}

// List retrieves every candidate joined with its quality score and the
// aggregated skill, company, school, and degree dimensions. Row order is
// storage order; callers that need ranking use the search index instead.
func (s *CandidateStore) List() ([]models.CandidateRow, error) {
	rows, err := s.db.Query(`
		SELECT ` + candidateColumns + `,
			qs.quality_score, qs.grade, qs.total_issues,
			GROUP_CONCAT(DISTINCT s.skill) AS all_skills,
			GROUP_CONCAT(DISTINCT e.company) AS all_companies,
			GROUP_CONCAT(DISTINCT ed.school) AS all_schools,
			GROUP_CONCAT(DISTINCT ed.degree) AS all_degrees
		FROM candidates c
		LEFT JOIN skills s ON s.candidate_id = c.id
		LEFT JOIN experiences e ON e.candidate_id = c.id
		LEFT JOIN education ed ON ed.candidate_id = c.id
		LEFT JOIN quality_scores qs ON qs.candidate_id = c.id
		GROUP BY c.id
	`)
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
		)

		dest := fields.targets(&row.Candidate)
		dest = append(dest, quality.targets()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		fields.apply(&row.Candidate)
		quality.apply(&row)
		result = append(result, row)
	}

	return result, rows.Err()
}

// Count returns the number of candidate rows
func (s *CandidateStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM candidates`).Scan(&count)
	return count, err
}

// candidateFields holds the nullable scan slots for one candidates row.
// Scan with targets, then copy onto the model with apply.
type candidateFields struct {
	name, currentTitle, currentCompany  sql.NullString
	yearsExperience                     sql.NullFloat64
	primarySector, investmentApproach   sql.NullString
	primaryGeography, summaryBlurb      sql.NullString
	topSkillsJSON, notableJSON          sql.NullString
	educationHighlight, certsJSON       sql.NullString
	resumePath                          sql.NullString
	parsedID                            sql.NullInt64
	createdAt                           sql.NullString
}

// targets returns scan destinations in candidateColumns order
func (f *candidateFields) targets(c *models.Candidate) []interface{} {
	return []interface{}{
		&c.ID, &f.name, &f.currentTitle, &f.currentCompany,
		&f.yearsExperience, &f.primarySector, &f.investmentApproach,
		&f.primaryGeography, &f.summaryBlurb, &f.topSkillsJSON, &f.notableJSON,
		&f.educationHighlight, &f.certsJSON, &f.resumePath, &f.parsedID, &f.createdAt,
	}
}

// apply copies the scanned values onto the candidate model
func (f *candidateFields) apply(c *models.Candidate) {
	c.Name = f.name.String
	c.CurrentTitle = f.currentTitle.String
	c.CurrentCompany = f.currentCompany.String
	if f.yearsExperience.Valid {
		years := f.yearsExperience.Float64
		c.YearsExperience = &years
	}
	c.PrimarySector = f.primarySector.String
	c.InvestmentApproach = f.investmentApproach.String
	c.PrimaryGeography = f.primaryGeography.String
	c.SummaryBlurb = f.summaryBlurb.String
	c.TopSkills = decodeStringList(f.topSkillsJSON)
	c.NotableExperience = decodeStringList(f.notableJSON)
	c.EducationHighlight = f.educationHighlight.String
	c.Certifications = decodeStringList(f.certsJSON)
	c.ResumePath = f.resumePath.String
	if f.parsedID.Valid {
		parsedID := f.parsedID.Int64
		c.ParsedID = &parsedID
	}
	c.CreatedAt = f.createdAt.String
}

// qualityFields holds the scan slots for the quality join plus the
// GROUP_CONCAT aggregate columns shared by List and the search query.
type qualityFields struct {
	qualityScore                                   sql.NullFloat64
	grade                                          sql.NullString
	totalIssues                                    sql.NullInt64
	allSkills, allCompanies, allSchools, allDegrees sql.NullString
}

func (f *qualityFields) targets() []interface{} {
	return []interface{}{
		&f.qualityScore, &f.grade, &f.totalIssues,
		&f.allSkills, &f.allCompanies, &f.allSchools, &f.allDegrees,
	}
}

func (f *qualityFields) apply(row *models.CandidateRow) {
	if f.qualityScore.Valid {
		score := f.qualityScore.Float64
		row.QualityScore = &score
	}
	row.QualityGrade = f.grade.String
	if f.totalIssues.Valid {
		issues := int(f.totalIssues.Int64)
		row.TotalIssues = &issues
	}
	row.AllSkills = f.allSkills.String
	row.AllCompanies = f.allCompanies.String
	row.AllSchools = f.allSchools.String
	row.AllDegrees = f.allDegrees.String
}

// jsonColumn encodes a string slice for a JSON column, NULL when empty
func jsonColumn(values []string) (interface{}, error) {
	if len(values) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// decodeStringList parses a JSON array column. NULL, empty, or unparseable
// values read back as absent.
func decodeStringList(col sql.NullString) []string {
	if !col.Valid || col.String == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(col.String), &out); err != nil {
		return nil
	}
	return out
}
