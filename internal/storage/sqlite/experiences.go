// ABOUTME: Work experience storage operations for SQLite
// ABOUTME: Insert and per-candidate retrieval of job history rows
package sqlite

import (
	"database/sql"

	"github.com/harper/talent-warehouse/internal/models"
)

// ExperienceStore handles work experience persistence
type ExperienceStore struct {
	db *DB
}

// NewExperienceStore creates a new ExperienceStore
func NewExperienceStore(db *DB) *ExperienceStore {
	return &ExperienceStore{db: db}
}

// Insert writes one experience row for a candidate
func (s *ExperienceStore) Insert(candidateID int64, rec *models.ExperienceRecord) error {
	return s.insert(s.db, candidateID, rec)
}

func (s *ExperienceStore) insert(ex execer, candidateID int64, rec *models.ExperienceRecord) error {
	sectorsJSON, err := jsonColumn(rec.Sectors)
	if err != nil {
		return err
	}
	regionsJSON, err := jsonColumn(rec.RegionsCovered)
	if err != nil {
		return err
	}
	valuationJSON, err := jsonColumn(rec.ValuationMethodsUsed)
	if err != nil {
		return err
	}
	quantJSON, err := jsonColumn(rec.QuantToolsUsed)
	if err != nil {
		return err
	}
	bulletsJSON, err := jsonColumn(rec.BulletPoints)
	if err != nil {
		return err
	}

	_, err = ex.Exec(`
		INSERT INTO experiences (
			candidate_id, company, title, start_date, end_date, sectors, approach, client_type,
			num_companies_covered, num_sectors_covered, coverage_value, regions_covered,
			sharpe_ratio, alpha, valuation_methods_used, quant_tools_used, bullet_points
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, candidateID, nullString(rec.Company), nullString(rec.Title),
		nullString(rec.Start), nullString(rec.End), sectorsJSON,
		nullString(rec.Approach), nullString(rec.ClientType),
		rec.NumCompaniesCovered, rec.NumSectorsCovered, nullString(rec.CoverageValue),
		regionsJSON, rec.SharpeRatio, nullString(rec.Alpha),
		valuationJSON, quantJSON, bulletsJSON)

	return err
}

// GetByCandidate retrieves a candidate's experiences, most recent first
func (s *ExperienceStore) GetByCandidate(candidateID int64) ([]models.Experience, error) {
	rows, err := s.db.Query(`
		SELECT id, candidate_id, company, title, start_date, end_date, sectors,
			approach, client_type, num_companies_covered, num_sectors_covered,
			coverage_value, regions_covered, sharpe_ratio, alpha,
			valuation_methods_used, quant_tools_used, bullet_points
		FROM experiences
		WHERE candidate_id = ?
		ORDER BY start_date DESC
	`, candidateID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var experiences []models.Experience
	for rows.Next() {
		var (
			exp                             models.Experience
			company, title, start, end      sql.NullString
			sectorsJSON                     sql.NullString
			approach, clientType            sql.NullString
			numCompanies, numSectors        sql.NullInt64
			coverageValue                   sql.NullString
			regionsJSON                     sql.NullString
			sharpeRatio                     sql.NullFloat64
			alpha                           sql.NullString
			valuationJSON, quantJSON        sql.NullString
			bulletsJSON                     sql.NullString
		)

		err := rows.Scan(&exp.ID, &exp.CandidateID, &company, &title, &start, &end,
			&sectorsJSON, &approach, &clientType, &numCompanies, &numSectors,
			&coverageValue, &regionsJSON, &sharpeRatio, &alpha,
			&valuationJSON, &quantJSON, &bulletsJSON)
		if err != nil {
			return nil, err
		}

		exp.Company = company.String
		exp.Title = title.String
		exp.StartDate = start.String
		exp.EndDate = end.String
		exp.Sectors = decodeStringList(sectorsJSON)
		exp.Approach = approach.String
		exp.ClientType = clientType.String
		if numCompanies.Valid {
			n := int(numCompanies.Int64)
			exp.NumCompaniesCovered = &n
		}
		if numSectors.Valid {
			n := int(numSectors.Int64)
			exp.NumSectorsCovered = &n
		}
		exp.CoverageValue = coverageValue.String
		exp.RegionsCovered = decodeStringList(regionsJSON)
		if sharpeRatio.Valid {
			ratio := sharpeRatio.Float64
			exp.SharpeRatio = &ratio
		}
		exp.Alpha = alpha.String
		exp.ValuationMethodsUsed = decodeStringList(valuationJSON)
		exp.QuantToolsUsed = decodeStringList(quantJSON)
		exp.BulletPoints = decodeStringList(bulletsJSON)

		experiences = append(experiences, exp)
	}

	return experiences, rows.Err()
}

// Count returns the number of experience rows
func (s *ExperienceStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM experiences`).Scan(&count)
	return count, err
}
