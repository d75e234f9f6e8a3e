// ABOUTME: Unified Storage layer that wraps all warehouse stores
// ABOUTME: Transactional ingestion, sentinel search, and degrade-to-empty reads
package sqlite

import (
	"fmt"
	"log"
	"strings"

	"github.com/harper/talent-warehouse/internal/core"
	"github.com/harper/talent-warehouse/internal/models"
)

// Storage manages all persistent warehouse data using SQLite
type Storage struct {
	db          *DB
	parsed      *ParsedStore
	candidates  *CandidateStore
	experiences *ExperienceStore
	education   *EducationStore
	skills      *SkillStore
	quality     *QualityStore
	filters     *FilterValueStore
	search      *SearchIndex
	validator   *core.Validator
}

// NewStorage initializes storage at the default warehouse path
func NewStorage() (*Storage, error) {
	return NewStorageWithPath(DefaultDBPath())
}

// NewStorageWithPath initializes storage with a custom database path
func NewStorageWithPath(dbPath string) (*Storage, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newStorage(db), nil
}

// NewStorageInMemory creates an in-memory storage (for testing)
func NewStorageInMemory() (*Storage, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newStorage(db), nil
}

func newStorage(db *DB) *Storage {
	return &Storage{
		db:          db,
		parsed:      NewParsedStore(db),
		candidates:  NewCandidateStore(db),
		experiences: NewExperienceStore(db),
		education:   NewEducationStore(db),
		skills:      NewSkillStore(db),
		quality:     NewQualityStore(db),
		filters:     NewFilterValueStore(db),
		search:      NewSearchIndex(db),
		validator:   core.NewValidator(),
	}
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path
func (s *Storage) Path() string {
	return s.db.Path()
}

// Reset drops and recreates the whole schema. All data is deleted.
func (s *Storage) Reset() error {
	return s.db.Reset()
}

// IngestCandidate writes one candidate and every derived row in a single
// transaction: the archival parsed record, the summary row, experiences,
// education, skills, the quality score, the filter-value cache entries, and
// the search document. A failure at any step rolls the whole ingestion back;
// the warehouse never holds a partially ingested candidate.
func (s *Storage) IngestCandidate(parsed *models.ParsedResume, summary *models.CandidateSummary, resumePath string) (*models.IngestReceipt, error) {
	if parsed == nil {
		return nil, fmt.Errorf("ingest: parsed record is required")
	}
	if summary == nil {
		return nil, fmt.Errorf("ingest: summary record is required")
	}

	score, grade, missingRequired, missingOptional := s.validator.CompletenessScore(parsed, summary)
	issues := s.validator.Validate(parsed, summary)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin ingest transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	parsedID, err := s.parsed.insert(tx, parsed, resumePath)
	if err != nil {
		return nil, fmt.Errorf("failed to archive parsed record: %w", err)
	}

	candidateID, err := s.candidates.insert(tx, summary, parsedID, resumePath)
	if err != nil {
		return nil, fmt.Errorf("failed to insert candidate: %w", err)
	}

	for i := range parsed.Experiences {
		if err := s.experiences.insert(tx, candidateID, &parsed.Experiences[i]); err != nil {
			return nil, fmt.Errorf("failed to insert experience %d: %w", i+1, err)
		}
	}
	for i := range parsed.Education {
		if err := s.education.insert(tx, candidateID, &parsed.Education[i]); err != nil {
			return nil, fmt.Errorf("failed to insert education %d: %w", i+1, err)
		}
	}
	for _, skill := range parsed.Skills {
		if err := s.skills.insert(tx, candidateID, skill); err != nil {
			return nil, fmt.Errorf("failed to insert skill %q: %w", skill, err)
		}
	}

	qualityRow := &models.QualityScore{
		Score:       score,
		Grade:       grade,
		TotalIssues: issues.Total(),
		Issues:      issues,
		DataCompleteness: &models.Completeness{
			MissingRequired: missingRequired,
			MissingOptional: missingOptional,
		},
	}
	if _, err := s.quality.insert(tx, candidateID, qualityRow); err != nil {
		return nil, fmt.Errorf("failed to insert quality score: %w", err)
	}

	if err := s.filters.recordCandidate(tx, summary, parsed); err != nil {
		return nil, fmt.Errorf("failed to record filter values: %w", err)
	}

	doc := core.BuildSearchDocument(parsed, summary)
	if err := s.search.index(tx, candidateID, doc); err != nil {
		return nil, fmt.Errorf("failed to index candidate: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ingest transaction: %w", err)
	}

	report := s.validator.BuildReport(summary.Name, candidateID, issues, score, grade, missingRequired, missingOptional)
	log.Printf("[Storage] ingested candidate %d (%s): quality %.1f (%s), %d issues",
		candidateID, summary.Name, score, grade, issues.Total())

	return &models.IngestReceipt{
		CandidateID: candidateID,
		ParsedID:    parsedID,
		Report:      report,
	}, nil
}

// SearchCandidates runs a full-text search. A nil result means no search was
// performed: the query was blank, or the engine failed (malformed FTS5 syntax
// included) and the failure was logged. A non-nil result with an empty
// candidate list means the search ran and matched nothing. Result rows carry
// BM25 rank order, the derived highest degree, and match annotations.
func (s *Storage) SearchCandidates(query string) *models.SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	rows, err := s.search.Search(query)
	if err != nil {
		log.Printf("[Storage] search %q failed: %v", query, err)
		return nil
	}

	for i := range rows {
		rows[i].HighestDegree = core.HighestDegree(rows[i].AllDegrees)
		rows[i].MatchInfo = core.MatchAnnotations(&rows[i], query)
	}

	if rows == nil {
		rows = []models.CandidateRow{}
	}
	return &models.SearchResult{Query: query, Candidates: rows}
}

// ListCandidates returns every candidate row with aggregates and the derived
// highest degree. Order is storage order.
func (s *Storage) ListCandidates() ([]models.CandidateRow, error) {
	rows, err := s.candidates.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	for i := range rows {
		rows[i].HighestDegree = core.HighestDegree(rows[i].AllDegrees)
	}
	return rows, nil
}

// GetCandidateDetail returns a candidate with all child rows, nil when the
// candidate does not exist.
func (s *Storage) GetCandidateDetail(id int64) (*models.CandidateDetail, error) {
	candidate, err := s.candidates.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate %d: %w", id, err)
	}
	if candidate == nil {
		return nil, nil
	}

	experiences, err := s.experiences.GetByCandidate(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get experiences for %d: %w", id, err)
	}
	education, err := s.education.GetByCandidate(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get education for %d: %w", id, err)
	}
	skills, err := s.skills.GetByCandidate(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get skills for %d: %w", id, err)
	}
	quality, err := s.quality.GetByCandidate(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quality score for %d: %w", id, err)
	}

	return &models.CandidateDetail{
		Candidate:   *candidate,
		Experiences: experiences,
		Education:   education,
		Skills:      skills,
		Quality:     quality,
	}, nil
}

// GetParsedRecord returns the archived parsed record, nil when absent
func (s *Storage) GetParsedRecord(id int64) (*models.ParsedResume, error) {
	return s.parsed.GetByID(id)
}

// FilterValues returns the sorted distinct values for a filter category.
// Read failures degrade to an empty list with a logged diagnostic; browsing
// must keep working even when a filter query fails.
func (s *Storage) FilterValues(category string) []string {
	values, err := s.filters.List(category)
	if err != nil {
		log.Printf("[Storage] failed to load filter values for %q: %v", category, err)
		return []string{}
	}
	if values == nil {
		values = []string{}
	}
	return values
}

// FilterCategories returns the known filter categories
func (s *Storage) FilterCategories() []string {
	return s.filters.Categories()
}

// ValidFilterCategory reports whether name is a known filter category
func (s *Storage) ValidFilterCategory(name string) bool {
	return s.filters.ValidCategory(name)
}

// SearchSuggestions returns autocomplete terms, degraded to an empty list on
// failure.
func (s *Storage) SearchSuggestions(limit int) []string {
	suggestions, err := s.search.Suggestions(limit)
	if err != nil {
		log.Printf("[Storage] failed to load suggestions: %v", err)
		return []string{}
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return suggestions
}

// Stats returns row counts for every warehouse table
func (s *Storage) Stats() (*models.WarehouseStats, error) {
	stats := &models.WarehouseStats{DBPath: s.db.Path()}

	counts := []struct {
		name string
		fn   func() (int, error)
		dest *int
	}{
		{"candidates", s.candidates.Count, &stats.Candidates},
		{"parsed_resumes", s.parsed.Count, &stats.ParsedResumes},
		{"experiences", s.experiences.Count, &stats.Experiences},
		{"education", s.education.Count, &stats.EducationRows},
		{"skills", s.skills.Count, &stats.Skills},
		{"filter_values", s.filters.Count, &stats.FilterValues},
		{"search documents", s.search.Count, &stats.SearchDocs},
	}
	for _, c := range counts {
		n, err := c.fn()
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.dest = n
	}

	return stats, nil
}
