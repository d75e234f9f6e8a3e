// ABOUTME: Tests for the unified Storage facade
// ABOUTME: Covers transactional ingestion, search sentinels, and degraded reads
package sqlite

import (
	"strings"
	"testing"

	"github.com/harper/talent-warehouse/internal/models"
)

func ingestFixture() (*models.ParsedResume, *models.CandidateSummary) {
	years := 8.5
	parsed := &models.ParsedResume{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Location: "New York, NY",
		Experiences: []models.ExperienceRecord{
			{
				Company: "Acme Capital",
				Title:   "Senior Analyst",
				Start:   "Jan-01-2019",
				End:     "Present",
				Sectors: []string{"Technology"},
			},
			{
				Company: "Maple Partners",
				Title:   "Analyst",
				Start:   "Jun-01-2015",
				End:     "Dec-01-2018",
			},
		},
		Education: []models.EducationRecord{
			{Degree: "MBA", School: "Wharton", Start: "Sep-01-2013", End: "Jun-01-2015"},
		},
		Skills:         []string{"Python", "SQL"},
		Certifications: []string{"CFA"},
	}
	summary := &models.CandidateSummary{
		Name:               "Jane Doe",
		CurrentTitle:       "Senior Analyst",
		CurrentCompany:     "Acme Capital",
		YearsExperience:    &years,
		SectorFocus:        []string{"Technology", "Healthcare"},
		InvestmentApproach: "Fundamental",
		PrimaryGeography:   "United States",
		SummaryBlurb:       "Tech analyst with long/short background.",
		TopSkills:          []string{"Python", "SQL"},
		Certifications:     []string{"CFA"},
	}
	return parsed, summary
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorageInMemory()
	if err != nil {
		t.Fatalf("NewStorageInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestIngestCandidateWritesAllTables(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()

	receipt, err := s.IngestCandidate(parsed, summary, "/resumes/jane.pdf")
	if err != nil {
		t.Fatalf("IngestCandidate() error = %v", err)
	}
	if receipt.CandidateID == 0 || receipt.ParsedID == 0 {
		t.Errorf("receipt ids = (%d, %d), want non-zero", receipt.CandidateID, receipt.ParsedID)
	}
	if receipt.Report == nil {
		t.Fatal("receipt should carry a validation report")
	}
	if receipt.Report.CandidateName != "Jane Doe" {
		t.Errorf("report candidate = %q, want Jane Doe", receipt.Report.CandidateName)
	}
	if receipt.Report.CompletenessGrade == "" {
		t.Error("report should carry a completeness grade")
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Candidates != 1 {
		t.Errorf("candidates = %d, want 1", stats.Candidates)
	}
	if stats.ParsedResumes != 1 {
		t.Errorf("parsed resumes = %d, want 1", stats.ParsedResumes)
	}
	if stats.Experiences != 2 {
		t.Errorf("experiences = %d, want 2", stats.Experiences)
	}
	if stats.EducationRows != 1 {
		t.Errorf("education rows = %d, want 1", stats.EducationRows)
	}
	if stats.Skills != 2 {
		t.Errorf("skills = %d, want 2", stats.Skills)
	}
	if stats.FilterValues == 0 {
		t.Error("filter values should be recorded during ingestion")
	}
	if stats.SearchDocs != 1 {
		t.Errorf("search documents = %d, want 1", stats.SearchDocs)
	}
}

func TestIngestCandidateRequiresInputs(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()

	if _, err := s.IngestCandidate(nil, summary, ""); err == nil {
		t.Error("IngestCandidate(nil parsed) should fail")
	}
	if _, err := s.IngestCandidate(parsed, nil, ""); err == nil {
		t.Error("IngestCandidate(nil summary) should fail")
	}
}

func TestIngestCandidateRollsBackOnFailure(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()

	// Remove the skills table so ingestion fails partway through the
	// transaction, after the parsed, candidate, and experience inserts.
	if _, err := s.db.Exec("DROP TABLE skills"); err != nil {
		t.Fatalf("drop table error = %v", err)
	}

	if _, err := s.IngestCandidate(parsed, summary, ""); err == nil {
		t.Fatal("IngestCandidate() should fail once the skills table is gone")
	}

	counts := []struct {
		name string
		fn   func() (int, error)
	}{
		{"candidates", s.candidates.Count},
		{"parsed resumes", s.parsed.Count},
		{"experiences", s.experiences.Count},
		{"filter values", s.filters.Count},
	}
	for _, c := range counts {
		n, err := c.fn()
		if err != nil {
			t.Fatalf("%s count error = %v", c.name, err)
		}
		if n != 0 {
			t.Errorf("%s = %d after rollback, want 0", c.name, n)
		}
	}
}

func TestIngestTwiceKeepsFilterValuesStable(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()

	if _, err := s.IngestCandidate(parsed, summary, ""); err != nil {
		t.Fatalf("first IngestCandidate() error = %v", err)
	}
	first, err := s.filters.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}

	if _, err := s.IngestCandidate(parsed, summary, ""); err != nil {
		t.Fatalf("second IngestCandidate() error = %v", err)
	}
	second, err := s.filters.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}

	if first != second {
		t.Errorf("filter values grew from %d to %d on duplicate ingestion", first, second)
	}
}

func TestSearchCandidatesBlankQueryReturnsNil(t *testing.T) {
	s := newTestStorage(t)

	for _, query := range []string{"", "   ", "\t\n"} {
		if res := s.SearchCandidates(query); res != nil {
			t.Errorf("SearchCandidates(%q) = %+v, want nil", query, res)
		}
	}
}

func TestSearchCandidatesMalformedQueryReturnsNil(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()
	if _, err := s.IngestCandidate(parsed, summary, ""); err != nil {
		t.Fatalf("IngestCandidate() error = %v", err)
	}

	if res := s.SearchCandidates("AND AND"); res != nil {
		t.Errorf("SearchCandidates(AND AND) = %+v, want nil for an engine failure", res)
	}
}

func TestSearchCandidatesNoMatchesReturnsEmpty(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()
	if _, err := s.IngestCandidate(parsed, summary, ""); err != nil {
		t.Fatalf("IngestCandidate() error = %v", err)
	}

	res := s.SearchCandidates("zzzquark")
	if res == nil {
		t.Fatal("SearchCandidates() = nil, want an empty result when nothing matches")
	}
	if len(res.Candidates) != 0 {
		t.Errorf("candidates = %d, want 0", len(res.Candidates))
	}
	if res.Query != "zzzquark" {
		t.Errorf("query = %q, want the original text", res.Query)
	}
}

func TestSearchCandidatesAnnotatesHits(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()
	if _, err := s.IngestCandidate(parsed, summary, ""); err != nil {
		t.Fatalf("IngestCandidate() error = %v", err)
	}

	res := s.SearchCandidates("python")
	if res == nil {
		t.Fatal("SearchCandidates(python) = nil, want a hit")
	}
	if len(res.Candidates) != 1 {
		t.Fatalf("candidates = %d, want 1", len(res.Candidates))
	}

	row := res.Candidates[0]
	if row.Name != "Jane Doe" {
		t.Errorf("name = %q, want Jane Doe", row.Name)
	}
	if row.Rank == nil {
		t.Error("rank should be set on search hits")
	}
	if row.HighestDegree != "MBA" {
		t.Errorf("highest degree = %q, want MBA", row.HighestDegree)
	}
	if row.QualityScore == nil {
		t.Error("quality score should join onto search hits")
	}

	var annotated bool
	for _, info := range row.MatchInfo {
		if strings.Contains(info, "Skills: Python") {
			annotated = true
		}
	}
	if !annotated {
		t.Errorf("match info = %v, want a skills annotation", row.MatchInfo)
	}
}

func TestListCandidatesDerivesHighestDegree(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()
	if _, err := s.IngestCandidate(parsed, summary, ""); err != nil {
		t.Fatalf("IngestCandidate() error = %v", err)
	}

	rows, err := s.ListCandidates()
	if err != nil {
		t.Fatalf("ListCandidates() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].HighestDegree != "MBA" {
		t.Errorf("highest degree = %q, want MBA", rows[0].HighestDegree)
	}
	if rows[0].QualityGrade == "" {
		t.Error("quality grade should join onto listed rows")
	}
}

func TestGetCandidateDetail(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()
	receipt, err := s.IngestCandidate(parsed, summary, "")
	if err != nil {
		t.Fatalf("IngestCandidate() error = %v", err)
	}

	detail, err := s.GetCandidateDetail(receipt.CandidateID)
	if err != nil {
		t.Fatalf("GetCandidateDetail() error = %v", err)
	}
	if detail == nil {
		t.Fatal("GetCandidateDetail() = nil for an ingested candidate")
	}
	if detail.Candidate.Name != "Jane Doe" {
		t.Errorf("name = %q, want Jane Doe", detail.Candidate.Name)
	}
	if len(detail.Experiences) != 2 {
		t.Errorf("experiences = %d, want 2", len(detail.Experiences))
	}
	if len(detail.Education) != 1 {
		t.Errorf("education = %d, want 1", len(detail.Education))
	}
	if len(detail.Skills) != 2 {
		t.Errorf("skills = %d, want 2", len(detail.Skills))
	}
	if detail.Quality == nil || detail.Quality.Grade == "" {
		t.Errorf("quality = %+v, want a graded score", detail.Quality)
	}
}

func TestGetCandidateDetailMissing(t *testing.T) {
	s := newTestStorage(t)

	detail, err := s.GetCandidateDetail(404)
	if err != nil {
		t.Fatalf("GetCandidateDetail() error = %v", err)
	}
	if detail != nil {
		t.Errorf("GetCandidateDetail(404) = %+v, want nil", detail)
	}
}

func TestGetParsedRecordRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()
	receipt, err := s.IngestCandidate(parsed, summary, "")
	if err != nil {
		t.Fatalf("IngestCandidate() error = %v", err)
	}

	got, err := s.GetParsedRecord(receipt.ParsedID)
	if err != nil {
		t.Fatalf("GetParsedRecord() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetParsedRecord() = nil for an archived record")
	}
	if got.Name != "Jane Doe" || len(got.Experiences) != 2 {
		t.Errorf("parsed record = %q with %d experiences, want Jane Doe with 2", got.Name, len(got.Experiences))
	}
}

func TestFilterValuesAfterIngestion(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()
	if _, err := s.IngestCandidate(parsed, summary, ""); err != nil {
		t.Fatalf("IngestCandidate() error = %v", err)
	}

	tests := []struct {
		category string
		want     []string
	}{
		{FieldGeography, []string{"United States"}},
		{FieldSector, []string{"Technology"}},
		{FieldApproach, []string{"Fundamental"}},
		{FieldCompany, []string{"Acme Capital", "Maple Partners"}},
		{FieldSchool, []string{"Wharton"}},
		{FieldDegree, []string{"MBA"}},
	}
	for _, tt := range tests {
		got := s.FilterValues(tt.category)
		if len(got) != len(tt.want) {
			t.Errorf("FilterValues(%s) = %v, want %v", tt.category, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("FilterValues(%s)[%d] = %q, want %q", tt.category, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFilterValuesDegradeToEmpty(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.db.Exec("DROP TABLE filter_values"); err != nil {
		t.Fatalf("drop table error = %v", err)
	}

	got := s.FilterValues(FieldSkill)
	if got == nil {
		t.Fatal("FilterValues() = nil, want an empty slice when the read fails")
	}
	if len(got) != 0 {
		t.Errorf("FilterValues() = %v, want empty", got)
	}
}

func TestSearchSuggestionsDegradeToEmpty(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.db.Exec("DROP TABLE experiences"); err != nil {
		t.Fatalf("drop table error = %v", err)
	}

	got := s.SearchSuggestions(30)
	if got == nil {
		t.Fatal("SearchSuggestions() = nil, want an empty slice when the read fails")
	}
	if len(got) != 0 {
		t.Errorf("SearchSuggestions() = %v, want empty", got)
	}
}

func TestSearchSuggestionsAfterIngestion(t *testing.T) {
	s := newTestStorage(t)
	parsed, summary := ingestFixture()
	if _, err := s.IngestCandidate(parsed, summary, ""); err != nil {
		t.Fatalf("IngestCandidate() error = %v", err)
	}

	suggestions := s.SearchSuggestions(30)
	for _, want := range []string{"Acme Capital", "MBA", "Python"} {
		var found bool
		for _, got := range suggestions {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("suggestions %v missing %q", suggestions, want)
		}
	}
}
