// ABOUTME: Query result types: joined candidate rows and search results
// ABOUTME: SearchDocument doubles as the FTS record at index and query time
package models

// SearchDocument is the denormalized per-candidate text record held in the
// full-text index. The builder fills it at ingestion; searches read the same
// columns back to explain what matched.
type SearchDocument struct {
	Name           string `json:"name"`
	CurrentTitle   string `json:"current_title"`
	CurrentCompany string `json:"current_company"`
	Skills         string `json:"skills"`
	ExperienceText string `json:"experience_text"`
	EducationText  string `json:"education_text"`
	AllCompanies   string `json:"all_companies"`
	Certifications string `json:"certifications"`
}

// CandidateRow is one row of a query result: the candidate columns joined
// with the quality annotation and the aggregated multi-valued dimensions.
// Rank, Document, and MatchInfo are populated only on the search path.
type CandidateRow struct {
	Candidate

	QualityScore *float64 `json:"quality_score,omitempty"`
	QualityGrade string   `json:"quality_grade,omitempty"`
	TotalIssues  *int     `json:"total_issues,omitempty"`

	AllSkills    string `json:"all_skills,omitempty"`
	AllCompanies string `json:"all_companies,omitempty"`
	AllSchools   string `json:"all_schools,omitempty"`
	AllDegrees   string `json:"all_degrees,omitempty"`

	HighestDegree string `json:"highest_degree,omitempty"`

	Rank      *float64        `json:"rank,omitempty"`
	Document  *SearchDocument `json:"-"`
	MatchInfo []string        `json:"match_info,omitempty"`
}

// SearchResult is the outcome of an executed search. A nil *SearchResult
// means no search was performed (blank query, or the engine failed and the
// failure was degraded); a non-nil result with zero candidates means the
// search ran and matched nothing.
type SearchResult struct {
	Query      string         `json:"query"`
	Candidates []CandidateRow `json:"candidates"`
}
