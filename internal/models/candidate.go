// ABOUTME: Warehouse row types for candidates and their child tables
// ABOUTME: Mirrors the star schema: candidates, experiences, education, skills
package models

// Candidate is the denormalized summary row, one per candidate.
type Candidate struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	CurrentTitle       string   `json:"current_title,omitempty"`
	CurrentCompany     string   `json:"current_company,omitempty"`
	YearsExperience    *float64 `json:"years_experience,omitempty"`
	PrimarySector      string   `json:"primary_sector,omitempty"`
	InvestmentApproach string   `json:"investment_approach,omitempty"`
	PrimaryGeography   string   `json:"primary_geography,omitempty"`
	SummaryBlurb       string   `json:"summary_blurb,omitempty"`
	TopSkills          []string `json:"top_skills,omitempty"`
	NotableExperience  []string `json:"notable_experience,omitempty"`
	EducationHighlight string   `json:"education_highlight,omitempty"`
	Certifications     []string `json:"certifications,omitempty"`
	ResumePath         string   `json:"resume_path,omitempty"`
	ParsedID           *int64   `json:"parsed_id,omitempty"`
	CreatedAt          string   `json:"created_at,omitempty"`
}

// Experience is one job row, many per candidate, immutable after insert.
type Experience struct {
	ID                   int64    `json:"id"`
	CandidateID          int64    `json:"candidate_id"`
	Company              string   `json:"company"`
	Title                string   `json:"title"`
	StartDate            string   `json:"start_date,omitempty"`
	EndDate              string   `json:"end_date,omitempty"`
	Sectors              []string `json:"sectors,omitempty"`
	Approach             string   `json:"approach,omitempty"`
	ClientType           string   `json:"client_type,omitempty"`
	NumCompaniesCovered  *int     `json:"num_companies_covered,omitempty"`
	NumSectorsCovered    *int     `json:"num_sectors_covered,omitempty"`
	CoverageValue        string   `json:"coverage_value,omitempty"`
	RegionsCovered       []string `json:"regions_covered,omitempty"`
	SharpeRatio          *float64 `json:"sharpe_ratio,omitempty"`
	Alpha                string   `json:"alpha,omitempty"`
	ValuationMethodsUsed []string `json:"valuation_methods_used,omitempty"`
	QuantToolsUsed       []string `json:"quant_tools_used,omitempty"`
	BulletPoints         []string `json:"bullet_points,omitempty"`
}

// Education is one degree row.
type Education struct {
	ID          int64  `json:"id"`
	CandidateID int64  `json:"candidate_id"`
	Degree      string `json:"degree"`
	Major       string `json:"major,omitempty"`
	School      string `json:"school"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

// QualityScore is the completeness annotation row, one per candidate.
type QualityScore struct {
	ID               int64          `json:"id"`
	CandidateID      int64          `json:"candidate_id"`
	Score            float64        `json:"quality_score"`
	Grade            string         `json:"grade"`
	TotalIssues      int            `json:"total_issues"`
	Issues           *QualityIssues `json:"issues,omitempty"`
	DataCompleteness *Completeness  `json:"data_completeness,omitempty"`
	CreatedAt        string         `json:"created_at,omitempty"`
}

// CandidateDetail bundles a candidate with all child rows for display.
type CandidateDetail struct {
	Candidate   Candidate     `json:"candidate"`
	Experiences []Experience  `json:"experiences,omitempty"`
	Education   []Education   `json:"education,omitempty"`
	Skills      []string      `json:"skills,omitempty"`
	Quality     *QualityScore `json:"quality,omitempty"`
}
