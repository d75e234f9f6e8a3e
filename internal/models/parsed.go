// ABOUTME: Input records produced by the external resume-extraction pipeline
// ABOUTME: ParsedResume is the full record, CandidateSummary the condensed view
package models

// ParsedResume is the complete extracted record for one candidate, as
// delivered by the extraction collaborator. It is archived verbatim in the
// warehouse for audit and debugging.
type ParsedResume struct {
	Name           string             `json:"name"`
	Email          string             `json:"email,omitempty"`
	Phone          string             `json:"phone,omitempty"`
	Location       string             `json:"location,omitempty"`
	LinkedIn       string             `json:"linkedin,omitempty"`
	Experiences    []ExperienceRecord `json:"experiences,omitempty"`
	Education      []EducationRecord  `json:"education,omitempty"`
	Skills         []string           `json:"skills,omitempty"`
	Certifications []string           `json:"certifications,omitempty"`
	Languages      []string           `json:"languages,omitempty"`
}

// ExperienceRecord is one job held by a candidate.
type ExperienceRecord struct {
	Company              string   `json:"company"`
	Title                string   `json:"title"`
	Start                string   `json:"start,omitempty"`
	End                  string   `json:"end,omitempty"`
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

// EducationRecord is one degree earned by a candidate.
type EducationRecord struct {
	Degree string `json:"degree"`
	Major  string `json:"major,omitempty"`
	School string `json:"school"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
	Honors string `json:"honors,omitempty"`
}

// CandidateSummary is the condensed record used for the denormalized
// candidate row. Derived from the parsed record by the extraction
// collaborator.
type CandidateSummary struct {
	Name               string   `json:"name"`
	CurrentTitle       string   `json:"current_title,omitempty"`
	CurrentCompany     string   `json:"current_company,omitempty"`
	YearsExperience    *float64 `json:"years_experience,omitempty"`
	SectorFocus        []string `json:"sector_focus,omitempty"`
	InvestmentApproach string   `json:"investment_approach,omitempty"`
	PrimaryGeography   string   `json:"primary_geography,omitempty"`
	SummaryBlurb       string   `json:"summary_blurb,omitempty"`
	TopSkills          []string `json:"top_skills,omitempty"`
	NotableExperience  []string `json:"notable_experience,omitempty"`
	EducationHighlight string   `json:"education_highlight,omitempty"`
	Certifications     []string `json:"certifications,omitempty"`
}

// PrimarySector returns the first entry of the sector-focus list, which is
// what the candidate row and the filter cache index as the sector.
func (s *CandidateSummary) PrimarySector() string {
	if len(s.SectorFocus) == 0 {
		return ""
	}
	return s.SectorFocus[0]
}
