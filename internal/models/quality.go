// ABOUTME: Quality validation output types: issue lists and report files
// ABOUTME: Produced at ingestion time and stored with each candidate
package models

// QualityIssues groups validation findings by severity.
type QualityIssues struct {
	Critical   []string `json:"critical"`
	Formatting []string `json:"formatting"`
	Warnings   []string `json:"warnings"`
}

// Total returns the combined issue count across severities.
func (q *QualityIssues) Total() int {
	if q == nil {
		return 0
	}
	return len(q.Critical) + len(q.Formatting) + len(q.Warnings)
}

// Completeness records which expected fields were missing at ingestion.
type Completeness struct {
	MissingRequired []string `json:"missing_required"`
	MissingOptional []string `json:"missing_optional"`
}

// ValidationReport is the JSON document written per ingested candidate.
type ValidationReport struct {
	ReportID          string         `json:"report_id"`
	CandidateName     string         `json:"candidate_name"`
	CandidateID       int64          `json:"candidate_id"`
	Timestamp         string         `json:"timestamp"`
	CompletenessScore float64        `json:"completeness_score"`
	CompletenessGrade string         `json:"completeness_grade"`
	MissingRequired   []string       `json:"missing_required"`
	MissingOptional   []string       `json:"missing_optional"`
	TotalIssues       int            `json:"total_issues"`
	IssuesBySeverity  map[string]int `json:"issues_by_severity"`
	Issues            *QualityIssues `json:"issues"`
}
