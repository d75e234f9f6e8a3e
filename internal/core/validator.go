// ABOUTME: Quality validation for ingested candidate records
// ABOUTME: Computes completeness score, letter grade, and issue lists
package core

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/harper/talent-warehouse/internal/models"
)

// Severity labels used in report issue counts.
const (
	SeverityCritical   = "critical"
	SeverityFormatting = "formatting"
	SeverityWarnings   = "warnings"
)

var (
	datePattern    = regexp.MustCompile(`^[A-Z][a-z]{2}-\d{2}-\d{4}$`)
	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[BMD]\.[A-Z]\.$`),        // B.S., M.A., D.A.
		regexp.MustCompile(`^[BMD]\.[A-Z]\.[A-Z]\.$`), // M.B.A., B.B.A.
		regexp.MustCompile(`^Ph\.D\.$`),
		regexp.MustCompile(`^D\.Phil\.$`),
		regexp.MustCompile(`^[MJ]\.D\.$`), // M.D., J.D.
		regexp.MustCompile(`^[A-Z]{2,4}$`), // MBA, MFA, BBA, MBBS
	}
)

// Validator performs deterministic quality checks on candidate records
// before they are written to the warehouse.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// CompletenessScore grades field presence across the parsed and summary
// records: ten required fields and five optional ones, scored as the
// percentage present (one decimal place). Grades: A>=90, B>=80, C>=70,
// D>=60, else F.
func (v *Validator) CompletenessScore(parsed *models.ParsedResume, summary *models.CandidateSummary) (float64, string, []string, []string) {
	hasMetrics := false
	for _, exp := range parsed.Experiences {
		if exp.SharpeRatio != nil || exp.Alpha != "" || exp.CoverageValue != "" {
			hasMetrics = true
			break
		}
	}

	required := []fieldCheck{
		{"name", parsed.Name != ""},
		{"email", parsed.Email != ""},
		{"current_title", summary.CurrentTitle != ""},
		{"current_company", summary.CurrentCompany != ""},
		{"experience", len(parsed.Experiences) > 0},
		{"education", len(parsed.Education) > 0},
		{"skills", len(parsed.Skills) > 0},
		{"years_experience", summary.YearsExperience != nil && *summary.YearsExperience != 0},
		{"primary_geography", summary.PrimaryGeography != ""},
		{"investment_approach", summary.InvestmentApproach != ""},
	}
	optional := []fieldCheck{
		{"phone", parsed.Phone != ""},
		{"location", parsed.Location != ""},
		{"linkedin", parsed.LinkedIn != ""},
		{"certifications", len(summary.Certifications) > 0},
		{"performance_metrics", hasMetrics},
	}

	present := 0
	var missingRequired, missingOptional []string
	for _, c := range required {
		if c.present {
			present++
		} else {
			missingRequired = append(missingRequired, c.name)
		}
	}
	for _, c := range optional {
		if c.present {
			present++
		} else {
			missingOptional = append(missingOptional, c.name)
		}
	}

	total := len(required) + len(optional)
	score := math.Round(float64(present)/float64(total)*1000) / 10

	grade := "F"
	switch {
	case score >= 90:
		grade = "A"
	case score >= 80:
		grade = "B"
	case score >= 70:
		grade = "C"
	case score >= 60:
		grade = "D"
	}

	return score, grade, missingRequired, missingOptional
}

type fieldCheck struct {
	name    string
	present bool
}

// Validate collects quality issues in three severities: critical for
// missing core attributes, formatting for name/date/degree format problems,
// warnings for missing optional data.
func (v *Validator) Validate(parsed *models.ParsedResume, summary *models.CandidateSummary) *models.QualityIssues {
	issues := &models.QualityIssues{
		Critical:   []string{},
		Formatting: []string{},
		Warnings:   []string{},
	}

	if parsed.Name == "" {
		issues.Critical = append(issues.Critical, "Missing candidate name")
	}
	if parsed.Email == "" {
		issues.Critical = append(issues.Critical, "Missing email address")
	}
	if summary.Name == "" {
		issues.Critical = append(issues.Critical, "Missing name in summary")
	}
	if summary.CurrentTitle == "" {
		issues.Critical = append(issues.Critical, "Missing current title")
	}
	if summary.CurrentCompany == "" {
		issues.Critical = append(issues.Critical, "Missing current company")
	}

	if parsed.Name != "" && !isTitleCase(parsed.Name) {
		issues.Formatting = append(issues.Formatting, fmt.Sprintf("Name not in Title Case: '%s'", parsed.Name))
	}
	if summary.Name != "" && !isTitleCase(summary.Name) {
		issues.Formatting = append(issues.Formatting, fmt.Sprintf("Summary name not in Title Case: '%s'", summary.Name))
	}

	for i, edu := range parsed.Education {
		if edu.Degree != "" && !isValidDegreeFormat(edu.Degree) {
			issues.Formatting = append(issues.Formatting,
				fmt.Sprintf("Education #%d: Invalid degree format '%s' (expected B.S., MBA, Ph.D., etc.)", i+1, edu.Degree))
		}
		if edu.Degree == "" {
			issues.Warnings = append(issues.Warnings, fmt.Sprintf("Education #%d: Missing degree", i+1))
		}
		if edu.Start != "" && !isValidDateFormat(edu.Start) {
			issues.Formatting = append(issues.Formatting,
				fmt.Sprintf("Education #%d: Invalid start date format '%s' (expected MMM-DD-YYYY)", i+1, edu.Start))
		}
		if edu.End != "" && !isValidDateFormat(edu.End) {
			issues.Formatting = append(issues.Formatting,
				fmt.Sprintf("Education #%d: Invalid end date format '%s' (expected MMM-DD-YYYY)", i+1, edu.End))
		}
	}

	for i, exp := range parsed.Experiences {
		company := exp.Company
		if company == "" {
			company = "Unknown"
		}
		if exp.Start != "" && !isValidDateFormat(exp.Start) {
			issues.Formatting = append(issues.Formatting,
				fmt.Sprintf("Experience #%d (%s): Invalid start date '%s'", i+1, company, exp.Start))
		}
		if exp.End != "" && !isValidDateFormat(exp.End) {
			issues.Formatting = append(issues.Formatting,
				fmt.Sprintf("Experience #%d (%s): Invalid end date '%s'", i+1, company, exp.End))
		}
	}

	if parsed.Phone == "" {
		issues.Warnings = append(issues.Warnings, "Missing phone number")
	}
	if parsed.Location == "" {
		issues.Warnings = append(issues.Warnings, "Missing location")
	}
	if len(parsed.Experiences) == 0 {
		issues.Critical = append(issues.Critical, "No work experience found")
	}
	if len(parsed.Education) == 0 {
		issues.Warnings = append(issues.Warnings, "No education history found")
	}
	if len(parsed.Skills) == 0 {
		issues.Warnings = append(issues.Warnings, "No skills listed")
	}
	if summary.YearsExperience == nil || *summary.YearsExperience == 0 {
		issues.Warnings = append(issues.Warnings, "Missing years of experience")
	}

	return issues
}

// BuildReport assembles the per-candidate validation report document.
func (v *Validator) BuildReport(candidateName string, candidateID int64, issues *models.QualityIssues,
	score float64, grade string, missingRequired, missingOptional []string) *models.ValidationReport {
	if missingRequired == nil {
		missingRequired = []string{}
	}
	if missingOptional == nil {
		missingOptional = []string{}
	}
	return &models.ValidationReport{
		ReportID:          uuid.New().String(),
		CandidateName:     candidateName,
		CandidateID:       candidateID,
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		CompletenessScore: score,
		CompletenessGrade: grade,
		MissingRequired:   missingRequired,
		MissingOptional:   missingOptional,
		TotalIssues:       issues.Total(),
		IssuesBySeverity: map[string]int{
			SeverityCritical:   len(issues.Critical),
			SeverityFormatting: len(issues.Formatting),
			SeverityWarnings:   len(issues.Warnings),
		},
		Issues: issues,
	}
}

// isTitleCase reports whether every word starts with an uppercase letter and
// no multi-character word is written in all caps.
func isTitleCase(name string) bool {
	if name == "" {
		return false
	}
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		if len(runes) > 1 && isAllUpper(word) {
			return false
		}
		if !unicode.IsUpper(runes[0]) {
			return false
		}
	}
	return true
}

// isAllUpper reports whether the word contains at least one letter and every
// letter in it is uppercase.
func isAllUpper(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isValidDateFormat accepts MMM-DD-YYYY dates and the literal "Present".
func isValidDateFormat(date string) bool {
	if date == "" || date == "Present" {
		return true
	}
	return datePattern.MatchString(date)
}

// isValidDegreeFormat accepts standard degree spellings such as B.S., MBA,
// M.B.A., Ph.D., and short all-caps forms.
func isValidDegreeFormat(degree string) bool {
	degree = strings.TrimSpace(degree)
	for _, p := range degreePatterns {
		if p.MatchString(degree) {
			return true
		}
	}
	return false
}
