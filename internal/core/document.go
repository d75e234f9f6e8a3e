// ABOUTME: Builds the denormalized full-text search document for a candidate
// ABOUTME: Concatenates skills, certifications, experience and education text
package core

import (
	"strings"

	"github.com/harper/talent-warehouse/internal/models"
	"github.com/harper/talent-warehouse/internal/util"
)

// BuildSearchDocument flattens a candidate's parsed and summary records into
// the text fields indexed by the full-text search table. Experience text is
// every "company title" pair plus bullet points; education text is every
// "degree major school" triple.
func BuildSearchDocument(parsed *models.ParsedResume, summary *models.CandidateSummary) *models.SearchDocument {
	doc := &models.SearchDocument{
		Name:           summary.Name,
		CurrentTitle:   summary.CurrentTitle,
		CurrentCompany: summary.CurrentCompany,
		Skills:         strings.Join(summary.TopSkills, " "),
		Certifications: strings.Join(summary.Certifications, " "),
	}

	var companies []string
	var experienceParts []string
	for _, exp := range parsed.Experiences {
		if exp.Company != "" {
			companies = append(companies, exp.Company)
		}
		experienceParts = append(experienceParts, util.JoinNonEmpty([]string{exp.Company, exp.Title}, " "))
		experienceParts = append(experienceParts, exp.BulletPoints...)
	}
	doc.ExperienceText = util.JoinNonEmpty(experienceParts, " ")
	doc.AllCompanies = strings.Join(companies, " ")

	var educationParts []string
	for _, edu := range parsed.Education {
		educationParts = append(educationParts, util.JoinNonEmpty([]string{edu.Degree, edu.Major, edu.School}, " "))
	}
	doc.EducationText = util.JoinNonEmpty(educationParts, " ")

	return doc
}
