// ABOUTME: Human-readable "what matched" annotations for search results
// ABOUTME: Compares the query against the stored search-document fields
package core

import (
	"strings"

	"github.com/harper/talent-warehouse/internal/models"
	"github.com/harper/talent-warehouse/internal/util"
)

const (
	maxMatchedSkills    = 3
	maxMatchedEmployers = 2
)

// MatchAnnotations explains why a search hit matched. Each annotation names
// the field (and a short value preview) where the query text appears in the
// candidate's search document. Falls back to a generic note when the match
// came from ranking alone (stemmed or multi-term matches).
func MatchAnnotations(row *models.CandidateRow, query string) []string {
	q := strings.ToLower(query)
	doc := row.Document

	var matches []string
	if doc != nil {
		if doc.Name != "" && strings.Contains(strings.ToLower(doc.Name), q) {
			matches = append(matches, "Name: "+row.Name)
		}
		if doc.CurrentCompany != "" && strings.Contains(strings.ToLower(doc.CurrentCompany), q) {
			matches = append(matches, "Company: "+row.CurrentCompany)
		}
		if doc.CurrentTitle != "" && strings.Contains(strings.ToLower(doc.CurrentTitle), q) {
			matches = append(matches, "Title: "+row.CurrentTitle)
		}
		if doc.Skills != "" && strings.Contains(strings.ToLower(doc.Skills), q) {
			if matched := matchingItems(row.AllSkills, q, maxMatchedSkills); len(matched) > 0 {
				matches = append(matches, "Skills: "+strings.Join(matched, ", "))
			}
		}
		if row.AllCompanies != "" && strings.Contains(strings.ToLower(row.AllCompanies), q) {
			matched := matchingItems(row.AllCompanies, q, maxMatchedEmployers)
			// Skip when the best match is the current employer; that case is
			// already covered by the Company annotation.
			if len(matched) > 0 && matched[0] != row.CurrentCompany {
				matches = append(matches, "Past Experience: "+strings.Join(matched, ", "))
			}
		}
		if doc.EducationText != "" && strings.Contains(strings.ToLower(doc.EducationText), q) {
			matches = append(matches, "Education matched")
		}
		if doc.Certifications != "" && strings.Contains(strings.ToLower(doc.Certifications), q) {
			matches = append(matches, "Certifications matched")
		}
	}

	if len(matches) == 0 {
		return []string{"Relevant match found"}
	}
	return matches
}

// matchingItems returns up to limit entries of a comma-joined aggregate that
// contain the lower-cased query as a substring.
func matchingItems(aggregate, loweredQuery string, limit int) []string {
	var matched []string
	for _, item := range util.SplitList(aggregate) {
		if strings.Contains(strings.ToLower(item), loweredQuery) {
			matched = append(matched, item)
			if len(matched) == limit {
				break
			}
		}
	}
	return matched
}
