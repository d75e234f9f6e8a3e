// ABOUTME: Filters carries the structured predicate selections for a query
// ABOUTME: "All" or empty string leaves a predicate unset
package models

// FilterAll is the sentinel dropdown value meaning "predicate not applied".
const FilterAll = "All"

// Filters is the set of structured predicates narrowing a candidate result
// set. Zero values (and FilterAll for the string predicates) are skipped.
type Filters struct {
	Geography string   `json:"geography,omitempty"`
	Approach  string   `json:"approach,omitempty"`
	Sector    string   `json:"sector,omitempty"`
	Degree    string   `json:"degree,omitempty"`
	Company   string   `json:"company,omitempty"`
	School    string   `json:"school,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	MinYears  *float64 `json:"min_years,omitempty"`
	MaxYears  *float64 `json:"max_years,omitempty"`
}

// IsZero reports whether no predicate is active.
func (f Filters) IsZero() bool {
	for _, v := range []string{f.Geography, f.Approach, f.Sector, f.Degree, f.Company, f.School} {
		if v != "" && v != FilterAll {
			return false
		}
	}
	return len(f.Skills) == 0 && f.MinYears == nil && f.MaxYears == nil
}
