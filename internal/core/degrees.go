// ABOUTME: Highest-degree derivation from the comma-joined degree aggregate
// ABOUTME: Ranks PhD above MBA above MS above BS by token presence
package core

import "strings"

// degreeTokens are scanned as substrings of each upper-cased aggregate
// segment. Rank decides the winner; the label is derived from the rank so
// spelling variants collapse to one display form.
var degreeTokens = []struct {
	token string
	rank  int
}{
	{"PH.D.", 4},
	{"PHD", 4},
	{"PH.D", 4},
	{"MBA", 3},
	{"M.S.", 2},
	{"MS", 2},
	{"M.S", 2},
	{"B.S.", 1},
	{"BS", 1},
	{"B.S", 1},
	{"BA", 1},
	{"B.A.", 1},
}

// degreeLabels maps a rank to its display label.
var degreeLabels = map[int]string{
	4: "PhD",
	3: "MBA",
	2: "MS",
	1: "BS",
}

// HighestDegree scans a comma-joined degree aggregate for known degree
// tokens (case-insensitive) and returns the highest-ranked label found.
// Returns "" when the aggregate is empty or no token matches.
func HighestDegree(allDegrees string) string {
	if allDegrees == "" {
		return ""
	}

	highestRank := 0
	for _, segment := range strings.Split(strings.ToUpper(allDegrees), ",") {
		segment = strings.TrimSpace(segment)
		for _, dt := range degreeTokens {
			if strings.Contains(segment, dt.token) && dt.rank > highestRank {
				highestRank = dt.rank
			}
		}
	}

	return degreeLabels[highestRank]
}
