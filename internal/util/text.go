// ABOUTME: Text helpers for aggregate string handling
// ABOUTME: Shared by the document builder, query composer, and suggestion reads
package util

import (
	"sort"
	"strings"
)

// JoinNonEmpty joins parts with sep, skipping empty and whitespace-only
// entries.
func JoinNonEmpty(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// SplitList splits a comma-joined aggregate into trimmed, non-empty items.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// UniqueSorted returns the distinct values sorted ascending.
func UniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ContainsFold reports whether substr is a case-insensitive substring of s.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
