// ABOUTME: Tests for MCP tool handlers
// ABOUTME: Exercises each tool against an in-memory warehouse
package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/talent-warehouse/internal/models"
	"github.com/harper/talent-warehouse/internal/storage"
)

func testHandlers(t *testing.T) *Handlers {
	t.Helper()
	w, err := storage.OpenInMemory(filepath.Join(t.TempDir(), "reports"))
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	years := 8.5
	parsed := &models.ParsedResume{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Experiences: []models.ExperienceRecord{
			{Company: "Acme Capital", Title: "Senior Analyst", Start: "Jan-01-2019", End: "Present"},
		},
		Education: []models.EducationRecord{{Degree: "MBA", School: "Wharton"}},
		Skills:    []string{"Python", "SQL"},
	}
	summary := &models.CandidateSummary{
		Name:               "Jane Doe",
		CurrentTitle:       "Senior Analyst",
		CurrentCompany:     "Acme Capital",
		YearsExperience:    &years,
		SectorFocus:        []string{"Technology"},
		InvestmentApproach: "Fundamental",
		PrimaryGeography:   "United States",
		TopSkills:          []string{"Python", "SQL"},
	}
	if _, err := w.Ingest(parsed, summary, ""); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	return &Handlers{warehouse: w, suggestionLimit: 30}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultJSON decodes a successful text result into a generic map.
func resultJSON(t *testing.T, res *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	if res.IsError {
		t.Fatalf("result is an error: %+v", res.Content)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want TextContent", res.Content[0])
	}
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("response unmarshal error = %v", err)
	}
	return payload
}

func errorText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if !res.IsError {
		t.Fatalf("expected an error result, got %+v", res.Content)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want TextContent", res.Content[0])
	}
	return text.Text
}

func TestSearchCandidatesTool(t *testing.T) {
	h := testHandlers(t)

	res, err := h.SearchCandidates(context.Background(), callRequest(map[string]any{"query": "python"}))
	if err != nil {
		t.Fatalf("SearchCandidates() error = %v", err)
	}

	payload := resultJSON(t, res)
	if payload["count"].(float64) != 1 {
		t.Errorf("count = %v, want 1", payload["count"])
	}
	candidates := payload["candidates"].([]interface{})
	first := candidates[0].(map[string]interface{})
	if first["name"] != "Jane Doe" {
		t.Errorf("name = %v, want Jane Doe", first["name"])
	}
}

func TestSearchCandidatesToolRejectsBlankQuery(t *testing.T) {
	h := testHandlers(t)

	res, err := h.SearchCandidates(context.Background(), callRequest(map[string]any{"query": "   "}))
	if err != nil {
		t.Fatalf("SearchCandidates() error = %v", err)
	}
	if msg := errorText(t, res); !strings.Contains(msg, "could not be run") {
		t.Errorf("error = %q, want the not-run explanation", msg)
	}
}

func TestSearchCandidatesToolRequiresQuery(t *testing.T) {
	h := testHandlers(t)

	res, err := h.SearchCandidates(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("SearchCandidates() error = %v", err)
	}
	if !res.IsError {
		t.Error("missing query should produce an error result")
	}
}

func TestFilterCandidatesTool(t *testing.T) {
	h := testHandlers(t)

	tests := []struct {
		name string
		args map[string]any
		want int
	}{
		{"browse all", map[string]any{}, 1},
		{"geography match", map[string]any{"geography": "United States"}, 1},
		{"geography miss", map[string]any{"geography": "Europe"}, 0},
		{"skills any-of", map[string]any{"skills": []interface{}{"python"}}, 1},
		{"min years excludes", map[string]any{"min_years": float64(10)}, 0},
		{"years window", map[string]any{"min_years": float64(5), "max_years": float64(9)}, 1},
		{"search plus filter", map[string]any{"query": "python", "degree": "MBA"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h.FilterCandidates(context.Background(), callRequest(tt.args))
			if err != nil {
				t.Fatalf("FilterCandidates() error = %v", err)
			}
			payload := resultJSON(t, res)
			if int(payload["count"].(float64)) != tt.want {
				t.Errorf("count = %v, want %d", payload["count"], tt.want)
			}
		})
	}
}

func TestListFilterValuesTool(t *testing.T) {
	h := testHandlers(t)

	res, err := h.ListFilterValues(context.Background(), callRequest(map[string]any{"category": "skill"}))
	if err != nil {
		t.Fatalf("ListFilterValues() error = %v", err)
	}

	payload := resultJSON(t, res)
	values := payload["values"].([]interface{})
	if len(values) != 2 || values[0] != "Python" || values[1] != "SQL" {
		t.Errorf("values = %v, want [Python SQL]", values)
	}
}

func TestListFilterValuesToolUnknownCategory(t *testing.T) {
	h := testHandlers(t)

	res, err := h.ListFilterValues(context.Background(), callRequest(map[string]any{"category": "starsign"}))
	if err != nil {
		t.Fatalf("ListFilterValues() error = %v", err)
	}
	if msg := errorText(t, res); !strings.Contains(msg, "unknown filter category") {
		t.Errorf("error = %q, want unknown category message", msg)
	}
}

func TestGetCandidateTool(t *testing.T) {
	h := testHandlers(t)

	res, err := h.GetCandidate(context.Background(), callRequest(map[string]any{"candidate_id": float64(1)}))
	if err != nil {
		t.Fatalf("GetCandidate() error = %v", err)
	}

	payload := resultJSON(t, res)
	candidate := payload["candidate"].(map[string]interface{})
	if candidate["name"] != "Jane Doe" {
		t.Errorf("name = %v, want Jane Doe", candidate["name"])
	}
	if _, ok := payload["quality"]; !ok {
		t.Error("detail should include the quality score")
	}
}

func TestGetCandidateToolMissing(t *testing.T) {
	h := testHandlers(t)

	res, err := h.GetCandidate(context.Background(), callRequest(map[string]any{"candidate_id": float64(404)}))
	if err != nil {
		t.Fatalf("GetCandidate() error = %v", err)
	}
	if msg := errorText(t, res); !strings.Contains(msg, "not found") {
		t.Errorf("error = %q, want not-found message", msg)
	}
}

func TestSearchSuggestionsTool(t *testing.T) {
	h := testHandlers(t)

	res, err := h.SearchSuggestions(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("SearchSuggestions() error = %v", err)
	}

	payload := resultJSON(t, res)
	if payload["count"].(float64) == 0 {
		t.Error("suggestions should not be empty after ingestion")
	}
}

func TestWarehouseStatsTool(t *testing.T) {
	h := testHandlers(t)

	res, err := h.WarehouseStats(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("WarehouseStats() error = %v", err)
	}

	payload := resultJSON(t, res)
	if payload["candidates"].(float64) != 1 {
		t.Errorf("candidates = %v, want 1", payload["candidates"])
	}
	if payload["search_documents"].(float64) != 1 {
		t.Errorf("search_documents = %v, want 1", payload["search_documents"])
	}
}
