// ABOUTME: Tests for ingest command
// ABOUTME: Structure checks plus an end-to-end CLI flow over a scratch warehouse

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const janeRecordJSON = `{
  "parsed": {
    "name": "Jane Doe",
    "email": "jane@example.com",
    "experiences": [
      {"company": "Acme Capital", "title": "Senior Analyst", "start": "Jan-01-2019", "end": "Present", "sectors": ["Technology"], "approach": "Fundamental"},
      {"company": "Maple Partners", "title": "Analyst", "start": "Jun-01-2015", "end": "Dec-31-2018"}
    ],
    "education": [
      {"degree": "MBA", "major": "Finance", "school": "Wharton"}
    ],
    "skills": ["Python", "SQL"],
    "certifications": ["CFA"]
  },
  "summary": {
    "name": "Jane Doe",
    "current_title": "Senior Analyst",
    "current_company": "Acme Capital",
    "years_experience": 8.5,
    "sector_focus": ["Technology"],
    "investment_approach": "Fundamental",
    "primary_geography": "United States",
    "top_skills": ["Python", "SQL"]
  }
}`

const johnRecordJSON = `{
  "parsed": {
    "name": "John Smith",
    "experiences": [
      {"company": "Thames Advisors", "title": "Portfolio Manager", "start": "Mar-01-2014", "end": "Present", "sectors": ["Energy"], "approach": "Quantitative"}
    ],
    "education": [
      {"degree": "MS", "major": "Statistics", "school": "LSE"}
    ],
    "skills": ["R"]
  },
  "summary": {
    "name": "John Smith",
    "current_title": "Portfolio Manager",
    "current_company": "Thames Advisors",
    "years_experience": 12,
    "sector_focus": ["Energy"],
    "investment_approach": "Quantitative",
    "primary_geography": "Europe",
    "top_skills": ["R"]
  }
}`

// setupWarehouseEnv points the CLI at a scratch warehouse for one test.
func setupWarehouseEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TALENT_DB_PATH", filepath.Join(dir, "talent.db"))
	t.Setenv("TALENT_REPORTS_DIR", filepath.Join(dir, "reports"))
}

// runCLI executes the root command with args, returning combined output.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}

func writeRecordFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", filename, err)
	}
	return path
}

func TestNewIngestCmd(t *testing.T) {
	cmd := NewIngestCmd()

	if !strings.HasPrefix(cmd.Use, "ingest") {
		t.Errorf("Use = %q, want ingest prefix", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}

	if cmd.RunE == nil {
		t.Error("RunE should be set")
	}
}

func TestIngestCmd_Examples(t *testing.T) {
	cmd := NewIngestCmd()

	expectedParts := []string{
		"talent ingest record.json",
		"--format json",
	}

	for _, part := range expectedParts {
		if !findSubstring(cmd.Long, part) {
			t.Errorf("Long description should contain %q", part)
		}
	}
}

func TestIngestCmd_MissingPath(t *testing.T) {
	setupWarehouseEnv(t)

	_, err := runCLI(t, "", "ingest", filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Expected error for missing path, got nil")
	}
}

func TestIngestCmd_EndToEndFlow(t *testing.T) {
	setupWarehouseEnv(t)
	recordPath := writeRecordFile(t, t.TempDir(), "jane.json", janeRecordJSON)

	out, err := runCLI(t, "", "ingest", recordPath)
	if err != nil {
		t.Fatalf("ingest error = %v, output:\n%s", err, out)
	}
	if !strings.Contains(out, "Jane Doe") || !strings.Contains(out, "Ingested 1 candidate(s)") {
		t.Errorf("ingest output missing receipt summary:\n%s", out)
	}

	out, err = runCLI(t, "", "search", "python")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}
	if !strings.Contains(out, "Jane Doe") {
		t.Errorf("search output missing Jane Doe:\n%s", out)
	}

	out, err = runCLI(t, "", "--format", "json", "stats")
	if err != nil {
		t.Fatalf("stats error = %v", err)
	}
	var stats map[string]any
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("stats output is not JSON: %v\n%s", err, out)
	}
	if stats["candidates"] != float64(1) {
		t.Errorf("candidates = %v, want 1", stats["candidates"])
	}

	out, err = runCLI(t, "", "show", "1")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	for _, want := range []string{"Jane Doe", "Acme Capital", "MBA", "Completeness"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestIngestCmd_Directory(t *testing.T) {
	setupWarehouseEnv(t)

	recordsDir := t.TempDir()
	writeRecordFile(t, recordsDir, "jane.json", janeRecordJSON)
	writeRecordFile(t, recordsDir, "john.json", johnRecordJSON)
	writeRecordFile(t, recordsDir, "notes.txt", "not a record")

	out, err := runCLI(t, "", "ingest", recordsDir)
	if err != nil {
		t.Fatalf("ingest error = %v, output:\n%s", err, out)
	}
	if !strings.Contains(out, "Ingested 2 candidate(s)") {
		t.Errorf("ingest output should report 2 candidates:\n%s", out)
	}
	if !strings.Contains(out, "Jane Doe") || !strings.Contains(out, "John Smith") {
		t.Errorf("ingest output missing candidate names:\n%s", out)
	}
}
