// ABOUTME: Tests for list command
// ABOUTME: Verifies filter flags and the composed query pipeline

package commands

import (
	"strings"
	"testing"
)

func TestNewListCmd(t *testing.T) {
	cmd := NewListCmd()

	if cmd.Use != "list" {
		t.Errorf("Use = %q, want %q", cmd.Use, "list")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestListCmd_FilterFlags(t *testing.T) {
	cmd := NewListCmd()

	flags := []string{
		"query",
		"geography",
		"sector",
		"approach",
		"degree",
		"company",
		"school",
		"skills",
		"min-years",
		"max-years",
	}

	for _, name := range flags {
		t.Run(name, func(t *testing.T) {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("--%s flag not found", name)
			}
		})
	}
}

func TestListCmd_Examples(t *testing.T) {
	cmd := NewListCmd()

	expectedParts := []string{
		"talent list",
		"--skills",
		"--format json",
	}

	for _, part := range expectedParts {
		if !findSubstring(cmd.Long, part) {
			t.Errorf("Long description should contain %q", part)
		}
	}
}

func TestListCmd_FiltersCandidates(t *testing.T) {
	setupWarehouseEnv(t)

	recordsDir := t.TempDir()
	writeRecordFile(t, recordsDir, "jane.json", janeRecordJSON)
	writeRecordFile(t, recordsDir, "john.json", johnRecordJSON)
	if out, err := runCLI(t, "", "ingest", recordsDir); err != nil {
		t.Fatalf("ingest error = %v, output:\n%s", err, out)
	}

	out, err := runCLI(t, "", "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "Jane Doe") || !strings.Contains(out, "John Smith") {
		t.Errorf("unfiltered list should show both candidates:\n%s", out)
	}

	out, err = runCLI(t, "", "list", "--geography", "Europe")
	if err != nil {
		t.Fatalf("list --geography error = %v", err)
	}
	if strings.Contains(out, "Jane Doe") || !strings.Contains(out, "John Smith") {
		t.Errorf("geography filter should keep only John Smith:\n%s", out)
	}

	out, err = runCLI(t, "", "list", "--skills", "python", "--min-years", "5")
	if err != nil {
		t.Fatalf("list --skills error = %v", err)
	}
	if !strings.Contains(out, "Jane Doe") || strings.Contains(out, "John Smith") {
		t.Errorf("skills+years filters should keep only Jane Doe:\n%s", out)
	}

	out, err = runCLI(t, "", "list", "--query", "python", "--geography", "Europe")
	if err != nil {
		t.Fatalf("list --query error = %v", err)
	}
	if !strings.Contains(out, "No candidates found") {
		t.Errorf("query+geography combination should be empty:\n%s", out)
	}
}
