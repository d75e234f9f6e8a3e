// ABOUTME: Tests for filters command
// ABOUTME: Verifies category listing and unknown-category rejection

package commands

import (
	"strings"
	"testing"
)

func TestNewFiltersCmd(t *testing.T) {
	cmd := NewFiltersCmd()

	if !strings.HasPrefix(cmd.Use, "filters") {
		t.Errorf("Use = %q, want filters prefix", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.RunE == nil {
		t.Error("RunE should be set")
	}
}

func TestFiltersCmd_ListsCategories(t *testing.T) {
	setupWarehouseEnv(t)

	out, err := runCLI(t, "", "filters")
	if err != nil {
		t.Fatalf("filters error = %v", err)
	}
	for _, want := range []string{"geography", "sector", "approach", "company", "school", "degree"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing category %q:\n%s", want, out)
		}
	}
}

func TestFiltersCmd_UnknownCategory(t *testing.T) {
	setupWarehouseEnv(t)

	_, err := runCLI(t, "", "filters", "starsign")
	if err == nil {
		t.Fatal("Expected error for unknown category, got nil")
	}
	if !strings.Contains(err.Error(), "unknown filter category") {
		t.Errorf("error = %v, want unknown-category message", err)
	}
}

func TestFiltersCmd_Values(t *testing.T) {
	setupWarehouseEnv(t)
	recordPath := writeRecordFile(t, t.TempDir(), "jane.json", janeRecordJSON)
	if out, err := runCLI(t, "", "ingest", recordPath); err != nil {
		t.Fatalf("ingest error = %v, output:\n%s", err, out)
	}

	out, err := runCLI(t, "", "filters", "company")
	if err != nil {
		t.Fatalf("filters company error = %v", err)
	}
	if !strings.Contains(out, "Acme Capital") || !strings.Contains(out, "Maple Partners") {
		t.Errorf("company values missing employers:\n%s", out)
	}
}
