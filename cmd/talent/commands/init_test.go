// ABOUTME: Tests for init command
// ABOUTME: Verifies confirmation prompt and destructive re-initialization

package commands

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewInitCmd(t *testing.T) {
	cmd := NewInitCmd()

	if cmd.Use != "init" {
		t.Errorf("Use = %q, want %q", cmd.Use, "init")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}

	forceFlag := cmd.Flags().Lookup("force")
	if forceFlag == nil {
		t.Fatal("--force flag not found")
	}
	if forceFlag.DefValue != "false" {
		t.Errorf("--force default = %q, want %q", forceFlag.DefValue, "false")
	}
}

func TestInitCmd_MentionsDataLoss(t *testing.T) {
	cmd := NewInitCmd()

	if !findSubstring(cmd.Long, "dropping") && !findSubstring(cmd.Long, "Drops") {
		t.Error("Long description should warn about dropped data")
	}
}

func TestInitCmd_AbortsWithoutConfirmation(t *testing.T) {
	setupWarehouseEnv(t)

	out, err := runCLI(t, "n\n", "init")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	if !strings.Contains(out, "Aborted") {
		t.Errorf("output should contain Aborted:\n%s", out)
	}
}

func TestInitCmd_ForceWipesWarehouse(t *testing.T) {
	setupWarehouseEnv(t)
	recordPath := writeRecordFile(t, t.TempDir(), "jane.json", janeRecordJSON)

	if out, err := runCLI(t, "", "ingest", recordPath); err != nil {
		t.Fatalf("ingest error = %v, output:\n%s", err, out)
	}

	out, err := runCLI(t, "", "init", "--force")
	if err != nil {
		t.Fatalf("init --force error = %v", err)
	}
	if !strings.Contains(out, "✓ Warehouse initialized") {
		t.Errorf("output should confirm initialization:\n%s", out)
	}

	out, err = runCLI(t, "", "--format", "json", "stats")
	if err != nil {
		t.Fatalf("stats error = %v", err)
	}
	var stats map[string]any
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("stats output is not JSON: %v\n%s", err, out)
	}
	if stats["candidates"] != float64(0) {
		t.Errorf("candidates = %v, want 0 after init", stats["candidates"])
	}

	out, err = runCLI(t, "", "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "No candidates found") {
		t.Errorf("list should be empty after init:\n%s", out)
	}
}

func TestInitCmd_YesConfirmationProceeds(t *testing.T) {
	setupWarehouseEnv(t)

	out, err := runCLI(t, "y\n", "init")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	if !strings.Contains(out, "✓ Warehouse initialized") {
		t.Errorf("output should confirm initialization:\n%s", out)
	}
}
