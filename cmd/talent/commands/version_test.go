// ABOUTME: Tests for version command
// ABOUTME: Verifies build information output

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestVersionCmd_Output(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-08-25")
	defer SetVersion("dev", "none", "unknown")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version error = %v", err)
	}

	outputStr := output.String()
	for _, want := range []string{"Talent Warehouse 1.2.3", "Commit: abc1234", "Built:  2026-08-25"} {
		if !strings.Contains(outputStr, want) {
			t.Errorf("output missing %q:\n%s", want, outputStr)
		}
	}
}
