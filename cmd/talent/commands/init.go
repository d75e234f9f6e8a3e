// ABOUTME: CLI command to initialize the warehouse schema
// ABOUTME: Destructive by design; drops every table before recreating it
package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

var (
	initForce bool
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the warehouse schema",
		Long: `Initialize the warehouse schema, dropping any existing data.

Drops and recreates every warehouse table, including the full-text
index and the filter-value cache. All stored candidates are lost.

Examples:
  talent init
  talent init --force
  TALENT_DB_PATH=/tmp/scratch.db talent init --force`,
		RunE: runInit,
	}

	cmd.Flags().BoolVar(&initForce, "force", false, "Skip the confirmation prompt")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if !initForce {
		fmt.Fprint(cmd.OutOrStdout(), "This drops all warehouse tables and their data. Continue? [y/N]: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	warehouse, err := openWarehouse(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = warehouse.Close() }()

	if err := warehouse.Reset(); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Warehouse initialized at %s\n", warehouse.Path())
	}
	return nil
}
