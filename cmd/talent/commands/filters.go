// ABOUTME: CLI command to list filter categories and their cached values
// ABOUTME: Values come from the filter-value cache, sorted and distinct
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

// NewFiltersCmd creates the filters command
func NewFiltersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters [category]",
		Short: "List filter categories and values",
		Long: `List the known filter categories, or the distinct values stored for
one category.

Values accumulate as candidates are ingested and survive until the
schema is re-initialized.

Examples:
  talent filters
  talent filters geography
  talent filters --format json company`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFilters,
	}

	return cmd
}

func runFilters(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	warehouse, err := openWarehouse(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = warehouse.Close() }()

	if len(args) == 0 {
		categories := warehouse.FilterCategories()
		if outputFormat == "json" {
			jsonData, err := json.MarshalIndent(map[string][]string{"categories": categories}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
			return nil
		}
		for _, category := range categories {
			fmt.Fprintln(cmd.OutOrStdout(), category)
		}
		return nil
	}

	category := args[0]
	if !warehouse.ValidFilterCategory(category) {
		return fmt.Errorf("unknown filter category %q, expected one of: %s",
			category, strings.Join(warehouse.FilterCategories(), ", "))
	}

	values := warehouse.FilterValues(category)
	if outputFormat == "json" {
		payload := map[string]any{"category": category, "values": values}
		jsonData, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if len(values) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No values stored for category: %s\n", category)
		}
		return nil
	}
	for _, value := range values {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d value(s)\n", len(values))
	}
	return nil
}
