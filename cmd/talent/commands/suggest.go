// ABOUTME: CLI command to print search suggestions
// ABOUTME: Common employers and skills plus every stored degree
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

var (
	suggestLimit int
)

// NewSuggestCmd creates the suggest command
func NewSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show search suggestions",
		Long: `Show terms worth searching for: the most common employers and
skills in the warehouse, plus every stored degree.

Examples:
  talent suggest
  talent suggest --limit 10
  talent suggest --format json`,
		RunE: runSuggest,
	}

	cmd.Flags().IntVar(&suggestLimit, "limit", 0, "Entries per suggestion group (0 uses the configured default)")

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit := cfg.SuggestionLimit
	if suggestLimit != 0 {
		if err := validatePositiveInt(suggestLimit, "limit"); err != nil {
			return err
		}
		limit = suggestLimit
	}

	warehouse, err := openWarehouse(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = warehouse.Close() }()

	suggestions := warehouse.SearchSuggestions(limit)

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(map[string][]string{"suggestions": suggestions}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if len(suggestions) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No suggestions yet; ingest some candidates first")
		}
		return nil
	}
	for _, suggestion := range suggestions {
		fmt.Fprintln(cmd.OutOrStdout(), suggestion)
	}

	return nil
}
