// ABOUTME: CLI command to search candidates with ranked full-text queries
// ABOUTME: Shows match explanations alongside each hit
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search candidates",
		Long: `Search candidates with a ranked full-text query.

Queries run against names, titles, employers, skills, experience, and
education. Boolean operators (AND, OR), quoted phrases, and prefix
wildcards are supported. Results are ordered best match first.

Examples:
  talent search "python fintech"
  talent search '"Goldman Sachs"'
  talent search --format json "machine learning AND healthcare"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	query := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	warehouse, err := openWarehouse(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = warehouse.Close() }()

	result := warehouse.SearchCandidates(query)
	if result == nil {
		return fmt.Errorf("search could not be run: the query was blank or used invalid search syntax")
	}

	if len(result.Candidates) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No candidates matched query: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\tTITLE\tCOMPANY\tMATCH\n")
	fmt.Fprintf(w, "--\t----\t-----\t-------\t-----\n")
	for _, row := range result.Candidates {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			row.ID,
			truncate(row.Name, 25),
			truncate(orPlaceholder(row.CurrentTitle), 25),
			truncate(orPlaceholder(row.CurrentCompany), 25),
			truncate(strings.Join(row.MatchInfo, "; "), 50))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d candidate(s)\n", len(result.Candidates))
	}
	return nil
}
