// ABOUTME: CLI command to print warehouse table counts
// ABOUTME: Quick health check after ingestion runs
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show warehouse statistics",
		Long: `Show row counts for every warehouse table and the database path.

Examples:
  talent stats
  talent stats --format json`,
		RunE: runStats,
	}

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
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

	stats, err := warehouse.Stats()
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Candidates:\t%d\n", stats.Candidates)
	fmt.Fprintf(w, "Parsed resumes:\t%d\n", stats.ParsedResumes)
	fmt.Fprintf(w, "Experiences:\t%d\n", stats.Experiences)
	fmt.Fprintf(w, "Education rows:\t%d\n", stats.EducationRows)
	fmt.Fprintf(w, "Skills:\t%d\n", stats.Skills)
	fmt.Fprintf(w, "Filter values:\t%d\n", stats.FilterValues)
	fmt.Fprintf(w, "Search documents:\t%d\n", stats.SearchDocs)
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nDatabase: %s\n", stats.DBPath)
	}
	return nil
}
