// ABOUTME: CLI command to ingest parsed resume records
// ABOUTME: Accepts a single JSON record or a directory of them
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/talent-warehouse/internal/models"
	"github.com/joho/godotenv"
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <path>",
		Short: "Ingest parsed resume records",
		Long: `Ingest parsed resume records from a JSON file or directory.

Each record carries the parsed resume and its condensed summary as
produced by the extraction pipeline. Records are written atomically:
a failed record leaves no partial rows behind. A validation report
is saved for every ingested candidate.

Examples:
  talent ingest record.json
  talent ingest ./parsed-resumes/
  talent ingest --format json record.json`,
		Args: cobra.ExactArgs(1),
		RunE: runIngest,
	}

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading path: %w", err)
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

	var receipts []*models.IngestReceipt
	if info.IsDir() {
		receipts, err = warehouse.IngestDir(path)
		if err != nil {
			return fmt.Errorf("ingesting %s (stopped after %d records): %w", path, len(receipts), err)
		}
	} else {
		receipt, err := warehouse.IngestFile(path)
		if err != nil {
			return fmt.Errorf("ingesting %s: %w", path, err)
		}
		receipts = append(receipts, receipt)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(receipts, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\tGRADE\tSCORE\tISSUES\n")
	fmt.Fprintf(w, "--\t----\t-----\t-----\t------\n")
	for _, receipt := range receipts {
		name, grade, score, issues := "(unknown)", "-", "-", "-"
		if receipt.Report != nil {
			name = receipt.Report.CandidateName
			grade = receipt.Report.CompletenessGrade
			score = fmt.Sprintf("%.1f", receipt.Report.CompletenessScore)
			issues = fmt.Sprintf("%d", receipt.Report.TotalIssues)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			receipt.CandidateID, truncate(name, 30), grade, score, issues)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Ingested %d candidate(s)\n", len(receipts))
	}
	return nil
}
