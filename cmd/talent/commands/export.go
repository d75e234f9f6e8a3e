// ABOUTME: CLI command to export the whole warehouse to one file
// ABOUTME: Format follows the output extension: yaml, json, or xlsx
package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

var (
	exportOutput string
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the warehouse to a file",
		Long: `Export every candidate with child rows and quality annotations to a
single file. The format follows the output extension: .yaml (or
.yml), .json, or .xlsx.

Examples:
  talent export
  talent export --output warehouse.json
  talent export -o candidates.xlsx`,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportOutput, "output", "o", "talent_export.yaml", "Output file (.yaml, .json, or .xlsx)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
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

	switch strings.ToLower(filepath.Ext(exportOutput)) {
	case ".yaml", ".yml":
		err = warehouse.ExportToYAML(exportOutput)
	case ".json":
		err = warehouse.ExportToJSON(exportOutput)
	case ".xlsx":
		err = warehouse.ExportToXLSX(exportOutput)
	default:
		return fmt.Errorf("unsupported export extension %q (use .yaml, .json, or .xlsx)", filepath.Ext(exportOutput))
	}
	if err != nil {
		return fmt.Errorf("exporting warehouse: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported warehouse to %s\n", exportOutput)
	}
	return nil
}
