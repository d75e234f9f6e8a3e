// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines the talent command tree and shared output settings
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
	dbPath       string
)

const banner = `
████████╗ █████╗ ██╗     ███████╗███╗   ██╗████████╗
╚══██╔══╝██╔══██╗██║     ██╔════╝████╗  ██║╚══██╔══╝
   ██║   ███████║██║     █████╗  ██╔██╗ ██║   ██║
   ██║   ██╔══██║██║     ██╔══╝  ██║╚██╗██║   ██║
   ██║   ██║  ██║███████╗███████╗██║ ╚████║   ██║
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═══╝   ╚═╝`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "talent",
		Short: "Search warehouse for parsed resumes",
		Long: banner + `

Talent Warehouse - structured search over parsed resumes

Stores parsed resume records in a local SQLite warehouse, searches
them with ranked full-text queries, and narrows result sets with
structured filters over geography, sector, approach, education,
employers, and experience.

Records come from the extraction pipeline as JSON; every ingested
candidate is scored for completeness and indexed for search.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, table, json)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (overrides TALENT_DB_PATH)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(
		NewInitCmd(),
		NewIngestCmd(),
		NewSearchCmd(),
		NewListCmd(),
		NewShowCmd(),
		NewFiltersCmd(),
		NewSuggestCmd(),
		NewStatsCmd(),
		NewExportCmd(),
		NewServeCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
