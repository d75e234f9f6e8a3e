// ABOUTME: CLI command to list candidates through the filter pipeline
// ABOUTME: Optional full-text query plus structured predicate flags
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/talent-warehouse/internal/models"
	"github.com/joho/godotenv"
)

var (
	listQuery     string
	listGeography string
	listSector    string
	listApproach  string
	listDegree    string
	listCompany   string
	listSchool    string
	listSkills    []string
	listMinYears  float64
	listMaxYears  float64
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List candidates with structured filters",
		Long: `List candidates, narrowed through the structured filter chain.

Without flags, shows every stored candidate. Filters combine with AND;
the skills filter matches when any named skill appears. A full-text
query can seed the result set before filtering.

Examples:
  talent list
  talent list --geography "United States" --sector Technology
  talent list --skills python,sql --min-years 5
  talent list --query "fintech" --degree MBA --format json`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listQuery, "query", "", "Full-text query to seed the result set")
	cmd.Flags().StringVar(&listGeography, "geography", "", "Filter by primary geography")
	cmd.Flags().StringVar(&listSector, "sector", "", "Filter by primary sector")
	cmd.Flags().StringVar(&listApproach, "approach", "", "Filter by investment approach")
	cmd.Flags().StringVar(&listDegree, "degree", "", "Filter by degree (substring match)")
	cmd.Flags().StringVar(&listCompany, "company", "", "Filter by employer (any role)")
	cmd.Flags().StringVar(&listSchool, "school", "", "Filter by school")
	cmd.Flags().StringSliceVar(&listSkills, "skills", []string{}, "Filter by skills (any match, comma-separated)")
	cmd.Flags().Float64Var(&listMinYears, "min-years", 0, "Minimum years of experience")
	cmd.Flags().Float64Var(&listMaxYears, "max-years", 0, "Maximum years of experience")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	filters := models.Filters{
		Geography: listGeography,
		Sector:    listSector,
		Approach:  listApproach,
		Degree:    listDegree,
		Company:   listCompany,
		School:    listSchool,
		Skills:    listSkills,
	}
	if cmd.Flags().Changed("min-years") {
		filters.MinYears = &listMinYears
	}
	if cmd.Flags().Changed("max-years") {
		filters.MaxYears = &listMaxYears
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

	result, err := warehouse.Query(listQuery, filters)
	if err != nil {
		return fmt.Errorf("listing candidates: %w", err)
	}

	if len(result.Candidates) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No candidates found")
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
	fmt.Fprintf(w, "ID\tNAME\tTITLE\tCOMPANY\tYEARS\tDEGREE\tGEOGRAPHY\n")
	fmt.Fprintf(w, "--\t----\t-----\t-------\t-----\t------\t---------\n")
	for _, row := range result.Candidates {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.ID,
			truncate(row.Name, 25),
			truncate(orPlaceholder(row.CurrentTitle), 25),
			truncate(orPlaceholder(row.CurrentCompany), 25),
			formatYears(row.YearsExperience),
			orPlaceholder(row.HighestDegree),
			truncate(orPlaceholder(row.PrimaryGeography), 20))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d candidate(s)\n", len(result.Candidates))
	}
	return nil
}
