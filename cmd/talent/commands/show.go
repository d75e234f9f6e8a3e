// ABOUTME: CLI command to show one candidate with all child rows
// ABOUTME: Can also dump the archived parsed record verbatim
package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

var (
	showParsed bool
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <candidate-id>",
		Short: "Show one candidate in full",
		Long: `Show one candidate with experiences, education, skills, and the
completeness annotation.

With --parsed, prints the archived extraction record exactly as it
was ingested.

Examples:
  talent show 12
  talent show --parsed 12
  talent show --format json 12`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showParsed, "parsed", false, "Print the archived parsed record instead")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid candidate id %q", args[0])
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

	if showParsed {
		record, err := warehouse.GetParsedRecord(id)
		if err != nil {
			return fmt.Errorf("loading parsed record: %w", err)
		}
		if record == nil {
			return fmt.Errorf("no archived record for candidate %d", id)
		}
		jsonData, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	detail, err := warehouse.GetCandidateDetail(id)
	if err != nil {
		return fmt.Errorf("loading candidate: %w", err)
	}
	if detail == nil {
		return fmt.Errorf("candidate %d not found", id)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	out := cmd.OutOrStdout()
	c := detail.Candidate

	fmt.Fprintf(out, "%s\n", c.Name)
	if c.CurrentTitle != "" || c.CurrentCompany != "" {
		fmt.Fprintf(out, "%s @ %s\n", orPlaceholder(c.CurrentTitle), orPlaceholder(c.CurrentCompany))
	}
	fmt.Fprintf(out, "Years: %s  Geography: %s  Sector: %s  Approach: %s\n",
		formatYears(c.YearsExperience),
		orPlaceholder(c.PrimaryGeography),
		orPlaceholder(c.PrimarySector),
		orPlaceholder(c.InvestmentApproach))
	if c.SummaryBlurb != "" {
		fmt.Fprintf(out, "\n%s\n", c.SummaryBlurb)
	}

	if len(detail.Experiences) > 0 {
		fmt.Fprintf(out, "\nEXPERIENCE\n")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "COMPANY\tTITLE\tSTART\tEND\n")
		fmt.Fprintf(w, "-------\t-----\t-----\t---\n")
		for _, exp := range detail.Experiences {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				truncate(exp.Company, 30),
				truncate(exp.Title, 30),
				orPlaceholder(exp.StartDate),
				orPlaceholder(exp.EndDate))
		}
		w.Flush()
	}

	if len(detail.Education) > 0 {
		fmt.Fprintf(out, "\nEDUCATION\n")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "DEGREE\tSCHOOL\tMAJOR\n")
		fmt.Fprintf(w, "------\t------\t-----\n")
		for _, edu := range detail.Education {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				orPlaceholder(edu.Degree),
				truncate(orPlaceholder(edu.School), 30),
				truncate(orPlaceholder(edu.Major), 30))
		}
		w.Flush()
	}

	if len(detail.Skills) > 0 {
		fmt.Fprintf(out, "\nSkills: %s\n", strings.Join(detail.Skills, ", "))
	}

	if detail.Quality != nil {
		fmt.Fprintf(out, "\nCompleteness: %.1f (%s), %d issue(s)\n",
			detail.Quality.Score, detail.Quality.Grade, detail.Quality.TotalIssues)
	}

	return nil
}
