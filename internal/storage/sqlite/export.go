// ABOUTME: Export functionality for warehouse data
// ABOUTME: Supports YAML, JSON, and XLSX export formats
package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/harper/talent-warehouse/internal/models"
)

// ExportData represents the complete exportable warehouse structure
type ExportData struct {
	Version    string            `yaml:"version" json:"version"`
	ExportedAt string            `yaml:"exported_at" json:"exported_at"`
	Tool       string            `yaml:"tool" json:"tool"`
	Candidates []ExportCandidate `yaml:"candidates,omitempty" json:"candidates,omitempty"`
}

// ExportCandidate is one candidate with all child rows for export
type ExportCandidate struct {
	ID                 int64               `yaml:"id" json:"id"`
	Name               string              `yaml:"name" json:"name"`
	CurrentTitle       string              `yaml:"current_title,omitempty" json:"current_title,omitempty"`
	CurrentCompany     string              `yaml:"current_company,omitempty" json:"current_company,omitempty"`
	YearsExperience    *float64            `yaml:"years_experience,omitempty" json:"years_experience,omitempty"`
	PrimarySector      string              `yaml:"primary_sector,omitempty" json:"primary_sector,omitempty"`
	InvestmentApproach string              `yaml:"investment_approach,omitempty" json:"investment_approach,omitempty"`
	PrimaryGeography   string              `yaml:"primary_geography,omitempty" json:"primary_geography,omitempty"`
	SummaryBlurb       string              `yaml:"summary_blurb,omitempty" json:"summary_blurb,omitempty"`
	Skills             []string            `yaml:"skills,omitempty" json:"skills,omitempty"`
	Certifications     []string            `yaml:"certifications,omitempty" json:"certifications,omitempty"`
	Experiences        []models.Experience `yaml:"experiences,omitempty" json:"experiences,omitempty"`
	Education          []models.Education  `yaml:"education,omitempty" json:"education,omitempty"`
	QualityScore       *float64            `yaml:"quality_score,omitempty" json:"quality_score,omitempty"`
	QualityGrade       string              `yaml:"quality_grade,omitempty" json:"quality_grade,omitempty"`
	TotalIssues        *int                `yaml:"total_issues,omitempty" json:"total_issues,omitempty"`
}

// Export assembles every candidate with its child rows
func (s *Storage) Export() (*ExportData, error) {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Tool:       "talent-warehouse",
	}

	rows, err := s.candidates.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	for _, row := range rows {
		experiences, err := s.experiences.GetByCandidate(row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get experiences for %d: %w", row.ID, err)
		}
		education, err := s.education.GetByCandidate(row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get education for %d: %w", row.ID, err)
		}
		skills, err := s.skills.GetByCandidate(row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get skills for %d: %w", row.ID, err)
		}

		data.Candidates = append(data.Candidates, ExportCandidate{
			ID:                 row.ID,
			Name:               row.Name,
			CurrentTitle:       row.CurrentTitle,
			CurrentCompany:     row.CurrentCompany,
			YearsExperience:    row.YearsExperience,
			PrimarySector:      row.PrimarySector,
			InvestmentApproach: row.InvestmentApproach,
			PrimaryGeography:   row.PrimaryGeography,
			SummaryBlurb:       row.SummaryBlurb,
			Skills:             skills,
			Certifications:     row.Certifications,
			Experiences:        experiences,
			Education:          education,
			QualityScore:       row.QualityScore,
			QualityGrade:       row.QualityGrade,
			TotalIssues:        row.TotalIssues,
		})
	}

	return data, nil
}

// ExportToYAML exports warehouse data to a YAML file
func (s *Storage) ExportToYAML(outputPath string) error {
	data, err := s.Export()
	if err != nil {
		return err
	}

	file, err := createExportFile(outputPath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// ExportToJSON exports warehouse data to a JSON file
func (s *Storage) ExportToJSON(outputPath string) error {
	data, err := s.Export()
	if err != nil {
		return err
	}

	file, err := createExportFile(outputPath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// xlsxHeader is the column layout of the candidate summary sheet
var xlsxHeader = []string{
	"ID", "Name", "Current Title", "Current Company", "Years", "Sector",
	"Approach", "Geography", "Skills", "Quality Score", "Grade",
}

// ExportToXLSX exports a one-sheet candidate summary spreadsheet
func (s *Storage) ExportToXLSX(outputPath string) error {
	data, err := s.Export()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Candidates"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, title := range xlsxHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, c := range data.Candidates {
		values := []interface{}{
			c.ID, c.Name, c.CurrentTitle, c.CurrentCompany,
			floatOrEmpty(c.YearsExperience), c.PrimarySector,
			c.InvestmentApproach, c.PrimaryGeography,
			strings.Join(c.Skills, ", "),
			floatOrEmpty(c.QualityScore), c.QualityGrade,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}

	return nil
}

func createExportFile(outputPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(outputPath) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, nil
}

func floatOrEmpty(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
