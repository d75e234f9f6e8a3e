// ABOUTME: Warehouse bundles the SQLite store with the on-disk report archive
// ABOUTME: Handles XDG directories, ingest record files, and query composition
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harper/talent-warehouse/internal/core"
	"github.com/harper/talent-warehouse/internal/models"
	"github.com/harper/talent-warehouse/internal/storage/sqlite"
)

// Warehouse manages all persistent data for the talent warehouse: the SQLite
// store plus the per-candidate validation reports written next to it.
type Warehouse struct {
	store      *sqlite.Storage
	composer   *core.Composer
	reportsDir string
}

// Options configure where the warehouse keeps its data. Empty paths resolve
// to the XDG data directory.
type Options struct {
	DBPath     string
	ReportsDir string
}

// Open initializes the warehouse with XDG-compliant paths
func Open(opts Options) (*Warehouse, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = sqlite.DefaultDBPath()
	}

	store, err := sqlite.NewStorageWithPath(dbPath)
	if err != nil {
		return nil, err
	}
	return newWarehouse(store, opts.ReportsDir)
}

// OpenInMemory creates a warehouse backed by an in-memory database (for
// testing). Reports are written under reportsDir.
func OpenInMemory(reportsDir string) (*Warehouse, error) {
	store, err := sqlite.NewStorageInMemory()
	if err != nil {
		return nil, err
	}
	return newWarehouse(store, reportsDir)
}

func newWarehouse(store *sqlite.Storage, reportsDir string) (*Warehouse, error) {
	if reportsDir == "" {
		reportsDir = filepath.Join(sqlite.DefaultDataDir(), "reports")
	}
	if err := os.MkdirAll(reportsDir, 0755); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	return &Warehouse{
		store:      store,
		composer:   core.NewComposer(store),
		reportsDir: reportsDir,
	}, nil
}

// Close closes the database connection
func (w *Warehouse) Close() error {
	return w.store.Close()
}

// Path returns the database file path
func (w *Warehouse) Path() string {
	return w.store.Path()
}

// ReportsDir returns the directory validation reports are written to
func (w *Warehouse) ReportsDir() string {
	return w.reportsDir
}

// Reset drops and recreates the warehouse schema. All rows are deleted;
// report files on disk are kept.
func (w *Warehouse) Reset() error {
	return w.store.Reset()
}

// Ingest writes one candidate through the transactional ingestion pipeline
// and archives the validation report as a JSON file. A report write failure
// is logged but does not fail the ingestion: the database commit has already
// happened and stays authoritative.
func (w *Warehouse) Ingest(parsed *models.ParsedResume, summary *models.CandidateSummary, resumePath string) (*models.IngestReceipt, error) {
	receipt, err := w.store.IngestCandidate(parsed, summary, resumePath)
	if err != nil {
		return nil, err
	}

	if path, err := w.writeReport(receipt.Report); err != nil {
		log.Printf("[Warehouse] failed to write validation report for %s: %v", receipt.Report.CandidateName, err)
	} else {
		log.Printf("[Warehouse] validation report saved: %s", path)
	}

	return receipt, nil
}

// IngestFile reads one ingest record file and runs it through Ingest. The
// record's resume path falls back to the file's own path when unset.
func (w *Warehouse) IngestFile(path string) (*models.IngestReceipt, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read ingest record: %w", err)
	}

	var rec models.IngestRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse ingest record %s: %w", path, err)
	}
	if rec.Parsed == nil || rec.Summary == nil {
		return nil, fmt.Errorf("ingest record %s is missing parsed or summary data", path)
	}

	resumePath := rec.ResumePath
	if resumePath == "" {
		resumePath = path
	}
	return w.Ingest(rec.Parsed, rec.Summary, resumePath)
}

// IngestDir ingests every .json record in dir, in name order. Stops at the
// first failure so a bad record never leaves the batch half-reported.
func (w *Warehouse) IngestDir(dir string) ([]*models.IngestReceipt, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingest directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	var receipts []*models.IngestReceipt
	for _, path := range paths {
		receipt, err := w.IngestFile(path)
		if err != nil {
			return receipts, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

// writeReport archives a validation report under the reports directory,
// named after the candidate.
func (w *Warehouse) writeReport(report *models.ValidationReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	path := filepath.Join(w.reportsDir, reportFilename(report.CandidateName))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}

// reportFilename maps a candidate name to a stable report file name.
func reportFilename(candidateName string) string {
	safe := strings.NewReplacer(" ", "_", "/", "_").Replace(candidateName)
	if safe == "" {
		safe = "unknown"
	}
	return safe + "_validation.json"
}

// Query composes a result set from a search string and filter predicates
func (w *Warehouse) Query(query string, filters models.Filters) (*core.Result, error) {
	return w.composer.Compose(query, filters)
}

// SearchCandidates runs a full-text search; see sqlite.Storage.SearchCandidates
// for the nil-result convention.
func (w *Warehouse) SearchCandidates(query string) *models.SearchResult {
	return w.store.SearchCandidates(query)
}

// ListCandidates returns every candidate row with aggregates
func (w *Warehouse) ListCandidates() ([]models.CandidateRow, error) {
	return w.store.ListCandidates()
}

// GetCandidateDetail returns a candidate with all child rows, nil when absent
func (w *Warehouse) GetCandidateDetail(id int64) (*models.CandidateDetail, error) {
	return w.store.GetCandidateDetail(id)
}

// GetParsedRecord returns the archived parsed record, nil when absent
func (w *Warehouse) GetParsedRecord(id int64) (*models.ParsedResume, error) {
	return w.store.GetParsedRecord(id)
}

// FilterValues returns the sorted distinct values for a filter category
func (w *Warehouse) FilterValues(category string) []string {
	return w.store.FilterValues(category)
}

// FilterCategories returns the known filter categories
func (w *Warehouse) FilterCategories() []string {
	return w.store.FilterCategories()
}

// ValidFilterCategory reports whether name is a known filter category
func (w *Warehouse) ValidFilterCategory(name string) bool {
	return w.store.ValidFilterCategory(name)
}

// SearchSuggestions returns autocomplete terms
func (w *Warehouse) SearchSuggestions(limit int) []string {
	return w.store.SearchSuggestions(limit)
}

// Stats returns row counts for every warehouse table
func (w *Warehouse) Stats() (*models.WarehouseStats, error) {
	return w.store.Stats()
}

// Export assembles the full export structure
func (w *Warehouse) Export() (*sqlite.ExportData, error) {
	return w.store.Export()
}

// ExportToYAML exports warehouse data to a YAML file
func (w *Warehouse) ExportToYAML(outputPath string) error {
	return w.store.ExportToYAML(outputPath)
}

// ExportToJSON exports warehouse data to a JSON file
func (w *Warehouse) ExportToJSON(outputPath string) error {
	return w.store.ExportToJSON(outputPath)
}

// ExportToXLSX exports a candidate summary spreadsheet
func (w *Warehouse) ExportToXLSX(outputPath string) error {
	return w.store.ExportToXLSX(outputPath)
}
