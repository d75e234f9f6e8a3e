// ABOUTME: Benchmark runner executing search scenarios against seeded warehouses
// ABOUTME: Each test gets a fresh in-memory warehouse loaded with the fixed corpus

package searchbench

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/harper/talent-warehouse/internal/storage"
)

// BenchmarkRunner executes search quality benchmark scenarios
type BenchmarkRunner struct {
	metrics *MetricsCalculator
	verbose bool
}

// NewBenchmarkRunner creates a new benchmark runner
func NewBenchmarkRunner(verbose bool) *BenchmarkRunner {
	return &BenchmarkRunner{
		metrics: NewMetricsCalculator(),
		verbose: verbose,
	}
}

// RunTest executes a single benchmark scenario against a fresh warehouse
func (r *BenchmarkRunner) RunTest(scenario TestScenario) (TestResult, error) {
	if r.verbose {
		fmt.Println("========================================")
		fmt.Printf("Running: %s\n", scenario.Name)
		fmt.Println("========================================")
		fmt.Printf("Description: %s\n", scenario.Description)
		fmt.Printf("Query: %q\n\n", scenario.Query)
	}

	warehouse, cleanup, err := seedWarehouse()
	if err != nil {
		return failedResult(scenario, err), err
	}
	defer cleanup()

	start := time.Now()
	result, err := warehouse.Query(scenario.Query, scenario.Filters)
	elapsed := time.Since(start)
	if err != nil {
		return failedResult(scenario, err), err
	}

	testResult := r.metrics.EvaluateTest(scenario, result)
	testResult.DurationMS = float64(elapsed.Microseconds()) / 1000.0

	if r.verbose {
		fmt.Printf("Returned %d candidate(s), searched=%v in %.2fms\n",
			len(result.Candidates), result.Searched, testResult.DurationMS)
		fmt.Printf("Precision: %.2f\n", testResult.PrecisionScore)
		fmt.Printf("Recall: %.2f\n", testResult.RecallScore)
		fmt.Printf("Status: %s\n\n", testResult.Status)
	}

	return testResult, nil
}

// RunAllTests executes every benchmark scenario in order
func (r *BenchmarkRunner) RunAllTests() ([]TestResult, error) {
	scenarios := GetAllTests()
	results := make([]TestResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := r.RunTest(scenario)
		if err != nil {
			return results, fmt.Errorf("test %s: %w", scenario.ID, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// ExportResults writes benchmark results to a JSON file
func (r *BenchmarkRunner) ExportResults(results []TestResult, outputPath string) error {
	passed := 0
	failed := 0
	for _, result := range results {
		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	summary := map[string]interface{}{
		"timestamp":   time.Now().Format(time.RFC3339),
		"total_tests": len(results),
		"passed":      passed,
		"failed":      failed,
		"results":     results,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	fmt.Printf("\n✓ Results exported to: %s\n", outputPath)
	return nil
}

// seedWarehouse opens a fresh in-memory warehouse loaded with the benchmark
// corpus. The cleanup closes the warehouse and removes the scratch reports
// directory.
func seedWarehouse() (*storage.Warehouse, func(), error) {
	reportsDir, err := os.MkdirTemp("", "searchbench-reports-")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	warehouse, err := storage.OpenInMemory(reportsDir)
	if err != nil {
		_ = os.RemoveAll(reportsDir)
		return nil, nil, fmt.Errorf("failed to open warehouse: %w", err)
	}

	cleanup := func() {
		_ = warehouse.Close()
		_ = os.RemoveAll(reportsDir)
	}

	for _, record := range GetCorpus() {
		if _, err := warehouse.Ingest(record.Parsed, record.Summary, ""); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to seed candidate %s: %w", record.Parsed.Name, err)
		}
	}

	return warehouse, cleanup, nil
}

func failedResult(scenario TestScenario, err error) TestResult {
	return TestResult{
		TestID:       scenario.ID,
		TestName:     scenario.Name,
		Status:       "FAIL",
		ErrorMessage: err.Error(),
	}
}
