// ABOUTME: Command-line benchmark runner for search quality tests
// ABOUTME: Executes search benchmarks against seeded warehouses and outputs JSON results

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harper/talent-warehouse/benchmarks/searchbench"
)

func main() {
	// Command-line flags
	testID := flag.String("test", "", "Run specific test (skill, company, filter, browse, malformed, cert, phrase, prefix, boolean). If empty, runs all tests.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	// Print header
	fmt.Println("========================================")
	fmt.Println("Talent Warehouse Search Benchmarks")
	fmt.Println("========================================")
	fmt.Println()

	runner := searchbench.NewBenchmarkRunner(*verbose)

	// Run tests
	var results []searchbench.TestResult
	var err error

	if *testID == "" {
		// Run all tests
		fmt.Println("Running all search benchmark tests...")
		fmt.Println()

		results, err = runner.RunAllTests()
		if err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
	} else {
		// Run specific test
		var scenario searchbench.TestScenario

		switch *testID {
		case "skill":
			scenario = searchbench.GetSkillRecallTest()
		case "company":
			scenario = searchbench.GetCompanyRetrievalTest()
		case "filter":
			scenario = searchbench.GetFilterPrecisionTest()
		case "browse":
			scenario = searchbench.GetBrowseFallbackTest()
		case "malformed":
			scenario = searchbench.GetMalformedQueryTest()
		case "cert":
			scenario = searchbench.GetCertificationSearchTest()
		case "phrase":
			scenario = searchbench.GetPhraseSearchTest()
		case "prefix":
			scenario = searchbench.GetPrefixSearchTest()
		case "boolean":
			scenario = searchbench.GetBooleanQueryTest()
		default:
			log.Fatalf("Unknown test ID: %s (valid options: skill, company, filter, browse, malformed, cert, phrase, prefix, boolean)", *testID)
		}

		fmt.Printf("Running test: %s\n\n", scenario.Name)

		result, err := runner.RunTest(scenario)
		if err != nil {
			log.Fatalf("Test failed: %v", err)
		}

		results = []searchbench.TestResult{result}
	}

	// Print summary
	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")

	passed := 0
	failed := 0

	for _, result := range results {
		fmt.Printf("\n%s: %s\n", result.TestID, result.TestName)
		fmt.Printf("  Precision: %.2f\n", result.PrecisionScore)
		fmt.Printf("  Recall: %.2f\n", result.RecallScore)
		fmt.Printf("  Overall: %.2f\n", result.OverallScore)
		fmt.Printf("  Duration: %.2fms\n", result.DurationMS)
		fmt.Printf("  Status: %s\n", result.Status)

		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Tests: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	// Export results
	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	// Exit with error code if any tests failed
	if failed > 0 {
		os.Exit(1)
	}
}
