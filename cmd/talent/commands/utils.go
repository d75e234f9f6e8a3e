// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Warehouse setup plus small formatting helpers for table output
package commands

import (
	"fmt"

	"github.com/harper/talent-warehouse/internal/config"
	"github.com/harper/talent-warehouse/internal/storage"
)

// loadConfig loads the environment configuration. The --db flag wins over
// TALENT_DB_PATH when set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

// openWarehouse opens the warehouse at the configured paths
func openWarehouse(cfg *config.Config) (*storage.Warehouse, error) {
	warehouse, err := storage.Open(storage.Options{
		DBPath:     cfg.DBPath,
		ReportsDir: cfg.ReportsDir,
	})
	if err != nil {
		return nil, fmt.Errorf("opening warehouse: %w", err)
	}
	return warehouse, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatYears renders an optional years-of-experience value for display
func formatYears(years *float64) string {
	if years == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *years)
}

// orPlaceholder substitutes a dash for empty table cells
func orPlaceholder(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
