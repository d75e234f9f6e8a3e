// ABOUTME: Main entry point for the warehouse MCP server with stdio transport
// ABOUTME: Opens the warehouse and registers all query tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/talent-warehouse/internal/config"
	"github.com/harper/talent-warehouse/internal/mcp"
	"github.com/harper/talent-warehouse/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Open the warehouse with XDG-compliant paths
	warehouse, err := storage.Open(storage.Options{
		DBPath:     cfg.DBPath,
		ReportsDir: cfg.ReportsDir,
	})
	if err != nil {
		log.Fatalf("Failed to open warehouse: %v", err)
	}
	defer warehouse.Close()

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Talent Warehouse",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, warehouse, cfg.SuggestionLimit)

	// Start server with stdio transport
	log.Println("Talent warehouse MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
