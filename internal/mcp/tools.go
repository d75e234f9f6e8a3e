// ABOUTME: MCP tool definitions and registration for the warehouse server
// ABOUTME: Defines JSON schemas for all 6 search and browse tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/talent-warehouse/internal/storage"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, warehouse *storage.Warehouse, suggestionLimit int) *Handlers {
	handlers := &Handlers{
		warehouse:       warehouse,
		suggestionLimit: suggestionLimit,
	}

	// 1. search_candidates - ranked full-text search over the warehouse
	server.AddTool(mcp.Tool{
		Name:        "search_candidates",
		Description: "Search candidates with a full-text query (FTS5 syntax: AND/OR, \"phrases\", prefix*). Results are ranked by relevance and annotated with what matched.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Full-text search query",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchCandidates)

	// 2. filter_candidates - search-or-browse narrowed by structured predicates
	server.AddTool(mcp.Tool{
		Name:        "filter_candidates",
		Description: "List candidates narrowed by structured predicates, optionally starting from a full-text search. All predicates are ANDed together.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Optional full-text query to start from; omit to browse all candidates",
				},
				"geography": map[string]interface{}{
					"type":        "string",
					"description": "Primary geography, exact match (e.g. 'United States')",
				},
				"sector": map[string]interface{}{
					"type":        "string",
					"description": "Primary sector, exact match (e.g. 'Technology')",
				},
				"approach": map[string]interface{}{
					"type":        "string",
					"description": "Investment approach, exact match (e.g. 'Fundamental')",
				},
				"degree": map[string]interface{}{
					"type":        "string",
					"description": "Degree to require (e.g. 'MBA')",
				},
				"company": map[string]interface{}{
					"type":        "string",
					"description": "Company name substring across all past employers",
				},
				"school": map[string]interface{}{
					"type":        "string",
					"description": "School name substring",
				},
				"skills": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Skills to match; a candidate qualifies with any one of them",
				},
				"min_years": map[string]interface{}{
					"type":        "number",
					"description": "Minimum years of experience, inclusive",
				},
				"max_years": map[string]interface{}{
					"type":        "number",
					"description": "Maximum years of experience, inclusive",
				},
			},
		},
	}, handlers.FilterCandidates)

	// 3. list_filter_values - distinct values recorded for a filter category
	server.AddTool(mcp.Tool{
		Name:        "list_filter_values",
		Description: "List the distinct values recorded for a filter category: geography, sector, approach, skill, company, school, or degree.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Filter category name",
				},
			},
			Required: []string{"category"},
		},
	}, handlers.ListFilterValues)

	// 4. get_candidate - full candidate detail with child rows
	server.AddTool(mcp.Tool{
		Name:        "get_candidate",
		Description: "Get one candidate with experiences, education, skills, and the quality score.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"candidate_id": map[string]interface{}{
					"type":        "number",
					"description": "Candidate ID from a search or filter result",
				},
			},
			Required: []string{"candidate_id"},
		},
	}, handlers.GetCandidate)

	// 5. search_suggestions - autocomplete terms for query building
	server.AddTool(mcp.Tool{
		Name:        "search_suggestions",
		Description: "Get suggested search terms drawn from companies, skills, and degrees in the warehouse.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Cap per term source (default: 30)",
				},
			},
		},
	}, handlers.SearchSuggestions)

	// 6. warehouse_stats - row counts for every warehouse table
	server.AddTool(mcp.Tool{
		Name:        "warehouse_stats",
		Description: "Get warehouse row counts: candidates, parsed resumes, experiences, education, skills, filter values, and search documents.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.WarehouseStats)

	return handlers
}
