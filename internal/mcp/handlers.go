// ABOUTME: MCP tool handler implementations for the warehouse server
// ABOUTME: Maps tool calls onto warehouse queries with proper error handling
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/talent-warehouse/internal/models"
	"github.com/harper/talent-warehouse/internal/storage"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	warehouse       *storage.Warehouse
	suggestionLimit int
}

// SearchCandidates handles the search_candidates tool
func (h *Handlers) SearchCandidates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	result := h.warehouse.SearchCandidates(query)
	if result == nil {
		// The search was not run: blank query or rejected FTS5 syntax.
		return mcp.NewToolResultError(fmt.Sprintf("search %q could not be run: the query was blank or used invalid search syntax", query)), nil
	}

	response := map[string]interface{}{
		"query":      result.Query,
		"count":      len(result.Candidates),
		"candidates": result.Candidates,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// FilterCandidates handles the filter_candidates tool
func (h *Handlers) FilterCandidates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")

	filters := models.Filters{
		Geography: request.GetString("geography", ""),
		Sector:    request.GetString("sector", ""),
		Approach:  request.GetString("approach", ""),
		Degree:    request.GetString("degree", ""),
		Company:   request.GetString("company", ""),
		School:    request.GetString("school", ""),
	}

	if args, ok := request.Params.Arguments.(map[string]any); ok {
		filters.Skills = stringArray(args, "skills")
		filters.MinYears = floatArg(args, "min_years")
		filters.MaxYears = floatArg(args, "max_years")
	}

	result, err := h.warehouse.Query(query, filters)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"query":      result.Query,
		"searched":   result.Searched,
		"count":      len(result.Candidates),
		"candidates": result.Candidates,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListFilterValues handles the list_filter_values tool
func (h *Handlers) ListFilterValues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError("category argument is required and must be a string"), nil
	}

	if !h.warehouse.ValidFilterCategory(category) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown filter category %q, expected one of: %s",
			category, strings.Join(h.warehouse.FilterCategories(), ", "))), nil
	}

	values := h.warehouse.FilterValues(category)
	response := map[string]interface{}{
		"category": category,
		"count":    len(values),
		"values":   values,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetCandidate handles the get_candidate tool
func (h *Handlers) GetCandidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetInt("candidate_id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("candidate_id argument is required and must be a positive number"), nil
	}

	detail, err := h.warehouse.GetCandidateDetail(int64(id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load candidate: %v", err)), nil
	}
	if detail == nil {
		return mcp.NewToolResultError(fmt.Sprintf("candidate %d not found", id)), nil
	}

	responseJSON, err := json.Marshal(detail)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchSuggestions handles the search_suggestions tool
func (h *Handlers) SearchSuggestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", h.suggestionLimit)
	if limit <= 0 {
		limit = h.suggestionLimit
	}

	suggestions := h.warehouse.SearchSuggestions(limit)
	response := map[string]interface{}{
		"count":       len(suggestions),
		"suggestions": suggestions,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// WarehouseStats handles the warehouse_stats tool
func (h *Handlers) WarehouseStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.warehouse.Stats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load stats: %v", err)), nil
	}

	responseJSON, err := json.Marshal(stats)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// stringArray extracts a string array argument from the raw arguments map
func stringArray(args map[string]any, key string) []string {
	raw, ok := args[key]
	if !ok {
		return nil
	}
	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if str, ok := item.(string); ok {
			result = append(result, str)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// floatArg extracts an optional numeric argument from the raw arguments map
func floatArg(args map[string]any, key string) *float64 {
	raw, ok := args[key]
	if !ok {
		return nil
	}
	f, ok := raw.(float64)
	if !ok {
		return nil
	}
	return &f
}
