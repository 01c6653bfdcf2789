package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ganot/gong-mcp/internal/domain/call"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchCallsInput is the search_calls argument set. The SDK derives a
// closed schema from this struct (unknown keys are rejected at the protocol
// boundary), so validation here is limited to per-key value checks.
type SearchCallsInput struct {
	FromDateTime     string   `json:"from_date_time,omitempty" jsonschema:"Start of the date range, ISO-8601 (e.g. 2024-01-01T00:00:00Z)"`
	ToDateTime       string   `json:"to_date_time,omitempty" jsonschema:"End of the date range, ISO-8601"`
	WorkspaceID      string   `json:"workspace_id,omitempty" jsonschema:"Restrict the search to one Gong workspace"`
	CallIDs          []string `json:"call_ids,omitempty" jsonschema:"Restrict the search to specific call ids"`
	PrimaryUserIDs   []string `json:"primary_user_ids,omitempty" jsonschema:"Restrict the search to calls owned by these user ids"`
	Cursor           string   `json:"cursor,omitempty" jsonschema:"Opaque pagination cursor from a previous result"`
	Limit            *int     `json:"limit,omitempty" jsonschema:"Maximum number of calls to return; omit for no limit"`
	IncludeStructure bool     `json:"include_structure,omitempty" jsonschema:"Also request agenda/structure content (the most expensive optional block)"`
}

func (s *server) registerTools(srv *sdkmcp.Server) {
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "search_calls",
		Description: "Search Gong calls by date range, workspace, call ids or primary user ids. Returns call summaries with participants, plus pagination and truncation metadata.",
		Annotations: &sdkmcp.ToolAnnotations{
			Title:        "Search Calls",
			ReadOnlyHint: true,
		},
	}, s.handleSearchCalls)
}

func (s *server) handleSearchCalls(ctx context.Context, _ *sdkmcp.CallToolRequest, in SearchCallsInput) (*sdkmcp.CallToolResult, any, error) {
	if !s.creds.Configured() {
		return nil, nil, notConfiguredError(map[string]any{"tool": "search_calls"})
	}

	filter, limit, err := normalizeSearchArgs(in)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.calls.Search(ctx, filter, limit)
	if err != nil {
		return nil, nil, MapError(err, map[string]any{"tool": "search_calls"})
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding search result: %w", err)
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}

// normalizeSearchArgs applies the per-key checks and defaults: absent
// strings and arrays stay absent, limit must be non-negative when present,
// include_structure defaults to false. No cross-field validation; upstream
// is the authority on filter semantics.
func normalizeSearchArgs(in SearchCallsInput) (call.Filter, *int, error) {
	if in.Limit != nil && *in.Limit < 0 {
		return call.Filter{}, nil, invalidParamsError("limit must be a non-negative integer", map[string]any{"limit": *in.Limit})
	}

	filter := call.Filter{
		FromDateTime:     in.FromDateTime,
		ToDateTime:       in.ToDateTime,
		WorkspaceID:      in.WorkspaceID,
		CallIDs:          in.CallIDs,
		PrimaryUserIDs:   in.PrimaryUserIDs,
		Cursor:           in.Cursor,
		IncludeStructure: in.IncludeStructure,
	}
	return filter, in.Limit, nil
}
