package mcp

import (
	"context"
	"encoding/json"
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type noParams struct{}

func registerTools(server *sdkmcp.Server, handler *Handler) {
	// Logging
	addTool[SaveEntryParams](server, handler, "save_entry",
		"Save a workout session. Unnamed exercises are dropped; reps and weight accept numbers or numeric strings and default to 0. The new entry is placed first in the log.")
	addTool[EntryIDParams](server, handler, "delete_entry",
		"Delete one entry by ID")
	addTool[noParams](server, handler, "clear_entries",
		"Remove every entry from the log")

	// Browsing
	addTool[ListEntriesParams](server, handler, "list_entries",
		"List logged sessions ordered by date, newest first, with volume and set totals")
	addTool[EntryIDParams](server, handler, "get_entry",
		"Get one entry with its exercises and sets")
	addTool[WeeklyStatsParams](server, handler, "weekly_stats",
		"Summarize volume, sets, reps and the top three exercises per ISO week, newest week first")
	addTool[noParams](server, handler, "list_plans",
		"List the training plan days an entry can be tagged with")
	addTool[noParams](server, handler, "exercise_suggestions",
		"List exercise names for autocomplete: the built-in list plus every name already logged")
	addTool[GetRecentActivityParams](server, handler, "get_recent_activity",
		"Get recent log mutations (saves, deletes, clears), newest first")
}

func addTool[In any](server *sdkmcp.Server, handler *Handler, name, description string) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, any, error) {
		params, err := json.Marshal(in)
		if err != nil {
			return nil, nil, err
		}
		result, err := handler.Handle(ctx, name, params)
		if err != nil {
			return toolError(err), nil, nil
		}
		data, err := json.Marshal(result)
		if err != nil {
			return nil, nil, err
		}
		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
		}, nil, nil
	})
}

// toolError reports domain failures as tool results so clients see the
// error code instead of a protocol error.
func toolError(err error) *sdkmcp.CallToolResult {
	text := err.Error()
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if data, mErr := json.Marshal(apiErr); mErr == nil {
			text = string(data)
		}
	}
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}
}
