package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/roster/internal/errors"
	"github.com/hpungsan/roster/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	roster *ops.Roster
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(roster *ops.Roster) *Handlers {
	return &Handlers{roster: roster}
}

// Request types for each tool. Required numeric fields are pointers so a
// missing argument can be told apart from zero.

// AddRequest represents the arguments for add.
type AddRequest struct {
	ID    *int     `json:"id"`
	Name  string   `json:"name"`
	Grade *float64 `json:"grade"`
}

// IDRequest represents the arguments for tools addressed by student id.
type IDRequest struct {
	ID *int `json:"id"`
}

// SortRequest represents the arguments for sort.
type SortRequest struct {
	Key       string `json:"key"`
	Ascending *bool  `json:"ascending,omitempty"`
}

// Handler implementations

// HandleAdd handles the add tool call.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.ID == nil {
		return errorResult(errors.NewInvalidRequest("id is required")), nil
	}
	if input.Grade == nil {
		return errorResult(errors.NewInvalidRequest("grade is required")), nil
	}

	result, err := ops.Add(h.roster, ops.AddInput{
		ID:    *input.ID,
		Name:  input.Name,
		Grade: *input.Grade,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleExists handles the exists tool call.
func (h *Handlers) HandleExists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := decodeID(req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := ops.Exists(h.roster, ops.ExistsInput{ID: id})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := decodeID(req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := ops.Delete(h.roster, ops.DeleteInput{ID: id})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleUndo handles the undo tool call.
func (h *Handlers) HandleUndo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Undo(h.roster)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSearch handles the search tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := decodeID(req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := ops.Search(h.roster, ops.SearchInput{ID: id})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.List(h.roster)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSort handles the sort tool call.
func (h *Handlers) HandleSort(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SortRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Sort(h.roster, ops.SortInput{
		Key:       input.Key,
		Ascending: input.Ascending,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleStatus handles the status tool call.
func (h *Handlers) HandleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Status(h.roster)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// decodeID extracts the required id argument, or an error result.
func decodeID(req mcp.CallToolRequest) (int, *mcp.CallToolResult) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return 0, errorResult(errors.NewInvalidRequest(err.Error()))
	}
	if input.ID == nil {
		return 0, errorResult(errors.NewInvalidRequest("id is required"))
	}
	return *input.ID, nil
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if rErr, ok := err.(*errors.RosterError); ok {
		errorObj := map[string]any{
			"code":    rErr.Code,
			"message": rErr.Message,
			"status":  rErr.Status,
		}
		if rErr.Code != errors.ErrInternal && rErr.Details != nil {
			errorObj["details"] = rErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
