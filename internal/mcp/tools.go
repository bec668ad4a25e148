// ABOUTME: MCP tool definitions and registration for the tend server
// ABOUTME: Exposes the state store to LLM agents over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hollis/tend/internal/insight"
	"github.com/hollis/tend/internal/store"
)

// RegisterTools registers all tend MCP tools with the server. The
// synthesizer may be nil when no API key is configured; the daily_insight
// tool then reports that it is unavailable.
func RegisterTools(server *mcpserver.MCPServer, st *store.Store, synth *insight.Synthesizer) *Handlers {
	handlers := &Handlers{
		store: st,
		synth: synth,
	}

	server.AddTool(mcp.Tool{
		Name:        "list_anchors",
		Description: "List grounding anchors, optionally filtered by time container (morning, afternoon, evening, late), with today's completion state.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"container": map[string]interface{}{
					"type":        "string",
					"description": "Optional container filter: morning, afternoon, evening, or late",
				},
			},
		},
	}, handlers.ListAnchors)

	server.AddTool(mcp.Tool{
		Name:        "toggle_anchor",
		Description: "Toggle today's completion for a grounding anchor. Returns the resulting state.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"anchor_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the anchor to toggle",
				},
			},
			Required: []string{"anchor_id"},
		},
	}, handlers.ToggleAnchor)

	server.AddTool(mcp.Tool{
		Name:        "record_moment",
		Description: "Record a reflective journal moment, optionally linked to an ally or anchor.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "The reflection text",
				},
				"ally_id": map[string]interface{}{
					"type":        "string",
					"description": "Optional ally this moment relates to",
				},
				"anchor_id": map[string]interface{}{
					"type":        "string",
					"description": "Optional anchor this moment relates to",
				},
				"substance": map[string]interface{}{
					"type":        "boolean",
					"description": "File into the substance journal instead of the general one",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.RecordMoment)

	server.AddTool(mcp.Tool{
		Name:        "log_substance_use",
		Description: "Record a minimal 'used this ally' entry in the substance journal.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"ally_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the ally that was used",
				},
			},
			Required: []string{"ally_id"},
		},
	}, handlers.LogSubstanceUse)

	server.AddTool(mcp.Tool{
		Name:        "log_food",
		Description: "Record a meal or snack with optional mood and energy notes.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "What was eaten",
				},
				"portion": map[string]interface{}{
					"type":        "string",
					"description": "Optional portion description",
				},
				"notes": map[string]interface{}{
					"type":        "string",
					"description": "Optional free-text notes",
				},
			},
			Required: []string{"name"},
		},
	}, handlers.LogFood)

	server.AddTool(mcp.Tool{
		Name:        "note_pattern",
		Description: "Record a free-text observation about a noticed behavior pattern.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "The observation",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Optional category label",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.NotePattern)

	server.AddTool(mcp.Tool{
		Name:        "daily_insight",
		Description: "Get today's generated observation over recent completions and journal activity. Cached per calendar day.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.DailyInsight)

	return handlers
}
