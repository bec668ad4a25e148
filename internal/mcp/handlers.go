// ABOUTME: MCP tool handler implementations for the tend server
// ABOUTME: Thin adapters from tool arguments onto store operations
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hollis/tend/internal/insight"
	"github.com/hollis/tend/internal/models"
	"github.com/hollis/tend/internal/store"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	store *store.Store
	synth *insight.Synthesizer
}

type anchorView struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Container models.Container `json:"container"`
	Category  models.Category  `json:"category"`
	Completed bool             `json:"completed_today"`
}

// ListAnchors handles the list_anchors tool.
func (h *Handlers) ListAnchors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := request.GetString("container", "")
	if filter != "" && !models.Container(filter).Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown container %q", filter)), nil
	}

	var anchors []models.Anchor
	if filter != "" {
		anchors = h.store.AnchorsIn(models.Container(filter))
	} else {
		anchors = h.store.Anchors()
	}

	views := make([]anchorView, 0, len(anchors))
	for _, a := range anchors {
		views = append(views, anchorView{
			ID:        a.ID,
			Title:     a.Title,
			Container: a.Container,
			Category:  a.Category,
			Completed: h.store.IsCompleted(a.ID),
		})
	}

	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not render anchors: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ToggleAnchor handles the toggle_anchor tool.
func (h *Handlers) ToggleAnchor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	anchorID, err := request.RequireString("anchor_id")
	if err != nil {
		return mcp.NewToolResultError("anchor_id argument is required and must be a string"), nil
	}

	completed, err := h.store.ToggleCompletion(anchorID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("toggle failed: %v", err)), nil
	}

	if completed {
		return mcp.NewToolResultText(fmt.Sprintf("Anchor %s marked done for today.", anchorID)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Anchor %s unmarked for today.", anchorID)), nil
}

// RecordMoment handles the record_moment tool.
func (h *Handlers) RecordMoment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	m := models.Moment{
		Text:     text,
		AllyID:   request.GetString("ally_id", ""),
		AnchorID: request.GetString("anchor_id", ""),
	}

	var saved models.Moment
	if request.GetBool("substance", false) {
		saved, err = h.store.AddSubstanceMoment(m)
	} else {
		saved, err = h.store.AddMoment(m)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not record moment: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Recorded moment %s.", saved.ID)), nil
}

// LogSubstanceUse handles the log_substance_use tool.
func (h *Handlers) LogSubstanceUse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	allyID, err := request.RequireString("ally_id")
	if err != nil {
		return mcp.NewToolResultError("ally_id argument is required and must be a string"), nil
	}

	m, err := h.store.LogAllyUse(allyID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not log use: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Logged: %s", m.Text)), nil
}

// LogFood handles the log_food tool.
func (h *Handlers) LogFood(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}

	entry, err := h.store.AddFoodEntry(models.FoodEntry{
		Name:    name,
		Portion: request.GetString("portion", ""),
		Notes:   request.GetString("notes", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not log food: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Logged food entry %s.", entry.ID)), nil
}

// NotePattern handles the note_pattern tool.
func (h *Handlers) NotePattern(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	p, err := h.store.AddPattern(text, request.GetString("category", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not note pattern: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Noted pattern %s.", p.ID)), nil
}

// DailyInsight handles the daily_insight tool.
func (h *Handlers) DailyInsight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.synth == nil {
		return mcp.NewToolResultError("insight generation is not configured (OPENAI_API_KEY not set)"), nil
	}

	synth := h.synth.Today(ctx, h.store.Snapshot())
	return mcp.NewToolResultText(synth.Text), nil
}
