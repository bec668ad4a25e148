// ABOUTME: Tests for MCP tool handlers against an in-memory store
// ABOUTME: Tool errors come back as error results, never as Go errors

package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hollis/tend/internal/storage"
	"github.com/hollis/tend/internal/store"
)

type memKV struct {
	data map[string][]byte
}

func (m *memKV) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memKV) Get(key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	st := store.New(
		storage.NewAdapter(&memKV{data: map[string][]byte{}}),
		store.WithDebounce(10*time.Millisecond),
	)
	if err := st.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	t.Cleanup(st.Close)
	return &Handlers{store: st}
}

func request(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return text.Text
}

func TestListAnchors(t *testing.T) {
	h := newTestHandlers(t)

	res, err := h.ListAnchors(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}

	out := resultText(t, res)
	if !strings.Contains(out, `"completed_today"`) {
		t.Errorf("anchor listing should include completion state:\n%s", out)
	}

	// Filtered listing only returns the named container.
	res, err = h.ListAnchors(context.Background(), request(map[string]any{"container": "morning"}))
	if err != nil || res.IsError {
		t.Fatalf("filtered listing failed: %v / %v", err, res)
	}
	if strings.Contains(resultText(t, res), `"container": "evening"`) {
		t.Error("morning filter should not return evening anchors")
	}

	res, _ = h.ListAnchors(context.Background(), request(map[string]any{"container": "weird"}))
	if !res.IsError {
		t.Error("unknown container should produce an error result")
	}
}

func TestToggleAnchor(t *testing.T) {
	h := newTestHandlers(t)
	anchor := h.store.Anchors()[0]

	res, err := h.ToggleAnchor(context.Background(), request(map[string]any{"anchor_id": anchor.ID}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res.IsError || !strings.Contains(resultText(t, res), "done") {
		t.Errorf("first toggle result = %q", resultText(t, res))
	}
	if !h.store.IsCompleted(anchor.ID) {
		t.Error("anchor should be completed after the toggle")
	}

	res, _ = h.ToggleAnchor(context.Background(), request(map[string]any{"anchor_id": anchor.ID}))
	if res.IsError || !strings.Contains(resultText(t, res), "unmarked") {
		t.Errorf("second toggle result = %q", resultText(t, res))
	}

	res, _ = h.ToggleAnchor(context.Background(), request(nil))
	if !res.IsError {
		t.Error("missing anchor_id should produce an error result")
	}
}

func TestRecordMoment(t *testing.T) {
	h := newTestHandlers(t)

	res, err := h.RecordMoment(context.Background(), request(map[string]any{"text": "held steady"}))
	if err != nil || res.IsError {
		t.Fatalf("record failed: %v / %v", err, res)
	}
	if len(h.store.Moments()) != 1 {
		t.Error("moment should land in the general journal")
	}

	res, _ = h.RecordMoment(context.Background(), request(map[string]any{
		"text":      "evening ritual",
		"substance": true,
	}))
	if res.IsError {
		t.Fatalf("substance record failed: %s", resultText(t, res))
	}
	if len(h.store.SubstanceMoments()) != 1 {
		t.Error("substance flag should route to the substance journal")
	}

	res, _ = h.RecordMoment(context.Background(), request(nil))
	if !res.IsError {
		t.Error("missing text should produce an error result")
	}
}

func TestLogSubstanceUse(t *testing.T) {
	h := newTestHandlers(t)
	ally := h.store.Allies()[0]

	res, err := h.LogSubstanceUse(context.Background(), request(map[string]any{"ally_id": ally.ID}))
	if err != nil || res.IsError {
		t.Fatalf("log failed: %v / %v", err, res)
	}
	if !strings.Contains(resultText(t, res), ally.Name) {
		t.Errorf("result should name the ally, got %q", resultText(t, res))
	}

	res, _ = h.LogSubstanceUse(context.Background(), request(map[string]any{"ally_id": "missing"}))
	if !res.IsError {
		t.Error("unknown ally should produce an error result")
	}
}

func TestLogFoodAndNotePattern(t *testing.T) {
	h := newTestHandlers(t)

	res, err := h.LogFood(context.Background(), request(map[string]any{
		"name":    "Soup",
		"portion": "one bowl",
	}))
	if err != nil || res.IsError {
		t.Fatalf("log_food failed: %v / %v", err, res)
	}
	entries := h.store.FoodEntries()
	if len(entries) != 1 || entries[0].Portion != "one bowl" {
		t.Errorf("food entry not stored: %+v", entries)
	}

	res, _ = h.NotePattern(context.Background(), request(map[string]any{
		"text":     "mornings run smoother after food",
		"category": "food",
	}))
	if res.IsError {
		t.Fatalf("note_pattern failed: %s", resultText(t, res))
	}
	patterns := h.store.Patterns()
	if len(patterns) != 1 || patterns[0].Category != "food" {
		t.Errorf("pattern not stored: %+v", patterns)
	}
}

func TestDailyInsight_Unconfigured(t *testing.T) {
	h := newTestHandlers(t)

	res, err := h.DailyInsight(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !res.IsError {
		t.Error("insight without a synthesizer should produce an error result")
	}
}
