// ABOUTME: Pure completion-pattern analysis over the application state
// ABOUTME: Feeds the prompt for LLM insight generation
package insight

import (
	"fmt"
	"strings"
	"time"

	"github.com/hollis/tend/internal/models"
	"github.com/hollis/tend/internal/timeutil"
)

// Stats summarizes completion behavior for the insight prompt.
type Stats struct {
	TotalAnchors      int
	CompletedToday    int
	RecentCompletions int // last 7 days, today included
	CompletionRate    float64
	PerContainer      map[models.Container]int
}

// Analyze computes completion statistics as of now.
func Analyze(state models.AppState, now time.Time) Stats {
	stats := Stats{
		TotalAnchors: len(state.Anchors),
		PerContainer: map[models.Container]int{},
	}

	today := timeutil.DateKey(now)
	weekAgo := now.AddDate(0, 0, -7).UnixMilli()

	containerOf := make(map[string]models.Container, len(state.Anchors))
	for _, a := range state.Anchors {
		containerOf[a.ID] = a.Container
	}

	for _, c := range state.Completions {
		if c.Date == today {
			stats.CompletedToday++
		}
		if c.Timestamp >= weekAgo {
			stats.RecentCompletions++
		}
		if container, ok := containerOf[c.AnchorID]; ok {
			stats.PerContainer[container]++
		}
	}

	if stats.TotalAnchors > 0 {
		stats.CompletionRate = float64(stats.CompletedToday) / float64(stats.TotalAnchors)
	}
	return stats
}

// BuildPrompt renders the stats and recent journal activity into the prompt
// sent to the model. The prompt asks for one short observation, not advice.
func BuildPrompt(stats Stats, recent []models.Moment) string {
	var b strings.Builder
	b.WriteString("You are a quiet, observant companion inside a personal grounding journal. ")
	b.WriteString("Offer one short reflective observation (2-3 sentences, no advice, no lists) based on this data.\n\n")

	fmt.Fprintf(&b, "Anchors: %d total, %d completed today, %d completions in the last 7 days.\n",
		stats.TotalAnchors, stats.CompletedToday, stats.RecentCompletions)

	b.WriteString("Completions by time of day:")
	for _, c := range models.Containers {
		fmt.Fprintf(&b, " %s=%d", c, stats.PerContainer[c])
	}
	b.WriteString("\n")

	if len(recent) > 0 {
		b.WriteString("\nRecent journal moments (newest first):\n")
		limit := len(recent)
		if limit > 5 {
			limit = 5
		}
		for _, m := range recent[:limit] {
			line := m.Text
			if line == "" {
				line = m.ConclusionOffering
			}
			if line == "" {
				continue
			}
			fmt.Fprintf(&b, "- [%s] %s\n", m.Date, line)
		}
	}

	return b.String()
}
