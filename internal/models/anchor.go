// ABOUTME: Anchor is a recurring grounding prompt filed under a time container
// ABOUTME: Completions record that an anchor was marked done on a calendar day
package models

// Category classifies how an anchor is meant to be reached for.
type Category string

const (
	CategoryTime        Category = "time"
	CategorySituational Category = "situational"
	CategoryUplift      Category = "uplift"
)

// Anchor is a recurring habit prompt. Anchors are created whole and replaced
// whole on edit; fields are never mutated in place.
type Anchor struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Container Container `json:"container"`
	Category  Category  `json:"category"`
	BodyCue   string    `json:"body_cue,omitempty"`
	Micro     string    `json:"micro,omitempty"`
	Desire    string    `json:"desire,omitempty"`
}

// Completion records that one anchor was marked done on one calendar day.
// At most one completion exists per (AnchorID, Date) pair; toggling is
// presence/absence, not a counter.
type Completion struct {
	AnchorID  string `json:"itemId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Timestamp int64  `json:"timestamp"`
}
