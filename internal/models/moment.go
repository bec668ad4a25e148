// ABOUTME: Moment is a single reflective journal check-in
// ABOUTME: Optionally linked to an ally or anchor, with a name snapshot for display
package models

// Moment is one journal entry. Moments are append-only: once written they are
// deleted whole or kept forever, never edited.
//
// AllyName and AnchorTitle are snapshots captured at creation time so the
// entry stays readable after the referenced ally or anchor is removed.
type Moment struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Timestamp   int64     `json:"timestamp"`
	AllyID      string    `json:"allyId,omitempty"`
	AnchorID    string    `json:"anchorId,omitempty"`
	AllyName    string    `json:"allyName,omitempty"`
	AnchorTitle string    `json:"anchorTitle,omitempty"`
	Container   Container `json:"container"`

	// Quick check-in selections.
	Tone      string `json:"tone,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Presence  string `json:"presence,omitempty"`

	// Long-form reflection prompts.
	Context            string `json:"context,omitempty"`
	ActionReflection   string `json:"action_reflection,omitempty"`
	ResultShift        string `json:"result_shift,omitempty"`
	ConclusionOffering string `json:"conclusion_offering,omitempty"`

	Text string `json:"text,omitempty"`
}
