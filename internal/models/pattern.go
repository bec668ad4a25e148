// ABOUTME: Pattern is a free-text user observation about their own behavior
// ABOUTME: Create/delete only, no update path
package models

// Pattern is a noticed-pattern note.
type Pattern struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Timestamp int64  `json:"timestamp"`
	Text      string `json:"text"`
	Category  string `json:"category,omitempty"`
}
