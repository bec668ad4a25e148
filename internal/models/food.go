// ABOUTME: FoodEntry records a meal or snack with optional mood/energy notes
// ABOUTME: Create/delete only, no update path
package models

// FoodEntry is one logged meal or snack.
type FoodEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD
	Timestamp   int64  `json:"timestamp"`
	Name        string `json:"name"`
	Portion     string `json:"portion,omitempty"`
	Notes       string `json:"notes,omitempty"`
	MoodBefore  string `json:"mood_before,omitempty"`
	MoodAfter   string `json:"mood_after,omitempty"`
	EnergyLevel string `json:"energy_level,omitempty"`
}
