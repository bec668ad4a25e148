// ABOUTME: AppState is the aggregate root holding every domain collection
// ABOUTME: Serialized and persisted as one atomic JSON blob
package models

// AppState is the whole of the application's durable state. It is the sole
// unit of persistence: the storage adapter writes and reads it as one blob.
//
// Collection order is meaningful. Anchors and allies keep append order;
// the two journals and the pattern/food lists keep newest-first order.
type AppState struct {
	Anchors          []Anchor     `json:"items"`
	Allies           []Ally       `json:"allies"`
	Moments          []Moment     `json:"journalEntries"`
	SubstanceMoments []Moment     `json:"substanceJournalEntries"`
	Completions      []Completion `json:"completions"`
	Patterns         []Pattern    `json:"patterns"`
	FoodEntries      []FoodEntry  `json:"foodEntries"`
	ActiveContainer  Container    `json:"activeContainer"`
}

// Clone returns a deep copy. Callers that hand state across a boundary (the
// debounced saver, accessors) copy first so later mutations cannot race a
// serialization in flight.
func (s AppState) Clone() AppState {
	out := AppState{
		Anchors:          append([]Anchor(nil), s.Anchors...),
		Allies:           make([]Ally, len(s.Allies)),
		Moments:          append([]Moment(nil), s.Moments...),
		SubstanceMoments: append([]Moment(nil), s.SubstanceMoments...),
		Completions:      append([]Completion(nil), s.Completions...),
		Patterns:         append([]Pattern(nil), s.Patterns...),
		FoodEntries:      append([]FoodEntry(nil), s.FoodEntries...),
		ActiveContainer:  s.ActiveContainer,
	}
	for i, a := range s.Allies {
		a.Log = append([]Moment(nil), a.Log...)
		out.Allies[i] = a
	}
	return out
}
