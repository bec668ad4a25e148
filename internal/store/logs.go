// ABOUTME: Pattern observation and food entry operations on the state store
// ABOUTME: Both collections are create/delete only, newest first
package store

import (
	"fmt"

	"github.com/hollis/tend/internal/models"
	"github.com/hollis/tend/internal/timeutil"
)

// Patterns returns a copy of the pattern observations, newest first.
func (s *Store) Patterns() []models.Pattern {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Pattern(nil), s.state.Patterns...)
}

// AddPattern records a free-text pattern observation.
func (s *Store) AddPattern(text, category string) (models.Pattern, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return models.Pattern{}, ErrNotReady
	}
	now := s.now()
	p := models.Pattern{
		ID:        timeutil.NewID(),
		Date:      timeutil.DateKey(now),
		Timestamp: now.UnixMilli(),
		Text:      text,
		Category:  category,
	}
	s.state.Patterns = append([]models.Pattern{p}, s.state.Patterns...)
	s.markDirty()
	return p, nil
}

// RemovePattern deletes a pattern observation.
func (s *Store) RemovePattern(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	kept := make([]models.Pattern, 0, len(s.state.Patterns))
	found := false
	for _, p := range s.state.Patterns {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("pattern not found: %s", id)
	}
	s.state.Patterns = kept
	s.markDirty()
	return nil
}

// FoodEntries returns a copy of the food log, newest first.
func (s *Store) FoodEntries() []models.FoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FoodEntry(nil), s.state.FoodEntries...)
}

// AddFoodEntry records a meal or snack, assigning the generated fields.
func (s *Store) AddFoodEntry(e models.FoodEntry) (models.FoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return models.FoodEntry{}, ErrNotReady
	}
	now := s.now()
	e.ID = timeutil.NewID()
	e.Timestamp = now.UnixMilli()
	if e.Date == "" {
		e.Date = timeutil.DateKey(now)
	}
	s.state.FoodEntries = append([]models.FoodEntry{e}, s.state.FoodEntries...)
	s.markDirty()
	return e, nil
}

// RemoveFoodEntry deletes a food log entry.
func (s *Store) RemoveFoodEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	kept := make([]models.FoodEntry, 0, len(s.state.FoodEntries))
	found := false
	for _, e := range s.state.FoodEntries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("food entry not found: %s", id)
	}
	s.state.FoodEntries = kept
	s.markDirty()
	return nil
}
