// ABOUTME: Anchor and completion operations on the state store
// ABOUTME: Toggle semantics: at most one completion per anchor per calendar day
package store

import (
	"fmt"

	"github.com/hollis/tend/internal/models"
	"github.com/hollis/tend/internal/timeutil"
)

// Anchors returns a copy of the anchor collection in append order.
func (s *Store) Anchors() []models.Anchor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Anchor(nil), s.state.Anchors...)
}

// AnchorsIn returns anchors filed under the given container.
func (s *Store) AnchorsIn(c models.Container) []models.Anchor {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Anchor
	for _, a := range s.state.Anchors {
		if a.Container == c {
			out = append(out, a)
		}
	}
	return out
}

// AddAnchor appends a new anchor, assigning its ID. The caller-supplied ID,
// if any, is ignored.
func (s *Store) AddAnchor(a models.Anchor) (models.Anchor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return models.Anchor{}, ErrNotReady
	}
	a.ID = timeutil.NewID()
	s.state.Anchors = append(append([]models.Anchor(nil), s.state.Anchors...), a)
	s.markDirty()
	return a, nil
}

// UpdateAnchor replaces an anchor wholesale by ID.
func (s *Store) UpdateAnchor(a models.Anchor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	anchors := append([]models.Anchor(nil), s.state.Anchors...)
	for i := range anchors {
		if anchors[i].ID == a.ID {
			anchors[i] = a
			s.state.Anchors = anchors
			s.markDirty()
			return nil
		}
	}
	return fmt.Errorf("anchor not found: %s", a.ID)
}

// RemoveAnchor deletes an anchor and cascades away its completion records.
// Moments that reference the anchor keep their title snapshot and survive.
func (s *Store) RemoveAnchor(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}

	anchors := make([]models.Anchor, 0, len(s.state.Anchors))
	found := false
	for _, a := range s.state.Anchors {
		if a.ID == id {
			found = true
			continue
		}
		anchors = append(anchors, a)
	}
	if !found {
		return fmt.Errorf("anchor not found: %s", id)
	}

	completions := make([]models.Completion, 0, len(s.state.Completions))
	for _, c := range s.state.Completions {
		if c.AnchorID != id {
			completions = append(completions, c)
		}
	}

	s.state.Anchors = anchors
	s.state.Completions = completions
	s.markDirty()
	return nil
}

// ToggleCompletion flips today's completion for the anchor: inserted if
// absent, removed if present. Returns the resulting completed state.
func (s *Store) ToggleCompletion(anchorID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return false, ErrNotReady
	}

	now := s.now()
	today := timeutil.DateKey(now)

	completions := make([]models.Completion, 0, len(s.state.Completions)+1)
	removed := false
	for _, c := range s.state.Completions {
		if c.AnchorID == anchorID && c.Date == today {
			removed = true
			continue
		}
		completions = append(completions, c)
	}
	if !removed {
		completions = append(completions, models.Completion{
			AnchorID:  anchorID,
			Date:      today,
			Timestamp: now.UnixMilli(),
		})
	}

	s.state.Completions = completions
	s.markDirty()
	return !removed, nil
}

// IsCompleted reports whether the anchor has a completion for today. Pure
// query; returns false before hydration.
func (s *Store) IsCompleted(anchorID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := timeutil.DateKey(s.now())
	for _, c := range s.state.Completions {
		if c.AnchorID == anchorID && c.Date == today {
			return true
		}
	}
	return false
}

// Completions returns a copy of all completion records.
func (s *Store) Completions() []models.Completion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Completion(nil), s.state.Completions...)
}

// CompletionsOn returns the completions recorded for one calendar day.
func (s *Store) CompletionsOn(date string) []models.Completion {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Completion
	for _, c := range s.state.Completions {
		if c.Date == date {
			out = append(out, c)
		}
	}
	return out
}
