// ABOUTME: Ally operations on the state store
// ABOUTME: Removing an ally never touches historical journal entries
package store

import (
	"fmt"

	"github.com/hollis/tend/internal/models"
	"github.com/hollis/tend/internal/timeutil"
)

// Allies returns a copy of the ally collection in append order.
func (s *Store) Allies() []models.Ally {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ally, len(s.state.Allies))
	for i, a := range s.state.Allies {
		a.Log = append([]models.Moment(nil), a.Log...)
		out[i] = a
	}
	return out
}

// Ally looks an ally up by ID.
func (s *Store) Ally(id string) (models.Ally, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.state.Allies {
		if a.ID == id {
			a.Log = append([]models.Moment(nil), a.Log...)
			return a, true
		}
	}
	return models.Ally{}, false
}

// AddAlly appends a new ally, assigning its ID.
func (s *Store) AddAlly(a models.Ally) (models.Ally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return models.Ally{}, ErrNotReady
	}
	a.ID = timeutil.NewID()
	if a.Log == nil {
		a.Log = []models.Moment{}
	}
	s.state.Allies = append(append([]models.Ally(nil), s.state.Allies...), a)
	s.markDirty()
	return a, nil
}

// UpdateAlly replaces an ally wholesale by ID. The stored log is preserved
// when the replacement carries none, so an edit form that only touches the
// descriptive fields cannot wipe the cached moment log.
func (s *Store) UpdateAlly(a models.Ally) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	allies := append([]models.Ally(nil), s.state.Allies...)
	for i := range allies {
		if allies[i].ID == a.ID {
			if a.Log == nil {
				a.Log = allies[i].Log
			}
			allies[i] = a
			s.state.Allies = allies
			s.markDirty()
			return nil
		}
	}
	return fmt.Errorf("ally not found: %s", a.ID)
}

// RemoveAlly deletes an ally. Journal entries that reference it remain,
// readable through their name snapshot.
func (s *Store) RemoveAlly(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	allies := make([]models.Ally, 0, len(s.state.Allies))
	found := false
	for _, a := range s.state.Allies {
		if a.ID == id {
			found = true
			continue
		}
		allies = append(allies, a)
	}
	if !found {
		return fmt.Errorf("ally not found: %s", id)
	}
	s.state.Allies = allies
	s.markDirty()
	return nil
}
