// ABOUTME: Journal operations: general moments, substance moments, ally use logging
// ABOUTME: Journals are newest-first and append/delete-only
package store

import (
	"fmt"

	"github.com/hollis/tend/internal/models"
	"github.com/hollis/tend/internal/timeutil"
)

// Moments returns a copy of the general journal, newest first.
func (s *Store) Moments() []models.Moment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Moment(nil), s.state.Moments...)
}

// SubstanceMoments returns a copy of the substance journal, newest first.
func (s *Store) SubstanceMoments() []models.Moment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Moment(nil), s.state.SubstanceMoments...)
}

// stamp fills in the generated fields of a new moment and captures the
// ally/anchor name snapshots. Caller must hold mu.
func (s *Store) stamp(m models.Moment) models.Moment {
	now := s.now()
	m.ID = timeutil.NewID()
	m.Timestamp = now.UnixMilli()
	if m.Date == "" {
		m.Date = timeutil.DateKey(now)
	}
	if !m.Container.Valid() {
		m.Container = s.state.ActiveContainer
	}
	if m.AllyID != "" && m.AllyName == "" {
		for _, a := range s.state.Allies {
			if a.ID == m.AllyID {
				m.AllyName = a.Name
				break
			}
		}
	}
	if m.AnchorID != "" && m.AnchorTitle == "" {
		for _, a := range s.state.Anchors {
			if a.ID == m.AnchorID {
				m.AnchorTitle = a.Title
				break
			}
		}
	}
	return m
}

// appendAllyLog mirrors a moment into the referenced ally's cached log.
// Caller must hold mu. A dangling ally reference is not an error; the moment
// simply has no log to land in.
func (s *Store) appendAllyLog(m models.Moment) {
	if m.AllyID == "" {
		return
	}
	allies := append([]models.Ally(nil), s.state.Allies...)
	for i := range allies {
		if allies[i].ID == m.AllyID {
			allies[i].Log = append([]models.Moment{m}, allies[i].Log...)
			s.state.Allies = allies
			return
		}
	}
}

// AddMoment prepends a check-in to the general journal. If the moment
// references an ally, a denormalized copy also lands in that ally's log.
func (s *Store) AddMoment(m models.Moment) (models.Moment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return models.Moment{}, ErrNotReady
	}
	m = s.stamp(m)
	s.state.Moments = append([]models.Moment{m}, s.state.Moments...)
	s.appendAllyLog(m)
	s.markDirty()
	return m, nil
}

// AddSubstanceMoment prepends a check-in to the substance journal, mirroring
// into the ally log the same way AddMoment does.
func (s *Store) AddSubstanceMoment(m models.Moment) (models.Moment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return models.Moment{}, ErrNotReady
	}
	m = s.stamp(m)
	s.state.SubstanceMoments = append([]models.Moment{m}, s.state.SubstanceMoments...)
	s.appendAllyLog(m)
	s.markDirty()
	return m, nil
}

// LogAllyUse records a minimal "used this ally" entry in the substance
// journal without the full reflection flow.
func (s *Store) LogAllyUse(allyID string) (models.Moment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return models.Moment{}, ErrNotReady
	}

	var name string
	for _, a := range s.state.Allies {
		if a.ID == allyID {
			name = a.Name
			break
		}
	}
	if name == "" {
		return models.Moment{}, fmt.Errorf("ally not found: %s", allyID)
	}

	m := s.stamp(models.Moment{
		AllyID: allyID,
		Text:   "Used " + name,
	})
	s.state.SubstanceMoments = append([]models.Moment{m}, s.state.SubstanceMoments...)
	s.appendAllyLog(m)
	s.markDirty()
	return m, nil
}

// RemoveMoment deletes an entry from the general journal and from any ally
// log caching it.
func (s *Store) RemoveMoment(id string) error {
	return s.removeJournalEntry(id, false)
}

// RemoveSubstanceMoment deletes an entry from the substance journal and from
// any ally log caching it.
func (s *Store) RemoveSubstanceMoment(id string) error {
	return s.removeJournalEntry(id, true)
}

func (s *Store) removeJournalEntry(id string, substance bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}

	src := s.state.Moments
	if substance {
		src = s.state.SubstanceMoments
	}
	kept := make([]models.Moment, 0, len(src))
	found := false
	for _, m := range src {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return fmt.Errorf("moment not found: %s", id)
	}
	if substance {
		s.state.SubstanceMoments = kept
	} else {
		s.state.Moments = kept
	}

	// Drop the cached copy from ally logs as well.
	allies := append([]models.Ally(nil), s.state.Allies...)
	for i := range allies {
		log := allies[i].Log
		filtered := make([]models.Moment, 0, len(log))
		for _, m := range log {
			if m.ID != id {
				filtered = append(filtered, m)
			}
		}
		allies[i].Log = filtered
	}
	s.state.Allies = allies

	s.markDirty()
	return nil
}
