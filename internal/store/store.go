// ABOUTME: Application state store owning every domain collection in memory
// ABOUTME: Hydrates from the persistence adapter, coalesces writes with a trailing debounce
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hollis/tend/internal/models"
	"github.com/hollis/tend/internal/storage"
	"github.com/hollis/tend/internal/timeutil"
)

// DefaultDebounce is the quiet period after the last mutation before the
// state blob is written back. Mutations arrive in short bursts (a form being
// filled in, then submitted); the trailing debounce folds a burst into one
// write.
const DefaultDebounce = 500 * time.Millisecond

// Phase is the store lifecycle state.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseReady
	PhaseClosed
)

// ErrNotReady is returned when a mutation arrives before Load has hydrated
// the store. That is a caller bug, not a data error.
var ErrNotReady = errors.New("store not ready")

// Option configures a Store.
type Option func(*Store)

// WithDebounce overrides the write-back quiet period.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// WithLogger sets the logger used for swallowed persistence errors.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock overrides the time source, letting tests pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is the single owner of all in-memory domain collections. Mutations
// apply synchronously; persistence happens on a trailing debounce. All
// methods are safe for concurrent use, though the expected caller is a single
// event loop.
type Store struct {
	mu      sync.Mutex
	adapter *storage.Adapter
	log     zerolog.Logger
	now     func() time.Time

	phase    Phase
	state    models.AppState
	dirty    bool
	debounce time.Duration
	timer    *time.Timer

	// saveMu orders writes: each flush snapshots and saves inside one
	// critical section, so a racing flush cannot persist an older snapshot
	// after a newer one.
	saveMu sync.Mutex
}

// New returns an unhydrated store. Call Load before mutating.
func New(adapter *storage.Adapter, opts ...Option) *Store {
	s := &Store{
		adapter:  adapter,
		log:      zerolog.Nop(),
		now:      time.Now,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load hydrates the store from the adapter and moves it to Ready. A failed
// or empty read falls back to the built-in seed content; Load itself only
// fails on misuse (calling it twice).
func (s *Store) Load() error {
	s.mu.Lock()
	if s.phase != PhaseUninitialized {
		s.mu.Unlock()
		return fmt.Errorf("store already loaded (phase %d)", s.phase)
	}
	s.phase = PhaseLoading
	s.mu.Unlock()

	saved, err := s.adapter.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("could not read saved state, starting fresh")
		saved = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = hydrate(saved, s.now())
	s.phase = PhaseReady
	return nil
}

// hydrate fills a loaded state's gaps. Empty anchor/ally collections fall
// back to seeds (first-run UX, not an integrity rule); the other collections
// default to empty; an unknown active container defaults from the clock.
func hydrate(saved *models.AppState, now time.Time) models.AppState {
	state := models.AppState{
		Anchors:          models.DefaultAnchors(),
		Allies:           models.DefaultAllies(),
		Moments:          []models.Moment{},
		SubstanceMoments: []models.Moment{},
		Completions:      []models.Completion{},
		Patterns:         []models.Pattern{},
		FoodEntries:      []models.FoodEntry{},
		ActiveContainer:  timeutil.ContainerAt(now),
	}
	if saved == nil {
		return state
	}
	if len(saved.Anchors) > 0 {
		state.Anchors = saved.Anchors
	}
	if len(saved.Allies) > 0 {
		state.Allies = saved.Allies
	}
	if saved.Moments != nil {
		state.Moments = saved.Moments
	}
	if saved.SubstanceMoments != nil {
		state.SubstanceMoments = saved.SubstanceMoments
	}
	if saved.Completions != nil {
		state.Completions = saved.Completions
	}
	if saved.Patterns != nil {
		state.Patterns = saved.Patterns
	}
	if saved.FoodEntries != nil {
		state.FoodEntries = saved.FoodEntries
	}
	if saved.ActiveContainer.Valid() {
		state.ActiveContainer = saved.ActiveContainer
	}
	return state
}

// Phase returns the lifecycle phase.
func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Ready reports whether the store has finished hydrating.
func (s *Store) Ready() bool {
	return s.Phase() == PhaseReady
}

// markDirty schedules the debounced write-back. Caller must hold mu and have
// verified the store is Ready: no write may be scheduled before hydration.
func (s *Store) markDirty() {
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flush)
}

// flush writes the current state if dirty. Runs on the debounce timer
// goroutine and from Flush/Close. Save failures are logged and absorbed; the
// in-memory state stays the source of truth and the next natural mutation
// schedules the retry.
//
// saveMu is taken before the snapshot, not after: two flushes racing must
// snapshot in the same order they save, or a stale snapshot could be written
// last and drop the newest mutation from the blob. Lock order is saveMu
// before mu; nothing acquires saveMu while holding mu.
func (s *Store) flush() {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if !s.dirty || s.phase != PhaseReady {
		s.mu.Unlock()
		return
	}
	snap := s.state.Clone()
	s.dirty = false
	s.mu.Unlock()

	if err := s.adapter.Save(snap); err != nil {
		s.log.Warn().Err(err).Msg("state save failed, keeping in-memory state")
	}
}

// Flush forces any pending write out immediately.
func (s *Store) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flush()
}

// Close flushes pending state and retires the store.
func (s *Store) Close() {
	s.Flush()
	s.mu.Lock()
	s.phase = PhaseClosed
	s.mu.Unlock()
}

// Reset discards all data, reseeds the defaults, and clears the persisted
// blob. Nothing is left dirty afterwards.
func (s *Store) Reset() error {
	s.mu.Lock()
	if s.phase != PhaseReady {
		s.mu.Unlock()
		return ErrNotReady
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = hydrate(nil, s.now())
	s.dirty = false
	s.mu.Unlock()

	// Serialize with flush so a timer that snapshotted pre-reset state
	// cannot re-save the old blob after the clear.
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if err := s.adapter.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("could not clear persisted state")
	}
	return nil
}

// Snapshot returns a deep copy of the full application state.
func (s *Store) Snapshot() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// ActiveContainer returns the currently selected time-of-day filter.
func (s *Store) ActiveContainer() models.Container {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveContainer
}

// SetActiveContainer selects the time-of-day filter.
func (s *Store) SetActiveContainer(c models.Container) error {
	if !c.Valid() {
		return fmt.Errorf("unknown container %q", c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	s.state.ActiveContainer = c
	s.markDirty()
	return nil
}
