// ABOUTME: Persistence adapter reading and writing the AppState blob
// ABOUTME: One fixed key, JSON encoding, no versioning, last write wins
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/hollis/tend/internal/models"
)

// StateKey is the fixed key the whole application state lives under.
const StateKey = "appstate"

// KV is the key-value surface the adapter needs. Satisfied by kv.Client and
// by in-memory fakes in tests.
type KV interface {
	Set(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}

// Adapter persists one AppState blob to a key-value store. It holds no state
// of its own and does no logging; callers decide what a failure means.
type Adapter struct {
	kv KV
}

// NewAdapter returns an adapter over the given key-value store.
func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv}
}

// Save serializes state and overwrites the blob unconditionally.
func (a *Adapter) Save(state models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	if err := a.kv.Set(StateKey, data); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// Load reads the blob. A clean "nothing saved yet" is (nil, nil). Read and
// parse failures are returned so the caller can log them, but per the
// soft-fail policy the caller treats them the same as absence.
func (a *Adapter) Load() (*models.AppState, error) {
	data, err := a.kv.Get(StateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state: %w", err)
	}
	return &state, nil
}

// Clear removes the blob entirely.
func (a *Adapter) Clear() error {
	if err := a.kv.Delete(StateKey); err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}
	return nil
}
