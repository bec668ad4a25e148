// ABOUTME: Tests for the application state store lifecycle and persistence
// ABOUTME: Covers seeding, debounced write-back, round-trips, and reset

package store

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hollis/tend/internal/models"
	"github.com/hollis/tend/internal/storage"
)

// memKV is an in-memory key-value store that counts writes and can be told
// to fail.
type memKV struct {
	mu      sync.Mutex
	data    map[string][]byte
	sets    int
	failSet bool
	failGet bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("disk full")
	}
	m.sets++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, errors.New("read error")
	}
	return m.data[key], nil
}

func (m *memKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memKV) setCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

func newTestStore(t *testing.T, kv *memKV, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithDebounce(10 * time.Millisecond)}, opts...)
	s := New(storage.NewAdapter(kv), opts...)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func TestLoad_EmptyStorageSeedsDefaults(t *testing.T) {
	s := newTestStore(t, newMemKV())
	defer s.Close()

	if !s.Ready() {
		t.Fatal("store should be Ready after Load")
	}

	anchors := s.Anchors()
	if len(anchors) == 0 {
		t.Error("empty storage should seed default anchors")
	}
	allies := s.Allies()
	if len(allies) == 0 {
		t.Error("empty storage should seed default allies")
	}
	if len(s.Moments()) != 0 || len(s.SubstanceMoments()) != 0 {
		t.Error("journals should start empty")
	}
	if !s.ActiveContainer().Valid() {
		t.Errorf("active container should default from the clock, got %q", s.ActiveContainer())
	}
}

func TestLoad_Twice(t *testing.T) {
	s := newTestStore(t, newMemKV())
	defer s.Close()

	if err := s.Load(); err == nil {
		t.Error("second Load() should fail")
	}
}

func TestLoad_CorruptBlobFallsBackToSeeds(t *testing.T) {
	kv := newMemKV()
	kv.data[storage.StateKey] = []byte("{not json")

	s := newTestStore(t, kv)
	defer s.Close()

	if !s.Ready() {
		t.Fatal("store should recover from a corrupt blob")
	}
	if len(s.Anchors()) == 0 {
		t.Error("corrupt blob should fall back to seed anchors")
	}
}

func TestLoad_ReadFailureFallsBackToSeeds(t *testing.T) {
	kv := newMemKV()
	kv.failGet = true

	s := newTestStore(t, kv)
	defer s.Close()

	if !s.Ready() || len(s.Anchors()) == 0 {
		t.Error("read failure should fall back to seed content")
	}
}

func TestMutationsBeforeLoad(t *testing.T) {
	s := New(storage.NewAdapter(newMemKV()))

	if _, err := s.AddAnchor(models.Anchor{Title: "x"}); !errors.Is(err, ErrNotReady) {
		t.Errorf("AddAnchor before Load = %v, want ErrNotReady", err)
	}
	if _, err := s.ToggleCompletion("any"); !errors.Is(err, ErrNotReady) {
		t.Errorf("ToggleCompletion before Load = %v, want ErrNotReady", err)
	}
	if _, err := s.AddMoment(models.Moment{Text: "x"}); !errors.Is(err, ErrNotReady) {
		t.Errorf("AddMoment before Load = %v, want ErrNotReady", err)
	}
}

func TestToggleCompletion_AtMostOnePerDay(t *testing.T) {
	s := newTestStore(t, newMemKV())
	defer s.Close()

	anchor := s.Anchors()[0]

	done, err := s.ToggleCompletion(anchor.ID)
	if err != nil || !done {
		t.Fatalf("first toggle = (%v, %v), want (true, nil)", done, err)
	}

	// Toggling again the same day must not stack a second record.
	done, err = s.ToggleCompletion(anchor.ID)
	if err != nil || done {
		t.Fatalf("second toggle = (%v, %v), want (false, nil)", done, err)
	}
	if got := len(s.Completions()); got != 0 {
		t.Errorf("completions after toggle pair = %d, want 0", got)
	}

	done, _ = s.ToggleCompletion(anchor.ID)
	if !done {
		t.Error("third toggle should complete again")
	}
	count := 0
	for _, c := range s.Completions() {
		if c.AnchorID == anchor.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("completion records for anchor = %d, want 1", count)
	}
	if !s.IsCompleted(anchor.ID) {
		t.Error("IsCompleted should report true after odd toggle count")
	}
}

func TestToggleCompletion_SeparateDays(t *testing.T) {
	current := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	s := newTestStore(t, newMemKV(), WithClock(func() time.Time { return current }))
	defer s.Close()

	anchor := s.Anchors()[0]

	if _, err := s.ToggleCompletion(anchor.ID); err != nil {
		t.Fatal(err)
	}

	// Next day: yesterday's completion does not block a new one.
	current = current.Add(24 * time.Hour)
	done, err := s.ToggleCompletion(anchor.ID)
	if err != nil || !done {
		t.Fatalf("toggle on new day = (%v, %v), want (true, nil)", done, err)
	}
	if got := len(s.Completions()); got != 2 {
		t.Errorf("completions across two days = %d, want 2", got)
	}
}

func TestRemoveAnchor_CascadesCompletions(t *testing.T) {
	s := newTestStore(t, newMemKV())
	defer s.Close()

	anchor := s.Anchors()[0]
	other := s.Anchors()[1]
	if _, err := s.ToggleCompletion(anchor.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ToggleCompletion(other.ID); err != nil {
		t.Fatal(err)
	}

	m, err := s.AddMoment(models.Moment{AnchorID: anchor.ID, Text: "paused"})
	if err != nil {
		t.Fatal(err)
	}
	if m.AnchorTitle != anchor.Title {
		t.Errorf("moment should snapshot the anchor title, got %q", m.AnchorTitle)
	}

	if err := s.RemoveAnchor(anchor.ID); err != nil {
		t.Fatal(err)
	}

	for _, c := range s.Completions() {
		if c.AnchorID == anchor.ID {
			t.Error("completions for a removed anchor should be cascaded away")
		}
	}
	if got := len(s.CompletionsOn(s.Completions()[0].Date)); got != 1 {
		t.Errorf("other anchor's completion should survive, got %d", got)
	}

	// The journal entry survives with its title snapshot intact.
	moments := s.Moments()
	if len(moments) != 1 || moments[0].AnchorTitle != anchor.Title {
		t.Error("moments referencing a removed anchor must survive with the snapshot")
	}
}

func TestRemoveAnchor_NotFound(t *testing.T) {
	s := newTestStore(t, newMemKV())
	defer s.Close()

	if err := s.RemoveAnchor("nope"); err == nil {
		t.Error("removing an unknown anchor should fail")
	}
}

func TestRoundTrip(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(t, kv)

	anchor, err := s.AddAnchor(models.Anchor{
		Title:     "Stand in the doorway",
		Container: models.ContainerEvening,
		Category:  models.CategoryTime,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.ToggleCompletion(anchor.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddMoment(models.Moment{Text: "quiet evening", Tone: "Lighter"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddPattern("late dinners unravel evenings", "food"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddFoodEntry(models.FoodEntry{Name: "Oatmeal"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetActiveContainer(models.ContainerLate); err != nil {
		t.Fatal(err)
	}
	want := s.Snapshot()
	s.Close()

	// A fresh store over the same KV must see the identical state.
	s2 := newTestStore(t, kv)
	defer s2.Close()
	got := s2.Snapshot()

	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(got)
	if string(wantJSON) != string(gotJSON) {
		t.Errorf("state did not round-trip\n got: %s\nwant: %s", gotJSON, wantJSON)
	}
}

func TestDebounce_CoalescesBurst(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(t, kv, WithDebounce(50*time.Millisecond))
	defer s.Close()

	for i := 0; i < 5; i++ {
		if _, err := s.AddPattern("note", ""); err != nil {
			t.Fatal(err)
		}
	}
	if kv.setCount() != 0 {
		t.Errorf("writes before the quiet period = %d, want 0", kv.setCount())
	}

	deadline := time.Now().Add(2 * time.Second)
	for kv.setCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := kv.setCount(); got != 1 {
		t.Errorf("burst of 5 mutations produced %d writes, want 1", got)
	}

	// The single write carries the final state.
	saved, err := storage.NewAdapter(kv).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(saved.Patterns) != 5 {
		t.Errorf("saved patterns = %d, want 5", len(saved.Patterns))
	}
}

func TestClose_FlushesPendingWrite(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(t, kv, WithDebounce(time.Hour))

	if _, err := s.AddPattern("unsaved", ""); err != nil {
		t.Fatal(err)
	}
	s.Close()

	if kv.setCount() != 1 {
		t.Errorf("Close should force the pending write out, sets = %d", kv.setCount())
	}
	saved, err := storage.NewAdapter(kv).Load()
	if err != nil || saved == nil {
		t.Fatalf("Load after Close = (%v, %v)", saved, err)
	}
	if len(saved.Patterns) != 1 {
		t.Errorf("saved patterns = %d, want 1", len(saved.Patterns))
	}
}

func TestFlush_SaveFailureKeepsState(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(t, kv, WithDebounce(time.Hour))
	defer s.Close()

	kv.failSet = true
	if _, err := s.AddPattern("kept", ""); err != nil {
		t.Fatal(err)
	}
	s.Flush()

	// The write failed but the in-memory state is untouched.
	if len(s.Patterns()) != 1 {
		t.Error("in-memory state must survive a failed save")
	}
}

func TestFlush_InterleavedWritesKeepNewestState(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(t, kv, WithDebounce(time.Millisecond))

	// Hammer Flush from other goroutines while mutating, so timer flushes,
	// explicit flushes, and mutations interleave freely. Whatever order the
	// writers run in, the last persisted blob must carry the final state.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Flush()
		}()
		if _, err := s.AddPattern("note", ""); err != nil {
			t.Fatal(err)
		}
	}
	wg.Wait()
	want := s.Snapshot()
	s.Close()

	saved, err := storage.NewAdapter(kv).Load()
	if err != nil || saved == nil {
		t.Fatalf("Load after Close = (%v, %v)", saved, err)
	}
	if len(saved.Patterns) != 50 {
		t.Fatalf("saved patterns = %d, want 50 (an older snapshot won the race)", len(saved.Patterns))
	}
	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(*saved)
	if string(wantJSON) != string(gotJSON) {
		t.Errorf("persisted blob is not the final state\n got: %s\nwant: %s", gotJSON, wantJSON)
	}
}

func TestReset_PendingDebounceCannotResurrectBlob(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(t, kv, WithDebounce(time.Millisecond))
	defer s.Close()

	if _, err := s.AddPattern("doomed", ""); err != nil {
		t.Fatal(err)
	}
	// Reset races the just-scheduled debounce timer. Whichever side saves
	// first, the clear must come out on top.
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)

	data, err := kv.Get(storage.StateKey)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("pre-reset state was re-saved after the clear: %s", data)
	}
}

func TestReset_ReseedsAndClears(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(t, kv)
	defer s.Close()

	if _, err := s.AddPattern("gone after reset", ""); err != nil {
		t.Fatal(err)
	}
	s.Flush()
	if len(kv.data[storage.StateKey]) == 0 {
		t.Fatal("expected a persisted blob before reset")
	}

	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}

	if len(s.Patterns()) != 0 {
		t.Error("patterns should be empty after reset")
	}
	if len(s.Anchors()) == 0 || len(s.Allies()) == 0 {
		t.Error("reset should restore seed anchors and allies")
	}
	if len(kv.data[storage.StateKey]) != 0 {
		t.Error("reset should clear the persisted blob")
	}
}

func TestSetActiveContainer(t *testing.T) {
	s := newTestStore(t, newMemKV())
	defer s.Close()

	if err := s.SetActiveContainer(models.ContainerMorning); err != nil {
		t.Fatal(err)
	}
	if got := s.ActiveContainer(); got != models.ContainerMorning {
		t.Errorf("ActiveContainer() = %q, want morning", got)
	}
	if err := s.SetActiveContainer(models.Container("midnightish")); err == nil {
		t.Error("unknown container should be rejected")
	}
}

func TestSnapshot_IsIndependent(t *testing.T) {
	s := newTestStore(t, newMemKV())
	defer s.Close()

	snap := s.Snapshot()
	snap.Anchors[0].Title = "mutated copy"

	if s.Anchors()[0].Title == "mutated copy" {
		t.Error("Snapshot must be a deep copy")
	}
}
