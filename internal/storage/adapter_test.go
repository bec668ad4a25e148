// ABOUTME: Tests for the persistence adapter over a fake key-value store
// ABOUTME: Covers the absent, corrupt, and failing-backend paths

package storage

import (
	"errors"
	"testing"

	"github.com/hollis/tend/internal/models"
)

type fakeKV struct {
	data    map[string][]byte
	failSet bool
	failGet bool
	failDel bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Set(key string, value []byte) error {
	if f.failSet {
		return errors.New("write refused")
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Get(key string) ([]byte, error) {
	if f.failGet {
		return nil, errors.New("read refused")
	}
	return f.data[key], nil
}

func (f *fakeKV) Delete(key string) error {
	if f.failDel {
		return errors.New("delete refused")
	}
	delete(f.data, key)
	return nil
}

func TestLoad_NothingSaved(t *testing.T) {
	a := NewAdapter(newFakeKV())

	state, err := a.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state != nil {
		t.Errorf("absent blob should load as nil, got %+v", state)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	kv := newFakeKV()
	a := NewAdapter(kv)

	in := models.AppState{
		Anchors: []models.Anchor{{
			ID:        "a1",
			Title:     "Touch the counter",
			Container: models.ContainerMorning,
			Category:  models.CategoryTime,
		}},
		Moments: []models.Moment{{
			ID:   "m1",
			Date: "2026-08-28",
			Text: "quiet start",
		}},
		Completions: []models.Completion{{
			AnchorID: "a1", Date: "2026-08-28", Timestamp: 1756000000000,
		}},
		ActiveContainer: models.ContainerMorning,
	}

	if err := a.Save(in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(kv.data[StateKey]) == 0 {
		t.Fatal("Save should write under the fixed state key")
	}

	out, err := a.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out == nil {
		t.Fatal("Load() = nil after Save")
	}
	if len(out.Anchors) != 1 || out.Anchors[0].Title != "Touch the counter" {
		t.Errorf("anchors did not round-trip: %+v", out.Anchors)
	}
	if len(out.Completions) != 1 || out.Completions[0].AnchorID != "a1" {
		t.Errorf("completions did not round-trip: %+v", out.Completions)
	}
	if out.ActiveContainer != models.ContainerMorning {
		t.Errorf("ActiveContainer = %q", out.ActiveContainer)
	}
}

func TestLoad_CorruptBlob(t *testing.T) {
	kv := newFakeKV()
	kv.data[StateKey] = []byte("{truncated")

	if _, err := NewAdapter(kv).Load(); err == nil {
		t.Error("corrupt blob should return a parse error")
	}
}

func TestLoad_ReadFailure(t *testing.T) {
	kv := newFakeKV()
	kv.failGet = true

	if _, err := NewAdapter(kv).Load(); err == nil {
		t.Error("backend read failure should be returned")
	}
}

func TestSave_WriteFailure(t *testing.T) {
	kv := newFakeKV()
	kv.failSet = true

	if err := NewAdapter(kv).Save(models.AppState{}); err == nil {
		t.Error("backend write failure should be returned")
	}
}

func TestClear(t *testing.T) {
	kv := newFakeKV()
	a := NewAdapter(kv)

	if err := a.Save(models.AppState{}); err != nil {
		t.Fatal(err)
	}
	if err := a.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := kv.data[StateKey]; ok {
		t.Error("Clear should remove the blob")
	}

	kv.failDel = true
	if err := a.Clear(); err == nil {
		t.Error("backend delete failure should be returned")
	}
}
