package game

import (
	"errors"
	"testing"
)

// fakeStore is an in-memory KeyValueStore with injectable failures.
type fakeStore struct {
	data   map[string]string
	getErr error
	setErr error
	writes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Get(key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeStore) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.writes++
	f.data[key] = value
	return nil
}

func TestHighScoreLoad(t *testing.T) {
	tests := []struct {
		name     string
		stored   *string
		getErr   error
		expected int
	}{
		{name: "absent", expected: 0},
		{name: "stored", stored: ptr("3"), expected: 3},
		{name: "whitespace", stored: ptr(" 7\n"), expected: 7},
		{name: "malformed", stored: ptr("three"), expected: 0},
		{name: "negative", stored: ptr("-4"), expected: 0},
		{name: "read error", getErr: errors.New("disk on fire"), expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			store.getErr = tc.getErr
			if tc.stored != nil {
				store.data[DefaultHighScoreKey] = *tc.stored
			}

			h := NewHighScores(store, "", nil)
			if got := h.Load(); got != tc.expected {
				t.Errorf("Load() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestHighScoreOfferMonotonic(t *testing.T) {
	store := newFakeStore()
	h := NewHighScores(store, "scores.best", nil)

	steps := []struct {
		candidate int
		improved  bool
		stored    int
	}{
		{candidate: 0, improved: false, stored: 0},
		{candidate: 2, improved: true, stored: 2},
		{candidate: 1, improved: false, stored: 2},
		{candidate: 2, improved: false, stored: 2},
		{candidate: 5, improved: true, stored: 5},
	}

	for i, s := range steps {
		improved, err := h.Offer(s.candidate)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if improved != s.improved {
			t.Errorf("step %d: Offer(%d) = %v, expected %v", i, s.candidate, improved, s.improved)
		}
		if got := h.Load(); got != s.stored {
			t.Errorf("step %d: stored %d, expected %d", i, got, s.stored)
		}
	}

	if store.writes != 2 {
		t.Errorf("store written %d times, expected only on improvement (2)", store.writes)
	}
	if store.data["scores.best"] != "5" {
		t.Errorf("stored value = %q, expected decimal \"5\"", store.data["scores.best"])
	}
}

func TestHighScoreOfferWriteFailure(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("read-only")
	h := NewHighScores(store, "", nil)

	improved, err := h.Offer(3)
	if !improved {
		t.Error("improvement should still be reported")
	}
	if err == nil {
		t.Error("expected the write error to be returned")
	}
}

func TestHighScoreOfferReadFailureKeepsRecord(t *testing.T) {
	store := newFakeStore()
	store.data[DefaultHighScoreKey] = "5"
	h := NewHighScores(store, "", nil)

	store.getErr = errors.New("database is locked")
	improved, err := h.Offer(1)
	if improved {
		t.Error("an unreadable record must not be reported as beaten")
	}
	if err == nil {
		t.Error("expected the read error to be returned")
	}
	if store.writes != 0 || store.data[DefaultHighScoreKey] != "5" {
		t.Errorf("stored value = %q after %d writes, expected \"5\" untouched", store.data[DefaultHighScoreKey], store.writes)
	}

	store.getErr = nil
	if improved, _ := h.Offer(6); !improved {
		t.Error("a real improvement should still be recorded once reads recover")
	}
}

func TestHighScoreWithoutStore(t *testing.T) {
	h := NewHighScores(nil, "", nil)

	if improved, _ := h.Offer(4); !improved {
		t.Error("first positive offer should improve")
	}
	if h.Load() != 4 {
		t.Errorf("Load() = %d, expected 4", h.Load())
	}
	if improved, _ := h.Offer(2); improved {
		t.Error("lower offer should not improve")
	}
}

func ptr(s string) *string { return &s }
