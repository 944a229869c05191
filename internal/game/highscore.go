package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultHighScoreKey is the store key the high score lives under.
const DefaultHighScoreKey = "dodge.highscore"

// KeyValueStore is a string-keyed persistent store.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// HighScores tracks the best number of fully cleared levels.
// It is safe for concurrent use; sessions served over SSH share one instance.
type HighScores struct {
	mu     sync.Mutex
	store  KeyValueStore
	key    string
	logger *log.Logger
	mem    int // Used when no store is attached
}

// NewHighScores creates a high score tracker backed by store. A nil store
// keeps the score in memory for the lifetime of the process.
func NewHighScores(store KeyValueStore, key string, logger *log.Logger) *HighScores {
	if key == "" {
		key = DefaultHighScoreKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScores{store: store, key: key, logger: logger}
}

// Load returns the stored high score. Missing, unreadable, malformed and
// negative values all read as 0.
func (h *HighScores) Load() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

func (h *HighScores) load() int {
	n, err := h.read()
	if err != nil {
		h.logger.Warn("read high score", "key", h.key, "error", err)
		return 0
	}
	return n
}

// read returns the stored value. Only store failures are errors; missing,
// malformed and negative values read as 0.
func (h *HighScores) read() (int, error) {
	if h.store == nil {
		return h.mem, nil
	}

	raw, ok, err := h.store.Get(h.key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		h.logger.Warn("ignoring malformed high score", "key", h.key, "value", raw)
		return 0, nil
	}
	return n, nil
}

// Offer records candidate if it beats the stored value and reports whether it
// did. The score never decreases: if the stored value cannot be read nothing
// is written. On a write failure the improvement is still reported and the
// error returned.
func (h *HighScores) Offer(candidate int) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, err := h.read()
	if err != nil {
		return false, fmt.Errorf("game: read high score: %w", err)
	}
	if candidate <= current {
		return false, nil
	}

	if h.store == nil {
		h.mem = candidate
		return true, nil
	}
	if err := h.store.Set(h.key, strconv.Itoa(candidate)); err != nil {
		return true, fmt.Errorf("game: save high score: %w", err)
	}
	return true, nil
}
