package tui

import (
	"time"

	"github.com/vovakirdan/dodge-arena/internal/core"
)

// Terminals deliver key presses but never key releases. A press therefore
// holds its direction for a short window; the terminal's auto-repeat keeps
// refreshing it while the key is down. The first window is longer to bridge
// the auto-repeat delay.
const (
	DefaultInitialHold = 300 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// Latches turns key presses into held directions.
// It implements game.InputSource.
type Latches struct {
	initial time.Duration
	repeat  time.Duration
	until   [4]time.Time // Indexed by direction, see slot
	now     func() time.Time
}

// NewLatches creates direction latches with the given hold windows.
// A nil clock uses time.Now.
func NewLatches(initial, repeat time.Duration, now func() time.Time) *Latches {
	if now == nil {
		now = time.Now
	}
	return &Latches{initial: initial, repeat: repeat, now: now}
}

// Press latches a direction. The opposite direction is released at once.
func (l *Latches) Press(a core.Action) {
	i, ok := slot(a)
	if !ok {
		return
	}

	now := l.now()
	hold := l.initial
	if now.Before(l.until[i]) {
		hold = l.repeat
	}
	if next := now.Add(hold); next.After(l.until[i]) {
		l.until[i] = next
	}
	l.until[i^1] = time.Time{}
}

// Release drops every latch.
func (l *Latches) Release() {
	l.until = [4]time.Time{}
}

// PollDirectionalInput reports the directions still held.
func (l *Latches) PollDirectionalInput() core.Directions {
	now := l.now()
	return core.Directions{
		Up:    now.Before(l.until[0]),
		Down:  now.Before(l.until[1]),
		Left:  now.Before(l.until[2]),
		Right: now.Before(l.until[3]),
	}
}

// slot maps a direction to its index. Opposites differ in the lowest bit.
func slot(a core.Action) (int, bool) {
	switch a {
	case core.ActionUp:
		return 0, true
	case core.ActionDown:
		return 1, true
	case core.ActionLeft:
		return 2, true
	case core.ActionRight:
		return 3, true
	}
	return 0, false
}
