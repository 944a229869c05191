package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/dodge-arena/internal/core"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock { return &fakeClock{t: time.Unix(1_700_000_000, 0)} }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLatchHoldsForInitialWindow(t *testing.T) {
	clock := newFakeClock()
	l := NewLatches(300*time.Millisecond, 100*time.Millisecond, clock.now)

	l.Press(core.ActionRight)
	if !l.PollDirectionalInput().Right {
		t.Fatal("direction should be held right after the press")
	}

	clock.advance(299 * time.Millisecond)
	if !l.PollDirectionalInput().Right {
		t.Error("direction should still be held inside the initial window")
	}

	clock.advance(time.Millisecond)
	if l.PollDirectionalInput().Any() {
		t.Error("direction should be released after the initial window")
	}
}

func TestLatchRepeatExtends(t *testing.T) {
	clock := newFakeClock()
	l := NewLatches(300*time.Millisecond, 100*time.Millisecond, clock.now)

	l.Press(core.ActionUp)
	clock.advance(250 * time.Millisecond)
	l.Press(core.ActionUp) // auto-repeat; window stays at the later of both

	clock.advance(40 * time.Millisecond)
	if !l.PollDirectionalInput().Up {
		t.Fatal("repeat should keep the latch")
	}

	// Repeats every 30ms keep the key down indefinitely.
	for range 20 {
		clock.advance(30 * time.Millisecond)
		l.Press(core.ActionUp)
		if !l.PollDirectionalInput().Up {
			t.Fatal("latch dropped during auto-repeat")
		}
	}

	clock.advance(100 * time.Millisecond)
	if l.PollDirectionalInput().Up {
		t.Error("latch should drop once repeats stop")
	}
}

func TestLatchOppositeReleases(t *testing.T) {
	clock := newFakeClock()
	l := NewLatches(300*time.Millisecond, 100*time.Millisecond, clock.now)

	l.Press(core.ActionLeft)
	l.Press(core.ActionUp)
	l.Press(core.ActionRight)

	got := l.PollDirectionalInput()
	want := core.Directions{Up: true, Right: true}
	if got != want {
		t.Errorf("directions = %+v, expected %+v", got, want)
	}

	l.Release()
	if l.PollDirectionalInput().Any() {
		t.Error("Release should drop every latch")
	}
}

func TestLatchIgnoresNonDirections(t *testing.T) {
	l := NewLatches(time.Second, time.Second, nil)
	l.Press(core.ActionPause)
	if l.PollDirectionalInput().Any() {
		t.Error("non-direction actions must not latch")
	}
}
