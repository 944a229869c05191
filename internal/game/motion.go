package game

import (
	"math"

	"github.com/vovakirdan/dodge-arena/internal/core"
)

// AdvanceEnemies moves every moving enemy by one tick.
// Enemies do not interact, so processing order does not matter.
func AdvanceEnemies(enemies []*Enemy, arena Arena) {
	for _, e := range enemies {
		if !e.Moving {
			continue
		}
		e.Advance(arena)
	}
}

// Advance integrates the enemy's velocity for one tick, reflecting off the
// safe zone and the arena walls. Reflection only flips velocity signs, so
// the speed is unchanged.
func (e *Enemy) Advance(arena Arena) {
	old := e.Pos
	next := old.Add(e.Vel)

	if arena.InSafeZone(next.X, next.Y, e.Size) {
		next = e.deflectFromZone(old, next, arena)
	}

	// Arena walls
	maxX := arena.Width - e.Size
	maxY := arena.Height - e.Size
	if next.X <= 0 || next.X >= maxX {
		e.Vel.X = -e.Vel.X
		next.X = core.ClampF(next.X, 0, maxX)
	}
	if next.Y <= 0 || next.Y >= maxY {
		e.Vel.Y = -e.Vel.Y
		next.Y = core.ClampF(next.Y, 0, maxY)
	}

	e.Pos = next
	e.refresh()
}

// deflectFromZone resolves a step that would end inside the zone.
// The crossed edge is found by comparing the old and new positions with the
// zone boundary; that velocity component flips and the position snaps onto
// the boundary. A step that is still inside afterwards (corner approach) is
// pushed out through the nearest edge that keeps it inside the arena, with
// velocity pointing away.
func (e *Enemy) deflectFromZone(old, next core.Vec, arena Arena) core.Vec {
	size := e.Size
	zone := arena.SafeZone

	switch {
	case next.X+size > zone.Left && old.X+size <= zone.Left:
		e.Vel.X = -e.Vel.X
		next.X = zone.Left - size
	case next.X < zone.Right && old.X >= zone.Right:
		e.Vel.X = -e.Vel.X
		next.X = zone.Right
	}

	switch {
	case next.Y+size > zone.Top && old.Y+size <= zone.Top:
		e.Vel.Y = -e.Vel.Y
		next.Y = zone.Top - size
	case next.Y < zone.Bottom && old.Y >= zone.Bottom:
		e.Vel.Y = -e.Vel.Y
		next.Y = zone.Bottom
	}

	if !core.RectAt(next.X, next.Y, size).Overlaps(zone) {
		return next
	}

	// Exits that would put the square past an arena wall are skipped; the
	// wall clamp would move it straight back into the zone.
	exits := []struct {
		dist  float64
		fits  bool
		apply func()
	}{
		{math.Abs(next.X - (zone.Left - size)), zone.Left-size >= 0, func() {
			next.X = zone.Left - size
			e.Vel.X = -math.Abs(e.Vel.X)
		}},
		{math.Abs(next.X - zone.Right), zone.Right+size <= arena.Width, func() {
			next.X = zone.Right
			e.Vel.X = math.Abs(e.Vel.X)
		}},
		{math.Abs(next.Y - (zone.Top - size)), zone.Top-size >= 0, func() {
			next.Y = zone.Top - size
			e.Vel.Y = -math.Abs(e.Vel.Y)
		}},
		{math.Abs(next.Y - zone.Bottom), zone.Bottom+size <= arena.Height, func() {
			next.Y = zone.Bottom
			e.Vel.Y = math.Abs(e.Vel.Y)
		}},
	}

	best := -1
	for i, x := range exits {
		if x.fits && (best < 0 || x.dist < exits[best].dist) {
			best = i
		}
	}
	if best >= 0 {
		exits[best].apply()
	}
	return next
}
