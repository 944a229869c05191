// Package game implements the arena dodge game: level generation, enemy
// motion, collision handling and the session state machine.
// Rendering, input and persistence are reached only through the small
// interfaces in display.go and highscore.go.
package game

import (
	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/core"
)

// Arena is the bounded playfield together with its safe zone.
// Both are fixed for the lifetime of a session.
type Arena struct {
	Width    float64
	Height   float64
	SafeZone core.Rect
}

// NewArena creates the arena described by the configuration.
func NewArena(cfg config.Config) Arena {
	return Arena{
		Width:  cfg.Arena.Width,
		Height: cfg.Arena.Height,
		SafeZone: core.NewRect(
			cfg.SafeZone.X, cfg.SafeZone.Y,
			cfg.SafeZone.Width, cfg.SafeZone.Height,
		),
	}
}

// Bounds returns the arena rectangle.
func (a Arena) Bounds() core.Rect {
	return core.NewRect(0, 0, a.Width, a.Height)
}

// InSafeZone reports whether the square of the given size at (x, y)
// overlaps the safe zone. Touching the zone edge is allowed.
func (a Arena) InSafeZone(x, y, size float64) bool {
	return core.RectAt(x, y, size).Overlaps(a.SafeZone)
}

// ClampSquare keeps a square of the given size inside the arena.
func (a Arena) ClampSquare(p core.Vec, size float64) core.Vec {
	return core.Vec{
		X: core.ClampF(p.X, 0, a.Width-size),
		Y: core.ClampF(p.Y, 0, a.Height-size),
	}
}
