package game

import (
	"math/rand"

	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/core"
)

// PlacementPolicy controls the rejection sampler used to place entities.
//
// The sampler draws up to MaxAttempts uniform positions. If none satisfies
// every constraint, the last draw that stays clear of the safe zone is
// accepted anyway: placement always terminates, at the price of a possibly
// overlapping entity in very dense levels. The safe zone itself is never
// given up. Callers can detect this through Placement.Satisfied.
type PlacementPolicy struct {
	MaxAttempts int     // Draws before the last one is accepted
	EdgeMargin  float64 // Gap kept to every arena edge
	Gap         float64 // Minimum gap to the safe zone and every exclusion rectangle
}

// DefaultPlacementPolicy returns the stock policy: 200 draws, 10 units from
// the edges, 20 units between entities.
func DefaultPlacementPolicy() PlacementPolicy {
	return PlacementPolicy{MaxAttempts: 200, EdgeMargin: 10, Gap: 20}
}

// PolicyFromConfig extracts the placement policy from the configuration.
func PolicyFromConfig(cfg config.PlacementConfig) PlacementPolicy {
	return PlacementPolicy{
		MaxAttempts: cfg.MaxAttempts,
		EdgeMargin:  cfg.EdgeMargin,
		Gap:         cfg.Gap,
	}
}

// DistanceConstraint requires the placed entity's center to be at least
// MinDistance away from Anchor.
type DistanceConstraint struct {
	Anchor      core.Vec
	MinDistance float64
}

// Placement is the outcome of a single placement request.
type Placement struct {
	Pos       core.Vec // Top-left corner
	Attempts  int      // Number of draws used
	Satisfied bool     // False when the sampler gave up and kept the last draw
}

// Placer places square entities at random positions under geometric constraints.
type Placer struct {
	arena  Arena
	policy PlacementPolicy
	rng    *rand.Rand
}

// NewPlacer creates a placer for the arena. The RNG is shared with the caller
// so a session stays deterministic for a given seed.
func NewPlacer(arena Arena, policy PlacementPolicy, rng *rand.Rand) *Placer {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &Placer{arena: arena, policy: policy, rng: rng}
}

// Policy returns the active placement policy.
func (p *Placer) Policy() PlacementPolicy {
	return p.policy
}

// Place finds a position for a square of the given size that stays inside the
// arena edge margin, keeps the policy gap to the safe zone and to every
// exclusion rectangle, and satisfies the optional distance constraint.
func (p *Placer) Place(size float64, exclude []core.Rect, constraint *DistanceConstraint) Placement {
	margin := p.policy.EdgeMargin
	spanX := max(p.arena.Width-size-2*margin, 0)
	spanY := max(p.arena.Height-size-2*margin, 0)

	var pos, fallback core.Vec
	found := false
	for attempt := 1; attempt <= p.policy.MaxAttempts; attempt++ {
		pos = core.Vec{
			X: p.rng.Float64()*spanX + margin,
			Y: p.rng.Float64()*spanY + margin,
		}
		if p.valid(pos, size, exclude, constraint) {
			return Placement{Pos: pos, Attempts: attempt, Satisfied: true}
		}
		if !p.arena.InSafeZone(pos.X, pos.Y, size) {
			fallback, found = pos, true
		}
	}

	if !found {
		fallback = p.outsideZone(pos, size)
	}
	return Placement{Pos: fallback, Attempts: p.policy.MaxAttempts, Satisfied: false}
}

// outsideZone moves pos just past a safe zone edge that leaves room for the
// square inside the arena. Right and bottom are tried first.
func (p *Placer) outsideZone(pos core.Vec, size float64) core.Vec {
	zone := p.arena.SafeZone
	switch {
	case zone.Right+size <= p.arena.Width:
		pos.X = zone.Right
	case zone.Bottom+size <= p.arena.Height:
		pos.Y = zone.Bottom
	case zone.Left-size >= 0:
		pos.X = zone.Left - size
	case zone.Top-size >= 0:
		pos.Y = zone.Top - size
	}
	return pos
}

// valid checks one candidate against every constraint.
func (p *Placer) valid(pos core.Vec, size float64, exclude []core.Rect, constraint *DistanceConstraint) bool {
	if p.arena.InSafeZone(pos.X, pos.Y, size) {
		return false
	}

	r := core.RectAt(pos.X, pos.Y, size)
	if r.Overlaps(p.arena.SafeZone.Expand(p.policy.Gap)) {
		return false
	}
	for _, ex := range exclude {
		if r.Overlaps(ex.Expand(p.policy.Gap)) {
			return false
		}
	}

	if constraint != nil && core.Distance(r.Center(), constraint.Anchor) < constraint.MinDistance {
		return false
	}
	return true
}
