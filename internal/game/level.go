package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/core"
)

// Enemy is a square obstacle. Moving enemies bounce off the arena walls and
// the safe zone; static ones never change position.
type Enemy struct {
	Pos    core.Vec
	Vel    core.Vec
	Size   float64
	Moving bool      // Fixed at spawn
	Rect   core.Rect // Cached from Pos and Size
}

// refresh recomputes the cached rectangle after a position change.
func (e *Enemy) refresh() {
	e.Rect = core.RectAt(e.Pos.X, e.Pos.Y, e.Size)
}

// Level is a freshly generated layout.
type Level struct {
	Number   int
	Player   core.Vec
	Enemies  []*Enemy
	Goal     core.Vec
	Degraded int // Placements that fell back to an unchecked position
}

// Builder generates levels from the configuration.
type Builder struct {
	cfg    config.Config
	arena  Arena
	placer *Placer
	rng    *rand.Rand
}

// NewBuilder creates a level builder drawing from rng.
func NewBuilder(cfg config.Config, arena Arena, rng *rand.Rand) *Builder {
	return &Builder{
		cfg:    cfg,
		arena:  arena,
		placer: NewPlacer(arena, PolicyFromConfig(cfg.Placement), rng),
		rng:    rng,
	}
}

// Build generates the layout for the given level: the player at its start
// position, one enemy per level number, and a goal far from the start.
func (b *Builder) Build(level int) Level {
	if level < 1 {
		level = 1
	}

	playerSize := b.cfg.Player.Size
	lv := Level{
		Number:  level,
		Player:  core.Vec{X: b.cfg.Player.StartX, Y: b.cfg.Player.StartY},
		Enemies: make([]*Enemy, 0, level),
	}

	exclude := make([]core.Rect, 0, level+1)
	exclude = append(exclude, core.RectAt(lv.Player.X, lv.Player.Y, playerSize))

	for range level {
		e := b.spawnEnemy(exclude, &lv)
		lv.Enemies = append(lv.Enemies, e)
		exclude = append(exclude, e.Rect)
	}

	startCenter := core.Vec{X: lv.Player.X + playerSize/2, Y: lv.Player.Y + playerSize/2}
	goal := b.placer.Place(b.cfg.Goal.Size, exclude, &DistanceConstraint{
		Anchor:      startCenter,
		MinDistance: b.cfg.Goal.MinStartDistance,
	})
	if !goal.Satisfied {
		lv.Degraded++
	}
	lv.Goal = goal.Pos

	return lv
}

// spawnEnemy places one enemy and rolls its motion.
func (b *Builder) spawnEnemy(exclude []core.Rect, lv *Level) *Enemy {
	moving := b.rng.Float64() < b.cfg.Enemy.MovingProbability

	p := b.placer.Place(b.cfg.Enemy.Size, exclude, nil)
	if !p.Satisfied {
		lv.Degraded++
	}

	e := &Enemy{
		Pos:    p.Pos,
		Size:   b.cfg.Enemy.Size,
		Moving: moving,
	}
	if moving {
		angle := b.rng.Float64() * 2 * math.Pi
		e.Vel = core.Polar(b.cfg.Enemy.Speed, angle)
	}
	e.refresh()
	return e
}
