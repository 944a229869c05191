package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/core"
)

func TestBuildEnemyCount(t *testing.T) {
	cfg := config.Default()
	b := NewBuilder(cfg, NewArena(cfg), rand.New(rand.NewSource(1)))

	tests := []struct {
		level    int
		expected int
	}{
		{level: -3, expected: 1},
		{level: 0, expected: 1},
		{level: 1, expected: 1},
		{level: 2, expected: 2},
		{level: 7, expected: 7},
	}
	for _, tc := range tests {
		lv := b.Build(tc.level)
		if len(lv.Enemies) != tc.expected {
			t.Errorf("Build(%d) produced %d enemies, expected %d", tc.level, len(lv.Enemies), tc.expected)
		}
	}
}

func TestBuildLayoutConstraints(t *testing.T) {
	cfg := config.Default()
	arena := NewArena(cfg)
	gap := cfg.Placement.Gap
	startCenter := core.Vec{X: cfg.Player.StartX + cfg.Player.Size/2, Y: cfg.Player.StartY + cfg.Player.Size/2}

	checked := 0
	for seed := int64(1); seed <= 40; seed++ {
		b := NewBuilder(cfg, arena, rand.New(rand.NewSource(seed)))
		for level := 1; level <= 6; level++ {
			lv := b.Build(level)
			if lv.Degraded > 0 {
				continue
			}
			checked++

			if lv.Player != (core.Vec{X: 50, Y: 50}) {
				t.Fatalf("player starts at %+v, expected (50, 50)", lv.Player)
			}
			playerRect := core.RectAt(lv.Player.X, lv.Player.Y, cfg.Player.Size)

			for i, e := range lv.Enemies {
				if e.Rect.Overlaps(arena.SafeZone) {
					t.Errorf("seed %d level %d: enemy %d overlaps the safe zone", seed, level, i)
				}
				if e.Rect.Overlaps(playerRect.Expand(gap)) {
					t.Errorf("seed %d level %d: enemy %d is too close to the player", seed, level, i)
				}
				for j, o := range lv.Enemies[i+1:] {
					if e.Rect.Overlaps(o.Rect.Expand(gap)) {
						t.Errorf("seed %d level %d: enemies %d and %d closer than %v", seed, level, i, i+1+j, gap)
					}
				}
			}

			goal := core.RectAt(lv.Goal.X, lv.Goal.Y, cfg.Goal.Size)
			if d := core.Distance(goal.Center(), startCenter); d < cfg.Goal.MinStartDistance {
				t.Errorf("seed %d level %d: goal is %v from the start, expected >= %v", seed, level, d, cfg.Goal.MinStartDistance)
			}
			if goal.Overlaps(playerRect) {
				t.Errorf("seed %d level %d: goal overlaps the player", seed, level)
			}
		}
	}

	if checked == 0 {
		t.Fatal("every generated level was degraded")
	}
}

func TestBuildDeterministic(t *testing.T) {
	cfg := config.Default()
	arena := NewArena(cfg)

	a := NewBuilder(cfg, arena, rand.New(rand.NewSource(42))).Build(5)
	b := NewBuilder(cfg, arena, rand.New(rand.NewSource(42))).Build(5)

	if a.Goal != b.Goal {
		t.Errorf("goal differs for the same seed: %+v vs %+v", a.Goal, b.Goal)
	}
	for i := range a.Enemies {
		if *a.Enemies[i] != *b.Enemies[i] {
			t.Errorf("enemy %d differs for the same seed", i)
		}
	}
}

func TestBuildEnemyMotion(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		moving      bool
	}{
		{name: "all static", probability: 0, moving: false},
		{name: "all moving", probability: 1, moving: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Enemy.MovingProbability = tc.probability
			b := NewBuilder(cfg, NewArena(cfg), rand.New(rand.NewSource(9)))

			for _, e := range b.Build(6).Enemies {
				if e.Moving != tc.moving {
					t.Fatalf("Moving = %v, expected %v", e.Moving, tc.moving)
				}
				speed := e.Vel.Len()
				if tc.moving && math.Abs(speed-cfg.Enemy.Speed) > 1e-9 {
					t.Errorf("moving enemy speed = %v, expected %v", speed, cfg.Enemy.Speed)
				}
				if !tc.moving && speed != 0 {
					t.Errorf("static enemy has velocity %+v", e.Vel)
				}
				if e.Rect != core.RectAt(e.Pos.X, e.Pos.Y, cfg.Enemy.Size) {
					t.Error("cached rect does not match position")
				}
			}
		})
	}
}
