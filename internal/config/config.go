// Package config provides YAML-based configuration loading and difficulty
// presets for the arena game.
package config

import "time"

// Config contains all tunables of the arena game.
type Config struct {
	Arena      ArenaConfig      `yaml:"arena"`
	SafeZone   SafeZoneConfig   `yaml:"safe_zone"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Goal       GoalConfig       `yaml:"goal"`
	Placement  PlacementConfig  `yaml:"placement"`
	Transition TransitionConfig `yaml:"transition"`
	Storage    StorageConfig    `yaml:"storage"`
}

// ArenaConfig defines the playfield size in logical units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SafeZoneConfig defines the spawn rectangle enemies may never enter.
type SafeZoneConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"` // Units per tick per held direction
}

// EnemyConfig defines enemy squares.
type EnemyConfig struct {
	Size              float64 `yaml:"size"`
	MovingProbability float64 `yaml:"moving_probability"` // Chance an enemy moves, 0.0 to 1.0
	Speed             float64 `yaml:"speed"`              // Velocity magnitude of moving enemies
}

// GoalConfig defines the goal square.
type GoalConfig struct {
	Size             float64 `yaml:"size"`
	MinStartDistance float64 `yaml:"min_start_distance"` // Center-to-center distance from player start
}

// PlacementConfig defines the rejection-sampling policy for random placement.
type PlacementConfig struct {
	EdgeMargin  float64 `yaml:"edge_margin"`  // Gap kept to every arena edge
	Gap         float64 `yaml:"gap"`          // Minimum gap between placed entities
	MaxAttempts int     `yaml:"max_attempts"` // Draws before accepting the last one
}

// TransitionConfig defines the pacing of the level-clear sequence.
type TransitionConfig struct {
	MessageDelay time.Duration `yaml:"message_delay"` // Clear → "level cleared" message
	AdvanceDelay time.Duration `yaml:"advance_delay"` // Message → next level
}

// StorageConfig defines persistence keys.
type StorageConfig struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
