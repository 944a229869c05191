package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodge.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/dodge.yaml.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  600,
			Height: 400,
		},
		SafeZone: SafeZoneConfig{
			X:      0,
			Y:      0,
			Width:  150,
			Height: 150,
		},
		Player: PlayerConfig{
			StartX: 50,
			StartY: 50,
			Size:   30,
			Speed:  5,
		},
		Enemy: EnemyConfig{
			Size:              40,
			MovingProbability: 0.3,
			Speed:             2,
		},
		Goal: GoalConfig{
			Size:             35,
			MinStartDistance: 350,
		},
		Placement: PlacementConfig{
			EdgeMargin:  10,
			Gap:         20,
			MaxAttempts: 200,
		},
		Transition: TransitionConfig{
			MessageDelay: 500 * time.Millisecond,
			AdvanceDelay: 1500 * time.Millisecond,
		},
		Storage: StorageConfig{
			HighScoreKey: "dodge.highscore",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
