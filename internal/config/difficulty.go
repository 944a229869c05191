package config

import "fmt"

// ParsePreset converts a CLI flag value to a preset.
// An empty string selects no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values; easy and hard scale enemy motion.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.MovingProbability = cfg.Enemy.MovingProbability / 2
		cfg.Enemy.Speed = cfg.Enemy.Speed * 0.75
	case DifficultyHard:
		cfg.Enemy.MovingProbability = clampF(cfg.Enemy.MovingProbability*2, 0, 1)
		cfg.Enemy.Speed = cfg.Enemy.Speed * 1.5
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
