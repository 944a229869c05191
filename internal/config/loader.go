package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Load loads the arena configuration.
// Search order: customPath -> ~/.dodge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dodge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the level builder cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %vx%v", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Player.Size <= 0 || c.Enemy.Size <= 0 || c.Goal.Size <= 0:
		return fmt.Errorf("%w: entity sizes must be positive", ErrInvalid)
	case c.SafeZone.Width <= 0 || c.SafeZone.Height <= 0:
		return fmt.Errorf("%w: safe zone must have positive size", ErrInvalid)
	case c.SafeZone.X < 0 || c.SafeZone.Y < 0 ||
		c.SafeZone.X+c.SafeZone.Width > c.Arena.Width ||
		c.SafeZone.Y+c.SafeZone.Height > c.Arena.Height:
		return fmt.Errorf("%w: safe zone must lie inside the arena", ErrInvalid)
	case c.Player.StartX < 0 || c.Player.StartY < 0 ||
		c.Player.StartX+c.Player.Size > c.Arena.Width ||
		c.Player.StartY+c.Player.Size > c.Arena.Height:
		return fmt.Errorf("%w: player start must lie inside the arena", ErrInvalid)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive", ErrInvalid)
	case c.Enemy.MovingProbability < 0 || c.Enemy.MovingProbability > 1:
		return fmt.Errorf("%w: moving_probability must be within [0, 1], got %v", ErrInvalid, c.Enemy.MovingProbability)
	case c.Enemy.Speed < 0:
		return fmt.Errorf("%w: enemy speed must not be negative", ErrInvalid)
	case c.Placement.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts must be at least 1", ErrInvalid)
	case c.Placement.EdgeMargin < 0 || c.Placement.Gap < 0:
		return fmt.Errorf("%w: placement margins must not be negative", ErrInvalid)
	case 2*c.Placement.EdgeMargin+c.Enemy.Size > c.Arena.Width ||
		2*c.Placement.EdgeMargin+c.Enemy.Size > c.Arena.Height:
		return fmt.Errorf("%w: arena too small for enemies with edge margin %v", ErrInvalid, c.Placement.EdgeMargin)
	case c.Transition.MessageDelay < 0 || c.Transition.AdvanceDelay < 0:
		return fmt.Errorf("%w: transition delays must not be negative", ErrInvalid)
	case c.Storage.HighScoreKey == "":
		return fmt.Errorf("%w: storage.high_score_key must not be empty", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs", filename)
}
