package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Only an explicit customPath can produce an error; the fallbacks are best effort.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultRunnerYAML); err == nil {
		return cfg, nil
	}
	return DefaultRunnerConfig(), nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// to list the values it changes, and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that could produce degenerate geometry
// or a non-terminating spawn ramp.
func (c RunnerConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(positive("surface.width", c.Surface.Width))
	el.Add(positive("surface.height", c.Surface.Height))
	if c.Surface.GroundY <= 0 || c.Surface.GroundY > c.Surface.Height {
		el.Add(fmt.Errorf("surface.ground_y: must be within (0, %g], got %g", c.Surface.Height, c.Surface.GroundY))
	}

	el.Add(positive("physics.gravity", c.Physics.Gravity))
	if c.Physics.JumpVelocity >= 0 {
		el.Add(fmt.Errorf("physics.jump_velocity: must be negative (upwards), got %g", c.Physics.JumpVelocity))
	}
	el.Add(positive("physics.base_speed", c.Physics.BaseSpeed))
	el.Add(positive("physics.max_frame_ms", c.Physics.MaxFrameMs))

	el.Add(positive("player.width", c.Player.Width))
	el.Add(positive("player.height", c.Player.Height))
	if c.Player.Height > c.Surface.GroundY {
		el.Add(fmt.Errorf("player.height: %g does not fit above ground at %g", c.Player.Height, c.Surface.GroundY))
	}

	el.Add(sizeRange("obstacles.width", c.Obstacles.MinWidth, c.Obstacles.MaxWidth))
	el.Add(sizeRange("obstacles.height", c.Obstacles.MinHeight, c.Obstacles.MaxHeight))

	el.Add(positive("spawn.min_interval_ms", c.Spawn.MinIntervalMs))
	if c.Spawn.InitialIntervalMs < c.Spawn.MinIntervalMs {
		el.Add(fmt.Errorf("spawn.initial_interval_ms: %g is below min_interval_ms %g",
			c.Spawn.InitialIntervalMs, c.Spawn.MinIntervalMs))
	}
	if c.Spawn.DecrementMs < 0 {
		el.Add(fmt.Errorf("spawn.decrement_ms: must not be negative, got %g", c.Spawn.DecrementMs))
	}

	if c.Score.RatePerMs < 0 {
		el.Add(fmt.Errorf("score.rate_per_ms: must not be negative, got %g", c.Score.RatePerMs))
	}
	el.Add(positive("score.speed_divisor", c.Score.SpeedDivisor))
	return el.Err()
}

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s: must be positive, got %g", name, v)
	}
	return nil
}

// sizeRange checks a half-open [min, max) range that must contain at least
// one whole unit above a positive minimum.
func sizeRange(name string, min, max float64) error {
	if min <= 0 {
		return fmt.Errorf("%s: minimum must be positive, got %g", name, min)
	}
	if max-min < 1 {
		return fmt.Errorf("%s: range [%g, %g) is empty", name, min, max)
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Physics.BaseSpeed = BaseSpeedForPreset(preset)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
