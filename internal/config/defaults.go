package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration. It matches
// the embedded defaults/runner.yaml and is the fallback if that fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Surface: SurfaceConfig{
			Width:   640,
			Height:  200,
			GroundY: 160,
		},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			JumpVelocity: -9.5,
			BaseSpeed:    4,
			MaxFrameMs:   34,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  26,
			Height: 32,
		},
		Obstacles: ObstacleConfig{
			MinWidth:    26,
			MaxWidth:    36,
			MinHeight:   20,
			MaxHeight:   32,
			SpawnMargin: 20,
			DespawnX:    -10,
		},
		Spawn: SpawnConfig{
			InitialIntervalMs: 1200,
			MinIntervalMs:     800,
			DecrementMs:       5,
		},
		Clouds: CloudConfig{
			Drift:      0.3,
			WrapX:      -30,
			WrapJitter: 120,
			Initial: []CloudPos{
				{X: 100, Y: 30},
				{X: 320, Y: 45},
				{X: 520, Y: 25},
			},
		},
		Score: ScoreConfig{
			RatePerMs:    0.03,
			SpeedDivisor: 300,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
