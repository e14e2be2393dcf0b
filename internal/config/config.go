// Package config provides YAML-based configuration loading for the runner.
package config

// RunnerConfig contains all tunables of the runner simulation. Distances
// are in logical surface units, times in milliseconds and velocities in
// units per tick.
type RunnerConfig struct {
	Surface   SurfaceConfig  `yaml:"surface"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Clouds    CloudConfig    `yaml:"clouds"`
	Score     ScoreConfig    `yaml:"score"`
}

// SurfaceConfig defines the logical drawing surface.
type SurfaceConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// PhysicsConfig defines the kinematics and the frame clock.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	BaseSpeed    float64 `yaml:"base_speed"`
	MaxFrameMs   float64 `yaml:"max_frame_ms"`
}

// PlayerConfig defines the player's fixed geometry.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle sizes and lifetime. Size ranges are
// half-open: [min, max).
type ObstacleConfig struct {
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	MinHeight   float64 `yaml:"min_height"`
	MaxHeight   float64 `yaml:"max_height"`
	SpawnMargin float64 `yaml:"spawn_margin"`
	DespawnX    float64 `yaml:"despawn_x"`
}

// SpawnConfig defines the obstacle cadence.
type SpawnConfig struct {
	InitialIntervalMs float64 `yaml:"initial_interval_ms"`
	MinIntervalMs     float64 `yaml:"min_interval_ms"`
	DecrementMs       float64 `yaml:"decrement_ms"`
}

// CloudConfig defines the decorative background clouds.
type CloudConfig struct {
	Drift      float64    `yaml:"drift"`
	WrapX      float64    `yaml:"wrap_x"`
	WrapJitter float64    `yaml:"wrap_jitter"`
	Initial    []CloudPos `yaml:"initial"`
}

// CloudPos is the starting position of one cloud.
type CloudPos struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ScoreConfig defines score accumulation and how score feeds back into speed.
type ScoreConfig struct {
	RatePerMs    float64 `yaml:"rate_per_ms"`
	SpeedDivisor float64 `yaml:"speed_divisor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Unknown or empty values
// yield "" which means "keep the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// BaseSpeedForPreset returns the starting scroll speed for a preset.
func BaseSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return 5
	default:
		return 4
	}
}
