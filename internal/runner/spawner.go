package runner

import (
	"math"

	"github.com/vovakirdan/florian-runner/internal/config"
	"github.com/vovakirdan/florian-runner/internal/core"
)

// Obstacle is a monitor standing on the ground. Its size is fixed at spawn.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.RectF {
	return core.RectF{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Spawner creates obstacles at an interval that shrinks with every spawn
// until it reaches the configured floor.
type Spawner struct {
	spawn     config.SpawnConfig
	obstacles config.ObstacleConfig

	lastSpawn float64 // elapsed ms of the previous spawn
	interval  float64 // current interval in ms
}

// NewSpawner creates a spawner with the initial interval, counting from t=0.
func NewSpawner(spawn config.SpawnConfig, obstacles config.ObstacleConfig) *Spawner {
	s := &Spawner{spawn: spawn, obstacles: obstacles}
	s.Reset(0)
	return s
}

// Reset restores the initial interval and restarts the countdown at elapsed.
func (s *Spawner) Reset(elapsed float64) {
	s.lastSpawn = elapsed
	s.interval = s.spawn.InitialIntervalMs
}

// Interval returns the current spawn interval in milliseconds.
func (s *Spawner) Interval() float64 {
	return s.interval
}

// LastSpawn returns the elapsed time of the most recent spawn.
func (s *Spawner) LastSpawn() float64 {
	return s.lastSpawn
}

// Due reports whether more than one interval has passed since the last spawn.
func (s *Spawner) Due(elapsed float64) bool {
	return elapsed-s.lastSpawn > s.interval
}

// Check spawns one obstacle at the right edge if one is due.
func (s *Spawner) Check(elapsed, surfaceW, groundY float64, rng Rand) (Obstacle, bool) {
	if !s.Due(elapsed) {
		return Obstacle{}, false
	}
	s.lastSpawn = elapsed

	h := sampleSize(rng, s.obstacles.MinHeight, s.obstacles.MaxHeight)
	w := sampleSize(rng, s.obstacles.MinWidth, s.obstacles.MaxWidth)
	o := Obstacle{
		X:      surfaceW + s.obstacles.SpawnMargin,
		Y:      groundY - h,
		Width:  w,
		Height: h,
	}

	s.interval = math.Max(s.spawn.MinIntervalMs, s.interval-s.spawn.DecrementMs)
	return o, true
}

// sampleSize draws a whole number from [min, max). Out-of-range draws from
// a misbehaving source are clamped so no degenerate shape can appear.
func sampleSize(rng Rand, min, max float64) float64 {
	span := math.Floor(max - min)
	if span < 1 {
		return min
	}
	n := math.Floor(rng.Float64() * span)
	return min + core.ClampF(n, 0, span-1)
}
