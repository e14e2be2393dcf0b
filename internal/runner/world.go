// Package runner implements the Florian Runner mini-game: a side-scrolling
// endless runner where the player jumps over monitors.
//
// The simulation is a World owned by exactly one Session. The Session feeds
// it clamped frame deltas from a Clock, applies queued input at frame
// boundaries and asks the renderer to redraw the surface after every step.
package runner

import (
	"math"

	"github.com/vovakirdan/florian-runner/internal/config"
)

// State is the game state machine's current state.
type State int

const (
	Playing State = iota
	GameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// StepReport describes what happened during one World.Step.
type StepReport struct {
	Spawned  bool // A new obstacle entered on this tick
	Collided bool // The player hit an obstacle on this tick
}

// World is the full simulation state of one run.
type World struct {
	cfg config.RunnerConfig
	rng Rand

	elapsed  float64 // ms of simulated time since the world was created
	runStart float64 // elapsed at the start of the current run
	runEnd   float64 // elapsed at the collision that ended the run
	state    State
	speed    float64 // base scroll speed; the effective speed adds score/divisor

	player    Player
	obstacles []Obstacle
	clouds    []Cloud
	spawner   *Spawner
	score     float64
}

// NewWorld creates a world in the Playing state.
func NewWorld(cfg config.RunnerConfig, rng Rand) *World {
	w := &World{
		cfg:       cfg,
		rng:       rng,
		state:     Playing,
		speed:     cfg.Physics.BaseSpeed,
		player:    NewPlayer(cfg.Player, cfg.Surface.GroundY),
		obstacles: make([]Obstacle, 0, 8),
		clouds:    make([]Cloud, 0, len(cfg.Clouds.Initial)),
		spawner:   NewSpawner(cfg.Spawn, cfg.Obstacles),
	}
	for _, c := range cfg.Clouds.Initial {
		w.clouds = append(w.clouds, Cloud{X: c.X, Y: c.Y})
	}
	return w
}

// Step advances the world by one tick of dt milliseconds.
//
// While Playing the order is fixed: clouds, spawn check, physics, obstacle
// scroll and prune, collision, score. Collision therefore always sees the
// player's post-physics position. While GameOver only the clouds move.
func (w *World) Step(dt float64) StepReport {
	var rep StepReport
	w.elapsed += dt

	w.driftClouds()
	if w.state != Playing {
		return rep
	}

	if o, ok := w.spawner.Check(w.elapsed, w.cfg.Surface.Width, w.cfg.Surface.GroundY, w.rng); ok {
		w.obstacles = append(w.obstacles, o)
		rep.Spawned = true
	}

	w.player.Step(w.cfg.Physics.Gravity, w.cfg.Surface.GroundY)

	w.scrollObstacles(w.EffectiveSpeed())

	if w.collides() {
		w.state = GameOver
		w.runEnd = w.elapsed
		rep.Collided = true
	}

	w.score += dt * w.cfg.Score.RatePerMs
	return rep
}

func (w *World) driftClouds() {
	c := w.cfg.Clouds
	for i := range w.clouds {
		w.clouds[i].drift(c.Drift, c.WrapX, w.cfg.Surface.Width, c.WrapJitter, w.rng)
	}
}

// scrollObstacles shifts every obstacle left and drops those that have
// fully left the surface.
func (w *World) scrollObstacles(speed float64) {
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		o.X -= speed
		if o.X+o.Width > w.cfg.Obstacles.DespawnX {
			kept = append(kept, o)
		}
	}
	w.obstacles = kept
}

// collides reports whether any obstacle overlaps the player. It stops at
// the first hit.
func (w *World) collides() bool {
	pr := w.player.Rect()
	for _, o := range w.obstacles {
		if pr.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// EffectiveSpeed returns the scroll speed for the current score. It grows
// linearly and without bound as score accumulates.
func (w *World) EffectiveSpeed() float64 {
	return w.speed + w.score/w.cfg.Score.SpeedDivisor
}

// Jump makes the player jump if the run is live and the player is grounded.
func (w *World) Jump() bool {
	if w.state != Playing {
		return false
	}
	return w.player.Jump(w.cfg.Physics.JumpVelocity)
}

// PrimaryAction is the single context-sensitive input: jump while playing,
// restart after game over.
func (w *World) PrimaryAction() {
	if w.state == GameOver {
		w.Restart()
		return
	}
	w.Jump()
}

// Restart begins a fresh run in place. Obstacles, score, speed, player and
// the spawn ramp all return to their initial values; clouds and the
// simulated clock keep going.
func (w *World) Restart() {
	w.state = Playing
	w.obstacles = w.obstacles[:0]
	w.score = 0
	w.speed = w.cfg.Physics.BaseSpeed
	w.player.Land(w.cfg.Surface.GroundY)
	w.spawner.Reset(w.elapsed)
	w.runStart = w.elapsed
}

// State returns the current state of the run.
func (w *World) State() State {
	return w.state
}

// Score returns the floored survival score.
func (w *World) Score() int {
	return int(math.Floor(w.score))
}

// Elapsed returns the simulated time in milliseconds.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// RunTime returns how long the current run has lasted in milliseconds. It
// stops growing once the run is over.
func (w *World) RunTime() float64 {
	if w.state == GameOver {
		return w.runEnd - w.runStart
	}
	return w.elapsed - w.runStart
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Obstacles returns a copy of the live obstacles, oldest first.
func (w *World) Obstacles() []Obstacle {
	return append([]Obstacle(nil), w.obstacles...)
}

// Clouds returns a copy of the clouds.
func (w *World) Clouds() []Cloud {
	return append([]Cloud(nil), w.clouds...)
}

// SpawnInterval returns the current spawn interval in milliseconds.
func (w *World) SpawnInterval() float64 {
	return w.spawner.Interval()
}

// Clearance returns the horizontal gap between the player's right edge and
// the nearest obstacle still ahead of it, or +Inf if there is none.
func (w *World) Clearance() float64 {
	best := math.Inf(1)
	right := w.player.X + w.player.Width
	for _, o := range w.obstacles {
		if o.X+o.Width <= w.player.X {
			continue
		}
		best = math.Min(best, math.Max(0, o.X-right))
	}
	return best
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.RunnerConfig {
	return w.cfg
}
