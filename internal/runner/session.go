package runner

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/florian-runner/internal/config"
	"github.com/vovakirdan/florian-runner/internal/core"
)

// inboxSize bounds the number of inputs buffered between two frames.
const inboxSize = 64

// FrameResult is what the host sees after each frame.
type FrameResult struct {
	Score     int
	State     State
	Report    StepReport
	Clearance float64 // distance to the next obstacle ahead, +Inf if none
}

// Option configures a Session at mount time.
type Option func(*Session)

// WithConfig sets the simulation tunables.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(s *Session) { s.cfg = cfg }
}

// WithRand sets the random source used by the world.
func WithRand(rng Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithLogger sets the logger for lifecycle and state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithOnScore registers a callback that receives the score after every frame.
func WithOnScore(fn func(int)) Option {
	return func(s *Session) { s.onScore = fn }
}

// WithOnFrame registers a callback that receives every frame result. It runs
// on the frame loop, after the surface has been redrawn.
func WithOnFrame(fn func(FrameResult)) Option {
	return func(s *Session) { s.onFrame = fn }
}

// WithStartTime sets the timestamp the first frame delta is measured from.
func WithStartTime(t time.Time) Option {
	return func(s *Session) { s.start = t }
}

// Session is one mounted game: it exclusively owns the World and the
// surface it draws on. Frames must come from a single goroutine; Queue may
// be called from anywhere.
type Session struct {
	id      string
	cfg     config.RunnerConfig
	rng     Rand
	seed    int64
	logger  *log.Logger
	onScore func(int)
	onFrame func(FrameResult)
	start   time.Time

	world   *World
	clock   *Clock
	surface *core.Screen
	theme   Theme

	inbox   chan core.Action
	mounted atomic.Bool
	last    FrameResult
}

// Mount creates a session drawing on surface with the light or dark theme
// and renders the first frame. Re-theming means unmounting and mounting a
// new session.
func Mount(surface *core.Screen, dark bool, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New().String(),
		cfg:     config.DefaultRunnerConfig(),
		seed:    time.Now().UnixNano(),
		logger:  log.New(io.Discard),
		start:   time.Now(),
		surface: surface,
		theme:   ThemeFor(dark),
		inbox:   make(chan core.Action, inboxSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(s.seed)
	}

	s.world = NewWorld(s.cfg, s.rng)
	s.clock = NewClock(0, s.cfg.Physics.MaxFrameMs)
	s.last = s.result(StepReport{})
	s.mounted.Store(true)

	Render(s.world, s.surface, s.theme)
	s.logger.Debug("mounted", "session", s.id, "dark", dark)
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Dark reports whether the session renders with the dark theme.
func (s *Session) Dark() bool {
	return s.theme.Dark
}

// Mounted reports whether the session still accepts frames.
func (s *Session) Mounted() bool {
	return s.mounted.Load()
}

// Queue buffers an input action for the next frame. It never blocks; when
// the inbox is full the action is dropped.
func (s *Session) Queue(a core.Action) bool {
	if !s.Mounted() {
		return false
	}
	select {
	case s.inbox <- a:
		return true
	default:
		return false
	}
}

// Frame runs one tick at host time now: queued inputs are applied, the
// world is stepped by the clamped delta, the surface is redrawn and the
// score is reported. After Unmount it returns the last result unchanged.
func (s *Session) Frame(now time.Time) FrameResult {
	if !s.Mounted() {
		return s.last
	}

	s.drainInbox()

	dt := s.clock.Tick(s.millis(now))
	rep := s.world.Step(dt)
	if rep.Collided {
		s.logger.Debug("game over", "session", s.id, "score", s.world.Score(), "elapsed", s.world.Elapsed())
	}

	Render(s.world, s.surface, s.theme)

	s.last = s.result(rep)
	if s.onScore != nil {
		s.onScore(s.last.Score)
	}
	if s.onFrame != nil {
		s.onFrame(s.last)
	}
	return s.last
}

func (s *Session) drainInbox() {
	for {
		select {
		case a := <-s.inbox:
			before := s.world.State()
			if Dispatch(s.world, a) && before == GameOver && s.world.State() == Playing {
				s.logger.Debug("restart", "session", s.id, "action", a)
			}
		default:
			return
		}
	}
}

// Run drives frames from the given channel until the context is cancelled,
// the channel is closed or the session is unmounted. It is the scheduler
// for hosts without their own frame loop.
func (s *Session) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-frames:
			if !ok || !s.Mounted() {
				return nil
			}
			s.Frame(now)
		}
	}
}

// RunTicker drives the session from a wall-clock ticker at the given rate.
// The ticker is stopped when Run returns.
func (s *Session) RunTicker(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	return s.Run(ctx, ticker.C)
}

// Unmount tears the session down. Further frames and inputs are ignored.
// It is safe to call more than once.
func (s *Session) Unmount() {
	if s.mounted.Swap(false) {
		s.logger.Debug("unmounted", "session", s.id, "score", s.world.Score())
	}
}

// Score returns the current floored score.
func (s *Session) Score() int {
	return s.last.Score
}

// State returns the state observed after the latest frame.
func (s *Session) State() State {
	return s.last.State
}

// RunTime returns the duration of the current run in milliseconds.
func (s *Session) RunTime() float64 {
	return s.world.RunTime()
}

// Surface returns the surface the session draws on.
func (s *Session) Surface() *core.Screen {
	return s.surface
}

func (s *Session) result(rep StepReport) FrameResult {
	return FrameResult{
		Score:     s.world.Score(),
		State:     s.world.State(),
		Report:    rep,
		Clearance: s.world.Clearance(),
	}
}

// millis converts a host timestamp into milliseconds since mount.
func (s *Session) millis(now time.Time) float64 {
	return float64(now.Sub(s.start)) / float64(time.Millisecond)
}
