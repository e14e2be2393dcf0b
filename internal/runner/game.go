package runner

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/florian-runner/internal/config"
	"github.com/vovakirdan/florian-runner/internal/core"
	"github.com/vovakirdan/florian-runner/internal/registry"
)

// GameID is the registry and score-storage identifier of the runner.
const GameID = "runner"

// GameTitle is the display name of the runner.
const GameTitle = "Florian Runner"

// Game adapts a Session to the registry.Game interface.
type Game struct {
	cfg     config.RunnerConfig
	logger  *log.Logger
	session *Session
}

// New creates a runner game with the given configuration.
func New(cfg config.RunnerConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Mount replaces any running session with a fresh one.
func (g *Game) Mount(surface *core.Screen, rt core.RuntimeConfig) {
	g.Unmount()
	g.session = Mount(surface, rt.Dark,
		WithConfig(g.cfg),
		WithSeed(rt.Seed),
		WithLogger(g.logger),
	)
}

// Step queues the frame's actions and runs one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}
	for _, a := range in.Actions {
		g.session.Queue(a)
	}
	res := g.session.Frame(in.Now)
	return core.StepResult{
		State:    g.State(),
		Collided: res.Report.Collided,
	}
}

// Unmount stops the current session, if any.
func (g *Game) Unmount() {
	if g.session != nil {
		g.session.Unmount()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == GameOver,
		Elapsed:  int64(math.Round(g.session.RunTime())),
	}
}

// Session returns the mounted session, or nil before the first Mount.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register(GameID, GameTitle, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadRunner(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&cfg, config.ParsePreset(opts.Difficulty))
		return New(cfg, opts.Logger), nil
	})
}
