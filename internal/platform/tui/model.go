package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/florian-runner/internal/core"
	"github.com/vovakirdan/florian-runner/internal/registry"
	"github.com/vovakirdan/florian-runner/internal/storage"
)

// helpHeight is the number of rows reserved below the game surface.
const helpHeight = 1

// DefaultScreenshotDir is where ctrl+s writes plain-text screenshots.
const DefaultScreenshotDir = "~/.runner/screenshots"

// GameOptions carries host settings for a GameModel.
type GameOptions struct {
	Player        string      // Name stored with saved runs
	Logger        *log.Logger // Optional
	ScreenshotDir string      // "" for DefaultScreenshotDir
	NoScreenshots bool        // Disable ctrl+s, for remote sessions
}

// GameModel runs one game inside Bubble Tea: it mounts the game on Init,
// turns every tick into one game frame and persists the score of each
// finished run.
type GameModel struct {
	id        string // distinguishes this model's ticks from stale ones
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	opts      GameOptions
	keyMapper *KeyMapper
	help      help.Model
	frame     core.InputFrame
	state     core.GameState

	fixedSeed  bool // seed chosen by the user, kept across remounts
	runID      string
	scoreSaved bool
	status     string // one-line feedback shown in place of the help

	standalone bool // back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir
	}

	km := NewKeyMapper()
	if opts.NoScreenshots {
		km.keys.Screenshot.SetEnabled(false)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		id:        uuid.New().String(),
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, surfaceHeight(cfg.ScreenH)),
		store:     store,
		logger:    opts.Logger,
		config:    cfg,
		opts:      opts,
		keyMapper: km,
		help:      h,
		fixedSeed: fixedSeed,
		runID:     uuid.New().String(),
	}
}

// freshSeed returns a clock-based seed that differs from prev.
func freshSeed(prev int64) int64 {
	seed := time.Now().UnixNano()
	if seed == prev {
		seed++
	}
	return seed
}

func surfaceHeight(screenH int) int {
	return max(0, screenH-helpHeight)
}

// Init mounts the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Mount(m.screen, m.config)
	return tickCmd(m.id, m.config.FrameInterval())
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Presses on the help line are not on the surface.
		surface := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
		if surface.Contains(msg.X, msg.Y) {
			m.frame.Set(m.keyMapper.MapMouse(msg))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, surfaceHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.id || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys are consumed here and never
// reach any other handler.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionQuit:
		m.game.Unmount()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.game.Unmount()
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case core.ActionTheme:
		m.config.Dark = !m.config.Dark
		if !m.fixedSeed {
			m.config.Seed = freshSeed(m.config.Seed)
		}
		m.game.Mount(m.screen, m.config)
		m.startRun()
		m.state = m.game.State()
		m.logger.Debug("theme toggled", "dark", m.config.Dark)

	case core.ActionPrimary, core.ActionRestart:
		m.frame.Set(action)
	}

	return m, nil
}

// handleTick runs one frame at the tick's timestamp.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.frame.Now = now
	result := m.game.Step(m.frame)
	m.frame.Clear()

	if m.state.GameOver && !result.State.GameOver {
		m.startRun()
	}
	m.state = result.State

	if m.state.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	return m, tickCmd(m.id, m.config.FrameInterval())
}

// startRun begins tracking a new run after a restart or remount.
func (m *GameModel) startRun() {
	m.runID = uuid.New().String()
	m.scoreSaved = false
	m.status = ""
}

// saveScore records the finished run once. Persistence is best effort: a
// failed save is logged and the game continues.
func (m *GameModel) saveScore() {
	m.scoreSaved = true
	if m.store == nil || m.state.Score <= 0 {
		return
	}

	run := storage.Run{
		RunID:     m.runID,
		GameID:    m.game.ID(),
		Player:    m.opts.Player,
		Score:     m.state.Score,
		ElapsedMs: m.state.Elapsed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save score", "run", m.runID, "error", err)
		return
	}
	m.logger.Info("run saved", "run", m.runID, "player", m.opts.Player, "score", run.Score)
}

// saveScreenshot writes the current surface to a text file.
func (m *GameModel) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = "screenshot saved to " + path
}

// View renders the game surface and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keyMapper.Keys())
	if m.status != "" {
		footer = m.status
	}
	footer = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(footer)

	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the game state observed after the latest frame.
func (m GameModel) State() core.GameState {
	return m.state
}

// Dark reports whether the game is rendered with the dark theme.
func (m GameModel) Dark() bool {
	return m.config.Dark
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, store, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
