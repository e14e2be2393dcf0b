// runner is Florian Runner: a side-scrolling endless runner for the terminal.
//
// Usage:
//
//	runner play      - Play a run directly
//	runner menu      - Start menu with play, high scores and theme
//	runner serve     - Start SSH server for remote play
//	runner scores    - Show high scores
//	runner sim       - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.runner/scores.db)
//	--dark                 - Start with the dark theme
//	--log-level <level>    - debug, info, warn or error (default: info)
//	--config <path>        - Custom runner config YAML
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/florian-runner/internal/core"
	"github.com/vovakirdan/florian-runner/internal/logging"
	"github.com/vovakirdan/florian-runner/internal/registry"
	"github.com/vovakirdan/florian-runner/internal/runner"
	"github.com/vovakirdan/florian-runner/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDark       bool
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Florian Runner - jump over monitors in your terminal",
	Long: `Florian Runner is a side-scrolling endless runner for the terminal.
Florian runs, monitors roll in from the right, and every jump is
a guess at how fast they are coming.

Available commands:
  play     - Play a run directly
  menu     - Menu with play, high scores and theme
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless simulation with an optional autopilot

Examples:
  runner play
  runner play --dark --difficulty hard
  runner menu
  runner serve --ssh :2222
  runner scores
  runner sim --duration 60s --seed 7`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	flags.BoolVar(&flagDark, "dark", false, "Start with the dark theme")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// runtimeConfig builds the host config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Dark = flagDark
	return cfg
}

// gameOptions returns the factory options shared by every command.
func gameOptions(logger *log.Logger) registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Logger:     logger,
	}
}

// fileLogger returns a logger for the interactive commands and a func that
// closes its file. The terminal belongs to the game, so lines go to the log
// file; if it cannot be opened, logging is discarded.
func fileLogger() (*log.Logger, func(), error) {
	f, err := logging.OpenFile(logging.DefaultFile)
	if err != nil {
		logger, lerr := logging.New(io.Discard, flagLogLevel)
		return logger, func() {}, lerr
	}
	logger, err := logging.New(f, flagLogLevel)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// stderrLogger returns a logger for the non-interactive commands.
func stderrLogger() (*log.Logger, error) {
	return logging.New(os.Stderr, flagLogLevel)
}

// openStore opens the score database. A failure is reported and the caller
// continues without storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// playerName is the name stored with local runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// gameTitle returns the registered title of the runner.
func gameTitle() string {
	if title, ok := registry.Title(runner.GameID); ok {
		return title
	}
	return runner.GameTitle
}
