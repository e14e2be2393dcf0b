package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/florian-runner/internal/platform/tui"
	"github.com/vovakirdan/florian-runner/internal/registry"
	"github.com/vovakirdan/florian-runner/internal/runner"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start playing immediately.

Controls:
  Space/Up/W/click - Jump (restart after game over)
  R                - Restart now
  T                - Toggle light/dark theme
  Ctrl+S           - Save a text screenshot
  Esc/B, Q/Ctrl+C  - Quit

Difficulty options:
  easy   - Slower base speed
  normal - Default speed
  hard   - Faster base speed

Examples:
  runner play
  runner play --dark
  runner play --difficulty hard
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(runner.GameID, gameOptions(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := tui.Run(game, store, runtimeConfig(), tui.GameOptions{
		Player: playerName(),
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
