package main

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/florian-runner/internal/config"
	"github.com/vovakirdan/florian-runner/internal/core"
	"github.com/vovakirdan/florian-runner/internal/runner"
)

func setSimFlags(t *testing.T, autopilot, restart bool, d time.Duration) {
	t.Helper()
	saved := []any{flagFPS, flagSimDuration, flagSimWidth, flagSimHeight, flagSimAutopilot, flagSimRestart, flagSimLookahead}
	t.Cleanup(func() {
		flagFPS = saved[0].(int)
		flagSimDuration = saved[1].(time.Duration)
		flagSimWidth = saved[2].(int)
		flagSimHeight = saved[3].(int)
		flagSimAutopilot = saved[4].(bool)
		flagSimRestart = saved[5].(bool)
		flagSimLookahead = saved[6].(float64)
	})
	flagFPS = 60
	flagSimDuration = d
	flagSimWidth = 80
	flagSimHeight = 24
	flagSimAutopilot = autopilot
	flagSimRestart = restart
	flagSimLookahead = 24
}

func TestSimulateWithoutJumpingEndsRun(t *testing.T) {
	setSimFlags(t, false, false, 10*time.Second)

	runs, session, err := simulate(context.Background(), config.DefaultRunnerConfig(), 1, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one finished run, got %d", len(runs))
	}
	if session.State() != runner.GameOver {
		t.Errorf("expected game over, got %s", session.State())
	}
	if runs[0].Score != session.Score() {
		t.Errorf("recorded score %d, final score %d", runs[0].Score, session.Score())
	}
	if session.Mounted() {
		t.Error("session should be unmounted after simulate")
	}
}

func TestSimulateRestartsAfterGameOver(t *testing.T) {
	setSimFlags(t, false, true, 20*time.Second)

	runs, _, err := simulate(context.Background(), config.DefaultRunnerConfig(), 1, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(runs) < 2 {
		t.Fatalf("expected several runs with restart, got %d", len(runs))
	}
	for i, r := range runs {
		if r.ElapsedMs <= 0 {
			t.Errorf("run %d: expected positive run time, got %d", i, r.ElapsedMs)
		}
	}
}

func TestSimulateCancelled(t *testing.T) {
	setSimFlags(t, true, false, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, session, err := simulate(ctx, config.DefaultRunnerConfig(), 1, log.New(io.Discard))
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error: %v", err)
	}
	if session == nil {
		t.Fatal("expected a session")
	}
}

func TestJumpDistanceGrowsWithScore(t *testing.T) {
	setSimFlags(t, true, false, time.Second)
	cfg := config.DefaultRunnerConfig()

	session := runner.Mount(core.NewScreen(80, 24), false, runner.WithConfig(cfg), runner.WithStartTime(time.Unix(0, 0)))
	defer session.Unmount()

	if got := jumpDistance(session, cfg); got != 24 {
		t.Errorf("jumpDistance at score 0 = %v, want 24", got)
	}
}

func TestSimulateJoinsFrameProducer(t *testing.T) {
	setSimFlags(t, true, false, time.Hour)

	for i := range 5 {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, _, err := simulate(ctx, config.DefaultRunnerConfig(), int64(i+1), log.New(io.Discard)); err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("simulate: %v", err)
		}
		// The producer must be gone before the flags change again.
		flagSimDuration = time.Duration(i+1) * time.Hour
	}
}
