package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/florian-runner/internal/config"
	"github.com/vovakirdan/florian-runner/internal/core"
	"github.com/vovakirdan/florian-runner/internal/runner"
	"github.com/vovakirdan/florian-runner/internal/storage"
)

var (
	flagSimDuration  time.Duration
	flagSimWidth     int
	flagSimHeight    int
	flagSimAutopilot bool
	flagSimLookahead float64
	flagSimRestart   bool
	flagSimPrint     bool
	flagSimSave      bool
	flagSimRealtime  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI, driven by synthetic frame times.

The simulation is deterministic for a fixed --seed and --fps. With the
autopilot enabled, Florian jumps whenever the next monitor is closer than
--lookahead units (plus a margin that grows with speed).

Examples:
  runner sim
  runner sim --duration 5m --seed 7
  runner sim --autopilot=false --print
  runner sim --restart --save
  runner sim --realtime --duration 10s`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	flags := simCmd.Flags()
	flags.DurationVar(&flagSimDuration, "duration", time.Minute, "Simulated time to run")
	flags.IntVar(&flagSimWidth, "width", 80, "Surface width in cells")
	flags.IntVar(&flagSimHeight, "height", 24, "Surface height in cells")
	flags.BoolVar(&flagSimAutopilot, "autopilot", true, "Jump automatically when an obstacle is close")
	flags.Float64Var(&flagSimLookahead, "lookahead", 24, "Autopilot jump distance in world units")
	flags.BoolVar(&flagSimRestart, "restart", false, "Restart after every game over")
	flags.BoolVar(&flagSimPrint, "print", false, "Print the final frame")
	flags.BoolVar(&flagSimSave, "save", false, "Record finished runs in the scores database")
	flags.BoolVar(&flagSimRealtime, "realtime", false, "Pace frames with the wall clock instead of synthetic times")
}

// simRun is one finished run of a simulation.
type simRun struct {
	Score     int
	ElapsedMs int64
}

func runSim(_ *cobra.Command, _ []string) {
	logger, err := stderrLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	if flagFPS <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --fps must be positive")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runs, session, err := simulate(ctx, cfg, seed, logger)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSimPrint {
		fmt.Println(session.Surface().String())
	}

	fmt.Printf("Seed: %d\n", seed)
	fmt.Printf("Simulated: %s\n", flagSimDuration)
	fmt.Printf("Finished runs: %d\n", len(runs))
	best := 0
	for _, r := range runs {
		best = max(best, r.Score)
	}
	if len(runs) > 0 {
		fmt.Printf("Best: %d\n", best)
	}
	fmt.Printf("Final: score %d, %s, run time %s\n",
		session.Score(), session.State(),
		(time.Duration(session.RunTime()) * time.Millisecond).Round(10*time.Millisecond))

	if flagSimSave {
		saveSimRuns(runs, logger)
	}
}

// simulate mounts a headless session and feeds it frames until the duration
// has elapsed: synthetic timestamps by default, a wall-clock ticker with
// --realtime.
func simulate(ctx context.Context, cfg config.RunnerConfig, seed int64, logger *log.Logger) ([]simRun, *runner.Session, error) {
	start := time.Unix(0, 0)
	if flagSimRealtime {
		start = time.Now()
	}
	step := time.Second / time.Duration(flagFPS)

	var (
		session *runner.Session
		runs    []simRun
		prev    = runner.Playing
	)

	onFrame := func(res runner.FrameResult) {
		if res.State == runner.GameOver && prev == runner.Playing {
			runs = append(runs, simRun{
				Score:     res.Score,
				ElapsedMs: int64(math.Round(session.RunTime())),
			})
			logger.Debug("run finished", "score", res.Score, "run", len(runs))
		}
		prev = res.State

		switch {
		case res.State == runner.GameOver && flagSimRestart:
			session.Queue(core.ActionPrimary)
		case res.State == runner.Playing && flagSimAutopilot:
			if res.Clearance < jumpDistance(session, cfg) {
				session.Queue(core.ActionPrimary)
			}
		}
	}

	session = runner.Mount(core.NewScreen(flagSimWidth, flagSimHeight), flagDark,
		runner.WithConfig(cfg),
		runner.WithSeed(seed),
		runner.WithLogger(logger),
		runner.WithStartTime(start),
		runner.WithOnFrame(onFrame),
	)
	defer session.Unmount()

	if flagSimRealtime {
		ctx, cancel := context.WithTimeout(ctx, flagSimDuration)
		defer cancel()
		err := session.RunTicker(ctx, step)
		return runs, session, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	duration := flagSimDuration
	frames := make(chan time.Time)
	produced := make(chan struct{})
	go func() {
		defer close(produced)
		defer close(frames)
		for t := step; t <= duration; t += step {
			select {
			case frames <- start.Add(t):
			case <-ctx.Done():
				return
			}
		}
	}()

	err := session.Run(ctx, frames)
	cancel()
	<-produced
	return runs, session, err
}

// jumpDistance is the clearance at which the autopilot jumps. Faster runs
// need an earlier takeoff.
func jumpDistance(session *runner.Session, cfg config.RunnerConfig) float64 {
	extra := float64(session.Score()) / cfg.Score.SpeedDivisor
	return flagSimLookahead * (1 + extra/cfg.Physics.BaseSpeed)
}

func saveSimRuns(runs []simRun, logger *log.Logger) {
	if len(runs) == 0 {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return
	}
	defer store.Close()

	saved := 0
	for _, r := range runs {
		if r.Score <= 0 {
			continue
		}
		_, err := store.SaveRun(storage.Run{
			RunID:     uuid.New().String(),
			GameID:    runner.GameID,
			Player:    "sim",
			Score:     r.Score,
			ElapsedMs: r.ElapsedMs,
		})
		if err != nil {
			logger.Warn("could not save run", "error", err)
			continue
		}
		saved++
	}
	fmt.Printf("Saved %d runs.\n", saved)
}
