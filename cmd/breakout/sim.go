package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/loop"
)

var (
	flagSimWidth    int
	flagSimHeight   int
	flagSimTicks    uint64
	flagSimRealtime bool
	flagSimRender   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autopilot",
	Long: `Play one game without a terminal UI. The autopilot moves the paddle
toward the ball until every brick is cleared or the tick limit is reached.

The same seed, size and settings always produce the same result, which
makes sim useful for checking a configuration file.

Examples:
  breakout sim --seed 42
  breakout sim --width 120 --height 40 --difficulty hard
  breakout sim --realtime --fps 120 --render`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Screen width in characters")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Screen height in characters")
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 100000, "Maximum number of ticks (0 = no limit)")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Run at --fps instead of as fast as possible")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mode, err := breakout.ParseHitWidth(cfg.Collision.HitWidth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, "breakout-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runtime := core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	w, h := runtime.CanvasSize()

	state, err := breakout.NewState(breakout.Canvas{Width: w, Height: h}, cfg.Session, mode, 0,
		breakout.NewSimpleRNG(runtime.Seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pilot := breakout.Autopilot{}
	stepper := loop.StepFunc(func() bool {
		state = breakout.Step(state, pilot.Input(state))
		return state.Phase == breakout.PhaseRunning
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Debug("simulation started",
		"canvas", fmt.Sprintf("%gx%g", w, h),
		"rows", cfg.Session.Rows,
		"columns", cfg.Session.Columns,
		"ball_speed", cfg.Session.BallSpeed,
		"seed", runtime.Seed,
	)

	var ticks uint64
	if flagSimRealtime {
		runner := loop.Ticker{Interval: loop.Interval(runtime.TickRate)}
		ticks, err = runFor(ctx, runner, stepper)
	} else {
		ticks, err = loop.Fixed{Frames: flagSimTicks}.Run(ctx, stepper)
	}
	if err != nil {
		logger.Warn("simulation interrupted", "ticks", ticks, "error", err)
	}

	if flagSimRender {
		screen := core.NewScreen(runtime.ScreenW, runtime.ScreenH)
		breakout.Render(screen, breakout.NewSnapshot(state))
		fmt.Println(screen.String())
	}

	snap := breakout.NewSnapshot(state)
	fmt.Printf("Result:    %s\n", state.Phase)
	fmt.Printf("Score:     %d\n", state.Score)
	fmt.Printf("Bricks:    %d left of %d\n", snap.BricksRemaining(), cfg.Session.Rows*cfg.Session.Columns)
	fmt.Printf("Ticks:     %d\n", state.Tick)
	fmt.Printf("Hash:      %016x\n", snap.Hash())
}

// runFor runs a real-time loop, stopping after --ticks ticks.
func runFor(ctx context.Context, runner loop.Ticker, s loop.Stepper) (uint64, error) {
	if flagSimTicks == 0 {
		return runner.Run(ctx, s)
	}
	var n uint64
	return runner.Run(ctx, loop.StepFunc(func() bool {
		n++
		return s.Tick() && n < flagSimTicks
	}))
}
