package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/platform/tui"
	"github.com/vovakirdan/breakout/internal/storage"
)

var (
	flagSkipForm bool
	flagLogFile  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout",
	Long: `Start a game in this terminal.

A settings form asks for the number of brick rows, brick columns and the
ball speed before the game starts.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  R          - Restart (after the game ends)
  C          - Change settings (after the game ends)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 3 brick rows, slow ball
  normal - Settings from the config file
  hard   - 7 brick rows, fast ball

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --skip-form --seed 42
  breakout play --config ./my-breakout.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSkipForm, "skip-form", false, "Start immediately with the configured settings")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.breakout/breakout.log", "Path to the log file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "breakout")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Player: storage.DefaultPlayer,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Config:   cfg,
		Logger:   logger,
		SkipForm: flagSkipForm,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores will not be saved", "db", flagDBPath, "error", err)
		// Continue without storage - game still works
		opts.Store = storage.NewMemory(0)
	} else {
		opts.Store = store.For(storage.DefaultPlayer)
		opts.Scores = store
	}

	// Run the game
	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

