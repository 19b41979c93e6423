// breakout is a terminal brick-breaker.
//
// Usage:
//
//	breakout play            - Play in this terminal
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show or reset high scores
//	breakout sim             - Run a headless autopilot game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.breakout/scores.db)
//	--config <path>       - Load settings from a YAML or TOML file
//	--difficulty <preset> - easy, normal or hard
//	--hit-width <mode>    - Brick hit box width: slot or brick
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagHitWidth   string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Clear the bricks with a bouncing ball",
	Long: `Breakout is a brick-breaker for the terminal. Keep the ball in play
with the paddle and clear every brick to win.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View or reset high scores
  sim      - Run a headless game driven by the autopilot

Settings are read from --config, then ~/.breakout/breakout.{yaml,toml},
then ./configs/breakout.yaml. A .env file in the working directory may set
BREAKOUT_DB, BREAKOUT_CONFIG and BREAKOUT_LOG_LEVEL.

Examples:
  breakout play
  breakout play --difficulty hard
  breakout serve --ssh :2222
  breakout sim --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadEnv(cmd)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML settings file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagHitWidth, "hit-width", "", "Brick hit box width: slot or brick")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// envFlags maps environment variables onto flags the user did not set.
var envFlags = map[string]string{
	"BREAKOUT_DB":        "db",
	"BREAKOUT_CONFIG":    "config",
	"BREAKOUT_LOG_LEVEL": "log-level",
}

// loadEnv reads .env (if present) and fills unset flags from the
// environment. Flags given on the command line always win.
func loadEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot read .env: %w", err)
	}
	for env, name := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		if err := flag.Value.Set(value); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}

// loadGameConfig loads settings and applies the difficulty and hit width
// overrides from the command line.
func loadGameConfig() (config.BreakoutConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagHitWidth != "" {
		if _, err := breakout.ParseHitWidth(flagHitWidth); err != nil {
			return cfg, err
		}
		cfg.Collision.HitWidth = flagHitWidth
	}

	return cfg, cfg.Validate()
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w *os.File, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
