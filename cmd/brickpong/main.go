// brickpong is a Pong and Breakout hybrid played in the terminal.
//
// Usage:
//
//	brickpong play               - Play against the computer
//	brickpong simulate           - Run a headless game with an autopilot
//	brickpong results            - Show recent rounds and stats
//	brickpong snapshots list     - List saved games
//	brickpong snapshots delete   - Delete a saved game
//	brickpong config             - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.brickpong/brickpong.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickpong",
	Short: "BrickPong - Pong meets Breakout in your terminal",
	Long: `BrickPong is a Pong and Breakout hybrid. You play the left paddle against
the computer while the ball smashes through bricks laid out around the center.

Available commands:
  play       - Play a game
  simulate   - Run a headless game with an autopilot
  results    - Show recent rounds and win/loss stats
  snapshots  - Manage saved games

Examples:
  brickpong play
  brickpong play --difficulty hard
  brickpong play --resume quick
  brickpong simulate --ticks 10000 --seed 42
  brickpong results --limit 20`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = loop.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickpong/brickpong.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
./configs/brickpong.yaml or ~/.brickpong/configs/brickpong.yaml and edit it
to override the defaults, or pass it with --config.

Example:
  brickpong config > ./configs/brickpong.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.OutOrStdout().Write(config.DefaultYAML()) //nolint:errcheck // Best-effort output
	},
}

// loadConfig loads the config file and applies the difficulty preset.
// It returns the config and the difficulty name recorded with each round;
// without --difficulty that is "default".
func loadConfig() (config.BrickPongConfig, string, error) {
	cfg, err := config.LoadBrickPong(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	name := "default"
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, "", err
		}
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return cfg, "", err
		}
		name = string(preset)
	}
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	return cfg, name, nil
}

// runtimeConfig builds the runtime settings shared by all commands.
func runtimeConfig(cfg config.BrickPongConfig, width, height float64) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.DefaultConfig()
	rt.Width, rt.Height = width, height
	rt.Seed = seed
	if cfg.Loop.TickRate > 0 {
		rt.TickRate = cfg.Loop.TickRate
	}
	return rt
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
