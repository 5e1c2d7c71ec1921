// asteroids is a terminal Asteroids game.
//
// Usage:
//
//	asteroids                - Play one round
//	asteroids config         - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--fps <rate>        - Override the tick rate (default: from config, 50)
//	--seed <value>      - RNG seed for reproducible rounds
//	--sound             - Enable sound effects
//	--log-file <path>   - Write logs to a file
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/sound"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagSound      bool
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - dodge and shoot falling rocks in your terminal",
	Long: `Asteroids is a terminal arcade game. Steer your ship left and right,
fire lasers at the falling asteroids and earn a point for each one you
destroy. The round ends when an asteroid hits your ship.

Controls:
  Left/Right, A/D  - Steer
  Space            - Fire
  Enter            - Start / exit after game over
  Q/Esc/Ctrl+C     - Quit
  Ctrl+S           - Save a text screenshot
  ?                - Toggle help

Difficulty options:
  easy   - Slower, sparser asteroids at the start
  normal - Default ramp
  hard   - Faster, denser asteroids at the start
  fixed  - No ramp, asteroids never speed up

Examples:
  asteroids
  asteroids --difficulty hard --sound
  asteroids --seed 42 --log-file /tmp/asteroids.log
  asteroids config > ~/.asteroids/asteroids.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects (overrides config)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(configCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound.Enabled = flagSound
	}

	sheet, err := assets.Load()
	if err == nil {
		err = sheet.Require(asteroids.RequiredSprites(cfg))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size before the program starts
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Window.TickRate,
		Seed:     flagSeed,
	}
	ramp := config.NewDifficultyManager(cfg.Difficulty)
	logger.Info("starting",
		"difficulty", flagDifficulty,
		"ramp", ramp.IsEnabled(),
		"clamped", ramp.IsClamped(),
		"tick_rate", runtime.TickRate,
		"screen", fmt.Sprintf("%dx%d", width, height),
		"sound", cfg.Sound.Enabled,
	)

	player, err := sound.New(cfg.Sound)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}

	game := asteroids.New(cfg, sheet)
	final, err := tui.Run(game, tui.Options{
		Runtime: runtime,
		WorldW:  cfg.Window.Width,
		WorldH:  cfg.Window.Height,
		Hold:    cfg.Input.Hold,
		Sound:   player,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("game exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if final.GameOver {
		fmt.Printf("Your score was %d\n", final.Score)
	}
}

// loadConfig resolves the config file and applies the command-line overrides.
func loadConfig() (config.AsteroidsConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Window.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return config.AsteroidsConfig{}, err
	}
	return cfg, nil
}

// newLogger writes to path when set. The TUI owns stdout and stderr while the
// game runs, so without a file logs are discarded.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
