package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-arcade/internal/config"
	"github.com/vovakirdan/sky-arcade/internal/core"
	"github.com/vovakirdan/sky-arcade/internal/platform/tui"
	"github.com/vovakirdan/sky-arcade/internal/registry"
	"github.com/vovakirdan/sky-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D, H/L  - Move (Sky Jumper, Circle Dodger)
  Space/Up/W            - Jump
  P/Esc                 - Pause
  R                     - Restart (after game over)
  Ctrl+S                - Save a text screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Difficulty grows at half the normal rate
  normal - Difficulty grows as configured
  hard   - Difficulty grows one and a half times faster
  fixed  - No progression, stays at the config's initial level

Examples:
  skyarcade play skyjumper
  skyarcade play walls --difficulty hard
  skyarcade play dodger --fps 30
  skyarcade play walls --config ./my-walls.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'skyarcade list' to see available games", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return fmt.Errorf("--difficulty: %w", err)
	}

	game, err := registry.Create(gameID, gameOptions())
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	result, err := tui.Run(game, runtimeConfig(), tuiEnv(store))
	flushTUILogs()
	if err != nil {
		return err
	}

	if result.GameOver {
		fmt.Printf("%s - score %d\n", game.Title(), result.Score)
	}
	return nil
}

func gameOptions() registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Failures are logged and the
// arcade runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}

func tuiEnv(store *storage.Store) tui.Env {
	return tui.Env{
		Store:   store,
		Logger:  tuiLogger(),
		Player:  os.Getenv("USER"),
		Options: gameOptions(),
	}
}
