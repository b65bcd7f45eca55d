package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-arcade/internal/platform/tui"
	"github.com/vovakirdan/sky-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter/Space   - Select game
  Tab           - High scores
  Q             - Quit

Examples:
  skyarcade menu
  skyarcade menu --fps 30
  skyarcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	env := tuiEnv(store)

	for {
		menuResult, err := tui.RunMenu(env, cfg)
		flushTUILogs()
		if err != nil {
			return err
		}

		cfg = menuResult.Config
		env.Options.Difficulty = string(menuResult.Difficulty)

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(env, cfg.ScreenW, cfg.ScreenH)
			flushTUILogs()
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID, env.Options)
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// A fresh seed per game unless --seed pins it
		cfg.Seed = flagSeed
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		_, err = tui.Run(game, cfg, env)
		flushTUILogs()
		if err != nil {
			logger.Error("game ended with an error", "game", game.ID(), "error", err)
		}
	}
}
