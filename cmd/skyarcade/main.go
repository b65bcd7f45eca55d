// skyarcade plays three small arcade games in the terminal.
//
// Usage:
//
//	skyarcade list              - List available games
//	skyarcade play <game>       - Play a game
//	skyarcade menu              - Pick games interactively
//	skyarcade serve             - Start SSH server for remote play
//	skyarcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.sky-arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/sky-arcade/internal/games/dodger"
	_ "github.com/vovakirdan/sky-arcade/internal/games/skyjumper"
	_ "github.com/vovakirdan/sky-arcade/internal/games/walls"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	err := rootCmd.Execute()
	closeLogs()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyarcade",
	Short: "Sky Arcade - small arcade games in your terminal",
	Long: `Sky Arcade bundles three small arcade games that run in the terminal:

  skyjumper  - steer left and right, jump, dodge falling clouds, catch stars
  dodger     - slide along the bottom and avoid the falling circles
  walls      - flap a ball through the holes of scrolling walls

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  skyarcade list
  skyarcade play walls
  skyarcade menu
  skyarcade serve --ssh :2222
  skyarcade scores skyjumper`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd.Name())
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sky-arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
