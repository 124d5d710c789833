// superadventure is a turn-based text adventure: explore, fight monsters,
// complete quests and level up.
//
// Usage:
//
//	superadventure [play]            - Play (TUI on a terminal, plain otherwise)
//	superadventure validate [dir]    - Check a world directory for errors
//	superadventure saves             - List saved games
//	superadventure saves rm <slot>   - Delete a saved game
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.superadventure/config.yaml)
//	--world <dir>       - World directory (default: bundled classic world)
//	--storage <name>    - Save backend: file, sqlite or redis
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	// Global flags
	flagConfig   string
	flagWorld    string
	flagStorage  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "superadventure",
	Short: "SuperAdventure - a text adventure in your terminal",
	Long: `SuperAdventure is a small role-playing adventure. Walk between
locations, accept quests, fight monsters for loot and experience, and
save your progress between sessions.

Examples:
  superadventure
  superadventure play --plain --seed 42
  superadventure play --script walkthrough.txt
  superadventure validate ./worlds/mine
  superadventure saves`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagWorld, "world", "", "World directory of .lua files (default: bundled world)")
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "Save backend: file, sqlite or redis")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(savesCmd)
}
