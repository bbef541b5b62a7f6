// pacmen is a terminal toy: click anywhere to spawn a Pac-Man that bounces
// around the window.
//
// Usage:
//
//	pacmen                   - Open the page and click to spawn
//	pacmen sim               - Run the sprites headless and print their state
//	pacmen config            - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Configuration YAML (default search: ~/.pacmen/configs, ./configs)
//	--interval <dur>    - Tick interval (default from config: 50ms)
//	--seed <value>      - RNG seed for reproducible spawns
//	--count <n>         - Sprites spawned at random on start
//	--spawn k=v,...     - Spawn option overrides: behavior, speed, size
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagInterval string
	flagSeed     int64
	flagCount    int
	flagSpawn    map[string]string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacmen",
	Short: "Bouncing Pac-Men in your terminal",
	Long: `pacmen opens a full-screen page in your terminal. Click anywhere to
spawn a Pac-Man there; it bounces off the edges of the window.

Controls:
  click      - Spawn a Pac-Man
  + / -      - Faster / slower spawns
  ] / [      - Bigger / smaller spawns
  tab        - Toggle spawn behavior
  x / c      - Remove newest / clear all
  ctrl+s     - Screenshot to ~/.pacmen/screenshots
  ?          - All keys
  q          - Quit

Examples:
  pacmen
  pacmen --count 10 --spawn speed=0.5,size=60
  pacmen --log-file /tmp/pacmen.log --log-level debug
  pacmen sim --ticks 200 --count 5`,
	Args: cobra.NoArgs,
	Run:  runPage,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagInterval, "interval", "", "Tick interval, e.g. 50ms (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagCount, "count", -1, "Sprites spawned at random on start (default from config)")
	rootCmd.PersistentFlags().StringToStringVar(&flagSpawn, "spawn", nil, "Spawn option overrides (behavior=normal,speed=0.2,size=40)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
