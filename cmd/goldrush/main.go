// goldrush is a small arcade game: collect the gold, avoid the spiders.
//
// Usage:
//
//	goldrush play            - Play in the terminal
//	goldrush window          - Play in a window
//	goldrush config          - Print the effective configuration
//	goldrush assets          - Load every sprite and show its status
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log file for the terminal frontend (default: ~/.goldrush/goldrush.log)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goldrush",
	Short: "Gold Rush - collect the gold, avoid the spiders",
	Long: `Gold Rush is a small arcade game. Steer with the arrow keys (or the
pointer) to collect gold while spiders wander the field. Touching a spider
ends the run; collecting enough gold wins it.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration
  assets   - Load every sprite and show its status

Examples:
  goldrush play
  goldrush play --seed 42
  goldrush window --fps 30
  goldrush config > ~/.goldrush/configs/goldrush.yaml
  goldrush assets --config ./my-goldrush.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.goldrush/goldrush.log", "Log file used while the terminal game runs")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(assetsCmd)
}
