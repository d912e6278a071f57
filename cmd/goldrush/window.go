package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goldrush/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a window. The field is 800x600 unless the
configuration sets an explicit size; the window scales it to fit.

Controls:
  Arrows/WASD/HJKL - Move
  Touch/Left mouse - Hold in the upper half to move up (right side) or
                     down (left side), in the lower half to move left or right
  Enter/Click/Tap  - Dismiss the win or loss message
  Q/Esc            - Quit

Examples:
  goldrush window
  goldrush window --width 1280 --height 960`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels (0 = field width)")
	windowCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels (0 = field height)")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "goldrush")
	if err != nil {
		return err
	}

	return window.Run(cmd.Context(), window.Options{
		Config:  cfg,
		Runtime: runtimeConfig(flagWidth, flagHeight),
		Logger:  logger,
	})
}
