package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goldrush/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The field fills the terminal unless the
configuration sets an explicit size.

Controls:
  Arrows/WASD/HJKL - Move
  Mouse            - Hold in the upper half to move up (right side) or
                     down (left side), in the lower half to move left or right
  Enter/Click      - Dismiss the win or loss message
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Logs are written to --log-file while the game owns the screen.

Examples:
  goldrush play
  goldrush play --seed 42
  goldrush play --config ./my-goldrush.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "goldrush")
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(cmd.Context(), tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(width, height),
		Logger:  logger,
	})
}
