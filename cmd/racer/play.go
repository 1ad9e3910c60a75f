package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/math-racer/internal/audio"
	"github.com/vovakirdan/math-racer/internal/config"
	"github.com/vovakirdan/math-racer/internal/core"
	"github.com/vovakirdan/math-racer/internal/games/racer"
	"github.com/vovakirdan/math-racer/internal/journal"
	"github.com/vovakirdan/math-racer/internal/platform/tui"
)

var flagNoSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of Math Racer in the current terminal.

Controls:
  Left/A/H    - Steer one lane left
  Right/D/L   - Steer one lane right
  Enter/Space - Start
  R           - Play again (after game over)
  M           - Toggle sound
  Esc/B       - Back to the title screen
  Ctrl+S      - Save a screenshot to ~/.racer/screenshots
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Examples:
  racer play
  racer play --seed 7
  racer play --no-sound
  racer play --config ./slow-racer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	racerCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogPath, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var player audio.Player = &audio.Silent{}
	if racerCfg.Audio.Enabled && !flagNoSound {
		initErr := audio.Init(audio.Settings{
			Volume: racerCfg.Audio.MasterVolume,
			Music:  racerCfg.Audio.Music,
		})
		if initErr != nil {
			// The game still works without sound.
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", initErr)
			logger.Warn("audio unavailable", "error", initErr)
		} else {
			player = audio.Speaker{}
			defer audio.Close()
		}
	}

	var saver racer.RoundSaver
	if flagJournal != "" {
		store, openErr := journal.Open(flagJournal)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open round journal: %v\n", openErr)
		} else {
			defer store.Close()
			saver = store
		}
	}

	game := racer.New(racer.Options{
		Config:  racerCfg,
		Audio:   player,
		Journal: saver,
		Logger:  logger,
	})

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newLogger logs to path, or nowhere when path is empty since the alt
// screen owns the terminal.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}
