package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/kraemahz/ninja-force/internal/application/game"
	"github.com/kraemahz/ninja-force/internal/application/replay"
	"github.com/kraemahz/ninja-force/internal/application/scene/playing"
	"github.com/kraemahz/ninja-force/internal/application/sim"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

var (
	flagPlayStage  string
	flagRecord     string
	flagPlayReplay string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a stage in a window",
	Long: `Open a window and play a stage.

Controls:
  A/D, Left/Right  - Walk
  W/S, Up/Down     - Climb, crouch
  Space/Z          - Jump
  Shift/X          - Run
  P/Esc            - Pause
  R                - Restart
  F5               - Save recording
  Tab              - Debug overlay
  Q                - Quit

With --watch, editing any file in the config directory rebuilds the stage.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayStage, "stage", "demo", "Stage to load")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to this file")
	playCmd.Flags().StringVar(&flagPlayReplay, "replay", "", "Watch a recording instead of playing")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload when config files change (needs --config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var opts []playing.Option

	stage := flagPlayStage
	if flagPlayReplay != "" {
		data, err := replay.LoadReplay(flagPlayReplay)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("stage") {
			stage = data.Stage
		}
		opts = append(opts, playing.WithReplay(*data))
	}

	s, err := newSimulation(flagConfigDir, stage, logger)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("record") {
		opts = append(opts, playing.WithRecorder(flagRecord))
	}

	if flagWatch {
		if flagConfigDir == "" {
			return fmt.Errorf("--watch needs --config")
		}
		watcher, err := config.WatchLoader(flagConfigDir)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", flagConfigDir, err)
		}
		defer func() { _ = watcher.Close() }()

		go func() {
			for err := range watcher.Errors {
				logger.Warn("watch error", "err", err)
			}
		}()
		opts = append(opts, playing.WithReload(watcher.Events, func() (*sim.Simulation, error) {
			return newSimulation(flagConfigDir, stage, logger)
		}))
	}

	display := s.Config().Physics.Display
	scene := playing.New(s, display.ScreenWidth, display.ScreenHeight, logger, opts...)
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, logger)
	g.SetDT(float64(s.TickDuration()))

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Ninja Force - " + s.StageID())
	ebiten.SetTPS(display.TickRate)

	return ebiten.RunGame(g)
}
