package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kraemahz/ninja-force/internal/application/replay"
	"github.com/kraemahz/ninja-force/internal/application/sim"
	"github.com/kraemahz/ninja-force/internal/infrastructure/storage"
)

var (
	flagSimReplay string
	flagSimStage  string
	flagSimFrames int
	flagNoStore   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a recording without a window",
	Long: `Run a recording through the simulation as fast as possible, print the
final state and digest, and store the run in the history database.

A run whose digest differs from the previous run of the same recording is
reported, which flags behavior changes between builds.

Without --replay the player stands idle for --frames ticks.

Examples:
  ninjaforce simulate --replay session.json
  ninjaforce simulate --stage proving --frames 600
  ninjaforce simulate --replay session.json --no-store`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := simulateOptions{
			ConfigDir: flagConfigDir,
			Replay:    flagSimReplay,
			Stage:     flagSimStage,
			Frames:    flagSimFrames,
		}
		if !flagNoStore {
			store, err := storage.Open(flagDBPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			opts.Store = store
		}
		_, err := runSimulation(cmd.Context(), cmd.OutOrStdout(), opts, logger)
		return err
	},
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimReplay, "replay", "", "Recording to play back")
	simulateCmd.Flags().StringVar(&flagSimStage, "stage", "", "Stage to load (default: the recording's stage, else demo)")
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 0, "Stop after this many ticks (0 = whole recording)")
	simulateCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not write the run to the database")
}

type simulateOptions struct {
	ConfigDir string
	Replay    string
	Stage     string
	Frames    int
	Store     *storage.Store
}

// runSimulation drives a simulation from a recording (or idle input) and
// reports and stores the outcome.
func runSimulation(ctx context.Context, out io.Writer, opts simulateOptions, logger *log.Logger) (storage.Run, error) {
	stage := opts.Stage
	var replayer *replay.Replayer
	if opts.Replay != "" {
		data, err := replay.LoadReplay(opts.Replay)
		if err != nil {
			return storage.Run{}, err
		}
		if stage == "" {
			stage = data.Stage
		}
		replayer = replay.NewReplayer(*data)
	}
	if stage == "" {
		stage = "demo"
	}

	frames := opts.Frames
	if replayer != nil && (frames <= 0 || frames > replayer.TotalFrames()) {
		frames = replayer.TotalFrames()
	}
	if frames <= 0 {
		return storage.Run{}, fmt.Errorf("nothing to simulate: give --replay or --frames")
	}

	s, err := newSimulation(opts.ConfigDir, stage, logger)
	if err != nil {
		return storage.Run{}, err
	}

	events := 0
	for range frames {
		if replayer != nil {
			in, _ := replayer.GetInput()
			s.Step(in)
		} else {
			s.Step()
		}
		events += len(s.Events())
	}

	run := runFromState(s, opts.Replay)
	printRun(out, run, events)

	if opts.Store == nil {
		return run, nil
	}

	prev, seen, err := opts.Store.LastDigest(ctx, run.Stage, run.Replay)
	if err != nil {
		return run, err
	}
	id, err := opts.Store.RecordRun(ctx, run)
	if err != nil {
		return run, err
	}
	run.ID = id
	logger.Info("run stored", "id", id, "stage", run.Stage)

	if seen && prev != run.Digest {
		logger.Warn("digest changed since the last run", "previous", fmt.Sprintf("%016x", prev),
			"current", fmt.Sprintf("%016x", run.Digest))
	}
	return run, nil
}

func runFromState(s *sim.Simulation, replayPath string) storage.Run {
	st := s.State()
	return storage.Run{
		Stage:   s.StageID(),
		Replay:  replayPath,
		Frames:  st.Frame,
		FinalX:  st.Position.X(),
		FinalY:  st.Position.Y(),
		VelX:    st.Velocity.X(),
		VelY:    st.Velocity.Y(),
		Stance:  st.Stance.String(),
		PowerUp: st.PowerUp.String(),
		Digest:  s.Digest(),
	}
}

func printRun(out io.Writer, r storage.Run, events int) {
	fmt.Fprintf(out, "stage     %s\n", r.Stage)
	fmt.Fprintf(out, "frames    %d\n", r.Frames)
	fmt.Fprintf(out, "position  %.3f, %.3f\n", r.FinalX, r.FinalY)
	fmt.Fprintf(out, "velocity  %.3f, %.3f\n", r.VelX, r.VelY)
	fmt.Fprintf(out, "stance    %s\n", r.Stance)
	fmt.Fprintf(out, "power-up  %s\n", r.PowerUp)
	fmt.Fprintf(out, "events    %d\n", events)
	fmt.Fprintf(out, "digest    %016x\n", r.Digest)
}
