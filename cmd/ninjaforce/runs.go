package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kraemahz/ninja-force/internal/infrastructure/storage"
)

var (
	flagRunsStage string
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored simulation runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		runs, err := store.ListRuns(cmd.Context(), flagRunsStage, flagRunsLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded yet.")
			fmt.Fprintln(out, "Run 'ninjaforce simulate --replay <file>' to store one.")
			return nil
		}

		fmt.Fprintf(out, "  %-5s  %-10s  %-7s  %-18s  %-16s  %s\n", "ID", "Stage", "Frames", "Position", "Digest", "Date")
		fmt.Fprintf(out, "  %-5s  %-10s  %-7s  %-18s  %-16s  %s\n", "--", "-----", "------", "--------", "------", "----")
		for _, r := range runs {
			pos := fmt.Sprintf("%.1f, %.1f", r.FinalX, r.FinalY)
			fmt.Fprintf(out, "  %-5d  %-10s  %-7d  %-18s  %016x  %s\n",
				r.ID, r.Stage, r.Frames, pos, r.Digest, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsStage, "stage", "", "Only list runs of this stage")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs")
}
