package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List available stages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := config.Open(flagConfigDir)
		if err != nil {
			return err
		}
		names, err := loader.ListStages()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, name := range names {
			stage, err := loader.LoadStage(name)
			if err != nil {
				fmt.Fprintf(out, "  %-12s  (invalid: %v)\n", name, err)
				continue
			}
			fmt.Fprintf(out, "  %-12s  %s\n", name, stage.Name)
		}
		return nil
	},
}
