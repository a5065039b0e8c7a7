// ninjaforce runs the platformer engine.
//
// Usage:
//
//	ninjaforce play              - Open a window and play a stage
//	ninjaforce simulate          - Replay a recording headlessly and store the result
//	ninjaforce runs              - List stored simulation runs
//	ninjaforce stages            - List the stages a config directory provides
//	ninjaforce schema            - Write JSON schemas for the config files
//
// Global flags:
//
//	--config <dir>       - Config directory (default: embedded defaults)
//	--log-level <level>  - debug, info, warn or error
//	--db <path>          - Run history database (default: ~/.ninja-force/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kraemahz/ninja-force/internal/application/sim"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagLogLevel  string
	flagDBPath    string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ninja-force",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ninjaforce",
	Short: "Ninja Force - a tile platformer with a kinematic character controller",
	Long: `Ninja Force runs a 2D platformer: tile stages, a player who walks,
runs, crouches, jumps and climbs, items, hazards and patrolling enemies.

Examples:
  ninjaforce play
  ninjaforce play --stage proving --record session.json
  ninjaforce play --config ./configs --watch
  ninjaforce simulate --replay session.json
  ninjaforce runs --stage demo
  ninjaforce schema --out ./schemas`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (empty = embedded defaults)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ninja-force/runs.db", "Path to run history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(schemaCmd)
}

// newSimulation loads the game config and the named stage from dir and
// builds a simulation over them.
func newSimulation(dir, stage string, logger *log.Logger) (*sim.Simulation, error) {
	loader, err := config.Open(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", loader.BasePath(), err)
	}
	stageCfg, err := loader.LoadStage(stage)
	if err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", stage, err)
	}
	return sim.New(cfg, stageCfg, logger)
}
