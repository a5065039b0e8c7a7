package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write JSON schemas for the config files",
	Long: `Write one JSON schema per config document (physics, entities, stage)
so editors can validate and complete the YAML files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeSchemas(flagSchemaOut)
	},
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaOut, "out", "schemas", "Output directory")
}

func writeSchemas(dir string) error {
	for _, kind := range config.SchemaKinds {
		schema, err := config.BuildSchema(kind)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, string(kind)+".schema.json")
		if err := config.WriteSchema(path, schema); err != nil {
			return err
		}
		logger.Info("schema written", "kind", kind, "path", path)
	}
	return nil
}
