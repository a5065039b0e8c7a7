package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// SchemaKind names a config document with a JSON schema.
type SchemaKind string

const (
	SchemaPhysics  SchemaKind = "physics"
	SchemaEntities SchemaKind = "entities"
	SchemaStage    SchemaKind = "stage"
)

// SchemaKinds lists every document kind in a stable order.
var SchemaKinds = []SchemaKind{SchemaPhysics, SchemaEntities, SchemaStage}

// BuildSchema reflects the JSON schema for kind from the config types.
func BuildSchema(kind SchemaKind) (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}

	var schema *jsonschema.Schema
	switch kind {
	case SchemaPhysics:
		schema = reflector.Reflect(new(PhysicsConfig))
		schema.Title = "ninja-force physics"
		schema.Description = "Movement tunables loaded from physics.yaml"
	case SchemaEntities:
		schema = reflector.Reflect(new(EntitiesConfig))
		schema.Title = "ninja-force entities"
		schema.Description = "Player stance boxes and item volumes loaded from entities.yaml"
	case SchemaStage:
		schema = reflector.Reflect(new(StageConfig))
		schema.Title = "ninja-force stage"
		schema.Description = "Tile layout, blocks and items loaded from stages/<name>.yaml"
	default:
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}
	return schema, nil
}

// WriteSchema writes schema as indented JSON, replacing outPath atomically.
func WriteSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
