package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults
var defaultFS embed.FS

// extensions are tried in order when a config file is looked up by name.
var extensions = []string{".yaml", ".yml", ".json"}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from YAML or JSON files using fs.FS
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// DefaultLoader returns a loader over the configs compiled into the binary.
func DefaultLoader() *Loader {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		// the embed pattern guarantees the directory exists
		panic(fmt.Sprintf("config: embedded defaults missing: %v", err))
	}
	return NewFSLoader(sub, "embedded")
}

// Open returns a loader for dir, or the embedded defaults when dir is empty.
func Open(dir string) (*Loader, error) {
	if dir == "" {
		return DefaultLoader(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("config path %s is not a directory", dir)
	}
	return NewLoader(dir), nil
}

// BasePath returns where the loader reads from.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.yaml (or .json)
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.load("physics", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.yaml (or .json)
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.load("entities", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStage loads stages/<name>.yaml (or .json)
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.load(path.Join("stages", name), &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	return &cfg, nil
}

// ListStages returns the stage names available to LoadStage, sorted.
func (l *Loader) ListStages() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "stages")
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if !slices.Contains(extensions, ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads and validates all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Physics:  physics,
		Entities: entities,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// load finds name with any known extension and decodes it into v.
func (l *Loader) load(name string, v any) error {
	for _, ext := range extensions {
		file := name + ext
		data, err := fs.ReadFile(l.fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		if err := decode(ext, data, v); err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}
		return nil
	}
	return fmt.Errorf("failed to read %s: %w", name, fs.ErrNotExist)
}

func decode(ext string, data []byte, v any) error {
	if ext == ".json" {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}
