package config

// StageConfig is the root config for stage files
type StageConfig struct {
	ID          string                       `json:"id" yaml:"id"`
	Name        string                       `json:"name" yaml:"name"`
	TileSize    int                          `json:"tileSize" yaml:"tileSize"`
	PlayerSpawn PositionConfig               `json:"playerSpawn" yaml:"playerSpawn"`
	Arena       *BoxConfig                   `json:"arena,omitempty" yaml:"arena,omitempty"`
	Layers      LayersConfig                 `json:"layers" yaml:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping" yaml:"tileMapping"`
	Blocks      []BlockConfig                `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	Items       []ItemSpawnConfig            `json:"items,omitempty" yaml:"items,omitempty"`
	Enemies     []EnemySpawnConfig           `json:"enemies,omitempty" yaml:"enemies,omitempty"`
}

// PositionConfig is a world position, y-up.
type PositionConfig struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// LayersConfig holds ASCII tile rows, top row first.
type LayersConfig struct {
	Collision []string `json:"collision" yaml:"collision"`
}

type TileMappingConfig struct {
	Type    string `json:"type" yaml:"type"` // ground, climbable, hazard, pickup, empty
	Solid   bool   `json:"solid" yaml:"solid"`
	PowerUp string `json:"powerUp,omitempty" yaml:"powerUp,omitempty"`
}

// BlockConfig places an extra static collider that does not fit the grid.
type BlockConfig struct {
	X   float32   `json:"x" yaml:"x"`
	Y   float32   `json:"y" yaml:"y"`
	Box BoxConfig `json:"box" yaml:"box"`
}

// ItemSpawnConfig places an item with an explicit world-space box.
type ItemSpawnConfig struct {
	Type    string    `json:"type" yaml:"type"` // climbable, collectable, hazard, background
	PowerUp string    `json:"powerUp,omitempty" yaml:"powerUp,omitempty"`
	Box     BoxConfig `json:"box" yaml:"box"`
}

// EnemySpawnConfig places one enemy with its own movement tunables.
type EnemySpawnConfig struct {
	Kind      string  `json:"kind" yaml:"kind"` // grunt
	X         float32 `json:"x" yaml:"x"`
	Y         float32 `json:"y" yaml:"y"`
	MaxSpeed  float32 `json:"maxSpeed" yaml:"maxSpeed"`
	Accel     float32 `json:"accel" yaml:"accel"`
	FallAccel float32 `json:"fallAccel" yaml:"fallAccel"`
}
