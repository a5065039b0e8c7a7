package config

import "github.com/kraemahz/ninja-force/internal/domain/geometry"

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Player  PlayerConfig  `json:"player" yaml:"player"`
	Items   ItemsConfig   `json:"items" yaml:"items"`
	Enemies EnemiesConfig `json:"enemies" yaml:"enemies"`
}

type PlayerConfig struct {
	ID     string       `json:"id" yaml:"id"`
	Shapes ShapesConfig `json:"shapes" yaml:"shapes"`
}

// ShapesConfig holds the local box per stance. Boxes are relative to the
// body position, which is the bottom-left of its tile.
type ShapesConfig struct {
	Standing  BoxConfig `json:"standing" yaml:"standing"`
	Crouching BoxConfig `json:"crouching" yaml:"crouching"`
	Climbing  BoxConfig `json:"climbing" yaml:"climbing"`
}

// ItemsConfig holds the local boxes of tile-placed items.
type ItemsConfig struct {
	Climbable BoxConfig `json:"climbable" yaml:"climbable"`
	Pickup    BoxConfig `json:"pickup" yaml:"pickup"`
	Hazard    BoxConfig `json:"hazard" yaml:"hazard"`
}

// EnemiesConfig holds the local box per enemy kind.
type EnemiesConfig struct {
	Grunt BoxConfig `json:"grunt" yaml:"grunt"`
}

// BoxConfig is an axis-aligned box given by two corners.
type BoxConfig struct {
	BottomLeft [2]float32 `json:"bottomLeft" yaml:"bottomLeft"`
	TopRight   [2]float32 `json:"topRight" yaml:"topRight"`
}

// Corners converts the box to geometry.
func (b BoxConfig) Corners() geometry.Corners {
	return geometry.NewCorners(b.BottomLeft[0], b.BottomLeft[1], b.TopRight[0], b.TopRight[1])
}

// Valid reports whether the box has positive area with BottomLeft below and
// left of TopRight.
func (b BoxConfig) Valid() bool {
	return b.BottomLeft[0] < b.TopRight[0] && b.BottomLeft[1] < b.TopRight[1]
}
