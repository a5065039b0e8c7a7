package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
)

// EntityID is a stable handle to an entity. Zero is never issued.
type EntityID uint32

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileGround
	TileClimbable
	TileHazard
	TilePickup
)

func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileGround:
		return "ground"
	case TileClimbable:
		return "climbable"
	case TileHazard:
		return "hazard"
	case TilePickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Tile represents a single tile in the stage
type Tile struct {
	Type    TileType
	Solid   bool
	PowerUp PowerUp
}

// Stage is the tile grid a world was built from. Row 0 is the top row; world
// coordinates are y-up with the bottom row at y=0.
type Stage struct {
	Name     string
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	Spawn    mgl32.Vec2
}

// GetTile returns the tile at the given tile coordinates. Out-of-range
// coordinates are empty.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileEmpty}
	}
	return s.Tiles[ty][tx]
}

// TileBox returns the world-space box covered by tile (tx, ty).
func (s *Stage) TileBox(tx, ty int) geometry.Corners {
	size := float32(s.TileSize)
	x := float32(tx) * size
	y := float32(s.Height-1-ty) * size
	return geometry.FromSize(x, y, size, size)
}

// Bounds returns the world-space box covering the whole grid.
func (s *Stage) Bounds() geometry.Corners {
	size := float32(s.TileSize)
	return geometry.FromSize(0, 0, float32(s.Width)*size, float32(s.Height)*size)
}
