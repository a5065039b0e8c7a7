package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
	"github.com/kraemahz/ninja-force/internal/ecs"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity
func LoadStage(cfg *config.StageConfig) (*entity.Stage, error) {
	height := len(cfg.Layers.Collision)
	width := 0
	for _, row := range cfg.Layers.Collision {
		width = max(width, len([]rune(row)))
	}

	tiles := make([][]entity.Tile, height)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, width)
		for x, char := range []rune(row) {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty}
				continue
			}

			tileType, err := parseTileType(mapping.Type)
			if err != nil {
				return nil, fmt.Errorf("tile %q at (%d,%d): %w", char, x, y, err)
			}
			tile := entity.Tile{Type: tileType, Solid: mapping.Solid}
			if tileType == entity.TilePickup {
				pu, ok := entity.ParsePowerUp(mapping.PowerUp)
				if !ok {
					return nil, fmt.Errorf("tile %q at (%d,%d): unknown power-up %q", char, x, y, mapping.PowerUp)
				}
				tile.PowerUp = pu
			}
			tiles[y][x] = tile
		}
	}

	return &entity.Stage{
		Name:     cfg.Name,
		Width:    width,
		Height:   height,
		TileSize: cfg.TileSize,
		Tiles:    tiles,
		Spawn:    mgl32.Vec2{cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y},
	}, nil
}

// BuildWorld loads a stage and populates a world from it. Solid tiles become
// static colliders in row-major order, top row first, followed by the
// stage's extra blocks. The arena defaults to the tile grid's bounds. The
// player is spawned last.
func BuildWorld(stageCfg *config.StageConfig, entities *config.EntitiesConfig) (*ecs.World, error) {
	stage, err := LoadStage(stageCfg)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	w.Stage = stage

	size := float32(stage.TileSize)
	tileShape := geometry.FromSize(0, 0, size, size)
	for ty := range stage.Height {
		for tx := range stage.Width {
			tile := stage.GetTile(tx, ty)
			origin := stage.TileBox(tx, ty).BottomLeft
			if tile.Solid {
				w.AddStatic(tileShape, origin)
			}
			switch tile.Type {
			case entity.TileClimbable:
				w.AddItem(entity.ItemClimbable, entity.PowerUpNone, entities.Items.Climbable.Corners().Translate(origin))
			case entity.TileHazard:
				w.AddItem(entity.ItemHazard, entity.PowerUpNone, entities.Items.Hazard.Corners().Translate(origin))
			case entity.TilePickup:
				w.AddItem(entity.ItemCollectable, tile.PowerUp, entities.Items.Pickup.Corners().Translate(origin))
			}
		}
	}

	for _, b := range stageCfg.Blocks {
		w.AddStatic(b.Box.Corners(), mgl32.Vec2{b.X, b.Y})
	}

	for i, it := range stageCfg.Items {
		kind, err := parseItemKind(it.Type)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		pu := entity.PowerUpNone
		if kind == entity.ItemCollectable {
			var ok bool
			if pu, ok = entity.ParsePowerUp(it.PowerUp); !ok {
				return nil, fmt.Errorf("items[%d]: unknown power-up %q", i, it.PowerUp)
			}
		}
		w.AddItem(kind, pu, it.Box.Corners())
	}

	for i, ec := range stageCfg.Enemies {
		kind, ok := entity.ParseEnemyKind(ec.Kind)
		if !ok {
			return nil, fmt.Errorf("enemies[%d]: unknown enemy kind %q", i, ec.Kind)
		}
		e := entity.NewEnemy(0, kind, mgl32.Vec2{ec.X, ec.Y}, entities.Enemies.Grunt.Corners())
		e.MaxSpeed = ec.MaxSpeed
		e.Accel = ec.Accel
		e.FallAccel = ec.FallAccel
		w.AddEnemy(*e)
	}

	if stageCfg.Arena != nil {
		w.SetArena(stageCfg.Arena.Corners())
	} else {
		w.SetArena(stage.Bounds())
	}

	shapes := entity.ShapeSet{
		Standing:  entities.Player.Shapes.Standing.Corners(),
		Crouching: entities.Player.Shapes.Crouching.Corners(),
		Climbing:  entities.Player.Shapes.Climbing.Corners(),
	}
	w.AddPlayer(stage.Spawn, shapes)
	return w, nil
}

func parseTileType(name string) (entity.TileType, error) {
	switch name {
	case "", "empty":
		return entity.TileEmpty, nil
	case "ground":
		return entity.TileGround, nil
	case "climbable":
		return entity.TileClimbable, nil
	case "hazard":
		return entity.TileHazard, nil
	case "pickup":
		return entity.TilePickup, nil
	default:
		return entity.TileEmpty, fmt.Errorf("unknown tile type %q", name)
	}
}

func parseItemKind(name string) (entity.ItemKind, error) {
	switch name {
	case "background":
		return entity.ItemBackground, nil
	case "climbable":
		return entity.ItemClimbable, nil
	case "collectable":
		return entity.ItemCollectable, nil
	case "hazard":
		return entity.ItemHazard, nil
	default:
		return entity.ItemBackground, fmt.Errorf("unknown item type %q", name)
	}
}
