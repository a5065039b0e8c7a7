package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

func createTestStageConfig() *config.StageConfig {
	return &config.StageConfig{
		ID:          "test",
		Name:        "Test Stage",
		TileSize:    16,
		PlayerSpawn: config.PositionConfig{X: 16, Y: 16},
		Layers: config.LayersConfig{
			Collision: []string{
				"#..H*",
				"#^.H.",
				"#####",
			},
		},
		TileMapping: map[string]config.TileMappingConfig{
			".": {Type: "empty"},
			"#": {Type: "ground", Solid: true},
			"H": {Type: "climbable"},
			"^": {Type: "hazard"},
			"*": {Type: "pickup", PowerUp: "kiFan"},
		},
	}
}

func createTestEntitiesConfig() *config.EntitiesConfig {
	box := func(x0, y0, x1, y1 float32) config.BoxConfig {
		return config.BoxConfig{BottomLeft: [2]float32{x0, y0}, TopRight: [2]float32{x1, y1}}
	}
	return &config.EntitiesConfig{
		Player: config.PlayerConfig{
			ID: "ninja",
			Shapes: config.ShapesConfig{
				Standing:  box(4, 0, 12, 31.5),
				Crouching: box(4, 0, 12, 15.5),
				Climbing:  box(3, 0, 13, 30),
			},
		},
		Items: config.ItemsConfig{
			Climbable: box(6, 0, 10, 16),
			Pickup:    box(4, 4, 12, 12),
			Hazard:    box(0, 0, 16, 6),
		},
		Enemies: config.EnemiesConfig{Grunt: box(2, 0, 14, 14)},
	}
}

func TestLoadStage(t *testing.T) {
	stage, err := LoadStage(createTestStageConfig())
	require.NoError(t, err)

	assert.Equal(t, "Test Stage", stage.Name)
	assert.Equal(t, 5, stage.Width)
	assert.Equal(t, 3, stage.Height)
	assert.Equal(t, mgl32.Vec2{16, 16}, stage.Spawn)

	assert.Equal(t, entity.TileGround, stage.GetTile(0, 0).Type)
	assert.True(t, stage.GetTile(0, 0).Solid)
	assert.Equal(t, entity.TileClimbable, stage.GetTile(3, 1).Type)
	assert.Equal(t, entity.TileHazard, stage.GetTile(1, 1).Type)
	assert.Equal(t, entity.KiFan, stage.GetTile(4, 0).PowerUp)
	assert.Equal(t, entity.TileEmpty, stage.GetTile(9, 9).Type)
	assert.Equal(t, geometry.NewCorners(0, 0, 80, 48), stage.Bounds())
}

func TestLoadStage_RaggedRowsAndUnknownCharacters(t *testing.T) {
	cfg := createTestStageConfig()
	cfg.Layers.Collision = []string{"#?", "###"}

	stage, err := LoadStage(cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, stage.Width)
	assert.Equal(t, entity.TileEmpty, stage.GetTile(1, 0).Type)
	assert.Equal(t, entity.TileEmpty, stage.GetTile(2, 0).Type)
}

func TestLoadStage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mapping config.TileMappingConfig
		wantErr string
	}{
		{"unknown tile type", config.TileMappingConfig{Type: "lava"}, `tile '*' at (4,0): unknown tile type "lava"`},
		{"pickup without power-up", config.TileMappingConfig{Type: "pickup"}, `tile '*' at (4,0): unknown power-up ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestStageConfig()
			cfg.TileMapping["*"] = tt.mapping

			_, err := LoadStage(cfg)
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestBuildWorld(t *testing.T) {
	cfg := createTestStageConfig()
	cfg.Blocks = []config.BlockConfig{{X: 40, Y: 16, Box: config.BoxConfig{TopRight: [2]float32{8, 8}}}}
	cfg.Items = []config.ItemSpawnConfig{
		{Type: "collectable", PowerUp: "kiArmor", Box: config.BoxConfig{BottomLeft: [2]float32{40, 30}, TopRight: [2]float32{48, 38}}},
		{Type: "background", Box: config.BoxConfig{TopRight: [2]float32{80, 48}}},
	}
	cfg.Enemies = []config.EnemySpawnConfig{{Kind: "grunt", X: 48, Y: 16, MaxSpeed: 30, Accel: 120, FallAccel: 440}}

	w, err := BuildWorld(cfg, createTestEntitiesConfig())
	require.NoError(t, err)

	// two wall tiles above the floor, the five floor tiles, then the block
	require.Len(t, w.Statics, 8)
	assert.Equal(t, mgl32.Vec2{0, 32}, w.Statics[0].Position)
	assert.Equal(t, mgl32.Vec2{0, 16}, w.Statics[1].Position)
	assert.Equal(t, mgl32.Vec2{0, 0}, w.Statics[2].Position)
	assert.Equal(t, mgl32.Vec2{64, 0}, w.Statics[6].Position)
	assert.Equal(t, geometry.NewCorners(0, 0, 16, 16), w.Statics[0].Shape)
	assert.Equal(t, geometry.NewCorners(40, 16, 48, 24), w.Statics[7].WorldBox())

	require.Len(t, w.Items, 6)
	assert.Equal(t, entity.ItemClimbable, w.Items[0].Kind)
	assert.Equal(t, geometry.NewCorners(54, 32, 58, 48), w.Items[0].Box)
	assert.Equal(t, entity.ItemCollectable, w.Items[1].Kind)
	assert.Equal(t, entity.KiFan, w.Items[1].PowerUp)
	assert.Equal(t, geometry.NewCorners(68, 36, 76, 44), w.Items[1].Box)
	assert.Equal(t, entity.ItemHazard, w.Items[2].Kind)
	assert.Equal(t, geometry.NewCorners(16, 16, 32, 22), w.Items[2].Box)
	assert.Equal(t, entity.ItemClimbable, w.Items[3].Kind)
	assert.Equal(t, entity.KiArmor, w.Items[4].PowerUp)
	assert.Equal(t, entity.ItemBackground, w.Items[5].Kind)

	require.Len(t, w.Enemies, 1)
	e := w.Enemies[0]
	assert.Equal(t, entity.EnemyGrunt, e.Kind)
	assert.Equal(t, mgl32.Vec2{48, 16}, e.Position)
	assert.Equal(t, float32(30), e.MaxSpeed)
	assert.Equal(t, float32(120), e.Accel)
	assert.Equal(t, float32(440), e.FallAccel)
	assert.Equal(t, geometry.NewCorners(50, 16, 62, 30), e.WorldBox())

	require.NotNil(t, w.Arena)
	assert.Equal(t, geometry.NewCorners(0, 0, 80, 48), w.Arena.Bounds)

	require.Len(t, w.Players, 1)
	p := w.MainPlayer()
	assert.Equal(t, mgl32.Vec2{16, 16}, p.Position)
	assert.Equal(t, entity.StanceStanding, p.Stance)
	assert.Equal(t, geometry.NewCorners(3, 0, 13, 30), p.Shapes.Climbing)
	assert.Greater(t, p.ID, e.ID, "the player is spawned last")
}

func TestBuildWorld_ExplicitArena(t *testing.T) {
	cfg := createTestStageConfig()
	cfg.Arena = &config.BoxConfig{BottomLeft: [2]float32{-16, 0}, TopRight: [2]float32{96, 64}}

	w, err := BuildWorld(cfg, createTestEntitiesConfig())
	require.NoError(t, err)

	assert.Equal(t, geometry.NewCorners(-16, 0, 96, 64), w.Arena.Bounds)
}

func TestBuildWorld_Errors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *config.StageConfig)
		wantErr string
	}{
		{
			name:    "bad tile",
			modify:  func(cfg *config.StageConfig) { cfg.TileMapping["H"] = config.TileMappingConfig{Type: "rope"} },
			wantErr: "unknown tile type",
		},
		{
			name: "unknown item type",
			modify: func(cfg *config.StageConfig) {
				cfg.Items = []config.ItemSpawnConfig{{Type: "coin"}}
			},
			wantErr: `items[0]: unknown item type "coin"`,
		},
		{
			name: "collectable without power-up",
			modify: func(cfg *config.StageConfig) {
				cfg.Items = []config.ItemSpawnConfig{{Type: "climbable"}, {Type: "collectable"}}
			},
			wantErr: `items[1]: unknown power-up ""`,
		},
		{
			name: "unknown enemy",
			modify: func(cfg *config.StageConfig) {
				cfg.Enemies = []config.EnemySpawnConfig{{Kind: "dragon"}}
			},
			wantErr: `enemies[0]: unknown enemy kind "dragon"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestStageConfig()
			tt.modify(cfg)

			w, err := BuildWorld(cfg, createTestEntitiesConfig())
			require.Error(t, err)
			assert.Nil(t, w)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildWorld_DefaultStages(t *testing.T) {
	loader := config.DefaultLoader()
	entities, err := loader.LoadEntities()
	require.NoError(t, err)

	t.Run("demo", func(t *testing.T) {
		cfg, err := loader.LoadStage("demo")
		require.NoError(t, err)

		w, err := BuildWorld(cfg, entities)
		require.NoError(t, err)

		assert.Len(t, w.Statics, 41)
		assert.Len(t, w.Items, 16)
		assert.Len(t, w.Enemies, 1)
		assert.Equal(t, geometry.NewCorners(0, 0, 320, 240), w.Arena.Bounds)
		assert.Equal(t, mgl32.Vec2{32, 16}, w.MainPlayer().Position)

		// the first item in row-major order is the star above the top ledge
		assert.Equal(t, entity.KiStar, w.Items[0].PowerUp)
		assert.Equal(t, geometry.NewCorners(180, 196, 188, 204), w.Items[0].Box)
	})

	t.Run("proving", func(t *testing.T) {
		cfg, err := loader.LoadStage("proving")
		require.NoError(t, err)

		w, err := BuildWorld(cfg, entities)
		require.NoError(t, err)

		assert.NotEmpty(t, w.Statics)
		assert.Equal(t, geometry.NewCorners(0, 0, 200, 200), w.Arena.Bounds)
	})
}
