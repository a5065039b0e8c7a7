package sim

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraemahz/ninja-force/internal/application/system"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

func createTestGameConfig(t testing.TB) *config.GameConfig {
	t.Helper()
	cfg, err := config.DefaultLoader().LoadAll()
	require.NoError(t, err)
	return cfg
}

func createTestSimulation(t testing.TB, stage string) *Simulation {
	t.Helper()
	stageCfg, err := config.DefaultLoader().LoadStage(stage)
	require.NoError(t, err)
	s, err := New(createTestGameConfig(t), stageCfg, log.New(io.Discard))
	require.NoError(t, err)
	return s
}

// createPickupStage is a walled corridor with a star pickup two tiles right
// of the spawn and a hazard three tiles after it.
func createPickupStage() *config.StageConfig {
	return &config.StageConfig{
		ID:          "corridor",
		Name:        "Corridor",
		TileSize:    16,
		PlayerSpawn: config.PositionConfig{X: 16, Y: 16},
		Layers: config.LayersConfig{
			Collision: []string{
				"#......#",
				"#......#",
				"#.*..^.#",
				"########",
			},
		},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "ground", Solid: true},
			"*": {Type: "pickup", PowerUp: "kiStar"},
			"^": {Type: "hazard"},
		},
	}
}

func run(s *Simulation, ticks int, in entity.Input) {
	for range ticks {
		s.Step(in)
	}
}

func TestNew(t *testing.T) {
	t.Run("rejects invalid physics", func(t *testing.T) {
		cfg := createTestGameConfig(t)
		cfg.Physics.Jump.WalkSpeed = 0

		_, err := New(cfg, createPickupStage(), log.New(io.Discard))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalidConfig))
		assert.Contains(t, err.Error(), "jump.walkSpeed")
	})

	t.Run("rejects invalid stage", func(t *testing.T) {
		stage := createPickupStage()
		stage.TileSize = 0

		_, err := New(createTestGameConfig(t), stage, log.New(io.Discard))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("reports stage build errors", func(t *testing.T) {
		stage := createPickupStage()
		stage.TileMapping["^"] = config.TileMappingConfig{Type: "lava"}

		_, err := New(createTestGameConfig(t), stage, log.New(io.Discard))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to build stage corridor")
	})
}

func TestSimulation_Stages(t *testing.T) {
	s := createTestSimulation(t, "demo")

	assert.Equal(t, []string{
		StageInput, StageItems, StageEnemies, StageController,
		StageIntegrate, StageResolve, StageCombat, StageArena,
	}, s.Stages())
	assert.InDelta(t, 1.0/60.0, s.TickDuration(), 1e-6)
	assert.Equal(t, "demo", s.StageID())
}

func TestSimulation_SettlesOnSpawnFloor(t *testing.T) {
	s := createTestSimulation(t, "demo")

	run(s, 60, entity.Input{})

	st := s.State()
	assert.Equal(t, 60, st.Frame)
	assert.Equal(t, mgl32.Vec2{32, 16}, st.Position)
	assert.Equal(t, mgl32.Vec2{}, st.Velocity)
	assert.True(t, st.OnGround)
	assert.False(t, st.Blocked)
	assert.Equal(t, entity.StanceStanding, st.Stance)
	assert.Equal(t, entity.AnimIdle, st.Animation)
}

func TestSimulation_WalkRight(t *testing.T) {
	s := createTestSimulation(t, "demo")
	run(s, 2, entity.Input{})

	run(s, 30, entity.Input{X: 1})

	st := s.State()
	assert.Greater(t, st.Position.X(), float32(32))
	assert.Equal(t, float32(16), st.Position.Y())
	assert.Greater(t, st.Velocity.X(), float32(0))
	assert.LessOrEqual(t, st.Velocity.X(), float32(50))
	assert.True(t, s.World().MainPlayer().FacingRight)
	assert.Equal(t, entity.AnimWalk, st.Animation)
}

func TestSimulation_JumpAndLand(t *testing.T) {
	s := createTestSimulation(t, "demo")
	run(s, 2, entity.Input{})

	s.Step(entity.Input{JumpHeld: true})
	require.Equal(t, entity.AnimJump, s.State().Animation)

	peak := float32(16)
	for range 90 {
		s.Step(entity.Input{JumpHeld: true})
		peak = max(peak, s.State().Position.Y())
	}

	st := s.State()
	assert.Greater(t, peak, float32(36), "a walking jump clears about 25 units")
	assert.Equal(t, float32(16), st.Position.Y())
	assert.True(t, st.OnGround)
	assert.False(t, s.World().MainPlayer().Jumping)
	assert.Equal(t, entity.AnimIdle, st.Animation, "holding jump does not jump again")
}

func TestSimulation_JumpUnderLowCeiling(t *testing.T) {
	stage := &config.StageConfig{
		ID:          "attic",
		Name:        "Attic",
		TileSize:    16,
		PlayerSpawn: config.PositionConfig{X: 24, Y: 16},
		Layers: config.LayersConfig{
			Collision: []string{
				"#####",
				"#...#",
				"#...#",
				"#...#",
				"#####",
			},
		},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "ground", Solid: true},
		},
	}
	s, err := New(createTestGameConfig(t), stage, log.New(io.Discard))
	require.NoError(t, err)
	run(s, 2, entity.Input{})

	const ceiling = float32(64)
	var bumped bool
	for f := range 90 {
		s.Step(entity.Input{JumpHeld: true})
		p := s.World().MainPlayer()
		top := p.WorldBox().Top()

		assert.LessOrEqual(t, top, ceiling+3, "frame %d: head %.2f inside the ceiling", f, top)
		if p.Position.Y() > 17 {
			assert.False(t, p.OnGround, "frame %d: in the air", f)
			assert.False(t, p.Blocked, "frame %d: in the air", f)
		}
		if top >= ceiling-1 {
			bumped = true
		}
	}

	require.True(t, bumped, "the jump reaches the ceiling")
	st := s.State()
	assert.Equal(t, float32(16), st.Position.Y())
	assert.True(t, st.OnGround)
	assert.Equal(t, entity.StanceStanding, st.Stance)
}

func TestSimulation_GruntPatrols(t *testing.T) {
	s := createTestSimulation(t, "demo")
	require.Len(t, s.World().Enemies, 1)

	run(s, 60, entity.Input{})

	e := s.World().Enemies[0]
	assert.Less(t, e.Position.X(), float32(176))
	assert.Equal(t, float32(16), e.Position.Y())
	assert.True(t, e.OnGround)
	assert.Equal(t, float32(-30), e.Velocity.X())
}

func TestSimulation_CollectThenHazard(t *testing.T) {
	s, err := New(createTestGameConfig(t), createPickupStage(), log.New(io.Discard))
	require.NoError(t, err)
	require.Len(t, s.World().Items, 2)

	var collected, damaged bool
	for range 120 {
		s.Step(entity.Input{X: 1})
		for _, ev := range s.Events() {
			switch e := ev.(type) {
			case system.CollectEvent:
				collected = true
				assert.Equal(t, entity.KiStar, e.PowerUp)
			case system.DamageEvent:
				damaged = true
				assert.Equal(t, entity.KiArmor, e.Remaining)
			}
		}
		if damaged {
			break
		}
	}

	require.True(t, collected)
	require.True(t, damaged)
	p := s.World().MainPlayer()
	assert.Equal(t, entity.KiArmor, p.PowerUp)
	assert.Greater(t, p.Recovery, float32(0))
	require.Len(t, s.World().Items, 1, "the pickup is gone")
	assert.Equal(t, entity.ItemHazard, s.World().Items[0].Kind)
}

func TestSimulation_HazardRespawns(t *testing.T) {
	s, err := New(createTestGameConfig(t), createPickupStage(), log.New(io.Discard))
	require.NoError(t, err)
	// drop the pickup so the hazard finds the player empty-handed
	require.True(t, s.World().RemoveItem(s.World().Items[0].ID))

	var respawned *system.RespawnEvent
	for range 180 {
		s.Step(entity.Input{X: 1})
		for _, ev := range s.Events() {
			if e, ok := ev.(system.RespawnEvent); ok {
				respawned = &e
			}
		}
		if respawned != nil {
			break
		}
	}

	require.NotNil(t, respawned)
	assert.Equal(t, mgl32.Vec2{16, 16}, respawned.Spawn)
	// the rest of the tick ran after the respawn
	assert.InDelta(t, 16, s.State().Position.X(), 0.1)
	assert.Equal(t, float32(16), s.State().Position.Y())
	assert.Equal(t, entity.PowerUpNone, s.State().PowerUp)
}

func TestSimulation_Deterministic(t *testing.T) {
	script := func(frame int) entity.Input {
		switch {
		case frame < 40:
			return entity.Input{X: 1, RunHeld: true}
		case frame < 45:
			return entity.Input{X: 1, RunHeld: true, JumpHeld: true}
		case frame < 90:
			return entity.Input{X: -1}
		default:
			return entity.Input{Y: -1}
		}
	}

	digest := func() uint64 {
		s := createTestSimulation(t, "demo")
		for f := range 150 {
			s.Step(script(f))
		}
		return s.Digest()
	}

	first := digest()
	assert.Equal(t, first, digest())

	other := createTestSimulation(t, "demo")
	run(other, 150, entity.Input{})
	assert.NotEqual(t, first, other.Digest())
}

func TestSimulation_Reset(t *testing.T) {
	s := createTestSimulation(t, "demo")
	initial := s.Digest()

	run(s, 30, entity.Input{X: -1})
	require.NotEqual(t, initial, s.Digest())

	require.NoError(t, s.Reset())
	assert.Equal(t, 0, s.Frame())
	assert.Equal(t, initial, s.Digest())
	assert.Empty(t, s.Events())
}
