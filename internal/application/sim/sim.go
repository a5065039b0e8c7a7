// Package sim runs the fixed-step simulation: input translation, item and
// enemy contact, the character controller, integration, collision resolution
// and the arena clamp, in that order, once per tick.
package sim

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kraemahz/ninja-force/internal/application/system"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/ecs"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

// Stage names in execution order.
const (
	StageInput      = "input"
	StageItems      = "items"
	StageEnemies    = "enemies"
	StageController = "controller"
	StageIntegrate  = "integrate"
	StageResolve    = "resolve"
	StageCombat     = "combat"
	StageArena      = "arena"
)

// Simulation owns one world and the pipeline that advances it.
type Simulation struct {
	config   *config.GameConfig
	stageCfg *config.StageConfig
	logger   *log.Logger

	world    *ecs.World
	pipeline *ecs.Pipeline
	items    *system.ItemSystem
	combat   *system.CombatSystem

	dt     float32
	frame  int
	inputs []entity.Input
	events []system.Event
}

// State is the main player's state after a tick.
type State struct {
	Frame     int
	Position  mgl32.Vec2
	Velocity  mgl32.Vec2
	Stance    entity.Stance
	Animation entity.Animation
	OnGround  bool
	Blocked   bool
	PowerUp   entity.PowerUp
}

// New validates the configs and builds a world from the stage.
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, logger *log.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := stageCfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		config:   cfg,
		stageCfg: stageCfg,
		logger:   logger,
		dt:       cfg.Physics.TickDuration(),
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset rebuilds the world from the stage and starts again at frame 0.
func (s *Simulation) Reset() error {
	w, err := system.BuildWorld(s.stageCfg, s.config.Entities)
	if err != nil {
		return fmt.Errorf("failed to build stage %s: %w", s.stageCfg.ID, err)
	}

	physics := s.config.Physics
	s.items = system.NewItemSystem(physics, s.logger)
	s.combat = system.NewCombatSystem(physics, s.logger)
	enemies := system.NewEnemySystem(physics)
	controller := system.NewControllerSystem(physics, s.logger)
	integrator := system.NewIntegratorSystem(physics, s.logger)
	collision := system.NewCollisionSystem(physics, s.logger)
	arena := system.NewArenaSystem()

	s.pipeline = ecs.NewPipeline(
		ecs.Stage{Name: StageInput, Run: func(w *ecs.World, _ float32) { system.ApplyInputs(w, s.inputs) }},
		ecs.Stage{Name: StageItems, Run: s.items.Update},
		ecs.Stage{Name: StageEnemies, Run: enemies.Update},
		ecs.Stage{Name: StageController, Run: controller.Update},
		ecs.Stage{Name: StageIntegrate, Run: integrator.Update},
		ecs.Stage{Name: StageResolve, Run: collision.Update},
		ecs.Stage{Name: StageCombat, Run: s.combat.Update},
		ecs.Stage{Name: StageArena, Run: arena.Update},
	)

	s.world = w
	s.frame = 0
	s.inputs = nil
	s.events = nil

	s.logger.Debug("stage built", "stage", s.stageCfg.ID, "statics", len(w.Statics),
		"items", len(w.Items), "enemies", len(w.Enemies))
	return nil
}

// Step advances one tick. inputs[i] drives the i-th player; players without
// an entry get no input.
func (s *Simulation) Step(inputs ...entity.Input) {
	s.inputs = inputs
	s.pipeline.Tick(s.world, s.dt)
	s.inputs = nil
	s.frame++

	s.events = append(s.events, s.items.Drain()...)
	s.events = append(s.events, s.combat.Drain()...)
}

// Events returns and clears the events raised since the last call, in tick
// order.
func (s *Simulation) Events() []system.Event {
	events := s.events
	s.events = nil
	return events
}

// World exposes the world for rendering and inspection.
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Stages lists the pipeline's stage names in execution order.
func (s *Simulation) Stages() []string {
	return s.pipeline.Names()
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() *config.GameConfig {
	return s.config
}

// Frame is the number of ticks run since the last reset.
func (s *Simulation) Frame() int {
	return s.frame
}

// TickDuration is the fixed step in seconds.
func (s *Simulation) TickDuration() float32 {
	return s.dt
}

// StageID is the id of the stage the world was built from.
func (s *Simulation) StageID() string {
	return s.stageCfg.ID
}

// State reports the main player's state.
func (s *Simulation) State() State {
	p := s.world.MainPlayer()
	if p == nil {
		return State{Frame: s.frame}
	}
	return State{
		Frame:     s.frame,
		Position:  p.Position,
		Velocity:  p.Velocity,
		Stance:    p.Stance,
		Animation: p.Animation,
		OnGround:  p.OnGround,
		Blocked:   p.Blocked,
		PowerUp:   p.PowerUp,
	}
}

// Digest hashes every dynamic body and the remaining items. Two runs over
// the same stage and inputs produce the same digest.
func (s *Simulation) Digest() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "F:%d;", s.frame)

	fmt.Fprintf(h, "P:")
	for _, p := range s.world.Players {
		fmt.Fprintf(h, "%d:%x:%x:%x:%x:%d:%d:%v:%v:%d,", p.ID,
			bits(p.Position.X()), bits(p.Position.Y()), bits(p.Velocity.X()), bits(p.Velocity.Y()),
			p.Stance, p.Animation, p.OnGround, p.Blocked, p.PowerUp)
	}

	fmt.Fprintf(h, ";E:")
	for _, e := range s.world.Enemies {
		fmt.Fprintf(h, "%d:%x:%x:%x:%x,", e.ID,
			bits(e.Position.X()), bits(e.Position.Y()), bits(e.Velocity.X()), bits(e.Velocity.Y()))
	}

	fmt.Fprintf(h, ";I:")
	for _, it := range s.world.Items {
		fmt.Fprintf(h, "%d,", it.ID)
	}
	return h.Sum64()
}

func bits(v float32) uint32 {
	return math.Float32bits(v)
}
