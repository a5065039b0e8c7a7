package system

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/ecs"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

// EnemySystem drives enemy patrols. Grunts walk in their patrol direction,
// turn when a wall bounces them back and fall when unsupported.
type EnemySystem struct {
	config *config.PhysicsConfig
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.PhysicsConfig) *EnemySystem {
	return &EnemySystem{config: cfg}
}

// Update steps every enemy.
func (s *EnemySystem) Update(w *ecs.World, dt float32) {
	for i := range w.Enemies {
		s.Step(&w.Enemies[i], dt)
	}
}

// Step runs one tick of an enemy's patrol.
func (s *EnemySystem) Step(e *entity.Enemy, dt float32) {
	vx := e.Velocity.X()
	// the resolver reverses velocity on a wall hit
	if vx != 0 && sign(vx) != e.PatrolDir {
		e.Turn()
	}
	e.Velocity[0] = clamp(Accelerate1D(vx, e.PatrolDir*e.Accel, dt), -e.MaxSpeed, e.MaxSpeed)

	if !e.OnGround {
		e.Velocity[1] = max(Accelerate1D(e.Velocity.Y(), -e.FallAccel, dt), -s.config.Air.MaxFallSpeed)
	}
}

// CombatSystem handles contact between players and enemies. A player
// falling onto the upper half of an enemy defeats it; any other contact hurts
// the player.
type CombatSystem struct {
	eventLog
	config *config.PhysicsConfig
	logger *log.Logger
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.PhysicsConfig, logger *log.Logger) *CombatSystem {
	return &CombatSystem{
		config: cfg,
		logger: logger,
	}
}

// Update checks every player against every enemy.
func (s *CombatSystem) Update(w *ecs.World, _ float32) {
	var defeated []entity.EntityID

players:
	for i := range w.Players {
		p := &w.Players[i]
		box := p.WorldBox()

		for _, e := range w.Enemies {
			target := e.WorldBox()
			if slices.Contains(defeated, e.ID) || !box.Intersects(target) {
				continue
			}

			if p.Velocity.Y() < 0 && box.Bottom() >= target.YMidpoint() {
				defeated = append(defeated, e.ID)
				p.Velocity[1] = s.config.Hurt.BounceSpeed
				p.Jumping = true
				s.emit(StompEvent{Player: p.ID, Enemy: e.ID})
				s.logger.Debug("stomp", "player", p.ID, "enemy", e.ID)
				continue
			}

			if hurt(w, p, s.config.Hurt, &s.eventLog, s.logger) {
				continue players
			}
		}
	}

	for _, id := range defeated {
		w.RemoveEnemy(id)
	}
}
