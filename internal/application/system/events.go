package system

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/ecs"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

// Event is something gameplay-visible that happened during a tick.
type Event interface {
	isEvent()
}

// CollectEvent is emitted when a player picks up a power-up.
type CollectEvent struct {
	Player  entity.EntityID
	Item    entity.EntityID
	PowerUp entity.PowerUp
}

func (CollectEvent) isEvent() {}

// DamageEvent is emitted when a player survives a hazard. Remaining is the
// power-up held after the hit.
type DamageEvent struct {
	Player    entity.EntityID
	Remaining entity.PowerUp
}

func (DamageEvent) isEvent() {}

// RespawnEvent is emitted when a hazard kills a player.
type RespawnEvent struct {
	Player entity.EntityID
	Spawn  mgl32.Vec2
}

func (RespawnEvent) isEvent() {}

// StompEvent is emitted when a player lands on an enemy and defeats it.
type StompEvent struct {
	Player entity.EntityID
	Enemy  entity.EntityID
}

func (StompEvent) isEvent() {}

type eventLog struct {
	events []Event
}

func (l *eventLog) emit(e Event) {
	l.events = append(l.events, e)
}

// Drain returns and clears the events gathered since the last call.
func (l *eventLog) Drain() []Event {
	events := l.events
	l.events = nil
	return events
}

// hurt applies one hit to p and reports whether p died and respawned. A
// recovering player is not hit. Survivors bounce upward and start recovering.
func hurt(w *ecs.World, p *entity.Player, cfg config.HurtConfig, events *eventLog, logger *log.Logger) bool {
	if p.Recovery > 0 {
		return false
	}
	if p.Damage() {
		p.Velocity[1] = cfg.BounceSpeed
		p.Jumping = true
		p.Recovery = cfg.Recovery
		events.emit(DamageEvent{Player: p.ID, Remaining: p.PowerUp})
		logger.Debug("hit", "player", p.ID, "remaining", p.PowerUp)
		return false
	}

	spawn := spawnPoint(w)
	p.Respawn(spawn)
	events.emit(RespawnEvent{Player: p.ID, Spawn: spawn})
	logger.Debug("respawn", "player", p.ID, "x", spawn.X(), "y", spawn.Y())
	return true
}

func spawnPoint(w *ecs.World) mgl32.Vec2 {
	if w.Stage == nil {
		return mgl32.Vec2{}
	}
	return w.Stage.Spawn
}
