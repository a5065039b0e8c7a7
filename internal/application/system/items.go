package system

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/ecs"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

// ItemSystem handles player contact with item volumes: climbable contact,
// power-up pickup and hazards.
type ItemSystem struct {
	eventLog
	config *config.PhysicsConfig
	logger *log.Logger
}

// NewItemSystem creates a new item system
func NewItemSystem(cfg *config.PhysicsConfig, logger *log.Logger) *ItemSystem {
	return &ItemSystem{
		config: cfg,
		logger: logger,
	}
}

// Update checks every player against every item.
func (s *ItemSystem) Update(w *ecs.World, dt float32) {
	var collected []entity.EntityID

players:
	for i := range w.Players {
		p := &w.Players[i]
		p.OnClimbable = false
		p.Recovery = max(p.Recovery-dt, 0)
		box := p.WorldBox()

		for _, it := range w.Items {
			if !it.Box.Intersects(box) {
				continue
			}
			switch it.Kind {
			case entity.ItemClimbable:
				p.OnClimbable = true
			case entity.ItemCollectable:
				if slices.Contains(collected, it.ID) {
					continue
				}
				if p.Collect(it.PowerUp) {
					s.logger.Debug("power-up", "player", p.ID, "powerUp", it.PowerUp)
				}
				collected = append(collected, it.ID)
				s.emit(CollectEvent{Player: p.ID, Item: it.ID, PowerUp: it.PowerUp})
			case entity.ItemHazard:
				if hurt(w, p, s.config.Hurt, &s.eventLog, s.logger) {
					// the player moved; remaining items are tested next tick
					continue players
				}
			}
		}
	}

	for _, id := range collected {
		w.RemoveItem(id)
	}
}
