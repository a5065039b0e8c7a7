package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
	"github.com/kraemahz/ninja-force/internal/ecs"
)

// ArenaSystem keeps bodies inside the world's arena. A body that leaves it
// is pushed back to the nearest interior edge and stopped.
type ArenaSystem struct{}

// NewArenaSystem creates a new arena system
func NewArenaSystem() *ArenaSystem {
	return &ArenaSystem{}
}

// Update clamps every player and enemy. Worlds without an arena are left
// alone.
func (s *ArenaSystem) Update(w *ecs.World, _ float32) {
	if w.Arena == nil {
		return
	}
	for i := range w.Players {
		s.clamp(w.Arena, &w.Players[i].Body)
	}
	for i := range w.Enemies {
		e := &w.Enemies[i]
		// enemies turn back toward the inside
		if push := s.clamp(w.Arena, &e.Body); push.X() != 0 {
			e.PatrolDir = sign(push.X())
		}
	}
}

func (s *ArenaSystem) clamp(arena *geometry.InverseBox, b *entity.Body) mgl32.Vec2 {
	push, ok := arena.PushBack(b.WorldBox())
	if !ok {
		return mgl32.Vec2{}
	}
	b.Position = b.Position.Add(push)
	b.Velocity[0], b.Velocity[1] = 0, 0
	return push
}
