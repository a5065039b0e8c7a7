package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
)

// StaticBox is an immovable collider placed in the world.
type StaticBox struct {
	ID       EntityID
	Shape    geometry.Corners
	Position mgl32.Vec2
}

// WorldBox returns the collider in world space.
func (s StaticBox) WorldBox() geometry.Corners {
	return s.Shape.Translate(s.Position)
}

// ShapeSet holds the local boxes a body swaps between by stance.
type ShapeSet struct {
	Standing  geometry.Corners
	Crouching geometry.Corners
	Climbing  geometry.Corners
}

// For returns the preset for a stance.
func (s ShapeSet) For(stance Stance) geometry.Corners {
	switch stance {
	case StanceCrouching:
		return s.Crouching
	case StanceClimbing:
		return s.Climbing
	default:
		return s.Standing
	}
}

// Body represents the physical body of an actor.
// Shape is local to Position; velocity is in units per second.
type Body struct {
	Shape    geometry.Corners
	Shapes   ShapeSet
	Position mgl32.Vec2
	Velocity mgl32.Vec2

	// Contact flags, written by the collision pass.
	OnGround bool
	Blocked  bool
}

// WorldBox returns the body's box at its current position.
func (b *Body) WorldBox() geometry.Corners {
	return b.Shape.Translate(b.Position)
}

// UseShape swaps the local box to the preset for stance.
func (b *Body) UseShape(stance Stance) {
	b.Shape = b.Shapes.For(stance)
}

