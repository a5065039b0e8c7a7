package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
)

// EnemyKind selects an enemy's behavior
type EnemyKind int

const (
	EnemyGrunt EnemyKind = iota
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyGrunt:
		return "grunt"
	default:
		return "unknown"
	}
}

// ParseEnemyKind maps a config name to an EnemyKind.
func ParseEnemyKind(name string) (EnemyKind, bool) {
	switch name {
	case "grunt":
		return EnemyGrunt, true
	default:
		return EnemyGrunt, false
	}
}

// Enemy represents an enemy entity. It is a dynamic body like the player
// and goes through the same integrator and resolver.
type Enemy struct {
	ID EntityID
	Body
	Kind EnemyKind

	// Tunables
	MaxSpeed  float32
	Accel     float32
	FallAccel float32

	// PatrolDir is -1 or 1.
	PatrolDir float32
}

// NewEnemy creates a new enemy walking left. Enemies have one box for
// every stance.
func NewEnemy(id EntityID, kind EnemyKind, spawn mgl32.Vec2, shape geometry.Corners) *Enemy {
	return &Enemy{
		ID:   id,
		Kind: kind,
		Body: Body{
			Shape:    shape,
			Shapes:   ShapeSet{Standing: shape, Crouching: shape, Climbing: shape},
			Position: spawn,
		},
		PatrolDir: -1,
	}
}

// Turn reverses the patrol direction
func (e *Enemy) Turn() {
	e.PatrolDir = -e.PatrolDir
}

// FacingRight reports whether the enemy patrols to the right.
func (e *Enemy) FacingRight() bool {
	return e.PatrolDir > 0
}
