package entity

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Stance is the controller's primary state.
type Stance int

const (
	StanceStanding Stance = iota
	StanceCrouching
	StanceClimbing
)

func (s Stance) String() string {
	switch s {
	case StanceStanding:
		return "Standing"
	case StanceCrouching:
		return "Crouching"
	case StanceClimbing:
		return "Climbing"
	default:
		return "Unknown"
	}
}

// Animation is a rendering hint recomputed every tick from the physical state.
type Animation int

const (
	AnimIdle Animation = iota
	AnimWalk
	AnimRun
	AnimSkid
	AnimCrouch
	AnimCrawl
	AnimJump
	AnimFall
	AnimClimbIdle
	AnimClimb
)

func (a Animation) String() string {
	switch a {
	case AnimIdle:
		return "Idle"
	case AnimWalk:
		return "Walk"
	case AnimRun:
		return "Run"
	case AnimSkid:
		return "Skid"
	case AnimCrouch:
		return "Crouch"
	case AnimCrawl:
		return "Crawl"
	case AnimJump:
		return "Jump"
	case AnimFall:
		return "Fall"
	case AnimClimbIdle:
		return "ClimbIdle"
	case AnimClimb:
		return "Climb"
	default:
		return "Unknown"
	}
}

// Input is one tick of player intent as produced by an input device or a
// replay. X and Y are in [-1, 1].
type Input struct {
	X, Y     float32
	JumpHeld bool
	RunHeld  bool
}

// Player is a controllable actor.
type Player struct {
	ID EntityID
	Body

	Stance    Stance
	Animation Animation

	// Written by input translation.
	Intent   mgl32.Vec2
	Running  bool
	JumpHeld bool
	JumpEdge bool

	// Jumping is set when a jump fires and cleared on landing.
	Jumping     bool
	FacingRight bool

	// OnClimbable is set each tick by the item pass.
	OnClimbable bool
	PowerUp     PowerUp

	// Recovery counts down the seconds of immunity after a hit.
	Recovery float32
}

// NewPlayer creates a standing player at spawn using the given presets.
func NewPlayer(id EntityID, spawn mgl32.Vec2, shapes ShapeSet) *Player {
	return &Player{
		ID: id,
		Body: Body{
			Shape:    shapes.Standing,
			Shapes:   shapes,
			Position: spawn,
		},
		FacingRight: true,
	}
}

// ApplyInput records this tick's intent. The jump edge is true only on the
// first tick the jump button is held.
func (p *Player) ApplyInput(in Input) {
	p.Intent = mgl32.Vec2{clampUnit(in.X), clampUnit(in.Y)}
	p.Running = in.RunHeld
	p.JumpEdge = in.JumpHeld && !p.JumpHeld
	p.JumpHeld = in.JumpHeld
}

// Respawn puts the player back at spawn with no velocity, contacts or power-up.
func (p *Player) Respawn(spawn mgl32.Vec2) {
	p.Position = spawn
	p.Velocity = mgl32.Vec2{}
	p.OnGround = false
	p.Blocked = false
	p.Stance = StanceStanding
	p.Shape = p.Shapes.Standing
	p.Animation = AnimIdle
	p.Jumping = false
	p.OnClimbable = false
	p.PowerUp = PowerUpNone
	p.Recovery = 0
}

func clampUnit(v float32) float32 {
	return min(max(v, -1), 1)
}
