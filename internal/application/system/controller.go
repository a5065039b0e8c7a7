package system

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/ecs"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

// ControllerSystem turns intent and last tick's contacts into stance,
// velocity and animation.
type ControllerSystem struct {
	config *config.PhysicsConfig
	logger *log.Logger
}

// NewControllerSystem creates a new controller system
func NewControllerSystem(cfg *config.PhysicsConfig, logger *log.Logger) *ControllerSystem {
	return &ControllerSystem{
		config: cfg,
		logger: logger,
	}
}

// Update steps every player.
func (s *ControllerSystem) Update(w *ecs.World, dt float32) {
	for i := range w.Players {
		s.Step(&w.Players[i], dt)
	}
}

// Step runs one tick of the state machine for p. OnGround and Blocked are
// the resolver's results from the previous tick.
func (s *ControllerSystem) Step(p *entity.Player, dt float32) {
	if p.OnGround && p.Velocity.Y() <= 0 {
		p.Jumping = false
	}

	s.updateStance(p)
	s.tryJump(p)

	switch {
	case p.Stance == entity.StanceClimbing:
		s.climb(p, dt)
	case p.OnGround:
		s.walk(p, dt)
	default:
		s.fall(p, dt)
	}

	if p.Intent.X() > 0 {
		p.FacingRight = true
	} else if p.Intent.X() < 0 {
		p.FacingRight = false
	}
	p.Animation = s.animation(p)
}

func (s *ControllerSystem) updateStance(p *entity.Player) {
	if p.OnClimbable && p.Intent.Y() > 0 && p.Stance != entity.StanceClimbing && !p.JumpHeld {
		p.Stance = entity.StanceClimbing
		p.Velocity = mgl32.Vec2{}
		p.UseShape(entity.StanceClimbing)
		s.logger.Debug("climb", "player", p.ID, "x", p.Position.X(), "y", p.Position.Y())
		return
	}

	if p.Stance == entity.StanceClimbing {
		if !p.OnClimbable || (p.OnGround && p.Intent.Y() < 0) {
			p.Stance = entity.StanceStanding
		}
		return
	}

	if p.Blocked || ((p.OnGround || p.Stance == entity.StanceCrouching) && p.Intent.Y() < 0) {
		p.Stance = entity.StanceCrouching
	} else {
		p.Stance = entity.StanceStanding
	}
}

// tryJump fires a jump on the rising edge of the jump button. Running jumps
// take priority over grounded jumps, which take priority over climbing jumps.
func (s *ControllerSystem) tryJump(p *entity.Player) {
	if !p.JumpEdge || p.Blocked {
		return
	}

	jump := s.config.Jump
	vx := p.Velocity.X()
	switch {
	case p.OnGround && p.Running && sign(p.Intent.X()) == sign(vx) && absFloat(vx) >= jump.RunThreshold:
		p.Velocity[1] = jump.RunSpeed
	case p.OnGround:
		p.Velocity[1] = jump.WalkSpeed
	case p.Stance == entity.StanceClimbing:
		p.Velocity = mgl32.Vec2{p.Intent.X() * s.config.Climb.Accel, jump.ClimbSpeed}
	default:
		return
	}

	p.Jumping = true
	if p.Stance == entity.StanceClimbing {
		p.Stance = entity.StanceStanding
	}
}

func (s *ControllerSystem) climb(p *entity.Player, dt float32) {
	if p.Intent.X() == 0 && p.Intent.Y() == 0 {
		p.Velocity = mgl32.Vec2{}
		return
	}

	c := s.config.Climb
	for axis := range 2 {
		intent := p.Intent[axis]
		if intent == 0 {
			p.Velocity[axis] = Decelerate1D(p.Velocity[axis], c.Decel, dt)
			continue
		}
		limit := c.MaxSpeed * absFloat(intent)
		p.Velocity[axis] = clamp(Accelerate1D(p.Velocity[axis], intent*c.Accel, dt), -limit, limit)
	}
}

func (s *ControllerSystem) walk(p *entity.Player, dt float32) {
	g := s.config.Ground
	vx := p.Velocity.X()
	intent := p.Intent.X()

	if intent == 0 {
		p.Velocity[0] = Decelerate1D(vx, g.Decel, dt)
	} else {
		accel, limit := g.WalkAccel, g.WalkMaxSpeed
		if p.Running {
			accel, limit = g.RunAccel, g.RunMaxSpeed
		}
		if vx != 0 && sign(vx) != sign(intent) {
			accel += g.Decel
		}
		p.Velocity[0] = clamp(Accelerate1D(vx, intent*accel, dt), -limit, limit)
	}

	if p.Stance == entity.StanceCrouching {
		p.UseShape(entity.StanceCrouching)
	} else {
		p.UseShape(entity.StanceStanding)
	}
}

// fall applies gravity and air control. The box keeps its last preset.
func (s *ControllerSystem) fall(p *entity.Player, dt float32) {
	air := s.config.Air
	p.Velocity[1] = max(Accelerate1D(p.Velocity.Y(), -air.FallAccel, dt), -air.MaxFallSpeed)

	if intent := p.Intent.X(); intent != 0 {
		limit := s.config.Ground.RunMaxSpeed
		p.Velocity[0] = clamp(Accelerate1D(p.Velocity.X(), intent*air.ControlAccel, dt), -limit, limit)
	}
}

func (s *ControllerSystem) animation(p *entity.Player) entity.Animation {
	v := p.Velocity
	switch {
	case p.Stance == entity.StanceClimbing:
		if v.X() == 0 && v.Y() == 0 {
			return entity.AnimClimbIdle
		}
		return entity.AnimClimb
	case !p.OnGround || p.Jumping:
		if v.Y() > 0 {
			return entity.AnimJump
		}
		return entity.AnimFall
	case p.Stance == entity.StanceCrouching:
		if v.X() != 0 {
			return entity.AnimCrawl
		}
		return entity.AnimCrouch
	case p.Intent.X() != 0 && v.X() != 0 && sign(p.Intent.X()) != sign(v.X()):
		return entity.AnimSkid
	case p.Running && absFloat(v.X()) > s.config.Ground.WalkMaxSpeed:
		return entity.AnimRun
	case v.X() != 0:
		return entity.AnimWalk
	default:
		return entity.AnimIdle
	}
}
