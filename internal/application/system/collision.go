package system

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
	"github.com/kraemahz/ninja-force/internal/ecs"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

// Contacts is what one resolution pass learned about a body.
type Contacts struct {
	Ground   bool
	Ceiling  bool
	Headroom bool
	// Candidates are ejection vectors, one per overlapping collider, in
	// collider order.
	Candidates []mgl32.Vec2
}

// Cramped reports whether the body is wedged between floor and ceiling.
func (c Contacts) Cramped() bool {
	return c.Ground && c.Ceiling && (c.Headroom || len(c.Candidates) > 0)
}

// CollisionSystem pushes players out of static colliders and writes their
// OnGround and Blocked flags.
type CollisionSystem struct {
	config *config.CollisionConfig
	logger *log.Logger
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg *config.PhysicsConfig, logger *log.Logger) *CollisionSystem {
	return &CollisionSystem{
		config: &cfg.Collision,
		logger: logger,
	}
}

// Update resolves every player in handle order, then every enemy. A
// cramped player ends the pass: no body after it is resolved this tick.
func (s *CollisionSystem) Update(w *ecs.World, dt float32) {
	for i := range w.Players {
		p := &w.Players[i]
		if s.Resolve(p, w.Statics, dt) {
			s.logger.Debug("cramped, resolution pass stopped",
				"player", p.ID, "x", p.Position.X(), "y", p.Position.Y(),
				"skipped", len(w.Players)-i-1+len(w.Enemies))
			return
		}
	}
	for i := range w.Enemies {
		s.ResolveBody(&w.Enemies[i].Body, w.Statics, dt)
	}
}

// Resolve corrects one player against statics after a tick of dt and reports
// whether it was cramped.
func (s *CollisionSystem) Resolve(p *entity.Player, statics []entity.StaticBox, dt float32) bool {
	contacts := s.Probe(&p.Body, statics)
	p.OnGround = contacts.Ground

	if contacts.Cramped() {
		p.Stance = entity.StanceCrouching
		p.Blocked = true
		p.UseShape(entity.StanceCrouching)
		return true
	}
	p.Blocked = false

	if s.eject(&p.Body, contacts.Candidates, dt) {
		p.Jumping = false
	}
	return false
}

// ResolveBody corrects a body with no stance. It is never cramped.
func (s *CollisionSystem) ResolveBody(b *entity.Body, statics []entity.StaticBox, dt float32) {
	contacts := s.Probe(b, statics)
	b.OnGround = contacts.Ground
	b.Blocked = false
	s.eject(b, contacts.Candidates, dt)
}

// eject applies the best candidate to b and reports whether b landed. An
// upward push no deeper than this tick's fall plus the ground probe is a
// landing whatever the trajectory.
func (s *CollisionSystem) eject(b *entity.Body, candidates []mgl32.Vec2, dt float32) bool {
	move, ok := pickCandidate(candidates)
	if !ok {
		return false
	}
	landing := max(-b.Velocity.Y()*dt, 0) + s.config.GroundProbe
	move = geometry.SelectEjection(move, b.Velocity, landing)

	switch {
	case move.Y() > 0:
		b.Position[1] = round(b.Position.Y() + move.Y())
		b.Velocity[1] = max(b.Velocity.Y(), 0)
		return true
	case move.Y() < 0:
		b.Position[1] += move.Y()
		b.Velocity[1] = -b.Velocity.Y()
	default:
		b.Position[0] += move.X()
		b.Velocity[0] = -b.Velocity.X() / 2
	}
	return false
}

// Probe gathers contacts for b at its current, uncommitted position. Ground
// is the strip just under the feet, so a head inside a ceiling is not ground.
func (s *CollisionSystem) Probe(b *entity.Body, statics []entity.StaticBox) Contacts {
	box := b.WorldBox()
	up := mgl32.Vec2{0, s.config.CeilingProbe}
	ceiling := box.TopCenter().Add(up)
	headroom := b.Shapes.Crouching.Translate(b.Position).TopCenter().Add(up)
	ground := geometry.NewCorners(box.Left(), box.Bottom()-s.config.GroundProbe, box.Right(), box.Bottom())

	var c Contacts
	for _, st := range statics {
		target := st.WorldBox()
		if target.Intersects(ground) {
			c.Ground = true
		}
		if target.Contains(headroom) {
			c.Headroom = true
		}
		if target.Contains(ceiling) {
			c.Ceiling = true
		}
		if sep, ok := box.ManhattanMove(target); ok {
			c.Candidates = append(c.Candidates, sep.Mul(-1))
		}
	}
	return c
}

// pickCandidate returns the candidate with the smallest taxicab length; the
// earliest wins ties.
func pickCandidate(candidates []mgl32.Vec2) (mgl32.Vec2, bool) {
	if len(candidates) == 0 {
		return mgl32.Vec2{}, false
	}
	best := candidates[0]
	bestLen := geometry.Taxicab(best)
	for _, c := range candidates[1:] {
		if l := geometry.Taxicab(c); l < bestLen {
			best, bestLen = c, l
		}
	}
	return best, true
}
