package system

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
	"github.com/kraemahz/ninja-force/internal/ecs"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

// SweepHit is the first corner ray that crossed a collider edge.
type SweepHit struct {
	Static   entity.EntityID
	Point    mgl32.Vec2
	Fraction float32
}

// IntegratorSystem moves bodies by their velocity. Displacements longer than
// the sweep threshold are ray cast so thin colliders cannot be skipped.
type IntegratorSystem struct {
	config *config.CollisionConfig
	logger *log.Logger
}

// NewIntegratorSystem creates a new integrator
func NewIntegratorSystem(cfg *config.PhysicsConfig, logger *log.Logger) *IntegratorSystem {
	return &IntegratorSystem{
		config: &cfg.Collision,
		logger: logger,
	}
}

// Update integrates every player, then every enemy.
func (s *IntegratorSystem) Update(w *ecs.World, dt float32) {
	for i := range w.Players {
		s.Integrate(&w.Players[i].Body, w.Statics, dt)
	}
	for i := range w.Enemies {
		s.Integrate(&w.Enemies[i].Body, w.Statics, dt)
	}
}

// Integrate advances b by one tick.
func (s *IntegratorSystem) Integrate(b *entity.Body, statics []entity.StaticBox, dt float32) {
	d := b.Velocity.Mul(dt)
	if d.Len() <= s.config.SweepThreshold {
		b.Position = b.Position.Add(d)
		return
	}

	hit, ok := Sweep(b.WorldBox(), d, statics)
	if !ok {
		b.Position = b.Position.Add(d)
		return
	}

	var v mgl32.Vec2
	switch geometry.ClassifyImpact(d) {
	case geometry.ImpactHorizontal:
		v = reflect(b.Velocity, true, false)
	case geometry.ImpactVertical:
		v = reflect(b.Velocity, false, true)
	default:
		v = reflect(b.Velocity, true, true)
	}
	v = v.Mul(0.5)

	remaining := dt * (1 - hit.Fraction)
	b.Position = b.Position.Add(d.Mul(hit.Fraction)).Add(v.Mul(remaining))
	b.Velocity = v

	s.logger.Debug("sweep hit", "static", hit.Static, "fraction", hit.Fraction,
		"vx", v.X(), "vy", v.Y())
}

// Sweep casts the four corners of box along d against every collider that
// overlaps the broad-phase union of the start and end boxes. Colliders are
// tried in order, then corners bottom-left, bottom-right, top-left,
// top-right; the first ray that crosses an edge returns its nearest
// crossing. Rays running along an edge do not count.
func Sweep(box geometry.Corners, d mgl32.Vec2, statics []entity.StaticBox) (SweepHit, bool) {
	broad := box.Union(box.Translate(d))
	corners := box.Points()

	for _, st := range statics {
		target := st.WorldBox()
		if !broad.Intersects(target) {
			continue
		}
		edges := target.Edges()
		for _, c := range corners {
			ray := geometry.Segment{A: c, B: c.Add(d)}
			best := geometry.Intersection{}
			for _, e := range edges {
				hit := geometry.SegmentIntersection(ray, e, geometry.ParallelDoesNotIntersect)
				if hit.Kind == geometry.IntersectPoint && (!best.Hit() || hit.T < best.T) {
					best = hit
				}
			}
			if best.Hit() {
				return SweepHit{Static: st.ID, Point: best.Point, Fraction: best.T}, true
			}
		}
	}
	return SweepHit{}, false
}
