package geometry

import "github.com/go-gl/mathgl/mgl32"

// Segment is a line segment from A to B.
type Segment struct {
	A, B mgl32.Vec2
}

// Direction returns B - A.
func (s Segment) Direction() mgl32.Vec2 { return s.B.Sub(s.A) }

// ParallelMode controls how collinear overlapping segments are reported.
type ParallelMode int

const (
	// ParallelIntersects reports collinear overlap as IntersectEverywhere.
	ParallelIntersects ParallelMode = iota
	// ParallelDoesNotIntersect reports collinear overlap as IntersectNone.
	ParallelDoesNotIntersect
)

// IntersectionKind classifies the result of SegmentIntersection.
type IntersectionKind int

const (
	IntersectNone IntersectionKind = iota
	IntersectPoint
	IntersectEverywhere
)

func (k IntersectionKind) String() string {
	switch k {
	case IntersectNone:
		return "None"
	case IntersectPoint:
		return "Point"
	case IntersectEverywhere:
		return "Everywhere"
	default:
		return "Unknown"
	}
}

// Intersection is the result of intersecting two segments. For
// IntersectEverywhere, Point is the first point of the overlap along the
// first segment. T is the position of Point along the first segment, 0 at A
// and 1 at B.
type Intersection struct {
	Kind  IntersectionKind
	Point mgl32.Vec2
	T     float32
}

// Hit reports whether the segments share at least one point.
func (i Intersection) Hit() bool { return i.Kind != IntersectNone }

// SegmentIntersection intersects s0 with s1.
//
// Zero-length segments have no direction; they fall through the parallel
// branch and produce NaN parameters, which compare false and report None.
func SegmentIntersection(s0, s1 Segment, mode ParallelMode) Intersection {
	r := s0.Direction()
	s := s1.Direction()
	qp := s1.A.Sub(s0.A)
	denom := cross(r, s)

	if denom == 0 {
		if cross(qp, r) != 0 || mode == ParallelDoesNotIntersect {
			return Intersection{}
		}
		rr := r.Dot(r)
		t0 := qp.Dot(r) / rr
		t1 := t0 + s.Dot(r)/rr
		lo, hi := min(t0, t1), max(t0, t1)
		if hi < 0 || lo > 1 || !(hi >= 0) {
			return Intersection{}
		}
		t := max(lo, 0)
		return Intersection{Kind: IntersectEverywhere, Point: s0.A.Add(r.Mul(t)), T: t}
	}

	t := cross(qp, s) / denom
	u := cross(qp, r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Intersection{}
	}
	return Intersection{Kind: IntersectPoint, Point: s0.A.Add(r.Mul(t)), T: t}
}

func cross(a, b mgl32.Vec2) float32 {
	return a.X()*b.Y() - a.Y()*b.X()
}
