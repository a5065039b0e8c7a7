package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ManhattanMove returns the displacement that pushes other out of c along the
// shortest push on each axis. Both components may be non-zero; callers pick
// the axis. The second result is false when the boxes do not intersect.
//
// On each axis the push to the right (or up) wins a tie.
func (c Corners) ManhattanMove(other Corners) (mgl32.Vec2, bool) {
	if !c.Intersects(other) {
		return mgl32.Vec2{}, false
	}

	dx := c.Right() - other.Left()
	if left := c.Left() - other.Right(); abs32(left) < abs32(dx) {
		dx = left
	}

	dy := c.Top() - other.Bottom()
	if down := c.Bottom() - other.Top(); abs32(down) < abs32(dy) {
		dy = down
	}

	return mgl32.Vec2{dx, dy}, true
}

// Impact is the dominant direction of a trajectory.
type Impact int

const (
	ImpactDiagonal Impact = iota
	ImpactHorizontal
	ImpactVertical
)

func (i Impact) String() string {
	switch i {
	case ImpactDiagonal:
		return "Diagonal"
	case ImpactHorizontal:
		return "Horizontal"
	case ImpactVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// impactRatio is the share of the trajectory length one axis must exceed to
// count as the impact direction.
const impactRatio = 2.0 / 3.0

// ClassifyImpact labels a trajectory as mostly horizontal, mostly vertical or
// diagonal. A zero trajectory is diagonal.
func ClassifyImpact(trajectory mgl32.Vec2) Impact {
	hyp := trajectory.Len()
	switch {
	case abs32(trajectory.X()) > hyp*impactRatio:
		return ImpactHorizontal
	case abs32(trajectory.Y()) > hyp*impactRatio:
		return ImpactVertical
	default:
		return ImpactDiagonal
	}
}

// SelectEjection reduces a two-axis separating vector to the single axis the
// body should be pushed along. An upward push no deeper than landing is
// always taken as a landing. Otherwise the shorter push wins, except when
// the body was travelling along the longer push's axis: a horizontal impact
// is answered horizontally and a vertical impact vertically. Equal
// magnitudes are returned unchanged.
func SelectEjection(sep, trajectory mgl32.Vec2, landing float32) mgl32.Vec2 {
	if sep.Y() > 0 && sep.Y() <= landing {
		return mgl32.Vec2{0, sep.Y()}
	}

	ax, ay := abs32(sep.X()), abs32(sep.Y())
	impact := ClassifyImpact(trajectory)

	switch {
	case ax > ay:
		if impact == ImpactHorizontal {
			return mgl32.Vec2{sep.X(), 0}
		}
		return mgl32.Vec2{0, sep.Y()}
	case ay > ax:
		if impact == ImpactVertical {
			return mgl32.Vec2{0, sep.Y()}
		}
		return mgl32.Vec2{sep.X(), 0}
	default:
		return sep
	}
}

// Taxicab returns |x| + |y|.
func Taxicab(v mgl32.Vec2) float32 {
	return abs32(v.X()) + abs32(v.Y())
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
