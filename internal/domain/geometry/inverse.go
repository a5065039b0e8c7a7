package geometry

import "github.com/go-gl/mathgl/mgl32"

// InverseBox is a rectangle whose outside is solid. It keeps actors inside an
// arena.
type InverseBox struct {
	Bounds Corners
}

// NewInverseBox wraps bounds as an arena.
func NewInverseBox(bounds Corners) InverseBox {
	return InverseBox{Bounds: bounds}
}

// Contains reports whether p is in the solid region, that is outside Bounds.
func (b InverseBox) Contains(p mgl32.Vec2) bool {
	return !b.Bounds.Contains(p)
}

// Intersects reports whether any part of box pokes out of Bounds.
func (b InverseBox) Intersects(box Corners) bool {
	return !b.Bounds.ContainsBox(box)
}

// PushBack returns the displacement that brings box back inside Bounds, axis
// by axis, toward the nearest interior edge. A box larger than Bounds on an
// axis is aligned with the low edge. The second result is false when box is
// already inside.
func (b InverseBox) PushBack(box Corners) (mgl32.Vec2, bool) {
	if !b.Intersects(box) {
		return mgl32.Vec2{}, false
	}
	dx := pushInside(box.Left(), box.Right(), b.Bounds.Left(), b.Bounds.Right())
	dy := pushInside(box.Bottom(), box.Top(), b.Bounds.Bottom(), b.Bounds.Top())
	return mgl32.Vec2{dx, dy}, true
}

func pushInside(lo, hi, minEdge, maxEdge float32) float32 {
	switch {
	case lo < minEdge:
		return minEdge - lo
	case hi > maxEdge:
		return maxEdge - hi
	default:
		return 0
	}
}
