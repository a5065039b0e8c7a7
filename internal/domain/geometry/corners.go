// Package geometry provides axis-aligned box primitives in a y-up world.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// Corners is an axis-aligned box described by its bottom-left and top-right
// points. BottomLeft is never greater than TopRight on either axis.
type Corners struct {
	BottomLeft mgl32.Vec2
	TopRight   mgl32.Vec2
}

// NewCorners builds a box from two corner coordinates, normalizing them so
// the invariant holds regardless of argument order.
func NewCorners(x0, y0, x1, y1 float32) Corners {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Corners{
		BottomLeft: mgl32.Vec2{x0, y0},
		TopRight:   mgl32.Vec2{x1, y1},
	}
}

// FromSize builds a box with its bottom-left corner at (x, y).
func FromSize(x, y, w, h float32) Corners {
	return NewCorners(x, y, x+w, y+h)
}

func (c Corners) Left() float32   { return c.BottomLeft.X() }
func (c Corners) Right() float32  { return c.TopRight.X() }
func (c Corners) Bottom() float32 { return c.BottomLeft.Y() }
func (c Corners) Top() float32    { return c.TopRight.Y() }

func (c Corners) BottomRight() mgl32.Vec2 { return mgl32.Vec2{c.Right(), c.Bottom()} }
func (c Corners) TopLeft() mgl32.Vec2     { return mgl32.Vec2{c.Left(), c.Top()} }

// XMidpoint returns the horizontal center of the box.
func (c Corners) XMidpoint() float32 { return (c.Left() + c.Right()) / 2 }

// YMidpoint returns the vertical center of the box.
func (c Corners) YMidpoint() float32 { return (c.Bottom() + c.Top()) / 2 }

// TopCenter is the midpoint of the top edge.
func (c Corners) TopCenter() mgl32.Vec2 { return mgl32.Vec2{c.XMidpoint(), c.Top()} }

func (c Corners) Width() float32  { return c.Right() - c.Left() }
func (c Corners) Height() float32 { return c.Top() - c.Bottom() }

// Points returns the four corners in the order bottom-left, bottom-right,
// top-left, top-right.
func (c Corners) Points() [4]mgl32.Vec2 {
	return [4]mgl32.Vec2{c.BottomLeft, c.BottomRight(), c.TopLeft(), c.TopRight}
}

// Edges returns the four edges in the order bottom, right, top, left.
func (c Corners) Edges() [4]Segment {
	return [4]Segment{
		{c.BottomLeft, c.BottomRight()},
		{c.BottomRight(), c.TopRight},
		{c.TopLeft(), c.TopRight},
		{c.BottomLeft, c.TopLeft()},
	}
}

// Translate returns the box moved by offset.
func (c Corners) Translate(offset mgl32.Vec2) Corners {
	return Corners{
		BottomLeft: c.BottomLeft.Add(offset),
		TopRight:   c.TopRight.Add(offset),
	}
}

// Contains reports whether p lies inside the box. Edges count as inside.
func (c Corners) Contains(p mgl32.Vec2) bool {
	return p.X() >= c.Left() && p.X() <= c.Right() &&
		p.Y() >= c.Bottom() && p.Y() <= c.Top()
}

// ContainsBox reports whether o lies entirely inside c.
func (c Corners) ContainsBox(o Corners) bool {
	return c.Contains(o.BottomLeft) && c.Contains(o.TopRight)
}

// Intersects reports whether the boxes overlap with non-zero area. Boxes that
// only share an edge do not intersect.
func (c Corners) Intersects(o Corners) bool {
	return !(c.Left() >= o.Right() ||
		c.Right() <= o.Left() ||
		c.Top() <= o.Bottom() ||
		c.Bottom() >= o.Top())
}

// Union returns the smallest box containing both c and o.
func (c Corners) Union(o Corners) Corners {
	return Corners{
		BottomLeft: mgl32.Vec2{min(c.Left(), o.Left()), min(c.Bottom(), o.Bottom())},
		TopRight:   mgl32.Vec2{max(c.Right(), o.Right()), max(c.Top(), o.Top())},
	}
}
