package playing

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kraemahz/ninja-force/internal/domain/geometry"
	"github.com/kraemahz/ninja-force/internal/ecs"
)

// camera maps y-up world coordinates to y-down screen pixels. x and y are
// the world position of the screen's bottom-left corner.
type camera struct {
	x, y float32
	w, h float32
}

// newCamera centers the view on focus without leaving bounds. A world
// smaller than the view is centered instead.
func newCamera(bounds geometry.Corners, focus mgl32.Vec2, screenW, screenH int) camera {
	c := camera{w: float32(screenW), h: float32(screenH)}
	c.x = follow(focus.X(), c.w, bounds.Left(), bounds.Right())
	c.y = follow(focus.Y(), c.h, bounds.Bottom(), bounds.Top())
	return c
}

func follow(focus, size, lo, hi float32) float32 {
	if hi-lo <= size {
		return lo - (size-(hi-lo))/2
	}
	return min(max(focus-size/2, lo), hi-size)
}

// rect returns box in screen space as top-left corner and size.
func (c camera) rect(box geometry.Corners) (x, y, w, h float32) {
	return box.Left() - c.x, c.h - (box.Top() - c.y), box.Width(), box.Height()
}

// worldBounds is the area the camera may show: the tile grid, else the
// arena, else the extent of the colliders.
func worldBounds(w *ecs.World) geometry.Corners {
	switch {
	case w.Stage != nil:
		return w.Stage.Bounds()
	case w.Arena != nil:
		return w.Arena.Bounds
	case len(w.Statics) > 0:
		b := w.Statics[0].WorldBox()
		for _, st := range w.Statics[1:] {
			b = b.Union(st.WorldBox())
		}
		return b
	default:
		return geometry.Corners{}
	}
}
