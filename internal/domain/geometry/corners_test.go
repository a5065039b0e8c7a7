package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCorners_Normalizes(t *testing.T) {
	c := NewCorners(10, 20, 0, 5)

	assert.Equal(t, mgl32.Vec2{0, 5}, c.BottomLeft)
	assert.Equal(t, mgl32.Vec2{10, 20}, c.TopRight)
}

func TestCorners_Accessors(t *testing.T) {
	c := NewCorners(4, 0, 12, 15.5)

	assert.Equal(t, float32(4), c.Left())
	assert.Equal(t, float32(12), c.Right())
	assert.Equal(t, float32(0), c.Bottom())
	assert.Equal(t, float32(15.5), c.Top())
	assert.Equal(t, float32(8), c.XMidpoint())
	assert.Equal(t, float32(7.75), c.YMidpoint())
	assert.Equal(t, float32(8), c.Width())
	assert.Equal(t, float32(15.5), c.Height())
	assert.Equal(t, mgl32.Vec2{12, 0}, c.BottomRight())
	assert.Equal(t, mgl32.Vec2{4, 15.5}, c.TopLeft())
	assert.Equal(t, mgl32.Vec2{8, 15.5}, c.TopCenter())
}

func TestCorners_Edges(t *testing.T) {
	c := NewCorners(0, 0, 2, 1)
	edges := c.Edges()

	assert.Equal(t, Segment{mgl32.Vec2{0, 0}, mgl32.Vec2{2, 0}}, edges[0], "bottom")
	assert.Equal(t, Segment{mgl32.Vec2{2, 0}, mgl32.Vec2{2, 1}}, edges[1], "right")
	assert.Equal(t, Segment{mgl32.Vec2{0, 1}, mgl32.Vec2{2, 1}}, edges[2], "top")
	assert.Equal(t, Segment{mgl32.Vec2{0, 0}, mgl32.Vec2{0, 1}}, edges[3], "left")
}

func TestCorners_TranslateRoundTrip(t *testing.T) {
	boxes := []Corners{
		NewCorners(0, 0, 16, 16),
		NewCorners(-3.5, 2, 4, 31.5),
		NewCorners(128, 32, 144, 56),
	}
	offsets := []mgl32.Vec2{
		{0, 0},
		{1, -1},
		{0.25, 16},
		{-200, 48},
	}

	for _, box := range boxes {
		for _, v := range offsets {
			got := box.Translate(v).Translate(v.Mul(-1))
			assert.Equal(t, box, got, "box %v offset %v", box, v)
		}
	}
}

func TestCorners_ContainsOwnCorners(t *testing.T) {
	c := NewCorners(4, 0, 12, 15.5)

	for _, p := range c.Points() {
		assert.True(t, c.Contains(p), "corner %v", p)
	}
	assert.True(t, c.Contains(mgl32.Vec2{8, 8}))
	assert.False(t, c.Contains(mgl32.Vec2{12.01, 8}))
	assert.False(t, c.Contains(mgl32.Vec2{8, -0.01}))
}

func TestCorners_Intersects(t *testing.T) {
	base := NewCorners(0, 0, 16, 16)

	tests := []struct {
		name  string
		other Corners
		want  bool
	}{
		{"overlapping", NewCorners(8, 8, 24, 24), true},
		{"contained", NewCorners(4, 4, 8, 8), true},
		{"sharing right edge", NewCorners(16, 0, 32, 16), false},
		{"sharing top edge", NewCorners(0, 16, 16, 32), false},
		{"disjoint left", NewCorners(-20, 0, -4, 16), false},
		{"disjoint below", NewCorners(0, -20, 16, -1), false},
		{"thin overlap", NewCorners(15.9, -5, 40, 0.1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, base.Intersects(tt.other), tt.other.Intersects(base), "symmetry")
		})
	}
}

func TestCorners_Union(t *testing.T) {
	a := NewCorners(0, 0, 4, 4)
	b := NewCorners(10, -2, 12, 3)

	assert.Equal(t, NewCorners(0, -2, 12, 4), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))
}

func TestCorners_ContainsBox(t *testing.T) {
	outer := NewCorners(0, 0, 200, 200)

	assert.True(t, outer.ContainsBox(NewCorners(0, 0, 16, 32)))
	assert.False(t, outer.ContainsBox(NewCorners(190, 0, 206, 32)))
}
