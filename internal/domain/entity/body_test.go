package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraemahz/ninja-force/internal/domain/geometry"
)

func createTestShapes() ShapeSet {
	return ShapeSet{
		Standing:  geometry.NewCorners(4, 0, 12, 31.5),
		Crouching: geometry.NewCorners(4, 0, 12, 15.5),
		Climbing:  geometry.NewCorners(3, 0, 13, 30),
	}
}

func TestShapeSet_For(t *testing.T) {
	shapes := createTestShapes()

	tests := []struct {
		stance Stance
		want   geometry.Corners
	}{
		{StanceStanding, shapes.Standing},
		{StanceCrouching, shapes.Crouching},
		{StanceClimbing, shapes.Climbing},
	}

	for _, tt := range tests {
		t.Run(tt.stance.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, shapes.For(tt.stance))
		})
	}
}

func TestBody_WorldBox(t *testing.T) {
	b := Body{
		Shape:    geometry.NewCorners(4, 0, 12, 15.5),
		Position: mgl32.Vec2{100, 16},
	}

	box := b.WorldBox()
	assert.Equal(t, float32(104), box.Left())
	assert.Equal(t, float32(112), box.Right())
	assert.Equal(t, float32(16), box.Bottom())
	assert.Equal(t, float32(31.5), box.Top())
}

func TestBody_UseShapeSwapsWithoutResizing(t *testing.T) {
	shapes := createTestShapes()
	b := Body{Shape: shapes.Standing, Shapes: shapes}

	b.UseShape(StanceCrouching)
	assert.Equal(t, shapes.Crouching, b.Shape)

	b.UseShape(StanceStanding)
	assert.Equal(t, shapes.Standing, b.Shape)
}

func TestStaticBox_WorldBox(t *testing.T) {
	s := StaticBox{
		ID:       1,
		Shape:    geometry.NewCorners(0, 0, 16, 24),
		Position: mgl32.Vec2{128, 32},
	}

	assert.Equal(t, geometry.NewCorners(128, 32, 144, 56), s.WorldBox())
}

func TestNewPlayer(t *testing.T) {
	shapes := createTestShapes()
	p := NewPlayer(7, mgl32.Vec2{48, 16}, shapes)
	require.NotNil(t, p)

	assert.Equal(t, EntityID(7), p.ID)
	assert.Equal(t, StanceStanding, p.Stance)
	assert.Equal(t, shapes.Standing, p.Shape)
	assert.Equal(t, mgl32.Vec2{48, 16}, p.Position)
	assert.True(t, p.FacingRight)
}

func TestPlayer_ApplyInput(t *testing.T) {
	p := NewPlayer(1, mgl32.Vec2{}, createTestShapes())

	p.ApplyInput(Input{X: 2, Y: -0.5, JumpHeld: true, RunHeld: true})
	assert.Equal(t, mgl32.Vec2{1, -0.5}, p.Intent, "intent is clamped to [-1,1]")
	assert.True(t, p.Running)
	assert.True(t, p.JumpEdge, "first held tick is a rising edge")

	p.ApplyInput(Input{JumpHeld: true})
	assert.False(t, p.JumpEdge, "held jump is not an edge")
	assert.False(t, p.Running)

	p.ApplyInput(Input{})
	p.ApplyInput(Input{JumpHeld: true})
	assert.True(t, p.JumpEdge, "release then press is an edge again")
}

func TestPlayer_Respawn(t *testing.T) {
	shapes := createTestShapes()
	p := NewPlayer(1, mgl32.Vec2{}, shapes)
	p.Position = mgl32.Vec2{90, 90}
	p.Velocity = mgl32.Vec2{10, -10}
	p.Stance = StanceClimbing
	p.Shape = shapes.Climbing
	p.PowerUp = KiBlade

	p.Respawn(mgl32.Vec2{48, 16})

	assert.Equal(t, mgl32.Vec2{48, 16}, p.Position)
	assert.Equal(t, mgl32.Vec2{}, p.Velocity)
	assert.Equal(t, StanceStanding, p.Stance)
	assert.Equal(t, shapes.Standing, p.Shape)
	assert.Equal(t, PowerUpNone, p.PowerUp)
}
