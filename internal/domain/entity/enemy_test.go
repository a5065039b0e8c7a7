package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraemahz/ninja-force/internal/domain/geometry"
)

func TestNewEnemy(t *testing.T) {
	box := geometry.NewCorners(2, 0, 14, 14)
	enemy := NewEnemy(7, EnemyGrunt, mgl32.Vec2{100, 16}, box)

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(7), enemy.ID)
	assert.Equal(t, EnemyGrunt, enemy.Kind)
	assert.Equal(t, box, enemy.Shape)
	assert.Equal(t, box, enemy.Shapes.Crouching)
	assert.Equal(t, float32(-1), enemy.PatrolDir)
	assert.False(t, enemy.FacingRight())
	assert.Equal(t, geometry.NewCorners(102, 16, 114, 30), enemy.WorldBox())
}

func TestEnemy_Turn(t *testing.T) {
	enemy := NewEnemy(1, EnemyGrunt, mgl32.Vec2{}, geometry.NewCorners(0, 0, 8, 8))

	enemy.Turn()
	assert.True(t, enemy.FacingRight())

	enemy.Turn()
	assert.False(t, enemy.FacingRight())
}

func TestParseEnemyKind(t *testing.T) {
	kind, ok := ParseEnemyKind("grunt")
	assert.True(t, ok)
	assert.Equal(t, EnemyGrunt, kind)
	assert.Equal(t, "grunt", kind.String())

	_, ok = ParseEnemyKind("dragon")
	assert.False(t, ok)
}
