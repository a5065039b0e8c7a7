package system

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kraemahz/ninja-force/internal/domain/entity"
	"github.com/kraemahz/ninja-force/internal/domain/geometry"
	"github.com/kraemahz/ninja-force/internal/infrastructure/config"
)

const testDT = float32(1.0 / 60.0)

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Display: config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Scale: 2, TickRate: 60},
		Ground: config.GroundConfig{
			WalkAccel:    110,
			RunAccel:     220,
			Decel:        260,
			WalkMaxSpeed: 50,
			RunMaxSpeed:  100,
		},
		Air:       config.AirConfig{FallAccel: 440, MaxFallSpeed: 240, ControlAccel: 110},
		Jump:      config.JumpConfig{WalkSpeed: 150, RunSpeed: 225, ClimbSpeed: 120, RunThreshold: 40},
		Climb:     config.ClimbConfig{Accel: 200, Decel: 400, MaxSpeed: 40},
		Collision: config.CollisionConfig{GroundProbe: 0.1, CeilingProbe: 1, SweepThreshold: 8},
		Hurt:      config.HurtConfig{BounceSpeed: 150, Recovery: 1},
	}
}

func createTestShapes() entity.ShapeSet {
	return entity.ShapeSet{
		Standing:  geometry.NewCorners(4, 0, 12, 31.5),
		Crouching: geometry.NewCorners(4, 0, 12, 15.5),
		Climbing:  geometry.NewCorners(3, 0, 13, 30),
	}
}

func createTestPlayer(x, y float32) *entity.Player {
	return entity.NewPlayer(1, mgl32.Vec2{x, y}, createTestShapes())
}

func createTestLogger() *log.Logger {
	return log.New(io.Discard)
}

// static builds a collider whose world box is (x0,y0)-(x1,y1).
func static(id entity.EntityID, x0, y0, x1, y1 float32) entity.StaticBox {
	return entity.StaticBox{
		ID:       id,
		Shape:    geometry.NewCorners(0, 0, x1-x0, y1-y0),
		Position: mgl32.Vec2{x0, y0},
	}
}

func createTestGrunt(x, y float32) entity.Enemy {
	e := entity.NewEnemy(0, entity.EnemyGrunt, mgl32.Vec2{x, y}, geometry.NewCorners(2, 0, 14, 14))
	e.MaxSpeed = 30
	e.Accel = 120
	e.FallAccel = 440
	return *e
}
