package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks both configs and reports every problem at once.
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Physics == nil {
		errs = append(errs, errors.New("physics config missing"))
	} else if err := c.Physics.validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Entities == nil {
		errs = append(errs, errors.New("entities config missing"))
	} else if err := c.Entities.validate(); err != nil {
		errs = append(errs, err)
	}
	return wrapInvalid(errs)
}

// Validate rejects any non-positive speed, acceleration, probe distance or
// tick rate.
func (c *PhysicsConfig) Validate() error {
	return wrapInvalid([]error{c.validate()})
}

func (c *PhysicsConfig) validate() error {
	var v validator
	v.positiveInt("display.tickRate", c.Display.TickRate)

	v.positive("ground.walkAccel", c.Ground.WalkAccel)
	v.positive("ground.runAccel", c.Ground.RunAccel)
	v.positive("ground.decel", c.Ground.Decel)
	v.positive("ground.walkMaxSpeed", c.Ground.WalkMaxSpeed)
	v.positive("ground.runMaxSpeed", c.Ground.RunMaxSpeed)

	v.positive("air.fallAccel", c.Air.FallAccel)
	v.positive("air.maxFallSpeed", c.Air.MaxFallSpeed)
	v.positive("air.controlAccel", c.Air.ControlAccel)

	v.positive("jump.walkSpeed", c.Jump.WalkSpeed)
	v.positive("jump.runSpeed", c.Jump.RunSpeed)
	v.positive("jump.climbSpeed", c.Jump.ClimbSpeed)
	v.positive("jump.runThreshold", c.Jump.RunThreshold)

	v.positive("climb.accel", c.Climb.Accel)
	v.positive("climb.decel", c.Climb.Decel)
	v.positive("climb.maxSpeed", c.Climb.MaxSpeed)

	v.positive("collision.groundProbe", c.Collision.GroundProbe)
	v.positive("collision.ceilingProbe", c.Collision.CeilingProbe)
	v.positive("collision.sweepThreshold", c.Collision.SweepThreshold)

	v.positive("hurt.bounceSpeed", c.Hurt.BounceSpeed)
	v.positive("hurt.recovery", c.Hurt.Recovery)
	return v.err()
}

// Validate rejects empty or inverted boxes.
func (c *EntitiesConfig) Validate() error {
	return wrapInvalid([]error{c.validate()})
}

func (c *EntitiesConfig) validate() error {
	var v validator
	v.box("player.shapes.standing", c.Player.Shapes.Standing)
	v.box("player.shapes.crouching", c.Player.Shapes.Crouching)
	v.box("player.shapes.climbing", c.Player.Shapes.Climbing)
	v.box("items.climbable", c.Items.Climbable)
	v.box("items.pickup", c.Items.Pickup)
	v.box("items.hazard", c.Items.Hazard)
	v.box("enemies.grunt", c.Enemies.Grunt)
	return v.err()
}

// Validate checks the parts of a stage that do not need the tile mapping
// resolved.
func (c *StageConfig) Validate() error {
	var v validator
	v.positiveInt("tileSize", c.TileSize)
	if len(c.Layers.Collision) == 0 {
		v.add("layers.collision: no rows")
	}
	for key := range c.TileMapping {
		if utf8.RuneCountInString(key) != 1 {
			v.add(fmt.Sprintf("tileMapping: key %q must be a single character", key))
		}
	}
	if c.Arena != nil {
		v.box("arena", *c.Arena)
	}
	for i, b := range c.Blocks {
		v.box(fmt.Sprintf("blocks[%d].box", i), b.Box)
	}
	for i, it := range c.Items {
		v.box(fmt.Sprintf("items[%d].box", i), it.Box)
	}
	for i, e := range c.Enemies {
		v.positive(fmt.Sprintf("enemies[%d].maxSpeed", i), e.MaxSpeed)
		v.positive(fmt.Sprintf("enemies[%d].accel", i), e.Accel)
		v.positive(fmt.Sprintf("enemies[%d].fallAccel", i), e.FallAccel)
	}
	return wrapInvalid([]error{v.err()})
}

type validator struct {
	errs []error
}

func (v *validator) add(msg string) {
	v.errs = append(v.errs, errors.New(msg))
}

func (v *validator) positive(field string, value float32) {
	if !(value > 0) {
		v.add(fmt.Sprintf("%s must be > 0, got %v", field, value))
	}
}

func (v *validator) positiveInt(field string, value int) {
	if value <= 0 {
		v.add(fmt.Sprintf("%s must be > 0, got %d", field, value))
	}
}

func (v *validator) box(field string, b BoxConfig) {
	if !b.Valid() {
		v.add(fmt.Sprintf("%s: bottomLeft %v must be below and left of topRight %v", field, b.BottomLeft, b.TopRight))
	}
}

func (v *validator) err() error {
	return errors.Join(v.errs...)
}

func wrapInvalid(errs []error) error {
	err := errors.Join(errs...)
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}
