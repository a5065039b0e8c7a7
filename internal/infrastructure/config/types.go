package config

// PhysicsConfig is the root config for physics.yaml. All distances are world
// units, speeds are units per second and accelerations units per second
// squared.
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display" yaml:"display"`
	Ground    GroundConfig    `json:"ground" yaml:"ground"`
	Air       AirConfig       `json:"air" yaml:"air"`
	Jump      JumpConfig      `json:"jump" yaml:"jump"`
	Climb     ClimbConfig     `json:"climb" yaml:"climb"`
	Collision CollisionConfig `json:"collision" yaml:"collision"`
	Hurt      HurtConfig      `json:"hurt" yaml:"hurt"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	TickRate     int `json:"tickRate" yaml:"tickRate"`
}

// GroundConfig tunes movement while standing or crouching on ground.
type GroundConfig struct {
	WalkAccel    float32 `json:"walkAccel" yaml:"walkAccel"`
	RunAccel     float32 `json:"runAccel" yaml:"runAccel"`
	Decel        float32 `json:"decel" yaml:"decel"` // also the turnaround assist
	WalkMaxSpeed float32 `json:"walkMaxSpeed" yaml:"walkMaxSpeed"`
	RunMaxSpeed  float32 `json:"runMaxSpeed" yaml:"runMaxSpeed"`
}

type AirConfig struct {
	FallAccel    float32 `json:"fallAccel" yaml:"fallAccel"` // applied downward
	MaxFallSpeed float32 `json:"maxFallSpeed" yaml:"maxFallSpeed"`
	ControlAccel float32 `json:"controlAccel" yaml:"controlAccel"`
}

type JumpConfig struct {
	WalkSpeed    float32 `json:"walkSpeed" yaml:"walkSpeed"`
	RunSpeed     float32 `json:"runSpeed" yaml:"runSpeed"`
	ClimbSpeed   float32 `json:"climbSpeed" yaml:"climbSpeed"`
	RunThreshold float32 `json:"runThreshold" yaml:"runThreshold"` // min |vx| for a running jump
}

type ClimbConfig struct {
	Accel    float32 `json:"accel" yaml:"accel"`
	Decel    float32 `json:"decel" yaml:"decel"`
	MaxSpeed float32 `json:"maxSpeed" yaml:"maxSpeed"`
}

type CollisionConfig struct {
	GroundProbe    float32 `json:"groundProbe" yaml:"groundProbe"`
	CeilingProbe   float32 `json:"ceilingProbe" yaml:"ceilingProbe"`
	SweepThreshold float32 `json:"sweepThreshold" yaml:"sweepThreshold"`
}

// HurtConfig tunes what happens when a hazard or enemy hits a player who
// survives.
type HurtConfig struct {
	BounceSpeed float32 `json:"bounceSpeed" yaml:"bounceSpeed"`
	Recovery    float32 `json:"recovery" yaml:"recovery"` // seconds of immunity
}

// TickDuration returns the fixed step in seconds.
func (c *PhysicsConfig) TickDuration() float32 {
	return 1 / float32(c.Display.TickRate)
}
