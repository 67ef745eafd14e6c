package model

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is the world-space vector used throughout the bot. Units are uu
// (unreal units) and uu/s.
type Vec3 = mgl64.Vec3

// Vec2 is a ground-plane vector.
type Vec2 = mgl64.Vec2

// GameState is the per-tick snapshot delivered by the game-state adapter.
// The bot treats it as read-only for the duration of a tick.
type GameState struct {
	Tick        int     `json:"tick"`
	TimeSeconds float64 `json:"timeSeconds"`
	Cars        []Car   `json:"cars"`
	Ball        Ball    `json:"ball"`
	Kickoff     bool    `json:"kickoff"`
}

// Physics is the rigid-body state of a car or the ball.
type Physics struct {
	Loc    Vec3     `json:"loc"`
	Rot    Rotation `json:"rot"`
	Vel    Vec3     `json:"vel"`
	AngVel Vec3     `json:"angVel"`
}

// Rotation is pitch/yaw/roll in radians.
type Rotation struct {
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
	Roll  float64 `json:"roll"`
}

// Car is one car in the snapshot.
type Car struct {
	Index    int     `json:"index"`
	Team     Team    `json:"team"`
	Physics  Physics `json:"physics"`
	Boost    float64 `json:"boost"`
	OnGround bool    `json:"onGround"`
}

// Ball is the ball in the snapshot.
type Ball struct {
	Physics Physics `json:"physics"`
}

// Forward returns the unit vector the car's nose points along.
func (p Physics) Forward() Vec3 {
	cp, sp := cosSin(p.Rot.Pitch)
	cy, sy := cosSin(p.Rot.Yaw)
	return Vec3{cp * cy, cp * sy, sp}
}

// Speed2D is the ground-plane speed.
func (p Physics) Speed2D() float64 {
	return p.Vel.Vec2().Len()
}

// ControlOutput is the fixed control schema sent back to the host each tick.
// The zero value is the neutral output.
type ControlOutput struct {
	Throttle  float64 `json:"throttle"`
	Steer     float64 `json:"steer"`
	Pitch     float64 `json:"pitch"`
	Yaw       float64 `json:"yaw"`
	Roll      float64 `json:"roll"`
	Jump      bool    `json:"jump"`
	Boost     bool    `json:"boost"`
	Handbrake bool    `json:"handbrake"`
}

// Clamp bounds the continuous axes to [-1, 1].
func (c ControlOutput) Clamp() ControlOutput {
	c.Throttle = clampUnit(c.Throttle)
	c.Steer = clampUnit(c.Steer)
	c.Pitch = clampUnit(c.Pitch)
	c.Yaw = clampUnit(c.Yaw)
	c.Roll = clampUnit(c.Roll)
	return c
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
