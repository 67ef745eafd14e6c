package simulate

import (
	"math"

	"github.com/nstehr/kickoff/model"
)

// BallParams are the physical constants of the ball model.
type BallParams struct {
	Radius      float64
	Gravity     float64
	Drag        float64 // linear drag coefficient, per second
	Restitution float64 // normal speed retained after a bounce
	Mu          float64 // tangential friction on bounce
	Y           float64 // friction saturation factor
	A           float64 // spin coupling on bounce
}

// DefaultBallParams matches the standard soccar ball.
func DefaultBallParams() BallParams {
	return BallParams{
		Radius:      BallRadius,
		Gravity:     Gravity,
		Drag:        -0.0305,
		Restitution: 0.6,
		Mu:          0.285,
		Y:           2.0,
		A:           0.0003,
	}
}

// Ball integrates the ball forward in fixed steps. Boundary crossings are
// detected at step granularity: there is no sub-stepping to the exact contact
// instant.
type Ball struct {
	Params BallParams
	loc    model.Vec3
	vel    model.Vec3
	angVel model.Vec3
}

// NewBall starts a simulation from the given state.
func NewBall(loc, vel, angVel model.Vec3) *Ball {
	return &Ball{Params: DefaultBallParams(), loc: loc, vel: vel, angVel: angVel}
}

func (b *Ball) Loc() model.Vec3    { return b.loc }
func (b *Ball) Vel() model.Vec3    { return b.vel }
func (b *Ball) AngVel() model.Vec3 { return b.angVel }

// Step advances the ball by dt seconds.
func (b *Ball) Step(dt float64) {
	p := b.Params
	accel := b.vel.Mul(p.Drag).Add(model.Vec3{0, 0, p.Gravity})
	b.vel = limit(b.vel.Add(accel.Mul(dt)), BallMaxSpeed)
	b.loc = b.loc.Add(b.vel.Mul(dt))

	for _, plane := range b.planes() {
		depth := plane.offset - b.loc.Dot(plane.normal)
		if depth <= 0 || b.vel.Dot(plane.normal) >= 0 {
			continue
		}
		b.bounce(plane.normal)
		b.loc = b.loc.Add(plane.normal.Mul(depth))
	}
}

type plane struct {
	normal model.Vec3
	offset float64 // ball center must satisfy loc·normal >= offset
}

func (b *Ball) planes() [6]plane {
	r := b.Params.Radius
	return [6]plane{
		{model.Vec3{0, 0, 1}, r},
		{model.Vec3{0, 0, -1}, r - CeilingZ},
		{model.Vec3{1, 0, 0}, r - FieldMaxX},
		{model.Vec3{-1, 0, 0}, r - FieldMaxX},
		{model.Vec3{0, 1, 0}, r - FieldMaxY},
		{model.Vec3{0, -1, 0}, r - FieldMaxY},
	}
}

// bounce applies the restitution and friction response against a surface
// with normal n.
func (b *Ball) bounce(n model.Vec3) {
	p := b.Params
	vPerp := n.Mul(b.vel.Dot(n))
	vPara := b.vel.Sub(vPerp)
	vSpin := n.Cross(b.angVel).Mul(p.Radius)
	s := vPara.Add(vSpin)

	dvPerp := vPerp.Mul(-(1 + p.Restitution))
	dvPara := model.Vec3{}
	if sLen := s.Len(); sLen > 0 {
		ratio := vPerp.Len() / sLen
		dvPara = s.Mul(-math.Min(1, p.Y*ratio) * p.Mu)
	}

	b.angVel = limit(b.angVel.Add(dvPara.Cross(n).Mul(p.A*p.Radius)), BallMaxAngSpeed)
	b.vel = b.vel.Add(dvPerp).Add(dvPara)
}

func limit(v model.Vec3, max float64) model.Vec3 {
	if l := v.Len(); l > max {
		return v.Mul(max / l)
	}
	return v
}
