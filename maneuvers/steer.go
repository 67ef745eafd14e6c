// Package maneuvers holds the leaf behaviors the strategy layer composes.
package maneuvers

import (
	"math"

	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/simulate"
)

// NormalizeAngle wraps a to (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

func angleOf(v model.Vec2) float64 {
	return math.Atan2(v.Y(), v.X())
}

// YawDiff is the signed yaw the car must turn to face target.
func YawDiff(p model.Physics, target model.Vec2) float64 {
	return NormalizeAngle(angleOf(target.Sub(p.Loc.Vec2())) - p.Rot.Yaw)
}

// SteerTowards drives at full throttle towards target, sliding on sharp turns.
func SteerTowards(p model.Physics, target model.Vec2) model.ControlOutput {
	diff := YawDiff(p, target)
	return model.ControlOutput{
		Throttle:  1,
		Steer:     diff * 2,
		Handbrake: math.Abs(diff) > math.Pi/2 && p.Speed2D() > 500,
	}.Clamp()
}

// AccelTowards steers to target while pacing speed to arrive in arriveIn
// seconds. Boost is used only when the required speed exceeds the throttle
// cap.
func AccelTowards(p model.Physics, target model.Vec2, arriveIn float64, boost float64) model.ControlOutput {
	out := SteerTowards(p, target)
	if arriveIn <= 0 {
		out.Boost = boost > 0
		return out
	}

	needed := target.Sub(p.Loc.Vec2()).Len() / arriveIn
	speed := p.Speed2D()
	switch {
	case speed < needed:
		out.Throttle = 1
		out.Boost = boost > 0 && needed > 1410 && math.Abs(YawDiff(p, target)) < math.Pi/6
	case speed > needed+200:
		out.Throttle = -1
	default:
		out.Throttle = simulate.LinearInterpolate([]float64{0, 200}, []float64{1, 0}, speed-needed)
	}
	return out
}

// shotAngle is how far the car's approach deviates from the ball-to-aim line.
func shotAngle(ballLoc, carLoc model.Vec3, aim model.Vec2) float64 {
	approach := angleOf(ballLoc.Vec2().Sub(carLoc.Vec2()))
	shot := angleOf(aim.Sub(ballLoc.Vec2()))
	return math.Abs(NormalizeAngle(approach - shot))
}

// goalAngle is the angle between the goal's normal and the goal-to-ball axis.
func goalAngle(ballLoc model.Vec3, goal model.Goal) float64 {
	axis := ballLoc.Vec2().Sub(goal.Center2D)
	if axis.Len() == 0 {
		return 0
	}
	cos := axis.Normalize().Dot(goal.Normal2D)
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// threatensGoal reports whether the ball center is at a goal mouth.
func threatensGoal(goal model.Goal, loc model.Vec3) bool {
	depth := loc.Vec2().Sub(goal.Center2D).Dot(goal.Normal2D)
	return depth < simulate.BallRadius*1.5 && math.Abs(loc.X()) < model.GoalHalfW
}

// behindBall returns a point dist past the ball on the far side from aim.
func behindBall(ball model.Vec2, aim model.Vec2, dist float64) model.Vec2 {
	d := ball.Sub(aim)
	if d.Len() == 0 {
		return ball
	}
	return ball.Add(d.Normalize().Mul(dist))
}
