// Package predict estimates when and where a car can meet the ball.
package predict

import (
	"math"

	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/simulate"
)

// Predicate encodes caller-specific acceptance of a simulated ball state. It
// must be pure and cheap: it runs once per simulated step.
type Predicate func(t float64, loc, vel model.Vec3) bool

// Intercept is the estimated meeting point. It is recomputed on every call.
type Intercept struct {
	Time     float64
	BallLoc  model.Vec3
	BallVel  model.Vec3
	CarLoc   model.Vec3 // where the car should put its own center
	CarSpeed float64
	// Found is false when the horizon ran out; the other fields then hold the
	// last simulated step and should be treated as low confidence.
	Found bool
}

// Estimator runs the ball and car models in lockstep.
type Estimator struct {
	DT    float64
	Steps int
	// Radii is subtracted from the center distance so the car and ball
	// meshes just touch.
	Radii float64
}

// DefaultEstimator looks ahead 200 steps of 1/60s.
func DefaultEstimator() Estimator {
	return Estimator{DT: simulate.DT, Steps: 200, Radii: 240}
}

// Degraded reports whether e ran out of horizon without finding a meeting
// point, leaving i at the last simulated step.
func (i Intercept) Degraded(e Estimator) bool {
	return !i.Found && i.Time >= e.Horizon()
}

// Horizon is the longest look-ahead time the estimator will return.
func (e Estimator) Horizon() float64 {
	return float64(e.Steps) * e.DT
}

// EstimateIntercept uses DefaultEstimator.
func EstimateIntercept(car model.Car, ball model.Ball, pred Predicate) Intercept {
	return DefaultEstimator().Estimate(car, ball, pred)
}

// GroundIntercept accepts any ball state low enough to hit from the ground.
func GroundIntercept(car model.Car, ball model.Ball) Intercept {
	return EstimateIntercept(car, ball, func(_ float64, loc, _ model.Vec3) bool {
		return loc.Z() < 110
	})
}

// Estimate returns the earliest step where pred holds and the car's
// straight-line reach covers the distance to the ball. If no such step exists
// within the horizon the last step is returned with Found unset.
func (e Estimator) Estimate(car model.Car, ball model.Ball, pred Predicate) Intercept {
	carLoc := car.Physics.Loc
	simCar := simulate.NewCar1D(car.Physics.Vel.Len()).WithBoost(car.Boost)
	simBall := simulate.NewBall(ball.Physics.Loc, ball.Physics.Vel, ball.Physics.AngVel)

	t := 0.0
	found := false
	for i := 1; i <= e.Steps; i++ {
		t = float64(i) * e.DT
		simBall.Step(e.DT)
		simCar.Step(e.DT, 1, true)

		if !pred(t, simBall.Loc(), simBall.Vel()) {
			continue
		}

		target := simBall.Loc().Sub(carLoc).Len() - e.Radii
		if simCar.DistanceTraveled() >= target {
			found = true
			break
		}
	}

	return Intercept{
		Time:     t,
		BallLoc:  simBall.Loc(),
		BallVel:  simBall.Vel(),
		CarLoc:   contactLoc(simBall.Loc(), carLoc, e.Radii),
		CarSpeed: simCar.Speed(),
		Found:    found,
	}
}

func contactLoc(ballLoc, carLoc model.Vec3, radii float64) model.Vec3 {
	d := ballLoc.Sub(carLoc)
	l := d.Len()
	if l == 0 {
		return ballLoc
	}
	return ballLoc.Sub(d.Mul(radii / l))
}

// IsSaneBallLoc rejects predictions that left the field.
func IsSaneBallLoc(loc model.Vec3) bool {
	return math.Abs(loc.X()) < model.FieldMaxX && math.Abs(loc.Y()) < model.FieldMaxY
}
