// Package simulate holds the two forward models used for intercept
// estimation: a ball trajectory integrator with boundary bounces and a 1-D
// longitudinal car model.
package simulate

import "github.com/nstehr/kickoff/model"

// DT is the fixed simulation step shared by Ball and Car1D.
const DT = 1.0 / 60.0

const (
	BallRadius = 91.25
	Gravity    = -650.0

	BallMaxSpeed    = 6000.0
	BallMaxAngSpeed = 6.0

	CarMaxSpeed       = 2300.0
	CarBoostAccel     = 991.666
	CarBoostDepletion = 100.0 / 3.0 // per second
)

// Arena bounds for the ball center.
const (
	FieldMaxX = model.FieldMaxX
	FieldMaxY = model.FieldMaxY
	CeilingZ  = model.CeilingZ
)

// LinearInterpolate maps x through the piecewise-linear curve defined by xs
// and ys. xs must be ascending. Values outside the curve clamp to the ends.
func LinearInterpolate(xs, ys []float64, x float64) float64 {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	for i := 1; i < len(xs); i++ {
		if x < xs[i] {
			t := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + (ys[i]-ys[i-1])*t
		}
	}
	return ys[len(ys)-1]
}
