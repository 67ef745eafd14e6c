package predict

import (
	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/simulate"
)

// Frame is one sampled ball state.
type Frame struct {
	T   float64
	Loc model.Vec3
	Vel model.Vec3
}

// BallTrajectory samples the ball model for steps steps of dt.
func BallTrajectory(ball model.Ball, steps int, dt float64) []Frame {
	sim := simulate.NewBall(ball.Physics.Loc, ball.Physics.Vel, ball.Physics.AngVel)
	frames := make([]Frame, 0, steps)
	for i := 1; i <= steps; i++ {
		sim.Step(dt)
		frames = append(frames, Frame{T: float64(i) * dt, Loc: sim.Loc(), Vel: sim.Vel()})
	}
	return frames
}

// FirstMatch returns the first frame satisfying pred.
func FirstMatch(frames []Frame, pred Predicate) (Frame, bool) {
	for _, f := range frames {
		if pred(f.T, f.Loc, f.Vel) {
			return f, true
		}
	}
	return Frame{}, false
}
