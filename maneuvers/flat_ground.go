package maneuvers

import (
	"math"

	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/eeg"
	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/simulate"
)

var flatTolerance = 15 * math.Pi / 180

// OnFlatGround reports whether the car sits on its wheels on level ground.
func OnFlatGround(c model.Car) bool {
	return c.OnGround &&
		math.Abs(c.Physics.Rot.Pitch) < flatTolerance &&
		math.Abs(c.Physics.Rot.Roll) < flatTolerance
}

// GetToFlatGround gets the car off walls and back on its wheels.
type GetToFlatGround struct{}

func NewGetToFlatGround() *GetToFlatGround { return &GetToFlatGround{} }

func (g *GetToFlatGround) Name() string { return "GetToFlatGround" }

func (g *GetToFlatGround) Execute(ctx *behavior.Context) behavior.Action {
	me := ctx.Me()
	if OnFlatGround(me) {
		return behavior.Return()
	}

	rot := me.Physics.Rot
	if !me.OnGround {
		ctx.EEG.Draw(eeg.Print("landing", eeg.Green))
		return behavior.Yield(model.ControlOutput{
			Throttle: 1,
			Pitch:    -rot.Pitch * 2,
			Roll:     -rot.Roll * 2,
		}.Clamp())
	}

	if math.Abs(rot.Roll) > 0.9*math.Pi {
		ctx.EEG.Log(g.Name(), "jumping while upside-down")
		return behavior.TailCall(NewYielder(model.ControlOutput{Jump: true}, 0.1))
	}

	forwardSpeed := me.Physics.Vel.Dot(me.Physics.Forward())
	cutoff := simulate.LinearInterpolate([]float64{0, 2000}, []float64{math.Pi / 4, math.Pi / 6}, forwardSpeed)
	if math.Pi/2-rot.Pitch < cutoff {
		ctx.EEG.Draw(eeg.Print("backing up", eeg.Green))
		return behavior.Yield(model.ControlOutput{Throttle: -1})
	}

	ctx.EEG.Draw(eeg.Print("driving down the wall", eeg.Green))
	return behavior.Yield(model.ControlOutput{Throttle: 1})
}
