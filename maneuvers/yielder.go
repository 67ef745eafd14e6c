package maneuvers

import (
	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/model"
)

// Yielder holds a fixed input for a duration, then returns.
type Yielder struct {
	input    model.ControlOutput
	duration float64
	start    behavior.Slot[float64]
}

// NewYielder holds input for duration seconds of game time.
func NewYielder(input model.ControlOutput, duration float64) *Yielder {
	return &Yielder{input: input, duration: duration}
}

func (y *Yielder) Name() string { return "Yielder" }

func (y *Yielder) Execute(ctx *behavior.Context) behavior.Action {
	start, ok := y.start.Get()
	if !ok {
		start = ctx.Time()
		y.start.Put(start)
	}
	if ctx.Time()-start >= y.duration {
		return behavior.Return()
	}
	return behavior.Yield(y.input)
}

// JumpAndDodge jumps, releases, then flips in the direction yaw radians off
// the car's nose.
func JumpAndDodge(yaw float64) *behavior.Chain {
	pitch, side := cosSin(yaw)
	return behavior.NewChain(behavior.Idle,
		NewYielder(model.ControlOutput{Jump: true}, 0.05),
		NewYielder(model.ControlOutput{}, 0.05),
		NewYielder(model.ControlOutput{Jump: true, Pitch: -pitch, Yaw: side}, 0.05),
		NewYielder(model.ControlOutput{}, 0.5),
	)
}
