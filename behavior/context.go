package behavior

import (
	"github.com/nstehr/kickoff/eeg"
	"github.com/nstehr/kickoff/model"
)

// Outcome tells a frame how the child above it left the stack.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeReturned
	OutcomeAborted
)

// Context is the read-only tick snapshot plus the tick-scoped debug sink.
// It is valid only for the tick it was built for.
type Context struct {
	Packet *model.GameState
	Game   *model.Game
	EEG    *eeg.EEG

	child   Outcome
	budget  int
	overrun bool
}

// NewContext builds the context for one tick. The runner resets its step
// budget at the start of every Drive.
func NewContext(packet *model.GameState, game *model.Game, sink *eeg.EEG) *Context {
	return &Context{Packet: packet, Game: game, EEG: sink, budget: DefaultMaxStepsPerTick}
}

// Me returns the controlled car, or the zero Car when the snapshot lacks it.
func (c *Context) Me() model.Car {
	me, _ := c.Game.Me(c.Packet)
	return me
}

// Enemies returns the cars on the opposing team.
func (c *Context) Enemies() []model.Car {
	return c.Game.Enemies(c.Packet)
}

// Time is the game clock in seconds.
func (c *Context) Time() float64 {
	return c.Packet.TimeSeconds
}

// ChildOutcome reports how the frame above this one just left the stack.
// It is OutcomeNone unless this execution directly follows a pop.
func (c *Context) ChildOutcome() Outcome {
	return c.child
}

// step consumes one unit of the tick's budget.
func (c *Context) step() bool {
	if c.budget <= 0 {
		c.overrun = true
		return false
	}
	c.budget--
	return true
}

// exhausted is what a composite returns when the budget runs out mid-loop.
func (c *Context) exhausted() Action {
	c.overrun = true
	return Yield(model.ControlOutput{})
}
