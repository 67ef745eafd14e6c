package behavior

import (
	"log/slog"

	"github.com/nstehr/kickoff/model"
)

// DefaultMaxStepsPerTick caps how many behavior executions a single tick may
// perform across the runner and all composites.
const DefaultMaxStepsPerTick = 64

// Runner owns the behavior stack. The last element is the executing frame.
type Runner struct {
	stack    []Behavior
	maxSteps int
	overruns int
}

// NewRunner creates an empty runner. A non-positive maxSteps uses
// DefaultMaxStepsPerTick.
func NewRunner(maxSteps int) *Runner {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxStepsPerTick
	}
	return &Runner{maxSteps: maxSteps}
}

// Reset discards the stack and installs root as its only frame.
func (r *Runner) Reset(root Behavior) {
	clear(r.stack)
	r.stack = r.stack[:0]
	if root != nil {
		r.stack = append(r.stack, root)
	}
}

// Push adds b as the executing frame.
func (r *Runner) Push(b Behavior) {
	r.stack = append(r.stack, b)
}

func (r *Runner) Depth() int { return len(r.stack) }

// Root returns the bottom frame.
func (r *Runner) Root() (Behavior, bool) {
	if len(r.stack) == 0 {
		return nil, false
	}
	return r.stack[0], true
}

// Top returns the executing frame.
func (r *Runner) Top() (Behavior, bool) {
	if len(r.stack) == 0 {
		return nil, false
	}
	return r.stack[len(r.stack)-1], true
}

// Names lists the stack bottom to top.
func (r *Runner) Names() []string {
	names := make([]string, len(r.stack))
	for i, b := range r.stack {
		names[i] = b.Name()
	}
	return names
}

// Overruns counts ticks that hit the step cap.
func (r *Runner) Overruns() int { return r.overruns }

// Drive resolves one tick. It returns the first yielded output, or the neutral
// output when the stack empties or the step cap is hit.
func (r *Runner) Drive(ctx *Context) model.ControlOutput {
	ctx.budget = r.maxSteps
	ctx.overrun = false
	ctx.child = OutcomeNone

	for ctx.step() {
		top, ok := r.Top()
		if !ok {
			ctx.EEG.Log("Runner", "stack empty")
			return model.ControlOutput{}
		}

		action := top.Execute(ctx)
		ctx.child = OutcomeNone
		if ctx.overrun {
			break
		}

		switch action.kind {
		case KindYield:
			return action.input.Clamp()
		case KindCall:
			ctx.EEG.Log("Runner", "pushed", "behavior", action.child.Name())
			r.Push(action.child)
		case KindTailCall:
			ctx.EEG.Log("Runner", "replaced", "from", top.Name(), "to", action.child.Name())
			r.stack[len(r.stack)-1] = action.child
		case KindReturn:
			ctx.EEG.Log("Runner", "popped", "behavior", top.Name())
			r.pop()
			ctx.child = OutcomeReturned
		case KindAbort:
			ctx.EEG.Log("Runner", "aborted", "behavior", top.Name())
			r.pop()
			ctx.child = OutcomeAborted
		}
	}

	r.overruns++
	slog.Warn("behavior step budget exhausted", "budget", r.maxSteps, "stack", r.Names())
	ctx.EEG.Log("Runner", "step budget exhausted")
	return model.ControlOutput{}
}

func (r *Runner) pop() {
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
}
