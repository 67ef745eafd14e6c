package behavior

import (
	"strings"

	"github.com/nstehr/kickoff/eeg"
)

// Chain runs its children in order. A child that returns advances the chain
// within the same tick; a child that aborts aborts the whole chain. Calls and
// tail calls from the front child replace it in place.
type Chain struct {
	priority Priority
	children []Behavior
}

// NewChain runs children in order at the given priority.
func NewChain(priority Priority, children ...Behavior) *Chain {
	return &Chain{priority: priority, children: children}
}

func (c *Chain) Name() string {
	names := make([]string, len(c.children))
	for i, b := range c.children {
		names[i] = b.Name()
	}
	return "Chain(" + strings.Join(names, ", ") + ")"
}

func (c *Chain) Priority() Priority { return c.priority }

func (c *Chain) Len() int { return len(c.children) }

// Front returns the child currently executing.
func (c *Chain) Front() (Behavior, bool) {
	if len(c.children) == 0 {
		return nil, false
	}
	return c.children[0], true
}

func (c *Chain) Execute(ctx *Context) Action {
	for ctx.step() {
		front, ok := c.Front()
		if !ok {
			return Return()
		}
		ctx.EEG.Draw(eeg.Print(front.Name(), eeg.Yellow))

		action := front.Execute(ctx)
		ctx.child = OutcomeNone
		switch action.kind {
		case KindYield:
			return action
		case KindCall, KindTailCall:
			ctx.EEG.Log("Chain", "replacing front", "from", front.Name(), "to", action.child.Name())
			c.children[0] = action.child
		case KindReturn:
			c.children[0] = nil
			c.children = c.children[1:]
		case KindAbort:
			ctx.EEG.Log("Chain", "child aborted", "child", front.Name())
			return Abort()
		}
	}
	return ctx.exhausted()
}
