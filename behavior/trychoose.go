package behavior

import "github.com/nstehr/kickoff/eeg"

// TryChoose commits to the first choice that does not abort on its first
// execution. A choice that tail-calls is followed until the replacement acts,
// and the commitment goes to whatever finally acted. Once committed, the
// chosen child runs alone and its actions pass through, except tail calls
// which replace the chosen child.
type TryChoose struct {
	priority Priority
	choices  []Behavior
	chosen   Slot[Behavior]
}

// NewTryChoose tries choices in order on its first execution.
func NewTryChoose(priority Priority, choices ...Behavior) *TryChoose {
	return &TryChoose{priority: priority, choices: choices}
}

func (t *TryChoose) Name() string {
	if b, ok := t.chosen.Get(); ok {
		return "TryChoose(" + b.Name() + ")"
	}
	return "TryChoose"
}

func (t *TryChoose) Priority() Priority { return t.priority }

// Chosen returns the committed child, if any.
func (t *TryChoose) Chosen() (Behavior, bool) { return t.chosen.Get() }

func (t *TryChoose) Execute(ctx *Context) Action {
	if b, ok := t.chosen.Get(); ok {
		action, current := t.follow(ctx, b)
		t.chosen.Put(current)
		return action
	}

	for len(t.choices) > 0 {
		candidate := t.choices[0]
		t.choices[0] = nil
		t.choices = t.choices[1:]

		action, current := t.follow(ctx, candidate)
		if ctx.overrun {
			// Nothing acted this tick; retry the same choice next tick.
			t.choices = append([]Behavior{current}, t.choices...)
			return action
		}
		if action.kind == KindAbort {
			ctx.EEG.Log("TryChoose", "choice aborted", "choice", current.Name())
			continue
		}

		ctx.EEG.Draw(eeg.Print("chose "+current.Name(), eeg.Green))
		t.chosen.Put(current)
		return action
	}

	ctx.EEG.Log("TryChoose", "all choices aborted")
	return Abort()
}

// follow executes b, chasing tail calls, until something other than a tail
// call comes back. It returns that action and the behavior that produced it.
func (t *TryChoose) follow(ctx *Context, b Behavior) (Action, Behavior) {
	for ctx.step() {
		action := b.Execute(ctx)
		ctx.child = OutcomeNone
		if action.kind != KindTailCall {
			return action, b
		}
		b = action.child
	}
	return ctx.exhausted(), b
}
