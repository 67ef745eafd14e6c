package behavior

import "github.com/nstehr/kickoff/model"

// Fuse runs its child until it returns or aborts, then yields the neutral
// output forever. Its stack frame never pops on its own, which makes it a
// stable root for planners that replace the stack wholesale.
type Fuse struct {
	child Slot[Behavior]
}

// NewFuse wraps child as a plan root.
func NewFuse(child Behavior) *Fuse {
	return &Fuse{child: NewSlot(child)}
}

func (f *Fuse) Name() string {
	if b, ok := f.child.Get(); ok {
		return "Fuse(" + b.Name() + ")"
	}
	return "Fuse(blown)"
}

// Priority reports the child's priority while it is alive.
func (f *Fuse) Priority() Priority {
	if b, ok := f.child.Get(); ok {
		return PriorityOf(b)
	}
	return Idle
}

// Blown reports whether the child has finished.
func (f *Fuse) Blown() bool { return f.child.Empty() }

func (f *Fuse) Execute(ctx *Context) Action {
	for ctx.step() {
		b, ok := f.child.Get()
		if !ok {
			return Yield(model.ControlOutput{})
		}

		action := b.Execute(ctx)
		ctx.child = OutcomeNone
		switch action.kind {
		case KindYield, KindCall:
			return action
		case KindTailCall:
			f.child.Put(action.child)
		case KindReturn, KindAbort:
			ctx.EEG.Log("Fuse", "blown", "child", b.Name(), "outcome", action.kind.String())
			f.child.Take()
			return Yield(model.ControlOutput{})
		}
	}
	return ctx.exhausted()
}
