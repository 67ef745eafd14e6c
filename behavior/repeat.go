package behavior

// Repeat re-creates its child from a factory every time the child returns or
// aborts, so the current instance always starts fresh.
type Repeat struct {
	priority Priority
	factory  func() Behavior
	current  Slot[Behavior]
}

// NewRepeat builds its first child lazily on the first execution.
func NewRepeat[B Behavior](priority Priority, factory func() B) *Repeat {
	return &Repeat{
		priority: priority,
		factory:  func() Behavior { return factory() },
	}
}

func (r *Repeat) Name() string {
	if b, ok := r.current.Get(); ok {
		return "Repeat(" + b.Name() + ")"
	}
	return "Repeat"
}

func (r *Repeat) Priority() Priority { return r.priority }

func (r *Repeat) Execute(ctx *Context) Action {
	for ctx.step() {
		b, ok := r.current.Get()
		if !ok {
			b = r.factory()
			r.current.Put(b)
		}

		action := b.Execute(ctx)
		ctx.child = OutcomeNone
		switch action.kind {
		case KindYield, KindCall:
			return action
		case KindTailCall:
			r.current.Put(action.child)
		case KindReturn, KindAbort:
			ctx.EEG.Log("Repeat", "restarting", "child", b.Name(), "outcome", action.kind.String())
			r.current.Take()
		}
	}
	return ctx.exhausted()
}
