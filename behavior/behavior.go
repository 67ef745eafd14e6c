// Package behavior is the per-tick decision engine. Behaviors return an
// Action each time they execute; the Runner resolves Call/Return/Abort
// cascades within the same tick until one of them yields a control output.
package behavior

import "github.com/nstehr/kickoff/model"

// Behavior is a composable decision unit.
type Behavior interface {
	Name() string
	Execute(ctx *Context) Action
}

// Prioritized is implemented by behaviors that carry a Priority. The runner
// never acts on it; planners above the runner use it to decide preemption.
type Prioritized interface {
	Priority() Priority
}

// Priority ranks plans. A planner preempts a running plan only for a
// strictly higher priority.
type Priority int

const (
	Idle Priority = iota
	Striking
	Defense
	Save
	Force
)

func (p Priority) String() string {
	switch p {
	case Idle:
		return "idle"
	case Striking:
		return "striking"
	case Defense:
		return "defense"
	case Save:
		return "save"
	case Force:
		return "force"
	}
	return "unknown"
}

// PriorityOf returns b's priority, or Idle when it does not carry one.
func PriorityOf(b Behavior) Priority {
	if p, ok := b.(Prioritized); ok {
		return p.Priority()
	}
	return Idle
}

// ActionKind identifies which of the Action constructors built an Action.
type ActionKind int

const (
	KindYield ActionKind = iota
	KindCall
	KindTailCall
	KindReturn
	KindAbort
)

func (k ActionKind) String() string {
	switch k {
	case KindYield:
		return "yield"
	case KindCall:
		return "call"
	case KindTailCall:
		return "tail_call"
	case KindReturn:
		return "return"
	case KindAbort:
		return "abort"
	}
	return "unknown"
}

// Action is the outcome of executing a behavior once.
type Action struct {
	kind  ActionKind
	input model.ControlOutput
	child Behavior
}

// Yield ends the tick with the given controls.
func Yield(input model.ControlOutput) Action {
	return Action{kind: KindYield, input: input}
}

// Call pushes b on top of the current frame and runs it this tick.
func Call(b Behavior) Action {
	return Action{kind: KindCall, child: b}
}

// TailCall replaces the current frame with b and runs it this tick.
func TailCall(b Behavior) Action {
	return Action{kind: KindTailCall, child: b}
}

// Return pops the current frame: normal completion.
func Return() Action {
	return Action{kind: KindReturn}
}

// Abort pops the current frame: failure or inapplicability.
func Abort() Action {
	return Action{kind: KindAbort}
}

func (a Action) Kind() ActionKind           { return a.kind }
func (a Action) Input() model.ControlOutput { return a.input }
func (a Action) Child() Behavior            { return a.child }
