package strategy

import (
	"github.com/expr-lang/expr/vm"

	"github.com/nstehr/kickoff/behavior"
)

// BuildFunc creates a fresh root behavior for a rule that matched.
type BuildFunc func(env Env) behavior.Behavior

// Rule pairs a condition with the plan it starts. The engine evaluates rules
// by Order; the first match wins. Plan is the priority the built behavior runs
// at, which the planner compares against the running plan to decide
// preemption.
type Rule struct {
	Name         string            // human-readable identifier
	Order        int               // higher = evaluated first
	Plan         behavior.Priority // priority of the built plan
	ConditionSrc string            // expr source (preserved for serialization)
	program      *vm.Program       // compiled bytecode
	Build        BuildFunc
}
