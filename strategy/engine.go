package strategy

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	bt "github.com/joeycumines/go-behaviortree"

	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/predict"
)

// Choice is the plan picked for the current tick.
type Choice struct {
	Rule     string
	Plan     behavior.Priority
	Behavior behavior.Behavior
}

// Engine picks a plan from compiled rules each time the planner asks. Rules
// are walked by a selector of condition→select sequences in Order.
type Engine struct {
	mu    sync.RWMutex
	rules []*Rule
	reach predict.Predicate
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by order.
func NewEngine(rules []*Rule) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled}, nil
}

// NewPostureEngine compiles p's rules and reach predicate.
func NewPostureEngine(p Posture) (*Engine, error) {
	reach, err := compileReach(p)
	if err != nil {
		return nil, err
	}
	e, err := NewEngine(CompilePosture(p))
	if err != nil {
		return nil, err
	}
	e.reach = reach
	return e, nil
}

// Env builds the rule environment for one snapshot using the active reach
// predicate.
func (e *Engine) Env(gs *model.GameState, game *model.Game) Env {
	e.mu.RLock()
	reach := e.reach
	e.mu.RUnlock()
	return newEnv(gs, game, reach)
}

// Choose returns the plan of the first rule whose condition holds.
func (e *Engine) Choose(env Env) (Choice, bool) {
	e.mu.RLock()
	rules := e.rules
	e.mu.RUnlock()

	var chosen *Rule
	children := make([]bt.Node, 0, len(rules))
	for _, r := range rules {
		children = append(children, bt.New(bt.Sequence, conditionNode(r, env), selectNode(r, &chosen)))
	}

	status, err := bt.New(bt.Selector, children...).Tick()
	if err != nil {
		slog.Warn("strategy tree error", "error", err)
		return Choice{}, false
	}
	if status != bt.Success || chosen == nil {
		return Choice{}, false
	}

	slog.Debug("rule fired", "rule", chosen.Name, "order", chosen.Order, "plan", chosen.Plan)
	return Choice{Rule: chosen.Name, Plan: chosen.Plan, Behavior: chosen.Build(env)}, true
}

// Apply recompiles the engine for p. On error nothing changes.
func (e *Engine) Apply(p Posture) error {
	reach, err := compileReach(p)
	if err != nil {
		return err
	}
	compiled, err := compileRules(CompilePosture(p))
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.rules = compiled
	e.reach = reach
	e.mu.Unlock()
	slog.Info("posture applied", "posture", p.Name, "rules", e.Names(), "reach", p.Reach)
	return nil
}

// Names lists the active rules in evaluation order.
func (e *Engine) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

func conditionNode(r *Rule, env Env) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			return bt.Failure, nil
		}
		if match, ok := result.(bool); ok && match {
			return bt.Success, nil
		}
		return bt.Failure, nil
	})
}

func selectNode(r *Rule, chosen **Rule) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		*chosen = r
		return bt.Success, nil
	})
}

func compileReach(p Posture) (predict.Predicate, error) {
	if p.Reach == "" {
		return nil, nil
	}
	reach, err := predict.CompilePredicate(p.Reach)
	if err != nil {
		return nil, fmt.Errorf("posture %q reach: %w", p.Name, err)
	}
	return reach, nil
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		if r.Build == nil {
			return nil, fmt.Errorf("rule %q has no build func", r.Name)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Order > rules[j].Order
	})
	return rules, nil
}
