package agent

import (
	"log/slog"

	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/strategy"
)

// DefaultPlanInterval is how many ticks pass between routine replans.
const DefaultPlanInterval = 30

// Planner asks the strategy engine for a plan on the first tick, on events and
// every interval ticks, and installs it when it outranks the running plan.
type Planner struct {
	engine   *strategy.Engine
	interval int
	lastTick int
	planned  bool
	current  string // rule that built the running plan
}

// NewPlanner creates a planner. A non-positive interval uses DefaultPlanInterval.
func NewPlanner(engine *strategy.Engine, interval int) *Planner {
	if interval <= 0 {
		interval = DefaultPlanInterval
	}
	return &Planner{engine: engine, interval: interval}
}

// Current names the rule behind the running plan.
func (p *Planner) Current() string { return p.current }

// Plan replaces the runner's stack when the chosen plan should preempt the
// running one. It reports whether a new plan was installed.
func (p *Planner) Plan(gs *model.GameState, game *model.Game, runner *behavior.Runner, events []Event) bool {
	root, hasRoot := runner.Root()
	idle := !hasRoot || rootBlown(root)

	due := !p.planned || idle || len(events) > 0 || gs.Tick-p.lastTick >= p.interval
	if !due {
		return false
	}
	p.planned = true
	p.lastTick = gs.Tick

	choice, ok := p.engine.Choose(p.engine.Env(gs, game))
	if !ok {
		return false
	}

	preempt := idle || len(events) > 0 || choice.Plan > behavior.PriorityOf(root)
	if !preempt {
		slog.Debug("plan kept", "running", p.current, "candidate", choice.Rule, "plan", choice.Plan)
		return false
	}

	runner.Reset(behavior.NewFuse(choice.Behavior))
	slog.Info("plan installed", "tick", gs.Tick, "rule", choice.Rule, "plan", choice.Plan, "replaced", p.current)
	p.current = choice.Rule
	return true
}

func rootBlown(root behavior.Behavior) bool {
	f, ok := root.(*behavior.Fuse)
	return ok && f.Blown()
}
