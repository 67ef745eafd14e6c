package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstehr/kickoff/eeg"
	"github.com/nstehr/kickoff/model"
)

// scripted returns its actions in order, repeating the last one.
type scripted struct {
	name    string
	actions []Action
	calls   int
	seen    []Outcome
}

func script(name string, actions ...Action) *scripted {
	return &scripted{name: name, actions: actions}
}

func (s *scripted) Name() string { return s.name }

func (s *scripted) Execute(ctx *Context) Action {
	s.seen = append(s.seen, ctx.ChildOutcome())
	i := min(s.calls, len(s.actions)-1)
	s.calls++
	return s.actions[i]
}

func steer(v float64) model.ControlOutput {
	return model.ControlOutput{Throttle: 1, Steer: v}
}

func newTestContext() *Context {
	gs := &model.GameState{Cars: []model.Car{{Index: 0}}}
	return NewContext(gs, model.NewGame(0, model.Blue, model.DefaultFieldInfo()), eeg.New(0))
}

func TestRunner_EmptyStackYieldsNeutral(t *testing.T) {
	r := NewRunner(0)
	ctx := newTestContext()
	assert.Equal(t, model.ControlOutput{}, r.Drive(ctx))
	assert.True(t, ctx.EEG.Contains("Runner", "stack empty"))
	assert.Zero(t, r.Overruns())
}

func TestRunner_CallRunsChildSameTick(t *testing.T) {
	child := script("child", Yield(steer(0.5)))
	root := script("root", Call(child), Yield(steer(-0.5)))
	r := NewRunner(0)
	r.Reset(root)

	out := r.Drive(newTestContext())
	assert.Equal(t, steer(0.5), out)
	assert.Equal(t, []string{"root", "child"}, r.Names())
}

func TestRunner_ReturnResumesParentWithOutcome(t *testing.T) {
	child := script("child", Return())
	root := script("root", Call(child), Yield(steer(0.25)))
	r := NewRunner(0)
	r.Reset(root)

	out := r.Drive(newTestContext())
	assert.Equal(t, steer(0.25), out)
	assert.Equal(t, 1, r.Depth())
	require.Len(t, root.seen, 2)
	assert.Equal(t, OutcomeNone, root.seen[0])
	assert.Equal(t, OutcomeReturned, root.seen[1])
}

func TestRunner_AbortReportsAborted(t *testing.T) {
	child := script("child", Abort())
	root := script("root", Call(child), Yield(steer(0)))
	r := NewRunner(0)
	r.Reset(root)

	r.Drive(newTestContext())
	require.Len(t, root.seen, 2)
	assert.Equal(t, OutcomeAborted, root.seen[1])
}

func TestRunner_OutcomeClearedNextTick(t *testing.T) {
	child := script("child", Return())
	root := script("root", Call(child), Yield(steer(0)))
	r := NewRunner(0)
	r.Reset(root)

	r.Drive(newTestContext())
	r.Drive(newTestContext())
	require.Len(t, root.seen, 3)
	assert.Equal(t, OutcomeNone, root.seen[2])
}

func TestRunner_TailCallKeepsDepth(t *testing.T) {
	next := script("next", Yield(steer(1)))
	first := script("first", TailCall(next))
	root := script("root", Call(first))
	r := NewRunner(0)
	r.Reset(root)

	out := r.Drive(newTestContext())
	assert.Equal(t, steer(1), out)
	assert.Equal(t, []string{"root", "next"}, r.Names())
}

func TestRunner_RootReturnEmptiesStack(t *testing.T) {
	r := NewRunner(0)
	r.Reset(script("root", Return()))

	assert.Equal(t, model.ControlOutput{}, r.Drive(newTestContext()))
	assert.Zero(t, r.Depth())
}

func TestRunner_YieldIsClamped(t *testing.T) {
	r := NewRunner(0)
	r.Reset(script("root", Yield(model.ControlOutput{Throttle: 3, Steer: -2})))

	out := r.Drive(newTestContext())
	assert.Equal(t, 1.0, out.Throttle)
	assert.Equal(t, -1.0, out.Steer)
}

// callsForever pushes a fresh copy of itself every time it runs.
type callsForever struct{}

func (callsForever) Name() string                { return "CallsForever" }
func (callsForever) Execute(ctx *Context) Action { return Call(callsForever{}) }

func TestRunner_RunawayHitsBudget(t *testing.T) {
	r := NewRunner(16)
	r.Reset(callsForever{})
	ctx := newTestContext()

	out := r.Drive(ctx)
	assert.Equal(t, model.ControlOutput{}, out)
	assert.Equal(t, 1, r.Overruns())
	assert.Equal(t, 17, r.Depth())
	assert.True(t, ctx.EEG.Contains("Runner", "step budget exhausted"))

	r.Drive(newTestContext())
	assert.Equal(t, 2, r.Overruns())
}

func TestRunner_ResetReplacesStack(t *testing.T) {
	r := NewRunner(0)
	r.Reset(script("a", Call(script("b", Yield(steer(0))))))
	r.Drive(newTestContext())
	require.Equal(t, 2, r.Depth())

	r.Reset(script("c", Yield(steer(0))))
	assert.Equal(t, []string{"c"}, r.Names())
	root, ok := r.Root()
	require.True(t, ok)
	assert.Equal(t, "c", root.Name())
}

func TestPriorityOf(t *testing.T) {
	assert.Equal(t, Idle, PriorityOf(script("plain", Return())))
	assert.Equal(t, Save, PriorityOf(NewChain(Save)))
	assert.Equal(t, Defense, PriorityOf(NewFuse(NewTryChoose(Defense))))
	assert.True(t, Idle < Striking && Striking < Defense && Defense < Save && Save < Force)
}

func TestSlot(t *testing.T) {
	var s Slot[int]
	assert.True(t, s.Empty())
	_, ok := s.Get()
	assert.False(t, ok)

	s.Put(1)
	old, ok := s.Swap(2)
	assert.True(t, ok)
	assert.Equal(t, 1, old)

	v, ok := s.Take()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.True(t, s.Empty())

	_, ok = s.Take()
	assert.False(t, ok)
}
