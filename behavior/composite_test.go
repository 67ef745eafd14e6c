package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstehr/kickoff/model"
)

func TestChain_AdvancesWithinTick(t *testing.T) {
	a := script("A", Return())
	b := script("B", Yield(steer(0.3)))
	c := script("C", Yield(steer(0.9)))
	chain := NewChain(Striking, a, b, c)

	r := NewRunner(0)
	r.Reset(chain)
	out := r.Drive(newTestContext())

	assert.Equal(t, steer(0.3), out)
	assert.Equal(t, 2, chain.Len())
	front, ok := chain.Front()
	require.True(t, ok)
	assert.Equal(t, "B", front.Name())
	assert.Zero(t, c.calls)
}

func TestChain_AbortAbortsChain(t *testing.T) {
	chain := NewChain(Idle, script("A", Abort()), script("B", Yield(steer(0))))
	root := script("root", Call(chain), Yield(steer(-1)))

	r := NewRunner(0)
	r.Reset(root)
	out := r.Drive(newTestContext())

	assert.Equal(t, steer(-1), out)
	assert.Equal(t, OutcomeAborted, root.seen[1])
}

func TestChain_EmptyReturns(t *testing.T) {
	assert.Equal(t, KindReturn, NewChain(Idle).Execute(newTestContext()).Kind())
}

func TestChain_TailCallReplacesFront(t *testing.T) {
	replacement := script("A2", Yield(steer(0.1)))
	chain := NewChain(Idle, script("A", TailCall(replacement)), script("B", Yield(steer(0))))

	out := chain.Execute(newTestContext())
	assert.Equal(t, KindYield, out.Kind())
	assert.Equal(t, steer(0.1), out.Input())
	assert.Equal(t, 2, chain.Len())
	front, _ := chain.Front()
	assert.Equal(t, "A2", front.Name())
}

func TestChain_CallReplacesFront(t *testing.T) {
	sub := script("Sub", Yield(steer(0.2)))
	chain := NewChain(Idle, script("A", Call(sub)))

	out := chain.Execute(newTestContext())
	assert.Equal(t, steer(0.2), out.Input())
	front, _ := chain.Front()
	assert.Equal(t, "Sub", front.Name())
}

func TestTryChoose_SkipsAbortingChoices(t *testing.T) {
	x := script("X", Abort())
	y := script("Y", Yield(steer(0.4)), Yield(steer(0.6)))
	tc := NewTryChoose(Defense, x, y)

	r := NewRunner(0)
	r.Reset(tc)
	assert.Equal(t, steer(0.4), r.Drive(newTestContext()))
	chosen, ok := tc.Chosen()
	require.True(t, ok)
	assert.Equal(t, "Y", chosen.Name())

	assert.Equal(t, steer(0.6), r.Drive(newTestContext()))
	assert.Equal(t, 1, x.calls)
	assert.Equal(t, 2, y.calls)
}

func TestTryChoose_AllAbortAborts(t *testing.T) {
	tc := NewTryChoose(Idle, script("X", Abort()), script("Y", Abort()))
	assert.Equal(t, KindAbort, tc.Execute(newTestContext()).Kind())
}

func TestTryChoose_ChosenPassesThrough(t *testing.T) {
	tc := NewTryChoose(Idle, script("X", Yield(steer(0)), Return()))
	ctx := newTestContext()

	assert.Equal(t, KindYield, tc.Execute(ctx).Kind())
	assert.Equal(t, KindReturn, tc.Execute(ctx).Kind())
}

func TestTryChoose_TailCallReplacesChosen(t *testing.T) {
	next := script("Next", Yield(steer(0.7)))
	tc := NewTryChoose(Idle, script("X", TailCall(next)))

	out := tc.Execute(newTestContext())
	assert.Equal(t, steer(0.7), out.Input())
	chosen, _ := tc.Chosen()
	assert.Equal(t, "Next", chosen.Name())
}

func TestTryChoose_TailCallThenAbortTriesNext(t *testing.T) {
	z := script("Z", Abort())
	x := script("X", TailCall(z))
	y := script("Y", Yield(steer(0.4)))
	tc := NewTryChoose(Defense, x, y)

	out := tc.Execute(newTestContext())
	assert.Equal(t, KindYield, out.Kind())
	assert.Equal(t, steer(0.4), out.Input())
	chosen, ok := tc.Chosen()
	require.True(t, ok)
	assert.Equal(t, "Y", chosen.Name())
	assert.Equal(t, 1, z.calls)
	assert.Equal(t, 1, y.calls)
}

func TestTryChoose_BudgetExhaustedDoesNotCommit(t *testing.T) {
	looping := NewRepeat(Idle, func() *scripted { return script("instant", Return()) })
	y := script("Y", Yield(steer(0.4)))
	tc := NewTryChoose(Defense, looping, y)

	r := NewRunner(8)
	r.Reset(tc)
	assert.Equal(t, model.ControlOutput{}, r.Drive(newTestContext()))
	assert.Equal(t, 1, r.Overruns())
	_, ok := tc.Chosen()
	assert.False(t, ok)
	assert.Zero(t, y.calls)
	assert.Equal(t, "TryChoose", tc.Name())
}

func TestFuse_BlowsOnReturn(t *testing.T) {
	child := script("child", Yield(steer(0.5)), Return())
	f := NewFuse(child)
	r := NewRunner(0)
	r.Reset(f)

	assert.Equal(t, steer(0.5), r.Drive(newTestContext()))
	assert.False(t, f.Blown())

	assert.Equal(t, model.ControlOutput{}, r.Drive(newTestContext()))
	assert.True(t, f.Blown())
	assert.Equal(t, 1, r.Depth())

	assert.Equal(t, model.ControlOutput{}, r.Drive(newTestContext()))
	assert.Equal(t, 2, child.calls)
}

func TestFuse_BlowsOnAbort(t *testing.T) {
	f := NewFuse(script("child", Abort()))
	out := f.Execute(newTestContext())
	assert.Equal(t, KindYield, out.Kind())
	assert.True(t, f.Blown())
	assert.Equal(t, Idle, f.Priority())
}

func TestFuse_CallPassesThrough(t *testing.T) {
	sub := script("sub", Yield(steer(0.8)))
	f := NewFuse(script("child", Call(sub)))
	r := NewRunner(0)
	r.Reset(f)

	assert.Equal(t, steer(0.8), r.Drive(newTestContext()))
	assert.Equal(t, 2, r.Depth())
}

func TestFuse_TailCallReplacesChild(t *testing.T) {
	next := script("next", Yield(steer(0.3)), Return())
	f := NewFuse(script("child", TailCall(next)))
	r := NewRunner(0)
	r.Reset(f)

	assert.Equal(t, steer(0.3), r.Drive(newTestContext()))
	assert.Equal(t, "Fuse(next)", f.Name())
	assert.Equal(t, 1, r.Depth())

	assert.Equal(t, model.ControlOutput{}, r.Drive(newTestContext()))
	assert.True(t, f.Blown())
}

func TestRepeat_TailCallReplacesCurrent(t *testing.T) {
	made := 0
	next := script("next", Yield(steer(0.6)))
	rep := NewRepeat(Striking, func() *scripted {
		made++
		return script("child", TailCall(next))
	})

	out := rep.Execute(newTestContext())
	assert.Equal(t, steer(0.6), out.Input())
	assert.Equal(t, "Repeat(next)", rep.Name())

	rep.Execute(newTestContext())
	assert.Equal(t, 1, made)
	assert.Equal(t, 2, next.calls)
}

func TestRepeat_RecreatesChild(t *testing.T) {
	made := 0
	rep := NewRepeat(Striking, func() *scripted {
		made++
		return script("child", Yield(steer(0.1)), Return())
	})
	r := NewRunner(0)
	r.Reset(rep)

	assert.Equal(t, steer(0.1), r.Drive(newTestContext()))
	assert.Equal(t, 1, made)

	// Second tick: the first instance returns and a fresh one yields.
	assert.Equal(t, steer(0.1), r.Drive(newTestContext()))
	assert.Equal(t, 2, made)
	assert.Equal(t, Striking, PriorityOf(rep))
}

func TestRepeat_ImmediateReturnHitsBudget(t *testing.T) {
	rep := NewRepeat(Idle, func() *scripted { return script("child", Return()) })
	r := NewRunner(8)
	r.Reset(rep)

	assert.Equal(t, model.ControlOutput{}, r.Drive(newTestContext()))
	assert.Equal(t, 1, r.Overruns())
	assert.Equal(t, 1, r.Depth())
}
