package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/simulate"
)

func TestCompilePredicate(t *testing.T) {
	tests := []struct {
		src  string
		t    float64
		loc  model.Vec3
		vel  model.Vec3
		want bool
	}{
		{`Loc.Z < 110`, 0, model.Vec3{0, 0, 93}, model.Vec3{}, true},
		{`Loc.Z < 110`, 0, model.Vec3{0, 0, 400}, model.Vec3{}, false},
		{`T > 1 && Speed() < 100`, 1.5, model.Vec3{}, model.Vec3{30, 40, 0}, true},
		{`Speed2D() > 1000`, 0, model.Vec3{}, model.Vec3{600, 800, 5000}, false},
		{`InField() && Vel.Y > 0`, 0, model.Vec3{0, 100, 93}, model.Vec3{0, 1, 0}, true},
		{`InField()`, 0, model.Vec3{0, 6000, 93}, model.Vec3{}, false},
	}
	for _, tc := range tests {
		pred, err := CompilePredicate(tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.want, pred(tc.t, tc.loc, tc.vel), tc.src)
	}
}

func TestCompilePredicate_Errors(t *testing.T) {
	for _, src := range []string{`Loc.Z +`, `Loc.Z`, `Unknown > 1`} {
		_, err := CompilePredicate(src)
		assert.Error(t, err, src)
	}
}

func TestCompilePredicate_DrivesEstimator(t *testing.T) {
	pred, err := CompilePredicate(`Loc.Z < 110`)
	require.NoError(t, err)

	car := carAt(model.Vec3{0, 0, simulate.BallRadius}, model.Vec3{}, 0)
	ball := ballAt(model.Vec3{0, 1240, simulate.BallRadius}, model.Vec3{})
	native := EstimateIntercept(car, ball, func(_ float64, loc, _ model.Vec3) bool { return loc.Z() < 110 })
	compiled := EstimateIntercept(car, ball, pred)
	assert.Equal(t, native, compiled)
}

func TestBallTrajectory(t *testing.T) {
	frames := BallTrajectory(ballAt(model.Vec3{0, 0, 1000}, model.Vec3{}), 120, simulate.DT)
	require.Len(t, frames, 120)
	assert.InDelta(t, simulate.DT, frames[0].T, 1e-12)
	assert.InDelta(t, 2.0, frames[119].T, 1e-9)
	assert.Less(t, frames[119].Loc.Z(), frames[0].Loc.Z())

	f, ok := FirstMatch(frames, func(_ float64, loc, _ model.Vec3) bool { return loc.Z() < 500 })
	require.True(t, ok)
	assert.Less(t, f.Loc.Z(), 500.0)

	_, ok = FirstMatch(frames, never)
	assert.False(t, ok)
}
