package maneuvers

import (
	"fmt"
	"math"

	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/eeg"
	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/predict"
)

const (
	groundShotMaxBallZ  = 110.0
	groundShotMaxAngle  = 60 * math.Pi / 180
	groundShotSetback   = 150.0
	groundShotShootDist = 250.0
)

// GroundShot drives through a grounded ball towards the enemy goal.
type GroundShot struct {
	minDistance behavior.Slot[float64]
	finished    bool
}

func NewGroundShot() *GroundShot { return &GroundShot{} }

func (g *GroundShot) Name() string { return "GroundShot" }

// GoodShotAngle reports whether hitting the ball from carLoc sends it roughly
// at aim.
func GoodShotAngle(ballLoc, carLoc model.Vec3, aim model.Vec2) bool {
	return shotAngle(ballLoc, carLoc, aim) < groundShotMaxAngle
}

func (g *GroundShot) Execute(ctx *behavior.Context) behavior.Action {
	if g.finished {
		return behavior.Return()
	}

	me := ctx.Me()
	aim := ctx.Game.EnemyGoal().Center2D
	intercept := predict.EstimateIntercept(me, ctx.Packet.Ball, func(_ float64, loc, _ model.Vec3) bool {
		return loc.Z() < groundShotMaxBallZ && GoodShotAngle(loc, me.Physics.Loc, aim)
	})

	if intercept.Degraded(predict.DefaultEstimator()) {
		ctx.EEG.Log(g.Name(), "no intercept within horizon", "t", intercept.Time)
	}

	if !GoodShotAngle(intercept.BallLoc, me.Physics.Loc, aim) {
		ctx.EEG.Log(g.Name(), "bad angle", "ball", intercept.BallLoc)
		return behavior.Return()
	}

	target := behindBall(intercept.BallLoc.Vec2(), aim, groundShotSetback)
	dist := target.Sub(me.Physics.Loc.Vec2()).Len()

	// A target twice as far as last tick means we already hit the ball.
	if md, ok := g.minDistance.Swap(dist); ok && dist >= md*2 {
		ctx.EEG.Log(g.Name(), "ball moved away")
		return behavior.Return()
	}

	ctx.EEG.Draw(eeg.Print(fmt.Sprintf("intercept_time: %.2f", intercept.Time), eeg.Green))
	ctx.EEG.Draw(eeg.GhostBall(intercept.BallLoc, eeg.ForTeam(ctx.Game.Team)))

	if !OnFlatGround(me) {
		return behavior.Call(NewGetToFlatGround())
	}

	if dist <= groundShotShootDist {
		g.finished = true
		return shoot(ctx, g.Name())
	}

	return behavior.Yield(AccelTowards(me.Physics, target, intercept.Time, me.Boost))
}

func shoot(ctx *behavior.Context, source string) behavior.Action {
	me := ctx.Me()
	angle := YawDiff(me.Physics, ctx.Packet.Ball.Physics.Loc.Vec2())
	if math.Abs(angle) >= math.Pi/2 {
		ctx.EEG.Log(source, "incorrect approach angle")
		return behavior.Return()
	}
	return behavior.Call(JumpAndDodge(angle))
}
