package maneuvers

import (
	"math"

	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/eeg"
	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/predict"
	"github.com/nstehr/kickoff/simulate"
)

const (
	defenseMaxBallZ   = 120.0
	concedeHorizon    = 5.0
	retreatDepth      = 800.0
	retreatTolerance  = 300.0
	cornerSetback     = 150.0
	cornerContactDist = 250.0
)

// PushToOwnCorner pushes the ball towards our own corner when an enemy
// threatens a shot; otherwise it returns or aborts.
type PushToOwnCorner struct{}

func NewPushToOwnCorner() *PushToOwnCorner { return &PushToOwnCorner{} }

func (p *PushToOwnCorner) Name() string { return "PushToOwnCorner" }

func (p *PushToOwnCorner) Execute(ctx *behavior.Context) behavior.Action {
	me := ctx.Me()
	ball := ctx.Packet.Ball
	own := ctx.Game.OwnGoal()

	mine := predict.EstimateIntercept(me, ball, func(_ float64, loc, _ model.Vec3) bool {
		return loc.Z() < defenseMaxBallZ
	})

	var enemy predict.Intercept
	for _, e := range ctx.Enemies() {
		i := predict.EstimateIntercept(e, ball, func(_ float64, loc, _ model.Vec3) bool {
			return loc.Z() < defenseMaxBallZ &&
				shotAngle(loc, e.Physics.Loc, own.Center2D) < math.Pi/2 &&
				goalAngle(loc, own) < math.Pi/3
		})
		if i.Found && (!enemy.Found || i.Time < enemy.Time) {
			enemy = i
		}
	}

	if mine.Found {
		ctx.EEG.Log(p.Name(), "me_intercept", "t", mine.Time)
		ctx.EEG.Draw(eeg.GhostBall(mine.BallLoc, eeg.ForTeam(ctx.Game.Team)))
	}
	if enemy.Found {
		ctx.EEG.Log(p.Name(), "enemy_shoot_intercept", "t", enemy.Time)
		ctx.EEG.Draw(eeg.GhostBall(enemy.BallLoc, eeg.ForTeam(ctx.Game.EnemyTeam)))
	}

	switch {
	case !enemy.Found:
		if !ImpendingConcede(ball, own, concedeHorizon) {
			ctx.EEG.Log(p.Name(), "safe for now")
			return behavior.Return()
		}
		ctx.EEG.Log(p.Name(), "hitting away from goal")
		return behavior.TailCall(hitToSafety(ctx))
	case !mine.Found:
		ctx.EEG.Log(p.Name(), "can't reach ball")
		return behavior.Abort()
	}

	possession := enemy.Time - mine.Time
	switch {
	case possession >= 3:
		ctx.EEG.Log(p.Name(), "we have all the time in the world")
		return behavior.Abort()
	case possession >= predict.PossessionContestable:
		ctx.EEG.Log(p.Name(), "swatting ball away from enemy")
		return behavior.TailCall(hitToSafety(ctx))
	case possession >= -predict.PossessionContestable:
		ctx.EEG.Log(p.Name(), "defensive race")
		return behavior.TailCall(hitToSafety(ctx))
	}

	ctx.EEG.Log(p.Name(), "things are looking dire")
	ball2 := mine.BallLoc.Vec2()
	toBall := angleOf(ball2.Sub(me.Physics.Loc.Vec2()))
	toGoal := angleOf(own.Center2D.Sub(ball2))
	if math.Abs(NormalizeAngle(toBall-toGoal)) < math.Pi/6 {
		ctx.EEG.Log(p.Name(), "the ball is on the way back")
		return behavior.TailCall(hitToSafety(ctx))
	}
	if own.Center2D.Sub(ball2).Len() < 1000 {
		ctx.EEG.Log(p.Name(), "the ball will be right by the goal")
		return behavior.TailCall(hitToSafety(ctx))
	}

	ctx.EEG.Log(p.Name(), "all hope is lost")
	return behavior.TailCall(NewRetreat())
}

// hitToSafety prefers clearing to the corner when we are between the ball
// and our goal, and falls back to retreating.
func hitToSafety(ctx *behavior.Context) *behavior.TryChoose {
	goal := ctx.Game.OwnGoal().Center2D
	ball := ctx.Packet.Ball.Physics.Loc.Vec2()
	me := ctx.Me().Physics.Loc.Vec2()

	axis := me.Sub(goal)
	if axis.Len() == 0 {
		return behavior.NewTryChoose(behavior.Idle, NewRetreat())
	}
	axis = axis.Normalize()
	goalside := ball.Sub(goal).Dot(axis) - me.Sub(goal).Dot(axis)
	if goalside >= 0 {
		return behavior.NewTryChoose(behavior.Idle, NewHitToOwnCorner(), NewRetreat())
	}
	return behavior.NewTryChoose(behavior.Idle, NewRetreat())
}

// ImpendingConcede reports whether the ball reaches goal's mouth within
// horizon seconds if nobody touches it.
func ImpendingConcede(ball model.Ball, goal model.Goal, horizon float64) bool {
	frames := predict.BallTrajectory(ball, int(horizon/simulate.DT), simulate.DT)
	_, ok := predict.FirstMatch(frames, func(_ float64, loc, _ model.Vec3) bool {
		return threatensGoal(goal, loc)
	})
	return ok
}

// HitToOwnCorner clears a grounded ball towards the corner on its side of
// our own half.
type HitToOwnCorner struct {
	finished bool
}

func NewHitToOwnCorner() *HitToOwnCorner { return &HitToOwnCorner{} }

func (h *HitToOwnCorner) Name() string { return "HitToOwnCorner" }

func (h *HitToOwnCorner) Execute(ctx *behavior.Context) behavior.Action {
	if h.finished {
		return behavior.Return()
	}

	me := ctx.Me()
	intercept := predict.EstimateIntercept(me, ctx.Packet.Ball, func(_ float64, loc, _ model.Vec3) bool {
		return loc.Z() < defenseMaxBallZ
	})
	if !intercept.Found {
		ctx.EEG.Log(h.Name(), "can't reach ball")
		return behavior.Abort()
	}

	ball := intercept.BallLoc.Vec2()
	corner := model.Vec2{math.Copysign(model.FieldMaxX, ball.X()), ctx.Game.OwnGoal().Center2D.Y()}
	target := behindBall(ball, corner, cornerSetback)
	ctx.EEG.Draw(eeg.Line(intercept.BallLoc, model.Vec3{corner.X(), corner.Y(), 0}, eeg.ForTeam(ctx.Game.Team)))

	if target.Sub(me.Physics.Loc.Vec2()).Len() <= cornerContactDist {
		h.finished = true
		return shoot(ctx, h.Name())
	}
	return behavior.Yield(AccelTowards(me.Physics, target, intercept.Time, me.Boost))
}

// Retreat drives back to a point in front of our own goal.
type Retreat struct{}

func NewRetreat() *Retreat { return &Retreat{} }

func (r *Retreat) Name() string { return "Retreat" }

// RetreatSpot is where Retreat heads for goal.
func RetreatSpot(goal model.Goal) model.Vec2 {
	return goal.Center2D.Add(goal.Normal2D.Mul(retreatDepth))
}

func (r *Retreat) Execute(ctx *behavior.Context) behavior.Action {
	action := NewDriveTowards(RetreatSpot(ctx.Game.OwnGoal()), retreatTolerance).WithBoost().Execute(ctx)
	if action.Kind() == behavior.KindReturn {
		ctx.EEG.Log(r.Name(), "in position")
	}
	return action
}
