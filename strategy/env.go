package strategy

import (
	"math"

	"github.com/nstehr/kickoff/maneuvers"
	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/predict"
)

const concedeHorizon = 5.0

// Env wraps the tick snapshot and exposes helper methods callable from expr
// expressions. Intercepts are estimated once when the Env is built.
type Env struct {
	State model.GameState
	Game  *model.Game

	me      model.Car
	race    predict.Race
	concede bool
}

// NewEnv builds an Env that counts every ball state as reachable.
func NewEnv(gs *model.GameState, game *model.Game) Env {
	return newEnv(gs, game, nil)
}

func newEnv(gs *model.GameState, game *model.Game, reach predict.Predicate) Env {
	me, _ := game.Me(gs)
	return Env{
		State:   *gs,
		Game:    game,
		me:      me,
		race:    predict.RaceFor(me, game.Enemies(gs), gs.Ball, reach),
		concede: maneuvers.ImpendingConcede(gs.Ball, game.OwnGoal(), concedeHorizon),
	}
}

func (e Env) BallZ() float64 {
	return e.State.Ball.Physics.Loc.Z()
}

func (e Env) BallSpeed() float64 {
	return e.State.Ball.Physics.Vel.Len()
}

func (e Env) Boost() float64 {
	return e.me.Boost
}

func (e Env) DistToBall() float64 {
	return e.State.Ball.Physics.Loc.Sub(e.me.Physics.Loc).Len()
}

// BallInOwnHalf reports whether the ball is on our side of midfield.
func (e Env) BallInOwnHalf() bool {
	own := e.Game.OwnGoal().Center2D.Y()
	y := e.State.Ball.Physics.Loc.Y()
	return math.Signbit(own) == math.Signbit(y)
}

func (e Env) IsKickoff() bool {
	return e.State.Kickoff
}

func (e Env) OnFlatGround() bool {
	return maneuvers.OnFlatGround(e.me)
}

func (e Env) MyInterceptTime() float64 {
	return e.race.MyTime()
}

func (e Env) EnemyInterceptTime() float64 {
	return e.race.EnemyTime()
}

// Possession is positive when we reach the ball first, in seconds.
func (e Env) Possession() float64 {
	return e.race.Possession()
}

// ConcedeSoon reports whether the untouched ball reaches our goal mouth soon.
func (e Env) ConcedeSoon() bool {
	return e.concede
}
