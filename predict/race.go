package predict

import "github.com/nstehr/kickoff/model"

// PossessionContestable is the possession margin, in seconds, inside which
// neither side clearly reaches the ball first.
const PossessionContestable = 0.5

// Race compares the controlled car's intercept against the fastest enemy.
type Race struct {
	Me      Intercept
	Enemy   Intercept
	horizon float64
}

// RaceFor estimates intercepts for me and every enemy with the same predicate.
// A nil predicate accepts every ball state.
func RaceFor(me model.Car, enemies []model.Car, ball model.Ball, pred Predicate) Race {
	if pred == nil {
		pred = func(float64, model.Vec3, model.Vec3) bool { return true }
	}
	est := DefaultEstimator()
	r := Race{Me: est.Estimate(me, ball, pred), horizon: est.Horizon()}
	for _, e := range enemies {
		i := est.Estimate(e, ball, pred)
		if i.Found && (!r.Enemy.Found || i.Time < r.Enemy.Time) {
			r.Enemy = i
		}
	}
	return r
}

// MyTime is the controlled car's intercept time, or the horizon when it
// cannot reach the ball.
func (r Race) MyTime() float64 { return r.timeOf(r.Me) }

// EnemyTime is the fastest enemy's intercept time, or the horizon.
func (r Race) EnemyTime() float64 { return r.timeOf(r.Enemy) }

// Possession is positive when we reach the ball first, in seconds.
func (r Race) Possession() float64 {
	return r.EnemyTime() - r.MyTime()
}

func (r Race) timeOf(i Intercept) float64 {
	if !i.Found {
		return r.horizon
	}
	return i.Time
}
