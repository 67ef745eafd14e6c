package agent

import (
	"fmt"
	"math"
	"strings"

	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/simulate"
)

// EventKind identifies a game event that forces the planner to replan.
type EventKind string

const (
	EventKickoff     EventKind = "kickoff"
	EventGoalScored  EventKind = "goal_scored"
	EventBallTouched EventKind = "ball_touched"
)

// Event is a significant change detected by diffing consecutive snapshots.
type Event struct {
	Kind   EventKind
	Tick   int
	Detail string
}

// touchThreshold is how far, in uu/s, the observed ball velocity may drift
// from the free-flight prediction before we assume a car touched it.
const touchThreshold = 300.0

// maxPredictGap bounds the snapshot gap the touch detector will bridge.
const maxPredictGap = 0.25

// stateSnapshot captures the diffable fields from a tick.
type stateSnapshot struct {
	tick    int
	time    float64
	kickoff bool
	scored  bool
	ball    model.Physics
}

func takeSnapshot(gs model.GameState) stateSnapshot {
	return stateSnapshot{
		tick:    gs.Tick,
		time:    gs.TimeSeconds,
		kickoff: gs.Kickoff,
		scored:  scoringTeam(gs.Ball.Physics.Loc) != nil,
		ball:    gs.Ball.Physics,
	}
}

// scoringTeam returns the team that scored if the ball is inside a goal.
func scoringTeam(loc model.Vec3) *model.Team {
	for _, defender := range []model.Team{model.Blue, model.Orange} {
		if model.GoalFor(defender).BallIsScored(loc) {
			scorer := defender.Opponent()
			return &scorer
		}
	}
	return nil
}

// detectEvents compares the current snapshot against the previous one and
// returns any triggered events. Returns nil if prev is nil (first tick).
func detectEvents(gs model.GameState, prev *stateSnapshot) []Event {
	if prev == nil {
		return nil
	}

	var events []Event
	cur := takeSnapshot(gs)

	// 1. kickoff: the game entered a kickoff countdown
	if !prev.kickoff && cur.kickoff {
		events = append(events, Event{
			Kind:   EventKickoff,
			Tick:   gs.Tick,
			Detail: "Kickoff",
		})
	}

	// 2. goal_scored: the ball crossed a goal line
	if !prev.scored && cur.scored {
		events = append(events, Event{
			Kind:   EventGoalScored,
			Tick:   gs.Tick,
			Detail: fmt.Sprintf("Goal scored by %s", *scoringTeam(gs.Ball.Physics.Loc)),
		})
	}

	// 3. ball_touched: the ball's velocity left its free-flight prediction
	if !cur.kickoff && !cur.scored {
		if drift, ok := ballDrift(*prev, cur); ok && drift > touchThreshold {
			events = append(events, Event{
				Kind:   EventBallTouched,
				Tick:   gs.Tick,
				Detail: fmt.Sprintf("Ball touched: velocity off prediction by %.0f uu/s", drift),
			})
		}
	}

	return events
}

// ballDrift steps the previous ball forward to the current time and returns
// how far the observed velocity is from the prediction.
func ballDrift(prev, cur stateSnapshot) (float64, bool) {
	gap := cur.time - prev.time
	if gap <= 0 || gap > maxPredictGap {
		return 0, false
	}
	steps := max(1, int(math.Round(gap/simulate.DT)))

	sim := simulate.NewBall(prev.ball.Loc, prev.ball.Vel, prev.ball.AngVel)
	for iter := 0; iter < steps; iter++ {
		sim.Step(gap / float64(steps))
	}
	return cur.ball.Vel.Sub(sim.Vel()).Len(), true
}

// formatEvents renders events as a single log-friendly line.
func formatEvents(events []Event) string {
	parts := make([]string, len(events))
	for i, e := range events {
		parts[i] = fmt.Sprintf("[tick %d] %s: %s", e.Tick, e.Kind, e.Detail)
	}
	return strings.Join(parts, "; ")
}
