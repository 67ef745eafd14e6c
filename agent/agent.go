package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/eeg"
	"github.com/nstehr/kickoff/model"
	"github.com/nstehr/kickoff/replay"
	"github.com/nstehr/kickoff/strategy"
)

// Options tunes the per-session decision loop.
type Options struct {
	MaxStepsPerTick int
	PlanInterval    int
}

// Agent owns the decision-making for a single controlled car.
type Agent struct {
	ID      uuid.UUID
	Game    *model.Game
	Engine  *strategy.Engine
	runner  *behavior.Runner
	planner *Planner
	prev    *stateSnapshot
	logger  *slog.Logger
}

// New creates an agent for player 0 on blue until a hello says otherwise.
func New(engine *strategy.Engine, opts Options) *Agent {
	id := uuid.New()
	return &Agent{
		ID:      id,
		Game:    model.NewGame(0, model.Blue, model.DefaultFieldInfo()),
		Engine:  engine,
		runner:  behavior.NewRunner(opts.MaxStepsPerTick),
		planner: NewPlanner(engine, opts.PlanInterval),
		logger:  slog.Default().With("session", id.String()),
	}
}

// SetPosture recompiles the engine for p. The old posture stays active on error.
func (a *Agent) SetPosture(p strategy.Posture) error {
	if err := a.Engine.Apply(p); err != nil {
		return fmt.Errorf("apply posture %q: %w", p.Name, err)
	}
	return nil
}

// Stack lists the running behaviors bottom to top.
func (a *Agent) Stack() []string { return a.runner.Names() }

// Overruns counts ticks that hit the per-tick step cap.
func (a *Agent) Overruns() int { return a.runner.Overruns() }

// HandleTick decides the controls for one snapshot.
func (a *Agent) HandleTick(gs *model.GameState) model.ControlOutput {
	events := detectEvents(*gs, a.prev)
	snap := takeSnapshot(*gs)
	a.prev = &snap

	if len(events) > 0 {
		a.logger.Info("game events", "tick", gs.Tick, "events", formatEvents(events))
	}

	if _, ok := a.Game.Me(gs); !ok {
		a.logger.Warn("controlled car missing from snapshot", "tick", gs.Tick, "player", a.Game.PlayerIndex)
		return model.ControlOutput{}
	}

	a.planner.Plan(gs, a.Game, a.runner, events)

	sink := eeg.New(gs.Tick)
	out := a.runner.Drive(behavior.NewContext(gs, a.Game, sink))
	sink.Flush(context.Background(), a.logger)
	return out
}

// HandleHello identifies the controlled car and acknowledges the session.
func (a *Agent) HandleHello(env replay.Envelope) (*replay.Envelope, error) {
	var hello replay.HelloMessage
	if err := env.Decode(&hello); err != nil {
		return nil, err
	}

	field := model.DefaultFieldInfo()
	if hello.Field != nil {
		field = *hello.Field
	}
	a.Game = model.NewGame(hello.PlayerIndex, hello.Team, field)
	a.prev = nil
	a.runner.Reset(nil)
	a.logger.Info("player identified", "player", hello.PlayerIndex, "team", hello.Team, "boostPads", len(field.BoostPads))

	ack, err := replay.NewEnvelope(replay.TypeAck, replay.AckMessage{Status: "ok", Session: a.ID.String()})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleGameState decodes a tick frame and replies with the chosen controls.
func (a *Agent) HandleGameState(env replay.Envelope) (*replay.Envelope, error) {
	var gs model.GameState
	if err := env.Decode(&gs); err != nil {
		return nil, err
	}

	out := a.HandleTick(&gs)
	a.logger.Debug("tick handled", "tick", gs.Tick, "stack", a.runner.Names(), "throttle", out.Throttle, "steer", out.Steer)

	resp, err := replay.NewEnvelope(replay.TypeControls, replay.ControlsMessage{Tick: gs.Tick, Controls: out})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
