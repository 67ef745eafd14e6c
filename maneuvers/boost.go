package maneuvers

import (
	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/eeg"
	"github.com/nstehr/kickoff/model"
)

const (
	boostFull      = 90.0
	boostPickupRad = 150.0
)

// GetBoost drives to the nearest full-boost pad.
type GetBoost struct{}

func NewGetBoost() *GetBoost { return &GetBoost{} }

func (g *GetBoost) Name() string { return "GetBoost" }

// NearestBoostDollar returns the full-boost pad closest to loc.
func NearestBoostDollar(pads []model.Vec2, loc model.Vec2) (model.Vec2, bool) {
	var best model.Vec2
	found := false
	for _, p := range pads {
		if !found || p.Sub(loc).Len() < best.Sub(loc).Len() {
			best = p
			found = true
		}
	}
	return best, found
}

func (g *GetBoost) Execute(ctx *behavior.Context) behavior.Action {
	me := ctx.Me()
	if me.Boost >= boostFull {
		return behavior.Return()
	}

	loc := me.Physics.Loc.Vec2()
	pad, ok := NearestBoostDollar(ctx.Game.BoostDollars(), loc)
	if !ok {
		ctx.EEG.Log(g.Name(), "no boost pads")
		return behavior.Abort()
	}
	if pad.Sub(loc).Len() <= boostPickupRad {
		ctx.EEG.Log(g.Name(), "reached pad")
		return behavior.Return()
	}

	ctx.EEG.Draw(eeg.Line(me.Physics.Loc, model.Vec3{pad.X(), pad.Y(), 0}, eeg.Yellow))
	return NewDriveTowards(pad, boostPickupRad).Execute(ctx)
}
