package maneuvers

import "github.com/nstehr/kickoff/behavior"

const kickoffDodgeDist = 800.0

// Kickoff boosts at the ball and dodges into it.
type Kickoff struct {
	dodged bool
}

func NewKickoff() *Kickoff { return &Kickoff{} }

func (k *Kickoff) Name() string { return "Kickoff" }

func (k *Kickoff) Execute(ctx *behavior.Context) behavior.Action {
	if !ctx.Packet.Kickoff {
		return behavior.Return()
	}

	me := ctx.Me()
	ball := ctx.Packet.Ball.Physics.Loc.Vec2()
	if !k.dodged && ball.Sub(me.Physics.Loc.Vec2()).Len() < kickoffDodgeDist {
		k.dodged = true
		ctx.EEG.Log(k.Name(), "dodging")
		return behavior.Call(JumpAndDodge(YawDiff(me.Physics, ball)))
	}

	out := SteerTowards(me.Physics, ball)
	out.Boost = !k.dodged && me.Boost > 0
	return behavior.Yield(out)
}
