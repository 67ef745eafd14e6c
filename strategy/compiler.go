package strategy

import (
	"fmt"

	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/maneuvers"
)

// CompilePosture generates a complete rule set from a posture's weights.
// All conditions are built via fmt.Sprintf with interpolated values.
func CompilePosture(p Posture) []*Rule {
	p.Validate()
	var rules []*Rule

	// --- Core rules (always present) ---

	rules = append(rules, &Rule{
		Name:         "kickoff",
		Order:        1000,
		Plan:         behavior.Force,
		ConditionSrc: `IsKickoff()`,
		Build: func(Env) behavior.Behavior {
			return behavior.NewChain(behavior.Force, maneuvers.NewKickoff())
		},
	})

	rules = append(rules, &Rule{
		Name:         "save",
		Order:        900,
		Plan:         behavior.Save,
		ConditionSrc: `ConcedeSoon()`,
		Build: func(Env) behavior.Behavior {
			return behavior.NewTryChoose(behavior.Save, maneuvers.NewPushToOwnCorner(), maneuvers.NewRetreat())
		},
	})

	rules = append(rules, &Rule{
		Name:         "recover",
		Order:        150,
		Plan:         behavior.Idle,
		ConditionSrc: `!OnFlatGround()`,
		Build: func(Env) behavior.Behavior {
			return behavior.NewChain(behavior.Idle, maneuvers.NewGetToFlatGround())
		},
	})

	rules = append(rules, &Rule{
		Name:         "fallback-retreat",
		Order:        0,
		Plan:         behavior.Idle,
		ConditionSrc: `true`,
		Build: func(Env) behavior.Behavior {
			return behavior.NewChain(behavior.Idle, maneuvers.NewRetreat())
		},
	})

	// --- Defense (parameterized by Defense) ---
	// A defensive posture falls back even while it still has the race.

	defendPossession := lerpf(-0.5, 1.0, p.Defense)
	rules = append(rules, &Rule{
		Name:         "defend",
		Order:        lerp(300, 700, p.Defense),
		Plan:         behavior.Defense,
		ConditionSrc: fmt.Sprintf(`BallInOwnHalf() && Possession() < %.2f`, defendPossession),
		Build: func(Env) behavior.Behavior {
			return behavior.NewTryChoose(behavior.Defense, maneuvers.NewPushToOwnCorner(), maneuvers.NewRetreat())
		},
	})

	// --- Offense (parameterized by Aggression) ---

	strikeTime := lerpf(1.5, 3.5, p.Aggression)
	strikePossession := lerpf(0.5, -1.0, p.Aggression)
	rules = append(rules, &Rule{
		Name:         "strike",
		Order:        lerp(300, 700, p.Aggression),
		Plan:         behavior.Striking,
		ConditionSrc: fmt.Sprintf(`BallZ() < 300 && MyInterceptTime() < %.2f && Possession() > %.2f`, strikeTime, strikePossession),
		Build: func(Env) behavior.Behavior {
			return behavior.NewChain(behavior.Striking, maneuvers.NewGroundShot())
		},
	})

	// --- Boost (parameterized by BoostGreed) ---

	boostBelow := lerp(10, 50, p.BoostGreed)
	boostPossession := lerpf(1.5, 0.0, p.BoostGreed)
	rules = append(rules, &Rule{
		Name:         "get-boost",
		Order:        lerp(200, 500, p.BoostGreed),
		Plan:         behavior.Idle,
		ConditionSrc: fmt.Sprintf(`Boost() < %d && Possession() > %.2f`, boostBelow, boostPossession),
		Build: func(Env) behavior.Behavior {
			return behavior.NewChain(behavior.Idle, maneuvers.NewGetBoost())
		},
	})

	return rules
}
