package predict

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nstehr/kickoff/model"
)

// Point exposes a vector to expr with named components.
type Point struct {
	X, Y, Z float64
}

func pointOf(v model.Vec3) Point { return Point{v.X(), v.Y(), v.Z()} }

// ConditionEnv is the environment a compiled predicate runs against.
type ConditionEnv struct {
	T   float64
	Loc Point
	Vel Point
}

func (e ConditionEnv) Speed() float64 {
	return math.Sqrt(e.Vel.X*e.Vel.X + e.Vel.Y*e.Vel.Y + e.Vel.Z*e.Vel.Z)
}

func (e ConditionEnv) Speed2D() float64 {
	return math.Hypot(e.Vel.X, e.Vel.Y)
}

func (e ConditionEnv) InField() bool {
	return IsSaneBallLoc(model.Vec3{e.Loc.X, e.Loc.Y, e.Loc.Z})
}

// CompilePredicate compiles an expr boolean expression such as
// `Loc.Z < 110 && T < 2` into a Predicate. A runtime error counts as false.
func CompilePredicate(src string) (Predicate, error) {
	prog, err := expr.Compile(src, expr.Env(ConditionEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile predicate %q: %w", src, err)
	}
	return programPredicate(prog), nil
}

func programPredicate(prog *vm.Program) Predicate {
	return func(t float64, loc, vel model.Vec3) bool {
		out, err := vm.Run(prog, ConditionEnv{T: t, Loc: pointOf(loc), Vel: pointOf(vel)})
		if err != nil {
			return false
		}
		ok, _ := out.(bool)
		return ok
	}
}
