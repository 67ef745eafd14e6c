package maneuvers

import (
	"math"

	"github.com/nstehr/kickoff/behavior"
	"github.com/nstehr/kickoff/model"
)

// DriveTowards drives to a ground location and returns on arrival.
type DriveTowards struct {
	target    model.Vec2
	tolerance float64
	boost     bool
}

// NewDriveTowards returns once the car is within tolerance of target.
func NewDriveTowards(target model.Vec2, tolerance float64) *DriveTowards {
	return &DriveTowards{target: target, tolerance: tolerance}
}

// WithBoost lets the drive use boost on straightaways.
func (d *DriveTowards) WithBoost() *DriveTowards {
	d.boost = true
	return d
}

func (d *DriveTowards) Name() string { return "DriveTowards" }

func (d *DriveTowards) Execute(ctx *behavior.Context) behavior.Action {
	me := ctx.Me()
	if me.Physics.Loc.Vec2().Sub(d.target).Len() <= d.tolerance {
		return behavior.Return()
	}
	out := SteerTowards(me.Physics, d.target)
	out.Boost = d.boost && me.Boost > 0 && math.Abs(YawDiff(me.Physics, d.target)) < math.Pi/8
	return behavior.Yield(out)
}

func cosSin(a float64) (float64, float64) {
	return math.Cos(a), math.Sin(a)
}
