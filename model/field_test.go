package model

import (
	"math"
	"testing"
)

func TestGoalFor(t *testing.T) {
	tests := []struct {
		team    Team
		wantY   float64
		normalY float64
	}{
		{Blue, -FieldMaxY, 1},
		{Orange, FieldMaxY, -1},
	}
	for _, tc := range tests {
		g := GoalFor(tc.team)
		if g.Center2D.Y() != tc.wantY {
			t.Errorf("GoalFor(%s).Center2D.Y = %f, want %f", tc.team, g.Center2D.Y(), tc.wantY)
		}
		if g.Normal2D.Y() != tc.normalY {
			t.Errorf("GoalFor(%s).Normal2D.Y = %f, want %f", tc.team, g.Normal2D.Y(), tc.normalY)
		}
	}
}

func TestBallIsScored(t *testing.T) {
	tests := []struct {
		name string
		team Team
		loc  Vec3
		want bool
	}{
		{"blue net, ball behind line", Blue, Vec3{0, -5200, 100}, true},
		{"blue net, ball in field", Blue, Vec3{0, -5000, 100}, false},
		{"orange net, ball behind line", Orange, Vec3{0, 5200, 100}, true},
		{"orange net, ball at midfield", Orange, Vec3{0, 0, 100}, false},
	}
	for _, tc := range tests {
		if got := GoalFor(tc.team).BallIsScored(tc.loc); got != tc.want {
			t.Errorf("%s: BallIsScored(%v) = %v, want %v", tc.name, tc.loc, got, tc.want)
		}
	}
}

func TestTeamOpponent(t *testing.T) {
	if Blue.Opponent() != Orange || Orange.Opponent() != Blue {
		t.Error("Opponent should swap teams")
	}
}

func TestNewGame_FiltersFullBoost(t *testing.T) {
	field := FieldInfo{BoostPads: []BoostPad{
		{Loc: Vec3{-3072, -4096, 73}, Full: true},
		{Loc: Vec3{0, -2816, 70}, Full: false},
		{Loc: Vec3{3584, 0, 73}, Full: true},
	}}
	g := NewGame(0, Blue, field)
	if len(g.BoostDollars()) != 2 {
		t.Fatalf("BoostDollars: got %d, want 2", len(g.BoostDollars()))
	}
	if g.EnemyTeam != Orange {
		t.Errorf("EnemyTeam = %s, want orange", g.EnemyTeam)
	}
}

func TestDefaultFieldInfo(t *testing.T) {
	f := DefaultFieldInfo()
	if len(f.BoostPads) != 6 {
		t.Fatalf("expected 6 full boost pads, got %d", len(f.BoostPads))
	}
	for _, p := range f.BoostPads {
		if !p.Full {
			t.Errorf("pad %v should be full boost", p.Loc)
		}
	}
}

func TestGameMeAndEnemies(t *testing.T) {
	gs := GameState{Cars: []Car{
		{Index: 0, Team: Blue},
		{Index: 1, Team: Orange},
		{Index: 2, Team: Orange},
	}}
	g := NewGame(0, Blue, FieldInfo{})
	me, ok := g.Me(&gs)
	if !ok || me.Index != 0 {
		t.Fatalf("Me: got %+v ok=%v", me, ok)
	}
	if n := len(g.Enemies(&gs)); n != 2 {
		t.Errorf("Enemies: got %d, want 2", n)
	}

	g = NewGame(7, Blue, FieldInfo{})
	if _, ok := g.Me(&gs); ok {
		t.Error("Me should report missing car")
	}
}

func TestPhysicsForward(t *testing.T) {
	p := Physics{Rot: Rotation{Yaw: math.Pi / 2}}
	f := p.Forward()
	if math.Abs(f.X()) > 1e-9 || math.Abs(f.Y()-1) > 1e-9 || math.Abs(f.Z()) > 1e-9 {
		t.Errorf("Forward() at yaw=pi/2 = %v, want (0,1,0)", f)
	}
}

func TestControlOutputClamp(t *testing.T) {
	c := ControlOutput{Throttle: 2, Steer: -3, Pitch: 0.5, Yaw: -1, Roll: 1.5, Boost: true}.Clamp()
	if c.Throttle != 1 || c.Steer != -1 || c.Pitch != 0.5 || c.Yaw != -1 || c.Roll != 1 {
		t.Errorf("Clamp() = %+v", c)
	}
	if !c.Boost {
		t.Error("Clamp() must not touch buttons")
	}
}
