package model

import "math"

// Field extents for the standard soccar arena, ignoring the goal tunnels and
// the curved ramps between walls.
const (
	FieldMaxX = 4096.0
	FieldMaxY = 5120.0
	CeilingZ  = 2044.0
	GoalHalfW = 892.755
)

// Team identifies which side a car plays for. Blue defends negative Y.
type Team byte

const (
	Blue   Team = 0
	Orange Team = 1
)

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == Blue {
		return Orange
	}
	return Blue
}

func (t Team) String() string {
	if t == Blue {
		return "blue"
	}
	return "orange"
}

// Goal is a team's net, described by the center of its goal line.
type Goal struct {
	Center2D Vec2
	Normal2D Vec2 // points into the field
}

var (
	blueGoal   = Goal{Center2D: Vec2{0, -FieldMaxY}, Normal2D: Vec2{0, 1}}
	orangeGoal = Goal{Center2D: Vec2{0, FieldMaxY}, Normal2D: Vec2{0, -1}}
)

// GoalFor returns the goal defended by team.
func GoalFor(team Team) Goal {
	if team == Blue {
		return blueGoal
	}
	return orangeGoal
}

// BallIsScored is an estimate; it ignores the ball radius.
func (g Goal) BallIsScored(loc Vec3) bool {
	if g.Center2D.Y() < 0 {
		return loc.Y() < g.Center2D.Y()
	}
	return loc.Y() > g.Center2D.Y()
}

// BoostPad is a static pickup location reported once per session.
type BoostPad struct {
	Loc  Vec3 `json:"loc"`
	Full bool `json:"full"`
}

// FieldInfo carries the static field data sent during the hello handshake.
type FieldInfo struct {
	BoostPads []BoostPad `json:"boostPads"`
}

// DefaultFieldInfo lists the six full-boost pads of the standard arena. Used
// when the host does not send field info.
func DefaultFieldInfo() FieldInfo {
	locs := []Vec3{
		{-3072, -4096, 73}, {3072, -4096, 73},
		{-3584, 0, 73}, {3584, 0, 73},
		{-3072, 4096, 73}, {3072, 4096, 73},
	}
	pads := make([]BoostPad, len(locs))
	for i, l := range locs {
		pads[i] = BoostPad{Loc: l, Full: true}
	}
	return FieldInfo{BoostPads: pads}
}

// Game is the per-session view of the field from one car's perspective.
type Game struct {
	PlayerIndex  int
	Team         Team
	EnemyTeam    Team
	boostDollars []Vec2
}

// NewGame keeps only the full-boost pads of field.
func NewGame(playerIndex int, team Team, field FieldInfo) *Game {
	g := &Game{PlayerIndex: playerIndex, Team: team, EnemyTeam: team.Opponent()}
	for _, p := range field.BoostPads {
		if p.Full {
			g.boostDollars = append(g.boostDollars, p.Loc.Vec2())
		}
	}
	return g
}

func (g *Game) OwnGoal() Goal   { return GoalFor(g.Team) }
func (g *Game) EnemyGoal() Goal { return GoalFor(g.EnemyTeam) }

// BoostDollars returns the full-boost pad locations.
func (g *Game) BoostDollars() []Vec2 { return g.boostDollars }

// Me returns the controlled car. The second result is false when the snapshot
// does not contain it.
func (g *Game) Me(gs *GameState) (Car, bool) {
	for _, c := range gs.Cars {
		if c.Index == g.PlayerIndex {
			return c, true
		}
	}
	return Car{}, false
}

// Enemies returns every car on the opposing team.
func (g *Game) Enemies(gs *GameState) []Car {
	var out []Car
	for _, c := range gs.Cars {
		if c.Team == g.EnemyTeam {
			out = append(out, c)
		}
	}
	return out
}

func cosSin(a float64) (float64, float64) {
	s, c := math.Sincos(a)
	return c, s
}
