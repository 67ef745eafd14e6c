package strategy

import "math"

// Posture is a high-level play style. Weights are 0.0–1.0; CompilePosture maps
// them to concrete rule thresholds and orders.
type Posture struct {
	Name       string  `json:"name" toml:"name"`
	Rationale  string  `json:"rationale" toml:"rationale"`
	Aggression float64 `json:"aggression" toml:"aggression"`
	Defense    float64 `json:"defense" toml:"defense"`
	BoostGreed float64 `json:"boost_greed" toml:"boost_greed"`

	// Reach is an optional predicate over T, Loc and Vel limiting which ball
	// states count as reachable in the possession race. Empty accepts all.
	Reach string `json:"reach,omitempty" toml:"reach"`
}

// DefaultPosture returns a balanced baseline posture.
func DefaultPosture() Posture {
	return Posture{
		Name:       "Balanced",
		Rationale:  "Default balanced play",
		Aggression: 0.5,
		Defense:    0.5,
		BoostGreed: 0.5,
	}
}

// Validate clamps all weights to their valid ranges.
func (p *Posture) Validate() {
	p.Aggression = clamp(p.Aggression, 0, 1)
	p.Defense = clamp(p.Defense, 0, 1)
	p.BoostGreed = clamp(p.BoostGreed, 0, 1)
}

// lerp linearly interpolates between min and max by t (0–1), returning an int.
func lerp(min, max int, t float64) int {
	return min + int(math.Round(float64(max-min)*t))
}

// lerpf linearly interpolates between min and max by t (0–1), returning a float64.
func lerpf(min, max, t float64) float64 {
	return min + (max-min)*t
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
