package replay

import "github.com/nstehr/kickoff/model"

const (
	TypeHello    = "hello"
	TypeAck      = "ack"
	TypeTick     = "tick"
	TypeControls = "controls"
)

// HelloMessage identifies the controlled car. Field is optional; without it
// the standard arena layout is assumed.
type HelloMessage struct {
	PlayerIndex int              `json:"playerIndex"`
	Team        model.Team       `json:"team"`
	Field       *model.FieldInfo `json:"field,omitempty"`
}

// AckMessage answers a hello with the session id.
type AckMessage struct {
	Status  string `json:"status"`
	Session string `json:"session,omitempty"`
}

// ControlsMessage is the agent's output for one tick.
type ControlsMessage struct {
	Tick     int                 `json:"tick"`
	Controls model.ControlOutput `json:"controls"`
}
