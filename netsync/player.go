package netsync

import (
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/messages"
)

// Player owns the local aircraft: its kinematic state, the identity the
// host knows it by and the pilot's current turn intent.
type Player struct {
	id     messages.PlayerID
	state  flight.State
	intent flight.Intent
	order  flight.StepOrder
}

// NewPlayer creates a local player at the given state.
func NewPlayer(start flight.State, order flight.StepOrder) *Player {
	return &Player{
		state:  start,
		intent: flight.NeutralIntent(),
		order:  order,
	}
}

func (p *Player) ID() messages.PlayerID {
	return p.id
}

func (p *Player) State() flight.State {
	return p.state
}

func (p *Player) Intent() flight.Intent {
	return p.intent
}

// SetIntent replaces the turn intent read by the next Advance.
func (p *Player) SetIntent(in flight.Intent) {
	p.intent = in
}

// Advance runs one simulation step.
func (p *Player) Advance() {
	p.state.Step(p.order, p.intent.TurnRate())
}

// ApplyCorrection overwrites position and heading with the host's view.
// The host is authoritative: no interpolation, no ordering check and no
// bound check. Speed is not part of a correction and is kept.
func (p *Player) ApplyCorrection(x, y, heading float64) {
	p.state.X = x
	p.state.Y = y
	p.state.Heading = heading
}

func (p *Player) setID(id messages.PlayerID) {
	p.id = id
}
