// Package flight holds the aircraft kinematics shared by the local player,
// remote roster entries and projectiles. It has no ebiten dependency so it
// can be exercised headless.
package flight

import "github.com/automoto/maverick2d/shared/gamemath"

// WorldBound is the half-width of the square world. Positions stay strictly
// inside (-WorldBound, WorldBound) on both axes.
const WorldBound = 2048.0

// State is the kinematic state of an aircraft.
type State struct {
	X, Y    float64
	Heading float64 // degrees, unbounded
	Speed   float64 // world units per step
}

// Translate moves the state by Speed along Heading. Each axis is committed
// only if the result stays inside the world bound; an axis that would leave
// it is left unchanged. The return values report which axes moved.
func (s *State) Translate() (movedX, movedY bool) {
	dx, dy := gamemath.HeadingVector(s.Heading)
	nx := s.X + s.Speed*dx
	ny := s.Y + s.Speed*dy

	if gamemath.InsideBound(nx, WorldBound) {
		s.X = nx
		movedX = true
	}
	if gamemath.InsideBound(ny, WorldBound) {
		s.Y = ny
		movedY = true
	}
	return movedX, movedY
}

// Turn adds a signed turn rate to the heading. Positive turns left.
func (s *State) Turn(rate float64) {
	s.Heading += rate
}

// StepOrder selects whether a step turns before or after translating.
type StepOrder int

const (
	TurnThenMove StepOrder = iota
	MoveThenTurn
)

func (o StepOrder) String() string {
	switch o {
	case TurnThenMove:
		return "turn-then-move"
	case MoveThenTurn:
		return "move-then-turn"
	}
	return "unknown"
}

// ParseStepOrder maps a config string onto a StepOrder.
func ParseStepOrder(s string) (StepOrder, bool) {
	switch s {
	case "turn-then-move", "turn":
		return TurnThenMove, true
	case "move-then-turn", "move":
		return MoveThenTurn, true
	}
	return TurnThenMove, false
}

// Step advances the state by one fixed simulation step.
func (s *State) Step(order StepOrder, turnRate float64) {
	if order == MoveThenTurn {
		s.Translate()
		s.Turn(turnRate)
		return
	}
	s.Turn(turnRate)
	s.Translate()
}
