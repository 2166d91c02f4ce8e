package netsync

import (
	"testing"

	"github.com/automoto/maverick2d/shared/flight"
)

func TestApplyCorrectionIsIdempotent(t *testing.T) {
	p := NewPlayer(flight.State{X: 5, Y: 5, Heading: 10, Speed: 7}, flight.TurnThenMove)
	p.Advance()

	p.ApplyCorrection(100, -200, 45)
	first := p.State()
	p.ApplyCorrection(100, -200, 45)
	second := p.State()

	if first != second {
		t.Fatalf("second correction changed state: %+v -> %+v", first, second)
	}
	if second.X != 100 || second.Y != -200 || second.Heading != 45 || second.Speed != 7 {
		t.Fatalf("unexpected state after correction: %+v", second)
	}
}

func TestApplyCorrectionIgnoresBound(t *testing.T) {
	p := NewPlayer(flight.State{Speed: 7}, flight.TurnThenMove)
	p.ApplyCorrection(5000, 0, 0)
	if p.State().X != 5000 {
		t.Fatalf("host correction must be applied verbatim, got %v", p.State().X)
	}
}

func TestAdvanceUsesIntent(t *testing.T) {
	p := NewPlayer(flight.State{Speed: 7}, flight.TurnThenMove)
	p.SetIntent(flight.IntentFromDisplacement(-100)) // left at 3 deg/step
	p.Advance()
	p.Advance()
	if got := p.State().Heading; got < 5.999 || got > 6.001 {
		t.Fatalf("heading = %v, want 6", got)
	}

	p.SetIntent(flight.NeutralIntent())
	p.Advance()
	if got := p.State().Heading; got < 5.999 || got > 6.001 {
		t.Fatalf("released stick kept turning: %v", got)
	}
}

func TestAdvanceFreezesAtWorldEdge(t *testing.T) {
	p := NewPlayer(flight.State{X: 0, Y: 2040, Speed: 7}, flight.TurnThenMove)
	p.Advance()
	if p.State().Y != 2047 {
		t.Fatalf("y = %v, want 2047", p.State().Y)
	}
	p.Advance()
	if p.State().Y != 2047 {
		t.Fatalf("y crossed the bound: %v", p.State().Y)
	}
}
