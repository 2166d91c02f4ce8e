package flight

import "math"

const (
	// DisplacementScale converts analog stick displacement into turn rate.
	DisplacementScale = 0.03
	// NeutralTurnRate is the magnitude used when no analog input is active,
	// and for digital turning.
	NeutralTurnRate = 3.0
)

// TurnDirection is the direction the pilot is steering.
type TurnDirection int

const (
	TurnNone TurnDirection = iota
	TurnLeft
	TurnRight
)

func (d TurnDirection) String() string {
	switch d {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	}
	return "none"
}

// Intent is the pilot's current turn input. It is recomputed on every input
// event and read on every simulation step.
type Intent struct {
	Direction TurnDirection
	Magnitude float64
}

// NeutralIntent returns the released stick state.
func NeutralIntent() Intent {
	return Intent{Direction: TurnNone, Magnitude: NeutralTurnRate}
}

// IntentFromDisplacement maps a horizontal stick displacement onto an
// intent. Negative displacement steers left.
func IntentFromDisplacement(d float64) Intent {
	switch {
	case d < 0:
		return Intent{Direction: TurnLeft, Magnitude: DisplacementScale * math.Abs(d)}
	case d > 0:
		return Intent{Direction: TurnRight, Magnitude: DisplacementScale * d}
	}
	return NeutralIntent()
}

// IntentFromDirection builds a digital intent with the neutral magnitude.
func IntentFromDirection(dir TurnDirection) Intent {
	return Intent{Direction: dir, Magnitude: NeutralTurnRate}
}

// TurnRate returns the signed per-step heading change. Left is positive.
func (i Intent) TurnRate() float64 {
	switch i.Direction {
	case TurnLeft:
		return i.Magnitude
	case TurnRight:
		return -i.Magnitude
	}
	return 0
}
