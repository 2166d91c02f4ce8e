package messages

// Input is sent from client to host at most once per rendering tick while
// the pilot is steering. It carries absolute state so a lost datagram is
// harmless.
type Input struct {
	ID        PlayerID
	Timestamp int64 // Client timestamp (Unix ms)
	X, Y      float64
	Angle     float64
	// TurnDelta is set only on the message that ends a steering gesture.
	// It is a hint, never authoritative.
	TurnDelta *float64
}

func (Input) Kind() Kind { return KindInput }
func (m Input) Sender() PlayerID { return m.ID }

// WithTurnDelta returns a copy of the input carrying a turn delta hint.
func (m Input) WithTurnDelta(delta float64) Input {
	m.TurnDelta = &delta
	return m
}
