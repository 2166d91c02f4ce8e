package messages

// Inbound is a message received from the host.
type Inbound interface {
	inbound()
}

// Correction overwrites the local player's state.
type Correction struct {
	X, Y  float64
	Angle float64
}

func (Correction) inbound() {}

// RosterEntry is one player's state in a roster snapshot.
type RosterEntry struct {
	ID    PlayerID
	X, Y  float64
	Angle float64
}

// RosterUpdate is a snapshot of every player the host knows about,
// including the receiving client. Entries that failed validation are
// already removed; Dropped counts them and Errs explains why.
type RosterUpdate struct {
	Entries []RosterEntry
	Dropped int
	Errs    []error
}

func (RosterUpdate) inbound() {}
