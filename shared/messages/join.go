package messages

// PlayerID identifies a client. It is the local UDP port the client sends
// from, so it is only unique per host address.
type PlayerID uint16

// Kind is the wire tag carried in the "type" field.
type Kind string

const (
	KindJoin       Kind = "join"
	KindInput      Kind = "input"
	KindDie        Kind = "die"
	KindCorrection Kind = "correction"
)

// Outbound is a message the client sends to the host.
type Outbound interface {
	Kind() Kind
	Sender() PlayerID
}

// Join is sent once after the socket is bound to announce the player.
type Join struct {
	ID    PlayerID
	X, Y  float64
	Angle float64
	Speed float64
}

func (Join) Kind() Kind { return KindJoin }
func (m Join) Sender() PlayerID { return m.ID }

// Die is sent when the client is about to terminate or suspend.
type Die struct {
	ID PlayerID
}

func (Die) Kind() Kind { return KindDie }
func (m Die) Sender() PlayerID { return m.ID }
