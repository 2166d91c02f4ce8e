package netsync

import (
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/messages"
)

// EventKind tells a listener whether a roster entry is new.
type EventKind int

const (
	EventCreated EventKind = iota
	EventUpdated
)

func (k EventKind) String() string {
	if k == EventCreated {
		return "created"
	}
	return "updated"
}

// Entry is a remote player as last reported by the host.
type Entry struct {
	ID    messages.PlayerID
	State flight.State
	// Handle belongs to the rendering side. The roster stores it and never
	// looks inside.
	Handle any
}

// Listener is notified after every upsert. OnCreated may set Entry.Handle.
type Listener interface {
	OnCreated(e *Entry)
	OnUpdated(e *Entry)
}

// Roster is the set of remote players keyed by identity. Entries are never
// removed; the protocol has no departure message the client acts on.
type Roster struct {
	entries   map[messages.PlayerID]*Entry
	order     []messages.PlayerID
	listeners []Listener
}

func NewRoster() *Roster {
	return &Roster{
		entries: make(map[messages.PlayerID]*Entry),
	}
}

// AddListener registers l for every subsequent event.
func (r *Roster) AddListener(l Listener) {
	r.listeners = append(r.listeners, l)
}

// Upsert inserts an unseen identity or overwrites the position and heading
// of a known one in place.
func (r *Roster) Upsert(id messages.PlayerID, x, y, heading float64) EventKind {
	e, ok := r.entries[id]
	if !ok {
		e = &Entry{ID: id, State: flight.State{X: x, Y: y, Heading: heading}}
		r.entries[id] = e
		r.order = append(r.order, id)
		for _, l := range r.listeners {
			l.OnCreated(e)
		}
		return EventCreated
	}

	e.State.X = x
	e.State.Y = y
	e.State.Heading = heading
	for _, l := range r.listeners {
		l.OnUpdated(e)
	}
	return EventUpdated
}

func (r *Roster) Get(id messages.PlayerID) (*Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

func (r *Roster) Len() int {
	return len(r.entries)
}

// Each visits entries in first-seen order.
func (r *Roster) Each(fn func(e *Entry)) {
	for _, id := range r.order {
		fn(r.entries[id])
	}
}
