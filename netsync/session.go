// Package netsync is the client-side synchronization core: the local
// player, the remote roster and the fixed-step scheduler, bound together by
// a Session that the game loop ticks once per rendering frame.
package netsync

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/messages"
	"go.uber.org/zap"
)

// Sender delivers an outbound message. Implementations must not block for
// long; delivery is best effort.
type Sender interface {
	Send(msg messages.Outbound) error
}

// Inbox yields the inbound messages received since the last call, in
// arrival order.
type Inbox interface {
	Drain() []messages.Inbound
}

// Stats counts what the session has done, for the HUD and for tests.
type Stats struct {
	Steps         int
	Ticks         int
	InputsSent    int
	SendErrors    int
	Corrections   int
	RosterApplied int
	RosterDropped int
	SelfFiltered  int
}

// Options configures a Session. Zero values pick the defaults.
type Options struct {
	Start          flight.State
	Order          flight.StepOrder
	StepsPerSecond float64
	Now            func() time.Time
	Logger         *zap.SugaredLogger
}

// Session is the simulation context. It is not safe for concurrent use:
// the game loop owns it and every method runs on that goroutine.
type Session struct {
	player    *Player
	roster    *Roster
	scheduler *Scheduler
	sender    Sender
	inbox     Inbox
	now       func() time.Time
	log       *zap.SugaredLogger

	joined   bool
	dead     bool
	tracking bool
	// lastTurnRate is remembered while tracking so the release message can
	// carry it as a hint.
	lastTurnRate float64
	stats        Stats
}

func NewSession(sender Sender, inbox Inbox, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	return &Session{
		player:    NewPlayer(opts.Start, opts.Order),
		roster:    NewRoster(),
		scheduler: NewScheduler(opts.StepsPerSecond),
		sender:    sender,
		inbox:     inbox,
		now:       opts.Now,
		log:       opts.Logger,
	}
}

func (s *Session) Player() *Player {
	return s.player
}

func (s *Session) Roster() *Roster {
	return s.roster
}

func (s *Session) Scheduler() *Scheduler {
	return s.scheduler
}

func (s *Session) Stats() Stats {
	return s.stats
}

func (s *Session) Joined() bool {
	return s.joined
}

func (s *Session) Tracking() bool {
	return s.tracking
}

// Join adopts id as the local identity and announces the player.
func (s *Session) Join(id messages.PlayerID) error {
	s.player.setID(id)
	s.joined = true

	st := s.player.State()
	err := s.send(messages.Join{ID: id, X: st.X, Y: st.Y, Angle: st.Heading, Speed: st.Speed})
	if err != nil {
		return fmt.Errorf("join: %w", err)
	}
	s.log.Infow("joined", "id", id)
	return nil
}

// Die tells the host the player is leaving. It is sent at most once.
func (s *Session) Die() error {
	if !s.joined || s.dead {
		return nil
	}
	s.dead = true
	if err := s.send(messages.Die{ID: s.player.ID()}); err != nil {
		return fmt.Errorf("die: %w", err)
	}
	s.log.Infow("die sent", "id", s.player.ID())
	return nil
}

// StartTracking marks the beginning of a steering gesture.
func (s *Session) StartTracking() {
	s.tracking = true
}

// SetDisplacement feeds a continuous stick displacement.
func (s *Session) SetDisplacement(d float64) {
	s.setIntent(flight.IntentFromDisplacement(d))
}

// SetDirection feeds a digital turn input.
func (s *Session) SetDirection(dir flight.TurnDirection) {
	if dir == flight.TurnNone {
		s.setIntent(flight.NeutralIntent())
		return
	}
	s.setIntent(flight.IntentFromDirection(dir))
}

func (s *Session) setIntent(in flight.Intent) {
	s.player.SetIntent(in)
	if rate := in.TurnRate(); rate != 0 {
		s.lastTurnRate = rate
	}
}

// EndTracking releases the stick and sends one final input carrying the
// last turn rate as a hint.
func (s *Session) EndTracking() error {
	if !s.tracking {
		return nil
	}
	s.tracking = false
	delta := s.lastTurnRate
	s.lastTurnRate = 0
	s.player.SetIntent(flight.NeutralIntent())

	if !s.joined || s.dead {
		return nil
	}
	return s.sendInput(s.inputMessage().WithTurnDelta(delta))
}

// Tick processes one rendering frame at now seconds: inbound messages are
// applied in arrival order, the simulation catches up in fixed steps and at
// most one input is sent. The returned error reports a failed send; the
// session stays usable.
func (s *Session) Tick(now float64) error {
	s.stats.Ticks++
	s.drain()

	s.stats.Steps += s.scheduler.Tick(now, s.player.Advance)

	if !s.tracking || !s.joined || s.dead {
		return nil
	}
	return s.sendInput(s.inputMessage())
}

func (s *Session) inputMessage() messages.Input {
	st := s.player.State()
	return messages.Input{
		ID:        s.player.ID(),
		Timestamp: s.now().UnixMilli(),
		X:         st.X,
		Y:         st.Y,
		Angle:     st.Heading,
	}
}

func (s *Session) sendInput(in messages.Input) error {
	if err := s.send(in); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	s.stats.InputsSent++
	return nil
}

func (s *Session) send(msg messages.Outbound) error {
	if s.sender == nil {
		return errors.New("no sender")
	}
	if err := s.sender.Send(msg); err != nil {
		s.stats.SendErrors++
		return err
	}
	return nil
}

func (s *Session) drain() {
	if s.inbox == nil {
		return
	}
	for _, msg := range s.inbox.Drain() {
		s.Apply(msg)
	}
}

// Apply handles one inbound message immediately.
func (s *Session) Apply(msg messages.Inbound) {
	switch m := msg.(type) {
	case messages.Correction:
		s.player.ApplyCorrection(m.X, m.Y, m.Angle)
		s.stats.Corrections++
	case messages.RosterUpdate:
		s.applyRoster(m)
	default:
		s.log.Debugw("ignoring inbound message", "type", fmt.Sprintf("%T", msg))
	}
}

func (s *Session) applyRoster(update messages.RosterUpdate) {
	self := s.player.ID()
	for _, entry := range update.Entries {
		if s.joined && entry.ID == self {
			s.stats.SelfFiltered++
			continue
		}
		s.roster.Upsert(entry.ID, entry.X, entry.Y, entry.Angle)
		s.stats.RosterApplied++
	}
	if update.Dropped > 0 {
		s.stats.RosterDropped += update.Dropped
		for _, err := range update.Errs {
			s.log.Debugw("roster entry dropped", "err", err)
		}
	}
}
