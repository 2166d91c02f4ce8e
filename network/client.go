package network

import (
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/maverick2d/shared/messages"
	"github.com/automoto/maverick2d/shared/protocol"
	"go.uber.org/zap"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateBound
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateBound:
		return "bound"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

const inboxSize = 128

// Client pairs the UDP transport with the message codec. Inbound datagrams
// are decoded on the transport's reader goroutine and queued; the game
// loop drains the queue once per tick.
// Shared fields are protected by mu.
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	id        messages.PlayerID
	transport *Transport
	history   InputHistory
	lastDrift float64

	codec   *protocol.Codec
	inboxCh chan messages.Inbound
	log     *zap.SugaredLogger
}

func NewClient(codec *protocol.Codec, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		state:   StateDisconnected,
		codec:   codec,
		inboxCh: make(chan messages.Inbound, inboxSize),
		log:     log,
	}
}

// Start binds the socket. The local port becomes the player identity.
func (c *Client) Start(cfg TransportConfig) (messages.PlayerID, error) {
	t, err := Listen(cfg, c.onDatagram, c.log.Named("transport"))
	if err != nil {
		c.setError(err)
		return 0, err
	}

	id := messages.PlayerID(t.LocalPort())
	c.mu.Lock()
	c.transport = t
	c.id = id
	c.state = StateBound
	c.lastError = nil
	c.mu.Unlock()

	c.log.Infow("client started", "id", id, "host", t.RemoteAddr().String(), "format", c.codec.Format().String())
	return id, nil
}

// Send encodes msg and queues it. An unencodable message is never handed to
// the transport.
func (c *Client) Send(msg messages.Outbound) error {
	c.mu.RLock()
	t := c.transport
	c.mu.RUnlock()

	if t == nil {
		return fmt.Errorf("%w: not started", ErrTransport)
	}

	payload, err := c.codec.Encode(msg)
	if err != nil {
		c.log.Warnw("encode failed, send skipped", "kind", msg.Kind(), "err", err)
		return err
	}

	tag, err := t.Send(payload)
	if err != nil {
		c.log.Warnw("send failed", "kind", msg.Kind(), "err", err)
		return err
	}

	c.mu.Lock()
	switch m := msg.(type) {
	case messages.Join:
		c.state = StateJoinedGame
	case messages.Input:
		c.history.Store(tag, m)
	}
	c.mu.Unlock()
	return nil
}

// Drain returns all pending inbound messages in arrival order, non-blocking.
func (c *Client) Drain() []messages.Inbound {
	return drainChan(c.inboxCh)
}

// Close flushes queued sends and releases the socket.
func (c *Client) Close() error {
	c.mu.Lock()
	t := c.transport
	c.transport = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if t == nil {
		return nil
	}
	return t.Close()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) ID() messages.PlayerID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

// LastDrift is the distance the most recent correction moved the player
// away from its last reported position.
func (c *Client) LastDrift() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastDrift
}

func (c *Client) TransportStats() TransportStats {
	c.mu.RLock()
	t := c.transport
	c.mu.RUnlock()
	if t == nil {
		return TransportStats{}
	}
	return t.Stats()
}

func (c *Client) onDatagram(b []byte) {
	msg, err := c.codec.Decode(b)
	switch {
	case errors.Is(err, protocol.ErrUnknownShape):
		c.log.Debugw("ignoring message", "err", err)
		return
	case err != nil:
		c.log.Warnw("dropping datagram", "err", err)
		return
	}

	if corr, ok := msg.(messages.Correction); ok {
		c.mu.Lock()
		c.lastDrift = c.history.Drift(corr)
		drift := c.lastDrift
		c.mu.Unlock()
		c.log.Debugw("correction", "x", corr.X, "y", corr.Y, "angle", corr.Angle, "drift", drift)
	}

	select {
	case c.inboxCh <- msg:
	default:
		c.log.Warnw("inbox full, dropping message", "type", fmt.Sprintf("%T", msg))
	}
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
