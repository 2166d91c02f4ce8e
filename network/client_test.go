package network

import (
	"encoding/json"
	"errors"
	"math"
	"net"
	"testing"
	"time"

	"github.com/automoto/maverick2d/netsync"
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/messages"
	"github.com/automoto/maverick2d/shared/protocol"
)

// fakeHost is a loopback relay that records what it receives.
type fakeHost struct {
	conn *net.UDPConn
	recv chan received
}

type received struct {
	from    *net.UDPAddr
	payload map[string]any
}

func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	h := &fakeHost{conn: conn, recv: make(chan received, 16)}
	go func() {
		buf := make([]byte, 4096)
		for {
			n, from, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			var payload map[string]any
			if err := json.Unmarshal(buf[:n], &payload); err != nil {
				continue
			}
			h.recv <- received{from: from, payload: payload}
		}
	}()
	t.Cleanup(func() { _ = conn.Close() })
	return h
}

func (h *fakeHost) port() int {
	return h.conn.LocalAddr().(*net.UDPAddr).Port
}

func (h *fakeHost) next(t *testing.T) received {
	t.Helper()
	select {
	case r := <-h.recv:
		return r
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for datagram")
	}
	return received{}
}

func (h *fakeHost) reply(t *testing.T, to *net.UDPAddr, payload string) {
	t.Helper()
	if _, err := h.conn.WriteToUDP([]byte(payload), to); err != nil {
		t.Fatalf("reply: %v", err)
	}
}

func startClient(t *testing.T, h *fakeHost) (*Client, messages.PlayerID) {
	t.Helper()
	c := NewClient(protocol.NewCodec(protocol.FormatJSON), nil)
	id, err := c.Start(TransportConfig{Host: "127.0.0.1", Port: h.port(), LocalAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, id
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestJoinIdentityIsLocalPort(t *testing.T) {
	h := newFakeHost(t)
	c, id := startClient(t, h)
	if c.State() != StateBound {
		t.Fatalf("state = %v, want bound", c.State())
	}

	s := netsync.NewSession(c, c, netsync.Options{Start: flight.State{Speed: 7}})
	if err := s.Join(id); err != nil {
		t.Fatalf("join: %v", err)
	}

	r := h.next(t)
	if r.payload["type"] != "join" {
		t.Fatalf("first datagram = %v, want join", r.payload)
	}
	if int(r.payload["id"].(float64)) != r.from.Port || r.from.Port != int(id) {
		t.Fatalf("id %v does not match source port %d", r.payload["id"], r.from.Port)
	}
	if r.payload["speed"] != 7.0 {
		t.Fatalf("speed = %v", r.payload["speed"])
	}
	if c.State() != StateJoinedGame {
		t.Fatalf("state = %v, want joined", c.State())
	}
}

func TestInboundMessagesReachSessionOnTick(t *testing.T) {
	h := newFakeHost(t)
	c, id := startClient(t, h)
	s := netsync.NewSession(c, c, netsync.Options{Start: flight.State{Speed: 7}})
	_ = s.Join(id)
	join := h.next(t)

	h.reply(t, join.from, `{"type":"correction","x":300,"y":-40,"angle":90}`)
	h.reply(t, join.from, `not json at all`)
	h.reply(t, join.from, `{"type":"hello"}`)
	h.reply(t, join.from, `[{"id":1234,"x":5,"y":6,"angle":7}]`)
	waitFor(t, func() bool { return c.TransportStats().Received == 4 })
	waitFor(t, func() bool { return len(c.inboxCh) == 2 })

	_ = s.Tick(0)
	st := s.Player().State()
	if st.X != 300 || st.Y != -40 || st.Heading != 90 {
		t.Fatalf("correction not applied: %+v", st)
	}
	e, ok := s.Roster().Get(1234)
	if !ok || e.State.X != 5 {
		t.Fatalf("roster entry missing: %+v %v", e, ok)
	}
}

func TestUnencodableMessageSendsNothing(t *testing.T) {
	h := newFakeHost(t)
	c, id := startClient(t, h)

	err := c.Send(messages.Input{ID: id, X: math.Inf(1)})
	if !errors.Is(err, protocol.ErrEncode) {
		t.Fatalf("err = %v, want ErrEncode", err)
	}
	if err := c.Send(messages.Die{ID: id}); err != nil {
		t.Fatalf("send die: %v", err)
	}
	if r := h.next(t); r.payload["type"] != "die" {
		t.Fatalf("got %v, want only the die message", r.payload)
	}
	if stats := c.TransportStats(); stats.Sent != 1 {
		t.Fatalf("sent = %d, want 1", stats.Sent)
	}
}

func TestCloseFlushesQueuedDie(t *testing.T) {
	h := newFakeHost(t)
	c, id := startClient(t, h)

	if err := c.Send(messages.Die{ID: id}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if r := h.next(t); r.payload["type"] != "die" {
		t.Fatalf("got %v", r.payload)
	}
	if err := c.Send(messages.Die{ID: id}); !errors.Is(err, ErrTransport) {
		t.Fatalf("send after close: %v", err)
	}
}

func TestCorrectionDriftUsesLastInput(t *testing.T) {
	h := newFakeHost(t)
	c, id := startClient(t, h)

	_ = c.Send(messages.Input{ID: id, X: 3, Y: 4})
	r := h.next(t)
	h.reply(t, r.from, `{"type":"correction","x":0,"y":0,"angle":0}`)
	waitFor(t, func() bool { return c.LastDrift() == 5 })
}

func TestStartFailsOnBadHost(t *testing.T) {
	c := NewClient(protocol.NewCodec(protocol.FormatJSON), nil)
	_, err := c.Start(TransportConfig{Host: "127.0.0.1", Port: -1})
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("err = %v, want ErrTransport", err)
	}
	if c.State() != StateError || c.LastError() == nil {
		t.Fatalf("state = %v", c.State())
	}
}
