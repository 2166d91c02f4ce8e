package network

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// ErrTransport wraps bind, receive and send failures.
var ErrTransport = errors.New("transport")

const (
	defaultSendTimeout = 10 * time.Second
	defaultQueueSize   = 64
	maxDatagramSize    = 64 * 1024
)

// TransportConfig describes the relay host and local socket.
type TransportConfig struct {
	Host        string
	Port        int
	LocalAddr   string        // defaults to ":0", an ephemeral port on all interfaces
	SendTimeout time.Duration // write deadline per datagram
	QueueSize   int           // outbound datagrams buffered before sends are dropped
}

// TransportStats counts datagram outcomes.
type TransportStats struct {
	Sent     int64
	Failed   int64
	Dropped  int64
	Received int64
}

type datagram struct {
	tag     uint32
	payload []byte
}

// Transport is a connectionless UDP channel to one host. Sends are queued
// and written by a single goroutine; received datagrams are handed to the
// callback on the reader goroutine.
type Transport struct {
	conn        *net.UDPConn
	remote      *net.UDPAddr
	sendTimeout time.Duration
	onDatagram  func([]byte)
	log         *zap.SugaredLogger

	mu     sync.Mutex
	closed bool
	out    chan datagram
	tag    uint32

	writerDone chan struct{}
	readerDone chan struct{}

	sent, failed, dropped, received atomic.Int64
}

// Listen binds the local socket and starts the reader and writer
// goroutines. onDatagram must not retain the slice it is given.
func Listen(cfg TransportConfig, onDatagram func([]byte), log *zap.SugaredLogger) (*Transport, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if cfg.LocalAddr == "" {
		cfg.LocalAddr = ":0"
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}

	remote, err := net.ResolveUDPAddr("udp", net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)))
	if err != nil {
		return nil, fmt.Errorf("%w: resolve host: %v", ErrTransport, err)
	}
	local, err := net.ResolveUDPAddr("udp", cfg.LocalAddr)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve local: %v", ErrTransport, err)
	}
	conn, err := net.ListenUDP("udp", local)
	if err != nil {
		return nil, fmt.Errorf("%w: bind: %v", ErrTransport, err)
	}

	t := &Transport{
		conn:        conn,
		remote:      remote,
		sendTimeout: cfg.SendTimeout,
		onDatagram:  onDatagram,
		log:         log,
		out:         make(chan datagram, cfg.QueueSize),
		writerDone:  make(chan struct{}),
		readerDone:  make(chan struct{}),
	}
	go t.writeLoop()
	go t.readLoop()

	log.Infow("socket bound", "local", conn.LocalAddr().String(), "remote", remote.String())
	return t, nil
}

// LocalPort is the ephemeral port the socket is bound to.
func (t *Transport) LocalPort() int {
	return t.conn.LocalAddr().(*net.UDPAddr).Port
}

func (t *Transport) RemoteAddr() *net.UDPAddr {
	return t.remote
}

// Send queues payload without blocking and returns the tag assigned to it.
// A full queue drops the datagram.
func (t *Transport) Send(payload []byte) (uint32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, fmt.Errorf("%w: closed", ErrTransport)
	}
	t.tag++
	select {
	case t.out <- datagram{tag: t.tag, payload: payload}:
		return t.tag, nil
	default:
		t.dropped.Add(1)
		return t.tag, fmt.Errorf("%w: send queue full, datagram %d dropped", ErrTransport, t.tag)
	}
}

func (t *Transport) Stats() TransportStats {
	return TransportStats{
		Sent:     t.sent.Load(),
		Failed:   t.failed.Load(),
		Dropped:  t.dropped.Load(),
		Received: t.received.Load(),
	}
}

// Close flushes queued datagrams, each still bounded by the send timeout,
// then closes the socket.
func (t *Transport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	close(t.out)
	t.mu.Unlock()

	<-t.writerDone
	err := t.conn.Close()
	<-t.readerDone
	if err != nil {
		return fmt.Errorf("%w: close: %v", ErrTransport, err)
	}
	return nil
}

func (t *Transport) writeLoop() {
	defer close(t.writerDone)
	for d := range t.out {
		_ = t.conn.SetWriteDeadline(time.Now().Add(t.sendTimeout))
		if _, err := t.conn.WriteToUDP(d.payload, t.remote); err != nil {
			t.failed.Add(1)
			t.log.Warnw("send failed", "tag", d.tag, "err", err)
			continue
		}
		t.sent.Add(1)
	}
}

// readLoop runs until the socket is closed or a read fails. Receiving is
// not restarted after a failure; sends keep working.
func (t *Transport) readLoop() {
	defer close(t.readerDone)
	buf := make([]byte, maxDatagramSize)
	for {
		n, from, err := t.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			t.log.Errorw("receive stopped", "err", err)
			return
		}
		t.received.Add(1)
		t.log.Debugw("datagram", "from", from.String(), "bytes", n)
		if t.onDatagram != nil {
			t.onDatagram(buf[:n])
		}
	}
}
