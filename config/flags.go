package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/protocol"
)

// Flags holds command-line overrides. Only flags the user actually set are
// applied, so defaults never mask persisted or environment values.
type Flags struct {
	fs *flag.FlagSet

	host        string
	port        int
	format      string
	order       string
	sendTimeout time.Duration
	offline     bool
	logFile     string
	debug       bool
	hud         bool
}

// RegisterFlags defines the client's flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.host, "host", Net.Host, "Relay host")
	fs.IntVar(&f.port, "port", Net.Port, "Relay port")
	fs.StringVar(&f.format, "format", Net.Format.String(), "Wire format (json, msgpack)")
	fs.StringVar(&f.order, "order", Flight.StepOrder.String(), "Step order (turn-then-move, move-then-turn)")
	fs.DurationVar(&f.sendTimeout, "send-timeout", Net.SendTimeout, "Write deadline per datagram")
	fs.BoolVar(&f.offline, "offline", Net.Offline, "Fly without a relay host")
	fs.StringVar(&f.logFile, "log-file", Log.File, "Rolling log file (empty disables)")
	fs.BoolVar(&f.debug, "debug", Log.Debug, "Verbose logging")
	fs.BoolVar(&f.hud, "hud", Debug.ShowHUD, "Show the network HUD")
	return f
}

// Apply copies every explicitly set flag into the global configuration.
func (f *Flags) Apply() error {
	var errs []error
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "host":
			Net.Host = f.host
		case "port":
			if f.port <= 0 || f.port > 65535 {
				errs = append(errs, fmt.Errorf("-port: invalid port %d", f.port))
				return
			}
			Net.Port = f.port
		case "format":
			format, err := protocol.ParseFormat(f.format)
			if err != nil {
				errs = append(errs, fmt.Errorf("-format: %w", err))
				return
			}
			Net.Format = format
		case "order":
			order, ok := flight.ParseStepOrder(f.order)
			if !ok {
				errs = append(errs, fmt.Errorf("-order: unknown step order %q", f.order))
				return
			}
			Flight.StepOrder = order
		case "send-timeout":
			if f.sendTimeout <= 0 {
				errs = append(errs, errors.New("-send-timeout: must be positive"))
				return
			}
			Net.SendTimeout = f.sendTimeout
		case "offline":
			Net.Offline = f.offline
		case "log-file":
			Log.File = f.logFile
		case "debug":
			Log.Debug = f.debug
		case "hud":
			Debug.ShowHUD = f.hud
		}
	})
	return errors.Join(errs...)
}
