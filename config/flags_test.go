package config

import (
	"flag"
	"io"
	"testing"

	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/protocol"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestFlagsOverrideEnv(t *testing.T) {
	resetNet(t)
	t.Setenv(EnvHost, "from-env")
	t.Setenv(EnvPort, "2000")
	if err := ApplyEnv(); err != nil {
		t.Fatalf("env: %v", err)
	}

	fs := newFlagSet()
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"-port", "3000", "-format", "msgpack", "-order", "move"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := flags.Apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if Net.Host != "from-env" {
		t.Fatalf("unset flag clobbered env host: %s", Net.Host)
	}
	if Net.Port != 3000 || Net.Format != protocol.FormatMsgpack || Flight.StepOrder != flight.MoveThenTurn {
		t.Fatalf("net = %+v order = %v", Net, Flight.StepOrder)
	}
}

func TestFlagsRejectBadValues(t *testing.T) {
	resetNet(t)
	fs := newFlagSet()
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"-port", "0", "-order", "sideways"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := flags.Apply(); err == nil {
		t.Fatalf("expected errors")
	}
	if Net.Port != 1337 || Flight.StepOrder != flight.TurnThenMove {
		t.Fatalf("bad values applied: port=%d order=%v", Net.Port, Flight.StepOrder)
	}
}
