package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/protocol"
)

func resetNet(t *testing.T) {
	t.Helper()
	net, fl, lg, dbg := Net, Flight, Log, Debug
	t.Cleanup(func() {
		Net, Flight, Log, Debug = net, fl, lg, dbg
	})
}

func TestApplyEnvOverrides(t *testing.T) {
	resetNet(t)
	t.Setenv(EnvHost, "10.0.0.7")
	t.Setenv(EnvPort, "4242")
	t.Setenv(EnvFormat, "msgpack")
	t.Setenv(EnvStepOrder, "move-then-turn")
	t.Setenv(EnvSendTimeout, "250ms")
	t.Setenv(EnvOffline, "true")

	if err := ApplyEnv(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if Net.Host != "10.0.0.7" || Net.Port != 4242 {
		t.Fatalf("host = %s:%d", Net.Host, Net.Port)
	}
	if Net.Format != protocol.FormatMsgpack || Flight.StepOrder != flight.MoveThenTurn {
		t.Fatalf("format = %v order = %v", Net.Format, Flight.StepOrder)
	}
	if Net.SendTimeout != 250*time.Millisecond || !Net.Offline {
		t.Fatalf("timeout = %v offline = %v", Net.SendTimeout, Net.Offline)
	}
}

func TestApplyEnvKeepsGoodValuesOnError(t *testing.T) {
	resetNet(t)
	t.Setenv(EnvHost, "relay.example")
	t.Setenv(EnvPort, "99999")
	t.Setenv(EnvFormat, "xml")

	if err := ApplyEnv(); err == nil {
		t.Fatalf("expected an error for bad port and format")
	}
	if Net.Host != "relay.example" {
		t.Fatalf("good value not applied: %s", Net.Host)
	}
	if Net.Port != 1337 || Net.Format != protocol.FormatJSON {
		t.Fatalf("bad values leaked: port=%d format=%v", Net.Port, Net.Format)
	}
}

func TestLoadDotEnv(t *testing.T) {
	resetNet(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MAVERICK_PORT=5555\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvPort, "") // registered for cleanup; godotenv skips set keys
	os.Unsetenv(EnvPort)

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := ApplyEnv(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if Net.Port != 5555 {
		t.Fatalf("port = %d, want 5555", Net.Port)
	}
}
