package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestInitWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	t.Cleanup(func() { log = nopLogger() })

	if err := Init(Config{File: path, MaxSizeMB: 1}); err != nil {
		t.Fatalf("init: %v", err)
	}
	Named("transport").Infow("bound", "port", 4242)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{`"logger":"transport"`, `"msg":"bound"`, `"port":4242`} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("log %s missing %s", data, want)
		}
	}
}

func TestInitWithoutSinksIsQuiet(t *testing.T) {
	t.Cleanup(func() { log = nopLogger() })
	if err := Init(Config{}); err != nil {
		t.Fatalf("init: %v", err)
	}
	L().Infow("dropped")
}
