package systems

import (
	"strings"
	"testing"

	"github.com/automoto/maverick2d/netsync"
	"github.com/automoto/maverick2d/shared/flight"
)

func TestHUDLines(t *testing.T) {
	s := netsync.NewSession(nil, nil, netsync.Options{Start: flight.State{X: 12, Y: -3, Heading: 90, Speed: 7}})
	s.Roster().Upsert(9, 0, 0, 0)

	offline := hudLines(s, LinkStatus{})
	if got := offline[len(offline)-1]; got != "offline" {
		t.Fatalf("last line = %q", got)
	}
	if !strings.Contains(offline[0], "x 12") || !strings.Contains(offline[1], "remote 1") {
		t.Fatalf("lines = %q", offline)
	}

	online := hudLines(s, LinkStatus{Online: true, State: "joined", Sent: 4, Dropped: 1})
	if len(online) != 4 || !strings.Contains(online[3], "sent 4") || !strings.Contains(online[2], "joined") {
		t.Fatalf("lines = %q", online)
	}
}
