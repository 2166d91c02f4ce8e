package systems

import (
	"fmt"

	cfg "github.com/automoto/maverick2d/config"
	"github.com/automoto/maverick2d/fonts"
	"github.com/automoto/maverick2d/netsync"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
)

// LinkStatus is what the HUD shows about the network link.
type LinkStatus struct {
	Online  bool
	State   string
	Sent    int64
	Dropped int64
	Drift   float64
}

// NewHUDRenderer draws position, heading and link counters in the top-left
// corner. link may be nil when flying offline.
func NewHUDRenderer(s *netsync.Session, link func() LinkStatus) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.ShowHUD {
			return
		}
		var status LinkStatus
		if link != nil {
			status = link()
		}
		face := fonts.HUD.Get()
		for i, line := range hudLines(s, status) {
			text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight, cfg.UI.HUDColor)
		}
	}
}

func hudLines(s *netsync.Session, link LinkStatus) []string {
	st := s.Player().State()
	stats := s.Stats()

	lines := []string{
		fmt.Sprintf("x %.0f  y %.0f  hdg %.0f", st.X, st.Y, st.Heading),
		fmt.Sprintf("remote %d  steps %d", s.Roster().Len(), stats.Steps),
	}
	if !link.Online {
		return append(lines, "offline")
	}
	return append(lines,
		fmt.Sprintf("id %d  %s", s.Player().ID(), link.State),
		fmt.Sprintf("sent %d  dropped %d  drift %.1f", link.Sent, link.Dropped, link.Drift),
	)
}
