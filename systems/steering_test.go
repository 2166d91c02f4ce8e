package systems

import (
	"testing"

	"github.com/automoto/maverick2d/components"
	cfg "github.com/automoto/maverick2d/config"
	"github.com/automoto/maverick2d/shared/flight"
)

type fakePilot struct {
	tracking bool
	starts   int
	ends     int
	disp     []float64
	dirs     []flight.TurnDirection
}

func (p *fakePilot) StartTracking() { p.tracking = true; p.starts++ }
func (p *fakePilot) SetDisplacement(d float64) { p.disp = append(p.disp, d) }
func (p *fakePilot) SetDirection(dir flight.TurnDirection) { p.dirs = append(p.dirs, dir) }
func (p *fakePilot) Tracking() bool { return p.tracking }

func (p *fakePilot) EndTracking() error {
	p.tracking = false
	p.ends++
	return nil
}

func TestSteerKeyboardGesture(t *testing.T) {
	p := &fakePilot{}
	var in components.InputData

	in.Current[cfg.ActionTurnLeft] = true
	if err := steer(p, &in); err != nil {
		t.Fatalf("steer: %v", err)
	}
	in.Previous = in.Current
	if err := steer(p, &in); err != nil {
		t.Fatalf("steer: %v", err)
	}
	if p.starts != 1 {
		t.Fatalf("starts = %d, want 1", p.starts)
	}
	if len(p.dirs) != 2 || p.dirs[0] != flight.TurnLeft {
		t.Fatalf("dirs = %v", p.dirs)
	}

	in.Current = [cfg.ActionCount]bool{}
	if err := steer(p, &in); err != nil {
		t.Fatalf("steer: %v", err)
	}
	if p.ends != 1 || p.tracking {
		t.Fatalf("ends = %d tracking = %v", p.ends, p.tracking)
	}

	// Idle frames do not release twice.
	_ = steer(p, &in)
	if p.ends != 1 {
		t.Fatalf("ends = %d after idle frame", p.ends)
	}
}

func TestSteerStickWinsOverKeys(t *testing.T) {
	p := &fakePilot{}
	var in components.InputData
	in.Current[cfg.ActionTurnRight] = true
	in.Stick = components.StickData{Active: true, Displacement: -20}

	_ = steer(p, &in)
	if len(p.disp) != 1 || p.disp[0] != -20 || len(p.dirs) != 0 {
		t.Fatalf("disp = %v dirs = %v", p.disp, p.dirs)
	}
}

func TestSteerBothKeysIsNeutral(t *testing.T) {
	p := &fakePilot{}
	var in components.InputData
	in.Current[cfg.ActionTurnLeft] = true
	in.Current[cfg.ActionTurnRight] = true

	_ = steer(p, &in)
	if len(p.dirs) != 1 || p.dirs[0] != flight.TurnNone {
		t.Fatalf("dirs = %v", p.dirs)
	}
}
