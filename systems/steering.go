package systems

import (
	"github.com/automoto/maverick2d/components"
	cfg "github.com/automoto/maverick2d/config"
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Pilot receives steering gestures. netsync.Session implements it.
type Pilot interface {
	StartTracking()
	SetDisplacement(d float64)
	SetDirection(dir flight.TurnDirection)
	EndTracking() error
	Tracking() bool
}

// NewSteeringSystem turns the polled Input component into pilot gestures.
// The stick takes priority over the turn keys.
func NewSteeringSystem(p Pilot, log *zap.SugaredLogger) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		if err := steer(p, components.Input.Get(entry)); err != nil {
			log.Warnw("release input not sent", "err", err)
		}
	}
}

func steer(p Pilot, input *components.InputData) error {
	left := GetAction(input, cfg.ActionTurnLeft).Pressed
	right := GetAction(input, cfg.ActionTurnRight).Pressed

	if !input.Stick.Active && !left && !right {
		if p.Tracking() {
			return p.EndTracking()
		}
		return nil
	}

	if !p.Tracking() {
		p.StartTracking()
	}

	switch {
	case input.Stick.Active:
		p.SetDisplacement(input.Stick.Displacement)
	case left && !right:
		p.SetDirection(flight.TurnLeft)
	case right && !left:
		p.SetDirection(flight.TurnRight)
	default:
		p.SetDirection(flight.TurnNone)
	}
	return nil
}

// NewFireSystem launches a projectile from the local aircraft whenever the
// fire action is pressed.
func NewFireSystem(origin func() flight.State) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		if GetAction(components.Input.Get(entry), cfg.ActionFire).JustPressed {
			factory.CreateProjectile(e, origin(), cfg.Flight.ProjectileSpeed)
		}
	}
}
