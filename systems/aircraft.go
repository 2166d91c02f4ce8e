package systems

import (
	"time"

	"github.com/automoto/maverick2d/components"
	"github.com/automoto/maverick2d/netsync"
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/systems/factory"
	"github.com/automoto/maverick2d/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// NewSessionSystem ticks the session once per frame with the seconds
// elapsed since start. Send failures are logged; the session keeps going.
func NewSessionSystem(s *netsync.Session, start time.Time, log *zap.SugaredLogger) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		if err := s.Tick(time.Since(start).Seconds()); err != nil {
			log.Debugw("tick send failed", "err", err)
		}
	}
}

// NewAircraftSystem copies the player's state onto the local sprite and
// advances remote sprites along their glide.
func NewAircraftSystem(player func() flight.State) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if entry, ok := tags.LocalAircraft.First(e.World); ok {
			components.Aircraft.Get(entry).State = player()
		}

		dt := float32(1.0 / float64(ebiten.TPS()))
		tags.RemoteAircraft.Each(e.World, func(entry *donburi.Entry) {
			advanceGlide(components.Aircraft.Get(entry), components.Glide.Get(entry), dt)
		})
	}
}

func advanceGlide(a *components.AircraftData, g *components.GlideData, dt float32) {
	step := func(tw **gween.Tween, dst *float64) {
		if *tw == nil {
			return
		}
		v, done := (*tw).Update(dt)
		*dst = float64(v)
		if done {
			*tw = nil
		}
	}
	step(&g.X, &a.State.X)
	step(&g.Y, &a.State.Y)
	step(&g.Heading, &a.State.Heading)
}

// RosterView mirrors the remote roster as donburi entities. The entity is
// kept in the roster entry's Handle.
type RosterView struct {
	ecs       *ecs.ECS
	smoothing float32
}

// NewRosterView returns a view spawning into e. With smoothing <= 0 remote
// sprites jump straight to each reported position.
func NewRosterView(e *ecs.ECS, smoothing float32) *RosterView {
	return &RosterView{ecs: e, smoothing: smoothing}
}

func (v *RosterView) OnCreated(e *netsync.Entry) {
	entry := factory.CreateRemoteAircraft(v.ecs, e.ID, e.State)
	e.Handle = entry.Entity()
}

func (v *RosterView) OnUpdated(e *netsync.Entry) {
	entity, ok := e.Handle.(donburi.Entity)
	if !ok || !v.ecs.World.Valid(entity) {
		v.OnCreated(e)
		return
	}
	entry := v.ecs.World.Entry(entity)
	a := components.Aircraft.Get(entry)
	g := components.Glide.Get(entry)

	if v.smoothing <= 0 {
		a.State.X, a.State.Y, a.State.Heading = e.State.X, e.State.Y, e.State.Heading
		*g = components.GlideData{}
		return
	}
	g.X = gween.New(float32(a.State.X), float32(e.State.X), v.smoothing, ease.Linear)
	g.Y = gween.New(float32(a.State.Y), float32(e.State.Y), v.smoothing, ease.Linear)
	g.Heading = gween.New(float32(a.State.Heading), float32(e.State.Heading), v.smoothing, ease.Linear)
}

// UpdateProjectiles moves every projectile one step and removes those that
// reached the world bound on either axis.
func UpdateProjectiles(e *ecs.ECS) {
	var expired []donburi.Entity
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if movedX, movedY := p.State.Translate(); !movedX || !movedY {
			expired = append(expired, entry.Entity())
		}
	})
	for _, entity := range expired {
		e.World.Remove(entity)
	}
}
