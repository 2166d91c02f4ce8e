package factory

import (
	"github.com/automoto/maverick2d/archetypes"
	"github.com/automoto/maverick2d/components"
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLocalAircraft spawns the sprite that mirrors the session's player.
func CreateLocalAircraft(ecs *ecs.ECS, st flight.State) *donburi.Entry {
	aircraft := archetypes.LocalAircraft.Spawn(ecs)
	components.Aircraft.SetValue(aircraft, components.AircraftData{
		Local: true,
		State: st,
	})
	return aircraft
}

// CreateRemoteAircraft spawns a roster entry's sprite at rest.
func CreateRemoteAircraft(ecs *ecs.ECS, id messages.PlayerID, st flight.State) *donburi.Entry {
	aircraft := archetypes.RemoteAircraft.Spawn(ecs)
	components.Aircraft.SetValue(aircraft, components.AircraftData{
		ID:    id,
		State: st,
	})
	components.Glide.SetValue(aircraft, components.GlideData{})
	return aircraft
}

// CreateProjectile launches a projectile from the nose of st along its
// heading.
func CreateProjectile(ecs *ecs.ECS, st flight.State, speed float64) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)
	components.Projectile.SetValue(projectile, components.ProjectileData{
		State: flight.State{X: st.X, Y: st.Y, Heading: st.Heading, Speed: speed},
	})
	return projectile
}
