package archetypes

import (
	"github.com/automoto/maverick2d/components"
	cfg "github.com/automoto/maverick2d/config"
	"github.com/automoto/maverick2d/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	LocalAircraft = newArchetype(
		tags.LocalAircraft,
		components.Aircraft,
	)
	RemoteAircraft = newArchetype(
		tags.RemoteAircraft,
		components.Aircraft,
		components.Glide,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
