package factory

import (
	"github.com/automoto/maverick2d/archetypes"
	"github.com/automoto/maverick2d/components"
	cfg "github.com/automoto/maverick2d/config"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Zoom: cfg.Camera.Zoom})
}

func CreateInput(ecs *ecs.ECS) {
	archetypes.Input.Spawn(ecs)
}
