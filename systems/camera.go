package systems

import (
	"math"

	"github.com/automoto/maverick2d/components"
	"github.com/automoto/maverick2d/config"
	"github.com/automoto/maverick2d/shared/gamemath"
	"github.com/automoto/maverick2d/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centers the camera on the local aircraft and, when enabled,
// turns the world so the aircraft always points up the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	aircraftEntry, ok := tags.LocalAircraft.First(e.World)
	if !ok {
		return
	}
	st := components.Aircraft.Get(aircraftEntry).State

	camera.Position.X = st.X
	camera.Position.Y = st.Y
	if config.Camera.RotateWithHeading {
		camera.Rotation = st.Heading
	} else {
		camera.Rotation = 0
	}
}

// project maps a world point to screen pixels. World +Y is up the screen
// once the camera rotation is undone.
func project(camera *components.CameraData, screenW, screenH int, x, y float64) (float32, float32) {
	dx := x - camera.Position.X
	dy := y - camera.Position.Y

	r := gamemath.DegToRad(camera.Rotation)
	sin, cos := math.Sin(r), math.Cos(r)
	rx := dx*cos + dy*sin
	ry := -dx*sin + dy*cos

	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	sx := float64(screenW)/2 + rx*zoom
	sy := float64(screenH)/2 - ry*zoom
	return float32(sx), float32(sy)
}
