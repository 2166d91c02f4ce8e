package systems

import (
	"image/color"

	"github.com/automoto/maverick2d/components"
	cfg "github.com/automoto/maverick2d/config"
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/gamemath"
	"github.com/automoto/maverick2d/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders the grid, the world bound, projectiles and aircraft as
// seen by the camera.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	screen.Fill(cfg.UI.BackgroundColor)
	drawGrid(screen, camera, w, h)

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		st := components.Projectile.Get(entry).State
		x, y := project(camera, w, h, st.X, st.Y)
		vector.DrawFilledCircle(screen, x, y, cfg.UI.ProjectileSize, cfg.UI.ProjectileColor, true)
	})

	tags.RemoteAircraft.Each(e.World, func(entry *donburi.Entry) {
		drawAircraft(screen, camera, w, h, components.Aircraft.Get(entry).State, cfg.UI.RemoteColor)
	})
	if entry, ok := tags.LocalAircraft.First(e.World); ok {
		drawAircraft(screen, camera, w, h, components.Aircraft.Get(entry).State, cfg.UI.LocalColor)
	}
}

func drawGrid(screen *ebiten.Image, camera *components.CameraData, w, h int) {
	spacing := cfg.UI.GridSpacing
	if spacing <= 0 {
		return
	}
	b := flight.WorldBound
	line := func(x0, y0, x1, y1 float64, width float32, clr color.Color) {
		sx0, sy0 := project(camera, w, h, x0, y0)
		sx1, sy1 := project(camera, w, h, x1, y1)
		vector.StrokeLine(screen, sx0, sy0, sx1, sy1, width, clr, false)
	}

	for v := -b + spacing; v < b; v += spacing {
		line(v, -b, v, b, 1, cfg.UI.GridColor)
		line(-b, v, b, v, 1, cfg.UI.GridColor)
	}

	line(-b, -b, b, -b, 3, cfg.UI.BoundColor)
	line(b, -b, b, b, 3, cfg.UI.BoundColor)
	line(b, b, -b, b, 3, cfg.UI.BoundColor)
	line(-b, b, -b, -b, 3, cfg.UI.BoundColor)
}

// drawAircraft outlines a triangle whose nose points along the heading.
func drawAircraft(screen *ebiten.Image, camera *components.CameraData, w, h int, st flight.State, clr color.Color) {
	size := float64(cfg.UI.AircraftSize)
	fx, fy := gamemath.HeadingVector(st.Heading)
	// Right-hand wing direction, perpendicular to the heading.
	rx, ry := fy, -fx

	noseX, noseY := project(camera, w, h, st.X+fx*size*0.6, st.Y+fy*size*0.6)
	leftX, leftY := project(camera, w, h, st.X-fx*size*0.4-rx*size*0.4, st.Y-fy*size*0.4-ry*size*0.4)
	rightX, rightY := project(camera, w, h, st.X-fx*size*0.4+rx*size*0.4, st.Y-fy*size*0.4+ry*size*0.4)

	vector.StrokeLine(screen, noseX, noseY, leftX, leftY, 2, clr, true)
	vector.StrokeLine(screen, leftX, leftY, rightX, rightY, 2, clr, true)
	vector.StrokeLine(screen, rightX, rightY, noseX, noseY, 2, clr, true)
}
