package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Rotation float64 // degrees; the world is drawn rotated by -Rotation
	Zoom     float64
}

var Camera = donburi.NewComponentType[CameraData]()
