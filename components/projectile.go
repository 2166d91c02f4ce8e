package components

import (
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	State flight.State
}

var Projectile = donburi.NewComponentType[ProjectileData]()
